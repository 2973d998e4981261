package validation

import (
	"errors"
	"strings"
	"time"

	"mychecklist/internal/adapter/http/dto"
	"mychecklist/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput converts the wire payload into a creation input.
// Shape errors (bad dates, blank titles) are caught here; the semantic rules
// (due date vs kind, rule grammar) belong to the service.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsedDueDate, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	return domain.CreateTaskInput{
		Title:          title,
		Description:    req.Description,
		Kind:           domain.TaskKind(req.TaskType),
		DueDate:        dueDate,
		RecurrenceRule: req.RecurrenceRule,
	}, nil
}
