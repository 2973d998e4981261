package domain

import "time"

type TaskKind string

const (
	TaskKindOneTime   TaskKind = "ONE_TIME"
	TaskKindRecurring TaskKind = "RECURRING"
)

// Task is a unit of work owned by exactly one user. One-time tasks carry a
// due date, recurring tasks carry a recurrence rule; the creation date is the
// anchor for interval-based recurrence.
type Task struct {
	ID             uint64
	OwnerID        uint64
	Title          string
	Description    *string
	Kind           TaskKind
	DueDate        *time.Time
	RecurrenceRule *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateTaskInput struct {
	Title          string
	Description    *string
	Kind           TaskKind
	DueDate        *time.Time
	RecurrenceRule *string
}
