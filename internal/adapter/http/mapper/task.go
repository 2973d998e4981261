package mapper

import (
	"time"

	"mychecklist/internal/adapter/http/dto"
	"mychecklist/internal/core/domain"
)

func ToScheduleResponse(schedule domain.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		Today:    toTaskItems(schedule.Today),
		Upcoming: toTaskItems(schedule.Upcoming),
	}
}

func toTaskItems(entries []domain.ScheduleEntry) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToTaskItem(entry))
	}
	return items
}

func ToTaskItem(entry domain.ScheduleEntry) dto.TaskItem {
	task := entry.Task
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		TaskType:    string(task.Kind),
		IsCompleted: entry.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.DateOnly)
		item.DueDate = &value
	}

	if task.RecurrenceRule != nil {
		value := *task.RecurrenceRule
		item.RecurrenceRule = &value
	}

	return item
}
