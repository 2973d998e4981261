package ports

import (
	"context"
	"time"

	"mychecklist/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (uint64, error)
	FindByID(ctx context.Context, taskID uint64) (domain.Task, error)
	FindAllByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error)
	// DeleteWithCompletions removes the task and every completion record that
	// references it in a single transaction, so a partial failure cannot
	// leave orphaned completions behind.
	DeleteWithCompletions(ctx context.Context, taskID uint64) error
}

type CompletionRepository interface {
	Exists(ctx context.Context, taskID uint64, date time.Time) (bool, error)
	// Insert records a completion for (taskID, date). Inserting an already
	// recorded completion is a no-op success, including when two inserts
	// race for the same key.
	Insert(ctx context.Context, taskID uint64, date time.Time) error
	// Delete removes the completion for (taskID, date); removing an absent
	// completion is a no-op.
	Delete(ctx context.Context, taskID uint64, date time.Time) error
	// CompletedTaskIDs returns the ids of the owner's tasks completed on
	// date, fetched in one query.
	CompletedTaskIDs(ctx context.Context, ownerID uint64, date time.Time) (map[uint64]struct{}, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (uint64, error)
	GetSchedule(ctx context.Context, ownerID uint64, date time.Time) (domain.Schedule, error)
	CompleteTask(ctx context.Context, ownerID, taskID uint64, date time.Time) error
	CancelCompletion(ctx context.Context, ownerID, taskID uint64, date time.Time) error
	DeleteTask(ctx context.Context, ownerID, taskID uint64) error
}
