package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"mychecklist/internal/core/ports"
)

const (
	completionExistsQuery = `
SELECT EXISTS (
  SELECT 1 FROM task_completions WHERE task_id = ? AND completion_date = ?
);
`
	// INSERT IGNORE against the (task_id, completion_date) unique key makes
	// the loser of a concurrent completion a no-op instead of an error.
	insertCompletionQuery = `
INSERT IGNORE INTO task_completions (task_id, completion_date) VALUES (?, ?);
`
	deleteCompletionQuery = `
DELETE FROM task_completions WHERE task_id = ? AND completion_date = ?;
`
	completedTaskIDsQuery = `
SELECT tc.task_id
FROM task_completions tc
JOIN tasks t ON t.id = tc.task_id
WHERE t.user_id = ? AND tc.completion_date = ?;
`
)

type CompletionRepository struct {
	db *sqlx.DB
}

var _ ports.CompletionRepository = (*CompletionRepository)(nil)

func NewCompletionRepository(db *sqlx.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

func (r *CompletionRepository) Exists(ctx context.Context, taskID uint64, date time.Time) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, completionExistsQuery, taskID, date.Format(time.DateOnly)); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CompletionRepository) Insert(ctx context.Context, taskID uint64, date time.Time) error {
	_, err := r.db.ExecContext(ctx, insertCompletionQuery, taskID, date.Format(time.DateOnly))
	return err
}

func (r *CompletionRepository) Delete(ctx context.Context, taskID uint64, date time.Time) error {
	_, err := r.db.ExecContext(ctx, deleteCompletionQuery, taskID, date.Format(time.DateOnly))
	return err
}

func (r *CompletionRepository) CompletedTaskIDs(ctx context.Context, ownerID uint64, date time.Time) (map[uint64]struct{}, error) {
	var taskIDs []uint64
	if err := r.db.SelectContext(ctx, &taskIDs, completedTaskIDsQuery, ownerID, date.Format(time.DateOnly)); err != nil {
		return nil, err
	}

	completed := make(map[uint64]struct{}, len(taskIDs))
	for _, taskID := range taskIDs {
		completed[taskID] = struct{}{}
	}
	return completed, nil
}
