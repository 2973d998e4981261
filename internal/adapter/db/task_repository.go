package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"mychecklist/internal/core/domain"
	"mychecklist/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, task_type, due_date, recurrence_rule)
VALUES (?, ?, ?, ?, ?, ?);
`
	findTaskByIDQuery = `
SELECT id, user_id, title, description, task_type, due_date, recurrence_rule, created_at, updated_at
FROM tasks
WHERE id = ?;
`
	findTasksByOwnerQuery = `
SELECT id, user_id, title, description, task_type, due_date, recurrence_rule, created_at, updated_at
FROM tasks
WHERE user_id = ?
ORDER BY id;
`
	deleteTaskCompletionsQuery = `DELETE FROM task_completions WHERE task_id = ?;`
	deleteTaskQuery            = `DELETE FROM tasks WHERE id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             uint64         `db:"id"`
	UserID         uint64         `db:"user_id"`
	Title          string         `db:"title"`
	Description    sql.NullString `db:"description"`
	TaskType       string         `db:"task_type"`
	DueDate        sql.NullTime   `db:"due_date"`
	RecurrenceRule sql.NullString `db:"recurrence_rule"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (uint64, error) {
	var dueDate any
	if input.DueDate != nil {
		dueDate = input.DueDate.Format(time.DateOnly)
	}

	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		ownerID,
		input.Title,
		input.Description,
		string(input.Kind),
		dueDate,
		input.RecurrenceRule,
	)
	if err != nil {
		return 0, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(taskID), nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) FindAllByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, findTasksByOwnerQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

// DeleteWithCompletions removes the task's completion records and the task
// row in one transaction.
func (r *TaskRepository) DeleteWithCompletions(ctx context.Context, taskID uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteTaskCompletionsQuery, taskID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return tx.Commit()
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Title:     row.Title,
		Kind:      domain.TaskKind(row.TaskType),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.RecurrenceRule.Valid {
		value := row.RecurrenceRule.String
		task.RecurrenceRule = &value
	}

	return task
}
