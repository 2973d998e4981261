package dto

type TaskItem struct {
	ID             uint64  `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	TaskType       string  `json:"task_type"`
	DueDate        *string `json:"due_date,omitempty"`
	RecurrenceRule *string `json:"recurrence_rule,omitempty"`
	IsCompleted    bool    `json:"is_completed"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ScheduleResponse struct {
	Today    []TaskItem `json:"today"`
	Upcoming []TaskItem `json:"upcoming"`
}

type CreateTaskRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=65535"`
	TaskType       string  `json:"task_type" binding:"required,oneof=ONE_TIME RECURRING"`
	DueDate        *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	RecurrenceRule *string `json:"recurrence_rule" binding:"omitempty,max=64"`
}

type CreateTaskResponse struct {
	ID uint64 `json:"id"`
}
