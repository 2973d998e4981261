package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mychecklist/internal/core/domain"
	"mychecklist/internal/core/ports"
	"mychecklist/internal/core/schedule"
)

type TaskService struct {
	taskRepository       ports.TaskRepository
	completionRepository ports.CompletionRepository
	now                  func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository, completionRepository ports.CompletionRepository) *TaskService {
	return &TaskService{
		taskRepository:       taskRepository,
		completionRepository: completionRepository,
		now:                  time.Now,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (uint64, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := s.validateCreateTask(input); err != nil {
		return 0, err
	}
	return s.taskRepository.Create(ctx, ownerID, input)
}

func (s *TaskService) validateCreateTask(input domain.CreateTaskInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidTaskInput)
	}

	switch input.Kind {
	case domain.TaskKindOneTime:
		if input.DueDate == nil {
			return fmt.Errorf("%w: one-time task requires a due date", domain.ErrInvalidTaskInput)
		}
		if schedule.DateOnly(*input.DueDate).Before(schedule.DateOnly(s.now())) {
			return fmt.Errorf("%w: due date must not be in the past", domain.ErrInvalidTaskInput)
		}
	case domain.TaskKindRecurring:
		if input.RecurrenceRule == nil {
			return fmt.Errorf("%w: recurring task requires a recurrence rule", domain.ErrInvalidTaskInput)
		}
		if _, err := schedule.ParseRule(*input.RecurrenceRule); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidTaskInput, err)
		}
	default:
		return fmt.Errorf("%w: unknown task kind %q", domain.ErrInvalidTaskInput, input.Kind)
	}

	return nil
}

// GetSchedule partitions the owner's tasks for date into today and upcoming.
// The completion state is read once up front so a concurrent completion
// cannot produce a partially updated view. Today keeps the repository order
// (ascending task id); upcoming is sorted by due date, ties broken by
// ascending task id.
func (s *TaskService) GetSchedule(ctx context.Context, ownerID uint64, date time.Time) (domain.Schedule, error) {
	tasks, err := s.taskRepository.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return domain.Schedule{}, err
	}

	completedIDs, err := s.completionRepository.CompletedTaskIDs(ctx, ownerID, date)
	if err != nil {
		return domain.Schedule{}, err
	}

	result := domain.Schedule{
		Today:    []domain.ScheduleEntry{},
		Upcoming: []domain.ScheduleEntry{},
	}

	for _, task := range tasks {
		_, completed := completedIDs[task.ID]

		switch schedule.Classify(task, date, completed) {
		case schedule.ScheduledToday:
			result.Today = append(result.Today, domain.ScheduleEntry{Task: task, Completed: completed})
		case schedule.Upcoming:
			// Completion of a future one-time task is not meaningful yet.
			result.Upcoming = append(result.Upcoming, domain.ScheduleEntry{Task: task, Completed: false})
		}
	}

	// Only one-time tasks reach the upcoming list, so DueDate is always set.
	sort.Slice(result.Upcoming, func(i, j int) bool {
		left, right := *result.Upcoming[i].Task.DueDate, *result.Upcoming[j].Task.DueDate
		if !left.Equal(right) {
			return left.Before(right)
		}
		return result.Upcoming[i].Task.ID < result.Upcoming[j].Task.ID
	})

	return result, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, ownerID, taskID uint64, date time.Time) error {
	if _, err := s.ownedTask(ctx, ownerID, taskID); err != nil {
		return err
	}
	// The insert is conditional on the (task, date) unique key, so repeated
	// or racing completions collapse into one record.
	return s.completionRepository.Insert(ctx, taskID, date)
}

func (s *TaskService) CancelCompletion(ctx context.Context, ownerID, taskID uint64, date time.Time) error {
	if _, err := s.ownedTask(ctx, ownerID, taskID); err != nil {
		return err
	}
	return s.completionRepository.Delete(ctx, taskID, date)
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	if _, err := s.ownedTask(ctx, ownerID, taskID); err != nil {
		return err
	}
	return s.taskRepository.DeleteWithCompletions(ctx, taskID)
}

func (s *TaskService) ownedTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.OwnerID != ownerID {
		return domain.Task{}, domain.ErrTaskAccessDenied
	}
	return task, nil
}
