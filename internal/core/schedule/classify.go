package schedule

import (
	"time"

	"mychecklist/internal/core/domain"
)

// Visibility says how a task shows up on a given date.
type Visibility int

const (
	// Hidden tasks are dropped from the schedule for the query date.
	Hidden Visibility = iota
	// ScheduledToday tasks are active on the query date.
	ScheduledToday
	// Upcoming tasks are one-time tasks due after the query date.
	Upcoming
)

// Classify decides the visibility of a task on queryDate. completedOnDate is
// the completion state for queryDate itself; completions recorded on other
// dates are never consulted.
func Classify(task domain.Task, queryDate time.Time, completedOnDate bool) Visibility {
	if task.Kind == domain.TaskKindOneTime {
		return classifyOneTime(task, queryDate, completedOnDate)
	}
	return classifyRecurring(task, queryDate)
}

func classifyOneTime(task domain.Task, queryDate time.Time, completedOnDate bool) Visibility {
	if task.DueDate == nil {
		return Hidden
	}
	due := DateOnly(*task.DueDate)
	date := DateOnly(queryDate)

	switch {
	case due.Equal(date):
		// Due today: shown even when already completed.
		return ScheduledToday
	case due.Before(date) && !completedOnDate:
		// Overdue and still pending.
		return ScheduledToday
	case due.After(date):
		return Upcoming
	default:
		return Hidden
	}
}

func classifyRecurring(task domain.Task, queryDate time.Time) Visibility {
	if task.RecurrenceRule == nil {
		return Hidden
	}
	rule, err := ParseRule(*task.RecurrenceRule)
	if err != nil {
		// Fail closed: a malformed rule hides the task instead of failing
		// the whole schedule.
		return Hidden
	}
	if rule.Matches(task.CreatedAt, queryDate) {
		return ScheduledToday
	}
	return Hidden
}
