package domain

// ScheduleEntry pairs a task with its completion state for the queried date.
type ScheduleEntry struct {
	Task      Task
	Completed bool
}

// Schedule partitions a user's tasks for one date: Today holds everything
// active on that date, Upcoming holds one-time tasks due later.
type Schedule struct {
	Today    []ScheduleEntry
	Upcoming []ScheduleEntry
}
