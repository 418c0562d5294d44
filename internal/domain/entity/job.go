package entity

import "time"

type JobKind string

const (
	JobKindRecurring JobKind = "recurring"
	JobKindOnce      JobKind = "once"
)

// JobHandle identifies a registered job.
type JobHandle struct {
	ID   int
	Kind JobKind
	Name string
}

// JobInfo is a snapshot of a registered job.
type JobInfo struct {
	Handle JobHandle
	Next   time.Time
	Prev   time.Time
}

// SchedulerStatus summarizes the weekly tick and pending reminder jobs.
type SchedulerStatus struct {
	Tick             WeeklyTick
	NextWeeklyRun    time.Time
	PendingReminders int
	LastCycleID      string
	LastCycleAt      time.Time
	LastCycleGames   int
}
