package entity

import "time"

// ReminderJob is a planned reminder. Message is rendered at planning time and
// never changes afterwards.
type ReminderJob struct {
	GameID    string
	GameStart time.Time
	TriggerAt time.Time
	Message   string
}

// Reminder is the ledger row kept for every planned reminder.
type Reminder struct {
	ID           int64
	CycleID      string
	GameID       string
	GameStart    time.Time
	TriggerAt    time.Time
	Message      string
	Status       string
	ErrorMessage string
	SentAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
