package domain

import "time"

// Provider quirks of the games endpoint
const (
	// DateTimeSeparator splits the provider date into its reliable calendar
	// date and its unreliable time portion.
	DateTimeSeparator = "T"

	// StatusZoneSuffix trails the scheduled start time in a game's status text.
	StatusZoneSuffix = " ET"

	// NotStartedPeriod marks a game that has not tipped off yet.
	NotStartedPeriod = 0
)

// Defaults for the tracked team and its league
const (
	DefaultTeamID         = 26
	DefaultTeamName       = "Kings"
	DefaultMentionToken   = "<@&935115932852977674>"
	DefaultSourceTimezone = "America/New_York"
)

const (
	// DefaultReminderLead is how long before tip-off a reminder is sent.
	DefaultReminderLead = time.Hour

	// DefaultStartupDelay pushes the first weekly tick slightly past startup so
	// the scheduler sees it as a future slot.
	DefaultStartupDelay = 5 * time.Second

	// MinStartupDelay keeps the first weekly tick on a second that has not
	// started yet when the job is registered.
	MinStartupDelay = time.Second

	// WeekWindowDays is the number of extra days after weekStart covered by a
	// fetch, giving an inclusive 7-day window.
	WeekWindowDays = 6
)

// Layouts used to read and render game times
const (
	CalendarDateLayout = "2006-01-02"
	ClockLayout        = "3:04 PM"
	GameTimeLayout     = CalendarDateLayout + " " + ClockLayout
)

// Reminder ledger statuses
const (
	ReminderStatusScheduled = "scheduled"
	ReminderStatusSent      = "sent"
	ReminderStatusFailed    = "failed"
	ReminderStatusSkipped   = "skipped"
)
