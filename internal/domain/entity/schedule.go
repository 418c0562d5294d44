package entity

import (
	"fmt"
	"time"
)

// RecurringSpec fires every time the wall clock matches Weekday/Hour/Minute/Second,
// starting with the first match at or after StartAt.
type RecurringSpec struct {
	StartAt time.Time
	Weekday time.Weekday
	Hour    int
	Minute  int
	Second  int
}

// OnceSpec fires exactly once at the given wall-clock minute.
type OnceSpec struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// OnceSpecAt converts an instant to a one-shot spec on the wall clock of loc.
func OnceSpecAt(t time.Time, loc *time.Location) OnceSpec {
	t = t.In(loc)
	return OnceSpec{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Time returns the instant the spec designates on the wall clock of loc.
func (s OnceSpec) Time(loc *time.Location) time.Time {
	return time.Date(s.Year, s.Month, s.Day, s.Hour, s.Minute, 0, 0, loc)
}

func (s OnceSpec) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", s.Year, s.Month, s.Day, s.Hour, s.Minute)
}

// WeeklyTick is the weekly refresh slot. It is sampled once at startup and
// kept for the lifetime of the process, so a late start moves the slot until
// the next restart.
type WeeklyTick struct {
	StartAt time.Time
	Weekday time.Weekday
	Hour    int
	Minute  int
	Second  int
}

// WeeklyTickAt samples the weekly slot from startAt on its own wall clock.
func WeeklyTickAt(startAt time.Time) WeeklyTick {
	return WeeklyTick{
		StartAt: startAt,
		Weekday: startAt.Weekday(),
		Hour:    startAt.Hour(),
		Minute:  startAt.Minute(),
		Second:  startAt.Second(),
	}
}

func (w WeeklyTick) Spec() RecurringSpec {
	return RecurringSpec{
		StartAt: w.StartAt,
		Weekday: w.Weekday,
		Hour:    w.Hour,
		Minute:  w.Minute,
		Second:  w.Second,
	}
}

func (w WeeklyTick) String() string {
	return fmt.Sprintf("%s %02d:%02d:%02d", w.Weekday, w.Hour, w.Minute, w.Second)
}
