package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// startCatchUp bounds how late the first run may still happen when its start
// second already passed at registration.
const startCatchUp = time.Minute

// startAfterSchedule holds back a schedule until its start instant.
type startAfterSchedule struct {
	start time.Time
	next  cron.Schedule

	mu      sync.Mutex
	started bool
}

func (s *startAfterSchedule) Next(t time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := !s.started
	s.started = true

	// The wrapped schedule returns matches strictly after t, step back one
	// second so a match on the start second itself is kept.
	start := s.start.Truncate(time.Second)
	if t.Before(start) {
		return s.next.Next(start.Add(-time.Second))
	}

	// The start second is a match that slipped by while registering
	if first && t.Sub(start) < startCatchUp && s.next.Next(start.Add(-time.Second)).Equal(start) {
		return t
	}
	return s.next.Next(t)
}

// onceSchedule yields its instant a single time. The cron engine asks for the
// next activation when an entry is added and again right after it ran.
type onceSchedule struct {
	at time.Time

	mu     sync.Mutex
	handed bool
	done   bool
	fired  bool
}

func (s *onceSchedule) Next(t time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.done:
		return time.Time{}
	case s.at.After(t):
		s.handed = true
		return s.at
	case s.handed:
		// The instant handed out earlier is due now, so the job has run
		s.done = true
		return time.Time{}
	default:
		// Already overdue on registration
		s.handed = true
		return t
	}
}

func (s *onceSchedule) markFired() {
	s.mu.Lock()
	s.fired = true
	s.mu.Unlock()
}

func (s *onceSchedule) hasFired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}
