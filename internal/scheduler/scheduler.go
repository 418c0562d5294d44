package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
)

var specParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Scheduler runs jobs on the wall clock of a single location, backed by a
// cron engine. Recurring jobs use a weekly cron spec, one-shot jobs fire once
// and are then removed.
type Scheduler struct {
	cron     *cron.Cron
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	handles map[cron.EntryID]entity.JobHandle
}

func New(location *time.Location, logger *slog.Logger) *Scheduler {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	cl := cronLogger{logger: logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
		location: location,
		logger:   logger,
		now:      time.Now,
		handles:  make(map[cron.EntryID]entity.JobHandle),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", "location", s.location.String())
}

// Stop halts the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info("Scheduler stopping...")

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("Scheduler stopped before running jobs completed")
	}
}

func (s *Scheduler) Location() *time.Location {
	return s.location
}

// ScheduleRecurring registers fn to run every week at spec's weekday and time,
// the first run being the first match at or after spec.StartAt.
func (s *Scheduler) ScheduleRecurring(spec entity.RecurringSpec, name string, fn func()) (entity.JobHandle, error) {
	if err := validateRecurring(spec); err != nil {
		return entity.JobHandle{}, err
	}

	expr := weeklyExpression(spec)
	parsed, err := specParser.Parse(expr)
	if err != nil {
		return entity.JobHandle{}, fmt.Errorf("%w: %q: %v", domain.ErrInvalidSpec, expr, err)
	}
	if weekly, ok := parsed.(*cron.SpecSchedule); ok {
		weekly.Location = s.location
	}

	var schedule cron.Schedule = parsed
	if !spec.StartAt.IsZero() {
		schedule = &startAfterSchedule{start: spec.StartAt, next: parsed}
	}

	id := s.cron.Schedule(schedule, cron.FuncJob(fn))
	handle := s.track(id, entity.JobKindRecurring, name)

	s.logger.Info("Recurring job registered", "name", name, "spec", expr, "start_at", spec.StartAt.Format(time.RFC3339))
	return handle, nil
}

// ScheduleOnce registers fn to run once at the wall-clock minute of spec. A
// spec that is already in the past fires right away.
func (s *Scheduler) ScheduleOnce(spec entity.OnceSpec, name string, fn func()) (entity.JobHandle, error) {
	at := spec.Time(s.location)
	if entity.OnceSpecAt(at, s.location) != spec {
		return entity.JobHandle{}, fmt.Errorf("%w: %s does not exist in %s", domain.ErrInvalidSpec, spec, s.location)
	}
	if later := at.Add(time.Hour); entity.OnceSpecAt(later, s.location) == spec {
		// Clocks were turned back, the wall-clock minute happens twice
		s.logger.Warn("One-shot time occurs twice, firing at the first occurrence",
			"name", name, "at", spec.String(),
			"first", at.Format(time.RFC3339), "second", later.Format(time.RFC3339))
	}

	once := &onceSchedule{at: at}

	// The job may fire before Schedule returns when it is already due
	ready := make(chan struct{})
	var id cron.EntryID
	id = s.cron.Schedule(once, cron.FuncJob(func() {
		<-ready
		once.markFired()
		defer s.remove(id)
		fn()
	}))
	handle := s.track(id, entity.JobKindOnce, name)
	close(ready)

	if !at.After(s.now()) {
		s.logger.Warn("One-shot job is already due, firing now", "name", name, "at", spec.String())
	}

	return handle, nil
}

// Cancel removes a job. Cancelling an unknown or finished job is a no-op.
func (s *Scheduler) Cancel(handle entity.JobHandle) {
	s.remove(cron.EntryID(handle.ID))
}

// Jobs returns the registered jobs that still have a run ahead of them.
func (s *Scheduler) Jobs() []entity.JobInfo {
	entries := s.cron.Entries()

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]entity.JobInfo, 0, len(entries))
	for _, e := range entries {
		handle, ok := s.handles[e.ID]
		if !ok {
			continue
		}

		info := entity.JobInfo{Handle: handle, Next: e.Next, Prev: e.Prev}
		if once, ok := e.Schedule.(*onceSchedule); ok {
			if once.hasFired() {
				continue
			}
			info.Next = once.at
		}
		jobs = append(jobs, info)
	}

	return jobs
}

func (s *Scheduler) track(id cron.EntryID, kind entity.JobKind, name string) entity.JobHandle {
	handle := entity.JobHandle{ID: int(id), Kind: kind, Name: name}

	s.mu.Lock()
	s.handles[id] = handle
	s.mu.Unlock()

	return handle
}

func (s *Scheduler) remove(id cron.EntryID) {
	s.mu.Lock()
	_, ok := s.handles[id]
	delete(s.handles, id)
	s.mu.Unlock()

	if ok {
		s.cron.Remove(id)
	}
}

func weeklyExpression(spec entity.RecurringSpec) string {
	return fmt.Sprintf("%d %d %d * * %d", spec.Second, spec.Minute, spec.Hour, int(spec.Weekday))
}

func validateRecurring(spec entity.RecurringSpec) error {
	switch {
	case spec.Weekday < time.Sunday || spec.Weekday > time.Saturday:
		return fmt.Errorf("%w: weekday %d out of range", domain.ErrInvalidSpec, spec.Weekday)
	case spec.Hour < 0 || spec.Hour > 23:
		return fmt.Errorf("%w: hour %d out of range", domain.ErrInvalidSpec, spec.Hour)
	case spec.Minute < 0 || spec.Minute > 59:
		return fmt.Errorf("%w: minute %d out of range", domain.ErrInvalidSpec, spec.Minute)
	case spec.Second < 0 || spec.Second > 59:
		return fmt.Errorf("%w: second %d out of range", domain.ErrInvalidSpec, spec.Second)
	}
	return nil
}
