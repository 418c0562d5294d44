package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/game-reminder-bot/internal/metrics"
	"github.com/google/uuid"
)

const weeklyJobName = "weekly-refresh"

type orchestrator struct {
	dm           contract.DataManager
	fetcher      contract.GameFetcher
	jobs         contract.JobScheduler
	sender       contract.MessageSender
	planner      *reminderPlanner
	channelID    string
	location     *time.Location
	startupDelay time.Duration
	now          func() time.Time

	mu             sync.RWMutex
	tick           entity.WeeklyTick
	tickHandle     *entity.JobHandle
	lastCycleID    string
	lastCycleAt    time.Time
	lastCycleGames int
}

func newOrchestrator(opts Options, dm contract.DataManager, fetcher contract.GameFetcher, jobs contract.JobScheduler, sender contract.MessageSender, planner *reminderPlanner) *orchestrator {
	return &orchestrator{
		dm:           dm,
		fetcher:      fetcher,
		jobs:         jobs,
		sender:       sender,
		planner:      planner,
		channelID:    opts.ChannelID,
		location:     opts.Location,
		startupDelay: opts.StartupDelay,
		now:          time.Now,
	}
}

// Start samples the weekly slot from now plus the startup delay and registers
// the recurring refresh. The slot is fixed until the process restarts.
func (o *orchestrator) Start(ctx context.Context) error {
	abandoned, err := o.dm.Reminder().AbandonScheduled()
	if err != nil {
		slog.Warn("Failed to clean up reminders of a previous run", "error", err)
	} else if abandoned > 0 {
		slog.Info("Reminders of a previous run were never dispatched", "count", abandoned)
	}

	startAt := o.now().In(o.location).Add(o.startupDelay)
	tick := entity.WeeklyTickAt(startAt)

	handle, err := o.jobs.ScheduleRecurring(tick.Spec(), weeklyJobName, func() {
		o.RunWeek(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to register weekly refresh: %w", err)
	}

	o.mu.Lock()
	o.tick = tick
	o.tickHandle = &handle
	o.mu.Unlock()

	slog.Info("Weekly refresh registered", "slot", tick.String(), "first_run_at", startAt.Format(time.RFC3339))
	return nil
}

// RunWeek fetches the games of the week starting now, plans their reminders
// and registers one one-shot job per reminder. It returns how many jobs were
// registered. A failed fetch schedules nothing and waits for the next week.
func (o *orchestrator) RunWeek(ctx context.Context) int {
	cycleID := uuid.NewString()
	weekStart := o.now().In(o.location)
	logger := slog.With("cycle_id", cycleID)

	logger.Info("Starting weekly refresh", "week_start", weekStart.Format(domain.CalendarDateLayout))

	fetchStarted := time.Now()
	games, err := o.fetcher.FetchGames(ctx, weekStart)
	metrics.ObserveFetchDuration(time.Since(fetchStarted))
	if err != nil {
		logger.Error("Failed to fetch games, nothing scheduled this week", "error", err)
		metrics.RecordCycle("fetch_failed")
		o.recordCycle(cycleID, weekStart, 0)
		return 0
	}
	metrics.RecordGamesFetched(len(games))

	o.saveGames(ctx, logger, games)

	jobs := o.planner.Plan(games)

	scheduled := 0
	for _, job := range jobs {
		if o.scheduleReminder(ctx, cycleID, job) {
			scheduled++
		}
	}

	metrics.RecordCycle("ok")
	o.recordCycle(cycleID, weekStart, len(games))

	logger.Info("Weekly refresh done", "games", len(games), "planned", len(jobs), "scheduled", scheduled)
	return scheduled
}

func (o *orchestrator) scheduleReminder(ctx context.Context, cycleID string, job entity.ReminderJob) bool {
	logger := slog.With("cycle_id", cycleID, "game_id", job.GameID)

	sent, err := o.dm.Reminder().WasSent(job.GameID)
	if err != nil {
		logger.Warn("Failed to check reminder ledger", "error", err)
	} else if sent {
		logger.Info("Reminder already sent for game, skipping")
		metrics.RecordReminderSkipped("already_sent")
		return false
	}

	reminder := &entity.Reminder{
		CycleID:   cycleID,
		GameID:    job.GameID,
		GameStart: job.GameStart,
		TriggerAt: job.TriggerAt,
		Message:   job.Message,
		Status:    domain.ReminderStatusScheduled,
	}
	if err := o.dm.Reminder().Create(reminder); err != nil {
		// Continue anyway, better to remind than to track
		logger.Warn("Failed to record reminder", "error", err)
	}
	reminderID := reminder.ID

	spec := entity.OnceSpecAt(job.TriggerAt, o.location)
	_, err = o.jobs.ScheduleOnce(spec, "reminder-"+job.GameID, func() {
		o.dispatch(ctx, reminderID, job)
	})
	if err != nil {
		logger.Error("Failed to register reminder job", "trigger_at", spec.String(), "error", err)
		metrics.RecordReminderSkipped("registration_failed")
		o.markFailed(logger, reminderID, err)
		return false
	}

	metrics.RecordReminderScheduled()
	logger.Info("Reminder scheduled", "trigger_at", spec.String(), "game_start", job.GameStart.Format(time.RFC3339))
	return true
}

func (o *orchestrator) dispatch(ctx context.Context, reminderID int64, job entity.ReminderJob) {
	logger := slog.With("game_id", job.GameID, "reminder_id", reminderID)

	if err := o.sender.SendMessage(ctx, o.channelID, job.Message); err != nil {
		logger.Error("Failed to send reminder", "channel_id", o.channelID, "error", err)
		metrics.RecordDispatch("failed")
		o.markFailed(logger, reminderID, err)
		return
	}
	metrics.RecordDispatch("sent")

	if reminderID != 0 {
		if err := o.dm.Reminder().MarkSent(reminderID, o.now()); err != nil {
			logger.Warn("Failed to mark reminder as sent", "error", err)
		}
	}

	logger.Info("Reminder sent", "channel_id", o.channelID)
}

func (o *orchestrator) markFailed(logger *slog.Logger, reminderID int64, cause error) {
	if reminderID == 0 {
		return
	}
	if err := o.dm.Reminder().MarkFailed(reminderID, cause.Error()); err != nil {
		logger.Warn("Failed to mark reminder as failed", "error", err)
	}
}

func (o *orchestrator) saveGames(ctx context.Context, logger *slog.Logger, games []entity.Game) {
	if len(games) == 0 {
		return
	}

	fetchedAt := o.now()
	err := o.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for i := range games {
			game := games[i]
			game.FetchedAt = fetchedAt
			if err := tx.Game().Upsert(&game); err != nil {
				return fmt.Errorf("failed to save game %s: %w", game.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("Failed to save games snapshot", "error", err)
	}
}

func (o *orchestrator) recordCycle(cycleID string, at time.Time, games int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.lastCycleID = cycleID
	o.lastCycleAt = at
	o.lastCycleGames = games
}

func (o *orchestrator) UpcomingReminders(ctx context.Context) ([]*entity.Reminder, error) {
	reminders, err := o.dm.Reminder().GetUpcoming(o.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming reminders: %w", err)
	}
	return reminders, nil
}

func (o *orchestrator) WeekGames(ctx context.Context) ([]*entity.Game, error) {
	today := o.now().In(o.location)
	from := today.Format(domain.CalendarDateLayout)
	to := today.AddDate(0, 0, domain.WeekWindowDays).Format(domain.CalendarDateLayout)

	games, err := o.dm.Game().GetBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}
	return games, nil
}

func (o *orchestrator) Status() entity.SchedulerStatus {
	o.mu.RLock()
	status := entity.SchedulerStatus{
		Tick:           o.tick,
		LastCycleID:    o.lastCycleID,
		LastCycleAt:    o.lastCycleAt,
		LastCycleGames: o.lastCycleGames,
	}
	tickHandle := o.tickHandle
	o.mu.RUnlock()

	for _, job := range o.jobs.Jobs() {
		switch {
		case tickHandle != nil && job.Handle.ID == tickHandle.ID:
			status.NextWeeklyRun = job.Next
		case job.Handle.Kind == entity.JobKindOnce:
			status.PendingReminders++
		}
	}

	return status
}
