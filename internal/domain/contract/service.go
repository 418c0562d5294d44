package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
)

// GameFetcher retrieves the tracked team's games for the 7-day window starting at weekStart
type GameFetcher interface {
	FetchGames(ctx context.Context, weekStart time.Time) ([]entity.Game, error)
}

// JobScheduler runs callbacks at wall-clock instants of the process timezone
type JobScheduler interface {
	ScheduleRecurring(spec entity.RecurringSpec, name string, fn func()) (entity.JobHandle, error)
	ScheduleOnce(spec entity.OnceSpec, name string, fn func()) (entity.JobHandle, error)
	Cancel(handle entity.JobHandle)
	Jobs() []entity.JobInfo
}

// ReminderService exposes the reminder state to chat commands
type ReminderService interface {
	UpcomingReminders(ctx context.Context) ([]*entity.Reminder, error)
	WeekGames(ctx context.Context) ([]*entity.Game, error)
	Status() entity.SchedulerStatus
}
