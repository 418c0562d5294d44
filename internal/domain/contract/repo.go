package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Game() GameRepo
	Reminder() ReminderRepo
}

// GameRepo defines the contract for the weekly games snapshot
type GameRepo interface {
	Upsert(game *entity.Game) error
	GetBetween(fromDate, toDate string) ([]*entity.Game, error)
}

// ReminderRepo defines the contract for the reminder dispatch ledger
type ReminderRepo interface {
	Create(reminder *entity.Reminder) error
	MarkSent(id int64, sentAt time.Time) error
	MarkFailed(id int64, reason string) error
	AbandonScheduled() (int64, error)
	WasSent(gameID string) (bool, error)
	GetUpcoming(now time.Time) ([]*entity.Reminder, error)
}
