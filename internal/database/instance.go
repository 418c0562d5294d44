package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	gameRepo     contract.GameRepo
	reminderRepo contract.ReminderRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.gameRepo = newGameRepo(i.db.conn)
	i.reminderRepo = newReminderRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		gameRepo:     newGameRepo(db),
		reminderRepo: newReminderRepo(db),
	}
}

// Game returns the game repository
func (i *instance) Game() contract.GameRepo {
	return i.gameRepo
}

// Reminder returns the reminder repository
func (i *instance) Reminder() contract.ReminderRepo {
	return i.reminderRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	// Already inside a transaction
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

