package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (cycle_id, game_id, game_start, trigger_at, message, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	status := reminder.Status
	if status == "" {
		status = domain.ReminderStatusScheduled
	}

	result, err := r.db.Exec(query,
		reminder.CycleID,
		reminder.GameID,
		reminder.GameStart.UTC(),
		reminder.TriggerAt.UTC(),
		reminder.Message,
		status,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	reminder.Status = status
	return nil
}

func (r *reminderRepo) MarkSent(id int64, sentAt time.Time) error {
	query := `
		UPDATE reminders SET
			status = ?,
			sent_at = ?,
			error_message = '',
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, domain.ReminderStatusSent, sentAt.UTC(), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder as sent: %w", err)
	}

	return nil
}

func (r *reminderRepo) MarkFailed(id int64, reason string) error {
	query := `
		UPDATE reminders SET
			status = ?,
			error_message = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, domain.ReminderStatusFailed, reason, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder as failed: %w", err)
	}

	return nil
}

// AbandonScheduled marks reminders left scheduled by a previous process as
// skipped, their jobs did not survive the restart.
func (r *reminderRepo) AbandonScheduled() (int64, error) {
	query := `
		UPDATE reminders SET
			status = ?,
			error_message = 'process restarted before dispatch',
			updated_at = ?
		WHERE status = ?
	`

	result, err := r.db.Exec(query, domain.ReminderStatusSkipped, time.Now().UTC(), domain.ReminderStatusScheduled)
	if err != nil {
		return 0, fmt.Errorf("failed to abandon scheduled reminders: %w", err)
	}

	return result.RowsAffected()
}

func (r *reminderRepo) WasSent(gameID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reminders WHERE game_id = ? AND status = ?)`

	var exists bool
	if err := r.db.QueryRow(query, gameID, domain.ReminderStatusSent).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check reminder: %w", err)
	}

	return exists, nil
}

func (r *reminderRepo) GetUpcoming(now time.Time) ([]*entity.Reminder, error) {
	query := `
		SELECT id, cycle_id, game_id, game_start, trigger_at, message, status,
			error_message, sent_at, created_at, updated_at
		FROM reminders
		WHERE status = ? AND game_start >= ?
		ORDER BY trigger_at, id
	`

	rows, err := r.db.Query(query, domain.ReminderStatusScheduled, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		reminder := &entity.Reminder{}
		var sentAt sql.NullTime
		err := rows.Scan(
			&reminder.ID,
			&reminder.CycleID,
			&reminder.GameID,
			&reminder.GameStart,
			&reminder.TriggerAt,
			&reminder.Message,
			&reminder.Status,
			&reminder.ErrorMessage,
			&sentAt,
			&reminder.CreatedAt,
			&reminder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		if sentAt.Valid {
			reminder.SentAt = &sentAt.Time
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}
