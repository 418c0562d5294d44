package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
)

type gameRepo struct {
	db dbConn
}

func newGameRepo(db dbConn) contract.GameRepo {
	return &gameRepo{db: db}
}

func (r *gameRepo) Upsert(game *entity.Game) error {
	query := `
		INSERT INTO games (
			id, game_date, raw_date, status_text, period,
			home_team_id, home_team_name, visitor_team_id, visitor_team_name, fetched_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			game_date = excluded.game_date,
			raw_date = excluded.raw_date,
			status_text = excluded.status_text,
			period = excluded.period,
			home_team_id = excluded.home_team_id,
			home_team_name = excluded.home_team_name,
			visitor_team_id = excluded.visitor_team_id,
			visitor_team_name = excluded.visitor_team_name,
			fetched_at = excluded.fetched_at
	`

	fetchedAt := game.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	gameDate, _, _ := strings.Cut(game.Date, domain.DateTimeSeparator)

	_, err := r.db.Exec(query,
		game.ID,
		gameDate,
		game.Date,
		game.StatusText,
		game.Period,
		game.HomeTeam.ID,
		game.HomeTeam.Name,
		game.VisitorTeam.ID,
		game.VisitorTeam.Name,
		fetchedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}

	return nil
}

func (r *gameRepo) GetBetween(fromDate, toDate string) ([]*entity.Game, error) {
	query := `
		SELECT id, raw_date, status_text, period,
			home_team_id, home_team_name, visitor_team_id, visitor_team_name, fetched_at
		FROM games
		WHERE game_date BETWEEN ? AND ?
		ORDER BY game_date, id
	`

	rows, err := r.db.Query(query, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}
	defer rows.Close()

	var games []*entity.Game
	for rows.Next() {
		game := &entity.Game{}
		err := rows.Scan(
			&game.ID,
			&game.Date,
			&game.StatusText,
			&game.Period,
			&game.HomeTeam.ID,
			&game.HomeTeam.Name,
			&game.VisitorTeam.ID,
			&game.VisitorTeam.Name,
			&game.FetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}
