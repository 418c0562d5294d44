package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/game-reminder-bot/internal/metrics"
)

type reminderPlanner struct {
	resolver   *TimeResolver
	team       entity.TrackedTeam
	sourceZone string
	lead       time.Duration
}

func newReminderPlanner(resolver *TimeResolver, team entity.TrackedTeam, sourceZone string, lead time.Duration) *reminderPlanner {
	return &reminderPlanner{
		resolver:   resolver,
		team:       team,
		sourceZone: sourceZone,
		lead:       lead,
	}
}

// Plan returns one reminder per game that has not started yet, keeping the
// input order. Games whose start time cannot be worked out are skipped.
func (p *reminderPlanner) Plan(games []entity.Game) []entity.ReminderJob {
	jobs := make([]entity.ReminderJob, 0, len(games))

	for _, game := range games {
		if game.Period != domain.NotStartedPeriod {
			slog.Debug("Game already started, no reminder", "game_id", game.ID, "period", game.Period)
			metrics.RecordReminderSkipped("started")
			continue
		}

		job, err := p.planGame(game)
		if err != nil {
			slog.Warn("Skipping reminder for game", "game_id", game.ID, "status", game.StatusText, "error", err)
			metrics.RecordReminderSkipped(skipReason(err))
			continue
		}

		jobs = append(jobs, job)
	}

	return jobs
}

func (p *reminderPlanner) planGame(game entity.Game) (entity.ReminderJob, error) {
	// Only the date portion of game.Date is reliable, the start time comes
	// from the status text.
	datePart, _, _ := strings.Cut(game.Date, domain.DateTimeSeparator)
	timeText := strings.TrimSuffix(strings.TrimSpace(game.StatusText), domain.StatusZoneSuffix)

	start, err := p.resolver.Resolve(datePart, timeText, p.sourceZone)
	if err != nil {
		return entity.ReminderJob{}, err
	}

	message, err := p.renderMessage(game, start)
	if err != nil {
		return entity.ReminderJob{}, err
	}

	return entity.ReminderJob{
		GameID:    game.ID,
		GameStart: start,
		TriggerAt: start.Add(-p.lead),
		Message:   message,
	}, nil
}

func (p *reminderPlanner) renderMessage(game entity.Game, start time.Time) (string, error) {
	var headline string
	switch {
	case p.isTracked(game.VisitorTeam):
		headline = fmt.Sprintf("%s vs. **%s**", p.team.MentionToken, game.HomeTeam.Name)
	case p.isTracked(game.HomeTeam):
		headline = fmt.Sprintf("**%s** vs. %s", game.VisitorTeam.Name, p.team.MentionToken)
	default:
		return "", fmt.Errorf("%w: %s vs. %s", domain.ErrTeamNotInGame, game.VisitorTeam.Name, game.HomeTeam.Name)
	}

	return fmt.Sprintf("%s\n`The %s vs. %s game will start at %s!`",
		headline,
		game.VisitorTeam.Name,
		game.HomeTeam.Name,
		start.Format(domain.ClockLayout),
	), nil
}

func (p *reminderPlanner) isTracked(team entity.Team) bool {
	if p.team.ID != 0 && team.ID != 0 {
		return team.ID == p.team.ID
	}
	return team.Name == p.team.Name
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTimeParse):
		return "time_parse"
	case errors.Is(err, domain.ErrTeamNotInGame):
		return "team_not_in_game"
	case errors.Is(err, domain.ErrUnknownZone):
		return "unknown_zone"
	default:
		return "other"
	}
}
