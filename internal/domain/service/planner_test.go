package service

import (
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kingsAt(id, date, status string, period int, kingsHome bool) entity.Game {
	kings := entity.Team{ID: 26, Name: "Kings"}
	lakers := entity.Team{ID: 14, Name: "Lakers"}

	game := entity.Game{
		ID:          id,
		Date:        date,
		StatusText:  status,
		Period:      period,
		HomeTeam:    lakers,
		VisitorTeam: kings,
	}
	if kingsHome {
		game.HomeTeam, game.VisitorTeam = kings, lakers
	}
	return game
}

func newTestPlanner() *reminderPlanner {
	return newReminderPlanner(NewTimeResolver(time.UTC), testTeam, "America/New_York", time.Hour)
}

func TestReminderPlanner_Plan(t *testing.T) {
	tests := []struct {
		name  string
		games []entity.Game
		check func(t *testing.T, jobs []entity.ReminderJob)
	}{
		{
			name: "Should plan a reminder one hour before an away game",
			games: []entity.Game{
				kingsAt("1", "2022-01-26T00:00:00.000Z", "7:30 PM ET", 0, false),
			},
			check: func(t *testing.T, jobs []entity.ReminderJob) {
				require.Len(t, jobs, 1)

				start := time.Date(2022, 1, 27, 0, 30, 0, 0, time.UTC)
				assert.Equal(t, "1", jobs[0].GameID)
				assert.True(t, start.Equal(jobs[0].GameStart))
				assert.True(t, start.Add(-time.Hour).Equal(jobs[0].TriggerAt))
				assert.Equal(t,
					"<@&935115932852977674> vs. **Lakers**\n`The Kings vs. Lakers game will start at 12:30 AM!`",
					jobs[0].Message,
				)
			},
		},
		{
			name: "Should put the mention on the home side for a home game",
			games: []entity.Game{
				kingsAt("2", "2022-01-28T00:00:00.000Z", "10:00 PM ET", 0, true),
			},
			check: func(t *testing.T, jobs []entity.ReminderJob) {
				require.Len(t, jobs, 1)
				assert.Equal(t,
					"**Lakers** vs. <@&935115932852977674>\n`The Lakers vs. Kings game will start at 3:00 AM!`",
					jobs[0].Message,
				)
			},
		},
		{
			name: "Should skip a game in progress",
			games: []entity.Game{
				kingsAt("1", "2022-01-26T00:00:00.000Z", "7:30 PM ET", 3, false),
			},
			check: func(t *testing.T, jobs []entity.ReminderJob) {
				assert.Empty(t, jobs)
			},
		},
		{
			name: "Should skip a game without a start time and keep the others",
			games: []entity.Game{
				kingsAt("1", "2022-01-24T00:00:00.000Z", "Final", 0, false),
				kingsAt("2", "2022-01-26T00:00:00.000Z", "7:30 PM ET", 0, true),
				kingsAt("3", "2022-01-28T00:00:00.000Z", "TBD", 0, false),
				kingsAt("4", "2022-01-30T00:00:00.000Z", "6:00 PM ET", 0, false),
			},
			check: func(t *testing.T, jobs []entity.ReminderJob) {
				require.Len(t, jobs, 2)
				assert.Equal(t, "2", jobs[0].GameID)
				assert.Equal(t, "4", jobs[1].GameID)
			},
		},
		{
			name: "Should skip a game the tracked team does not play",
			games: []entity.Game{
				{
					ID:          "9",
					Date:        "2022-01-26T00:00:00.000Z",
					StatusText:  "7:30 PM ET",
					HomeTeam:    entity.Team{ID: 14, Name: "Lakers"},
					VisitorTeam: entity.Team{ID: 2, Name: "Celtics"},
				},
			},
			check: func(t *testing.T, jobs []entity.ReminderJob) {
				assert.Empty(t, jobs)
			},
		},
		{
			name:  "Should plan nothing for an empty week",
			games: nil,
			check: func(t *testing.T, jobs []entity.ReminderJob) {
				assert.Empty(t, jobs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := newTestPlanner().Plan(tt.games)
			tt.check(t, jobs)
		})
	}
}

// The headline names the opponent again, so the once-each team count holds
// for the game-time line only.
func TestReminderPlanner_GameLineNamesEachTeamOnce(t *testing.T) {
	games := []entity.Game{
		kingsAt("1", "2022-01-26T00:00:00.000Z", "7:30 PM ET", 0, false),
		kingsAt("2", "2022-01-28T00:00:00.000Z", "10:00 PM ET", 0, true),
	}

	jobs := newTestPlanner().Plan(games)
	require.Len(t, jobs, 2)

	for _, job := range jobs {
		lines := strings.Split(job.Message, "\n")
		require.Len(t, lines, 2)

		assert.Equal(t, 1, strings.Count(job.Message, testTeam.MentionToken))

		assert.Equal(t, 1, strings.Count(lines[0], "Lakers"))

		gameLine := lines[1]
		assert.True(t, strings.HasPrefix(gameLine, "`") && strings.HasSuffix(gameLine, "`"))
		assert.Equal(t, 1, strings.Count(gameLine, "Kings"))
		assert.Equal(t, 1, strings.Count(gameLine, "Lakers"))
	}
}

func TestReminderPlanner_MatchesByNameWithoutIDs(t *testing.T) {
	planner := newReminderPlanner(NewTimeResolver(time.UTC), entity.TrackedTeam{Name: "Kings", MentionToken: "@kings"}, "America/New_York", time.Hour)

	jobs := planner.Plan([]entity.Game{
		{
			ID:          "1",
			Date:        "2022-01-26",
			StatusText:  "7:30 PM ET",
			HomeTeam:    entity.Team{Name: "Lakers"},
			VisitorTeam: entity.Team{Name: "Kings"},
		},
	})

	require.Len(t, jobs, 1)
	assert.True(t, strings.HasPrefix(jobs[0].Message, "@kings vs. **Lakers**"))
}
