package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/game-reminder-bot/pkg/models"
)

const (
	DefaultBaseURL = "https://api.balldontlie.io/v1"

	gamesPerPage = 100
)

// Client fetches a team's games by date range from the balldontlie API
type Client struct {
	baseURL    string
	apiKey     string
	teamID     int
	location   *time.Location
	httpClient *http.Client
}

type Config struct {
	BaseURL  string
	APIKey   string
	TeamID   int
	Location *time.Location
	Timeout  time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		teamID:   cfg.TeamID,
		location: cfg.Location,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchGames returns the team's games dated within [weekStart, weekStart+6]
// on the client's local calendar. Records are returned unfiltered.
func (c *Client) FetchGames(ctx context.Context, weekStart time.Time) ([]entity.Game, error) {
	startDate, endDate := WeekRange(weekStart, c.location)

	query := url.Values{}
	query.Set("team_ids[]", strconv.Itoa(c.teamID))
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)
	query.Set("per_page", strconv.Itoa(gamesPerPage))

	var body models.GamesResponse
	if err := c.get(ctx, c.baseURL+"/games?"+query.Encode(), &body); err != nil {
		return nil, fmt.Errorf("%w for %s..%s: %v", domain.ErrFetch, startDate, endDate, err)
	}

	games := make([]entity.Game, 0, len(body.Data))
	for _, g := range body.Data {
		games = append(games, toEntity(g))
	}

	return games, nil
}

// WeekRange renders the inclusive 7-day window starting at weekStart as
// calendar dates on loc.
func WeekRange(weekStart time.Time, loc *time.Location) (string, string) {
	start := weekStart.In(loc)
	end := start.AddDate(0, 0, domain.WeekWindowDays)
	return start.Format(domain.CalendarDateLayout), end.Format(domain.CalendarDateLayout)
}

func (c *Client) get(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func toEntity(g models.Game) entity.Game {
	return entity.Game{
		ID:         strconv.FormatInt(g.ID, 10),
		Date:       g.Date,
		StatusText: g.Status,
		Period:     g.Period,
		HomeTeam: entity.Team{
			ID:   g.HomeTeam.ID,
			Name: g.HomeTeam.Name,
		},
		VisitorTeam: entity.Team{
			ID:   g.VisitorTeam.ID,
			Name: g.VisitorTeam.Name,
		},
	}
}
