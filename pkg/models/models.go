package models

// Team is a team as returned by the balldontlie API
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

// Game is a game as returned by the balldontlie API. Date looks like a UTC
// timestamp but only its calendar date is meaningful, and Status holds the
// scheduled start ("7:30 PM ET") until the game starts.
type Game struct {
	ID               int64  `json:"id"`
	Date             string `json:"date"`
	Season           int    `json:"season"`
	Status           string `json:"status"`
	Period           int    `json:"period"`
	Time             string `json:"time"`
	Postseason       bool   `json:"postseason"`
	HomeTeamScore    int    `json:"home_team_score"`
	VisitorTeamScore int    `json:"visitor_team_score"`
	HomeTeam         Team   `json:"home_team"`
	VisitorTeam      Team   `json:"visitor_team"`
}

type Meta struct {
	NextCursor *int64 `json:"next_cursor,omitempty"`
	PerPage    int    `json:"per_page"`
}

// GamesResponse is the body of GET /games
type GamesResponse struct {
	Data []Game `json:"data"`
	Meta Meta   `json:"meta"`
}
