package entity

import "time"

type Team struct {
	ID   int
	Name string
}

// Game is a provider game record normalized on ingestion. Date carries a
// reliable calendar date with an unreliable time portion; the real start time
// lives in StatusText until the game starts.
type Game struct {
	ID          string
	Date        string
	StatusText  string
	Period      int
	HomeTeam    Team
	VisitorTeam Team
	FetchedAt   time.Time
}

// TrackedTeam identifies the team whose games are announced and how it is
// mentioned in chat.
type TrackedTeam struct {
	ID           int
	Name         string
	MentionToken string
}
