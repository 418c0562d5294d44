package domain

import "errors"

var (
	ErrTimeParse     = errors.New("unparseable game time")
	ErrUnknownZone   = errors.New("unknown timezone")
	ErrFetch         = errors.New("failed to fetch games")
	ErrInvalidSpec   = errors.New("invalid schedule spec")
	ErrTeamNotInGame = errors.New("tracked team is not playing in game")
)
