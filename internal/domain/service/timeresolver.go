package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
)

// TimeResolver rebuilds a game start instant from a calendar date and a
// 12-hour clock text expressed in a known source timezone, and returns it on
// the local clock.
type TimeResolver struct {
	local *time.Location
}

func NewTimeResolver(local *time.Location) *TimeResolver {
	if local == nil {
		local = time.Local
	}
	return &TimeResolver{local: local}
}

// Resolve parses datePart (YYYY-MM-DD) and timeText (h:mm AM/PM, without zone
// suffix) as wall-clock time in sourceZone.
func (r *TimeResolver) Resolve(datePart, timeText, sourceZone string) (time.Time, error) {
	if sourceZone == "" {
		return time.Time{}, fmt.Errorf("%w: empty source zone", domain.ErrUnknownZone)
	}

	source, err := time.LoadLocation(sourceZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", domain.ErrUnknownZone, sourceZone, err)
	}

	value := strings.TrimSpace(datePart) + " " + strings.ToUpper(strings.TrimSpace(timeText))
	start, err := time.ParseInLocation(domain.GameTimeLayout, value, source)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", domain.ErrTimeParse, value, err)
	}

	return start.In(r.local), nil
}

func (r *TimeResolver) Location() *time.Location {
	return r.local
}
