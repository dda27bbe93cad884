package matches

import (
	"time"

	"github.com/sportzhq/sportz/go/internal/models"
)

// DeriveStatus maps a match's scheduled time bounds to its lifecycle status
// at the given instant. Boundaries: now == start is live, now == end is
// finished. The bounds must satisfy end > start; otherwise ErrInvalidTimeRange
// is returned.
func DeriveStatus(start, end, now time.Time) (models.MatchStatus, error) {
	if !end.After(start) {
		return "", ErrInvalidTimeRange
	}

	switch {
	case now.Before(start):
		return models.MatchStatusScheduled, nil
	case now.Before(end):
		return models.MatchStatusLive, nil
	default:
		return models.MatchStatusFinished, nil
	}
}
