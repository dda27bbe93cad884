package matches

import (
	"time"
)

// CreateMatchRequest represents the data needed to create a new match.
// Status is not settable by clients; it is derived from the time bounds
// at creation.
type CreateMatchRequest struct {
	Sport     string    `json:"sport" validate:"required"`
	HomeTeam  string    `json:"homeTeam" validate:"required"`
	AwayTeam  string    `json:"awayTeam" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	HomeScore *int      `json:"homeScore" validate:"omitempty,min=0"`
	AwayScore *int      `json:"awayScore" validate:"omitempty,min=0"`
}

// UpdateScoreRequest represents a score update for an existing match
type UpdateScoreRequest struct {
	HomeScore *int `json:"homeScore" validate:"required,min=0"`
	AwayScore *int `json:"awayScore" validate:"required,min=0"`
}
