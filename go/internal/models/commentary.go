package models

import (
	"time"
)

// Commentary represents a timestamped note or event attached to a match.
// Minute and Sequence are optional ordering hints; Metadata is stored as
// opaque JSONB and never interpreted by the service.
type Commentary struct {
	ID        int64                  `json:"id"`
	MatchID   int64                  `json:"matchId"`
	Minute    *int                   `json:"minute"`
	Sequence  *int                   `json:"sequence"`
	Period    *string                `json:"period"`
	EventType *string                `json:"eventType"`
	Actor     *string                `json:"actor"`
	Team      *string                `json:"team"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata"`
	Tags      []string               `json:"tags"`
	CreatedAt time.Time              `json:"createdAt"`
}
