package models

import (
	"encoding/json"
)

// EventType identifies the kind of broadcast event
type EventType string

const (
	EventTypeMatchCreated    EventType = "match_created"
	EventTypeCommentaryAdded EventType = "commentary_added"
	EventTypeScoreUpdated    EventType = "score_updated"
)

// Event is the envelope pushed to every connected realtime client.
// Data always carries the canonical persisted record, never a draft.
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NewEvent builds an Event by serializing the payload
func NewEvent(eventType EventType, payload interface{}) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Data: data}, nil
}
