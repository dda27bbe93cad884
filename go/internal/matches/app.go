package matches

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sportzhq/sportz/go/internal/models"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest, status models.MatchStatus) (*models.Match, error)
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
	ListMatches(ctx context.Context, limit int) ([]models.Match, error)
	UpdateMatchScore(ctx context.Context, id int64, homeScore, awayScore int) (*models.Match, error)
}

// Broadcaster fans a domain event out to all currently-connected clients.
// Delivery is best-effort; failures never surface to the publisher.
type Broadcaster interface {
	Broadcast(event models.Event)
}

// App handles match business logic
type App struct {
	repo        MatchesRepository
	clock       clockwork.Clock
	broadcaster Broadcaster
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository, clock clockwork.Clock, broadcaster Broadcaster) *App {
	return &App{
		repo:        repo,
		clock:       clock,
		broadcaster: broadcaster,
	}
}

// CreateMatch derives the match status from its time bounds at the current
// clock reading, persists the match, and broadcasts the persisted record.
// The status is computed exactly once here and stored; it is not re-derived
// on later reads.
func (a *App) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	status, err := DeriveStatus(req.StartTime, req.EndTime, a.clock.Now())
	if err != nil {
		return nil, err
	}

	match, err := a.repo.CreateMatch(ctx, req, status)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().
		Int64("match_id", match.ID).
		Str("sport", match.Sport).
		Str("status", string(match.Status)).
		Msg("match created")

	a.publish(models.EventTypeMatchCreated, match)
	return match, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	return a.repo.GetMatch(ctx, id)
}

// ListMatches retrieves up to limit matches, newest first
func (a *App) ListMatches(ctx context.Context, limit int) ([]models.Match, error) {
	matches, err := a.repo.ListMatches(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// UpdateScore updates a match's scores and broadcasts the updated record.
// The stored status is left as derived at creation time.
func (a *App) UpdateScore(ctx context.Context, id int64, homeScore, awayScore int) (*models.Match, error) {
	match, err := a.repo.UpdateMatchScore(ctx, id, homeScore, awayScore)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("match_id", match.ID).
		Int("home_score", match.HomeScore).
		Int("away_score", match.AwayScore).
		Msg("match score updated")

	a.publish(models.EventTypeScoreUpdated, match)
	return match, nil
}

// publish is fire-and-forget; the persisted row already exists by the time
// the event goes out, so subscribers can immediately look it up by id.
func (a *App) publish(eventType models.EventType, payload interface{}) {
	event, err := models.NewEvent(eventType, payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to serialize event")
		return
	}
	a.broadcaster.Broadcast(event)
}
