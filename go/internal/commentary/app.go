package commentary

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/sportzhq/sportz/go/internal/models"
)

// CommentaryRepository defines what the app layer needs from the repository
type CommentaryRepository interface {
	Append(ctx context.Context, matchID int64, req AppendCommentaryRequest) (*models.Commentary, error)
	ListByMatch(ctx context.Context, matchID int64) ([]models.Commentary, error)
}

// Broadcaster fans a domain event out to all currently-connected clients
type Broadcaster interface {
	Broadcast(event models.Event)
}

// App handles the append-only commentary feed for matches
type App struct {
	repo        CommentaryRepository
	broadcaster Broadcaster
}

// NewApp creates a new commentary App
func NewApp(repo CommentaryRepository, broadcaster Broadcaster) *App {
	return &App{
		repo:        repo,
		broadcaster: broadcaster,
	}
}

// Append persists a commentary entry for an existing match and broadcasts
// the persisted record, including its assigned id and creation time, so
// subscribers see the canonical row rather than the pre-persistence draft.
func (a *App) Append(ctx context.Context, matchID int64, req AppendCommentaryRequest) (*models.Commentary, error) {
	entry, err := a.repo.Append(ctx, matchID, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("commentary_id", entry.ID).
		Int64("match_id", entry.MatchID).
		Msg("commentary appended")

	event, err := models.NewEvent(models.EventTypeCommentaryAdded, entry)
	if err != nil {
		log.Error().Err(err).Int64("commentary_id", entry.ID).Msg("failed to serialize event")
		return entry, nil
	}
	a.broadcaster.Broadcast(event)

	return entry, nil
}

// List returns a match's commentary in display order: minute ascending, then
// sequence as the tie-break, then creation time. Entries without a minute or
// sequence sort after those that have one.
func (a *App) List(ctx context.Context, matchID int64) ([]models.Commentary, error) {
	entries, err := a.repo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entryLess(entries[i], entries[j])
	})
	return entries, nil
}

func entryLess(a, b models.Commentary) bool {
	if c := compareHint(a.Minute, b.Minute); c != 0 {
		return c < 0
	}
	if c := compareHint(a.Sequence, b.Sequence); c != 0 {
		return c < 0
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// compareHint orders optional hints ascending with absent values last,
// matching Postgres ASC NULLS LAST.
func compareHint(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
