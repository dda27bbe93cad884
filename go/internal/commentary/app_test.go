package commentary

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sportzhq/sportz/go/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	entries []models.Commentary
	nextID  int64
	missing bool
}

func (f *fakeRepo) Append(ctx context.Context, matchID int64, req AppendCommentaryRequest) (*models.Commentary, error) {
	if f.missing {
		return nil, ErrMatchNotFound
	}
	f.nextID++
	entry := models.Commentary{
		ID:        f.nextID,
		MatchID:   matchID,
		Minute:    req.Minute,
		Sequence:  req.Sequence,
		Period:    req.Period,
		EventType: req.EventType,
		Actor:     req.Actor,
		Team:      req.Team,
		Message:   req.Message,
		Metadata:  req.Metadata,
		Tags:      req.Tags,
		CreatedAt: time.Date(2024, 1, 1, 11, 0, 0, int(f.nextID), time.UTC),
	}
	f.entries = append(f.entries, entry)
	return &entry, nil
}

func (f *fakeRepo) ListByMatch(ctx context.Context, matchID int64) ([]models.Commentary, error) {
	if f.missing {
		return nil, ErrMatchNotFound
	}
	result := make([]models.Commentary, len(f.entries))
	copy(result, f.entries)
	return result, nil
}

type fakeBroadcaster struct {
	events []models.Event
}

func (f *fakeBroadcaster) Broadcast(event models.Event) {
	f.events = append(f.events, event)
}

func intPtr(v int) *int { return &v }

func TestApp_Append_BroadcastsPersistedEntry(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	app := NewApp(repo, broadcaster)

	entry, err := app.Append(context.Background(), 7, AppendCommentaryRequest{
		Minute:  intPtr(23),
		Message: "Goal!",
		Tags:    []string{"goal", "highlight"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), entry.ID)

	require.Len(t, broadcaster.events, 1)
	require.Equal(t, models.EventTypeCommentaryAdded, broadcaster.events[0].Type)

	var delivered models.Commentary
	require.NoError(t, json.Unmarshal(broadcaster.events[0].Data, &delivered))
	require.Equal(t, entry.ID, delivered.ID)
	require.Equal(t, int64(7), delivered.MatchID)
	require.False(t, delivered.CreatedAt.IsZero())
}

func TestApp_Append_MatchNotFound(t *testing.T) {
	repo := &fakeRepo{missing: true}
	broadcaster := &fakeBroadcaster{}
	app := NewApp(repo, broadcaster)

	_, err := app.Append(context.Background(), 999, AppendCommentaryRequest{Message: "Kickoff"})
	require.ErrorIs(t, err, ErrMatchNotFound)
	require.Empty(t, broadcaster.events)
}

func TestApp_List_DisplayOrder(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	app := NewApp(repo, broadcaster)

	ctx := context.Background()
	_, err := app.Append(ctx, 1, AppendCommentaryRequest{Minute: intPtr(10), Sequence: intPtr(2), Message: "second chance"})
	require.NoError(t, err)
	_, err = app.Append(ctx, 1, AppendCommentaryRequest{Minute: intPtr(10), Sequence: intPtr(1), Message: "first chance"})
	require.NoError(t, err)
	_, err = app.Append(ctx, 1, AppendCommentaryRequest{Minute: intPtr(5), Message: "early pressure"})
	require.NoError(t, err)

	entries, err := app.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "early pressure", entries[0].Message)
	require.Equal(t, "first chance", entries[1].Message)
	require.Equal(t, "second chance", entries[2].Message)
}

func TestApp_List_MissingHintsSortLast(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	app := NewApp(repo, broadcaster)

	ctx := context.Background()
	_, err := app.Append(ctx, 1, AppendCommentaryRequest{Message: "no minute"})
	require.NoError(t, err)
	_, err = app.Append(ctx, 1, AppendCommentaryRequest{Minute: intPtr(90), Message: "late goal"})
	require.NoError(t, err)

	entries, err := app.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "late goal", entries[0].Message)
	require.Equal(t, "no minute", entries[1].Message)
}

func TestApp_List_CreatedAtBreaksTies(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	app := NewApp(repo, broadcaster)

	ctx := context.Background()
	_, err := app.Append(ctx, 1, AppendCommentaryRequest{Minute: intPtr(45), Sequence: intPtr(1), Message: "older"})
	require.NoError(t, err)
	_, err = app.Append(ctx, 1, AppendCommentaryRequest{Minute: intPtr(45), Sequence: intPtr(1), Message: "newer"})
	require.NoError(t, err)

	entries, err := app.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "older", entries[0].Message)
	require.Equal(t, "newer", entries[1].Message)
}
