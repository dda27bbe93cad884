package matches

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sportzhq/sportz/go/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	createCalls  int
	createStatus models.MatchStatus
	persisted    *models.Match
	err          error
}

func (f *fakeRepo) CreateMatch(ctx context.Context, req CreateMatchRequest, status models.MatchStatus) (*models.Match, error) {
	f.createCalls++
	f.createStatus = status
	if f.err != nil {
		return nil, f.err
	}
	match := &models.Match{
		ID:        42,
		Sport:     req.Sport,
		HomeTeam:  req.HomeTeam,
		AwayTeam:  req.AwayTeam,
		Status:    status,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedAt: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
	}
	if req.HomeScore != nil {
		match.HomeScore = *req.HomeScore
	}
	if req.AwayScore != nil {
		match.AwayScore = *req.AwayScore
	}
	f.persisted = match
	return match, nil
}

func (f *fakeRepo) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	if f.persisted == nil || f.persisted.ID != id {
		return nil, ErrMatchNotFound
	}
	return f.persisted, nil
}

func (f *fakeRepo) ListMatches(ctx context.Context, limit int) ([]models.Match, error) {
	if f.persisted == nil {
		return nil, nil
	}
	return []models.Match{*f.persisted}, nil
}

func (f *fakeRepo) UpdateMatchScore(ctx context.Context, id int64, homeScore, awayScore int) (*models.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.persisted == nil || f.persisted.ID != id {
		return nil, ErrMatchNotFound
	}
	updated := *f.persisted
	updated.HomeScore = homeScore
	updated.AwayScore = awayScore
	f.persisted = &updated
	return &updated, nil
}

type fakeBroadcaster struct {
	events []models.Event
}

func (f *fakeBroadcaster) Broadcast(event models.Event) {
	f.events = append(f.events, event)
}

func validCreateRequest() CreateMatchRequest {
	return CreateMatchRequest{
		Sport:     "football",
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
		StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestApp_CreateMatch_DerivesStatusAtCreation(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC))
	app := NewApp(repo, clock, broadcaster)

	match, err := app.CreateMatch(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, models.MatchStatusLive, match.Status)
	require.Equal(t, models.MatchStatusLive, repo.createStatus)
	require.Equal(t, 1, repo.createCalls)
}

func TestApp_CreateMatch_BroadcastsPersistedRecord(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	app := NewApp(repo, clock, broadcaster)

	match, err := app.CreateMatch(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, models.MatchStatusScheduled, match.Status)

	require.Len(t, broadcaster.events, 1)
	require.Equal(t, models.EventTypeMatchCreated, broadcaster.events[0].Type)

	var delivered models.Match
	require.NoError(t, json.Unmarshal(broadcaster.events[0].Data, &delivered))
	require.Equal(t, match.ID, delivered.ID)
	require.Equal(t, match.Status, delivered.Status)
}

func TestApp_CreateMatch_InvalidTimeRange(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC))
	app := NewApp(repo, clock, broadcaster)

	req := validCreateRequest()
	req.EndTime = req.StartTime

	_, err := app.CreateMatch(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidTimeRange)
	require.Zero(t, repo.createCalls)
	require.Empty(t, broadcaster.events)
}

func TestApp_CreateMatch_RepoErrorSuppressesEvent(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	broadcaster := &fakeBroadcaster{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC))
	app := NewApp(repo, clock, broadcaster)

	_, err := app.CreateMatch(context.Background(), validCreateRequest())
	require.Error(t, err)
	require.Empty(t, broadcaster.events)
}

func TestApp_UpdateScore_Broadcasts(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC))
	app := NewApp(repo, clock, broadcaster)

	created, err := app.CreateMatch(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := app.UpdateScore(context.Background(), created.ID, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 2, updated.HomeScore)
	require.Equal(t, 1, updated.AwayScore)
	// Status stays whatever was derived at creation
	require.Equal(t, created.Status, updated.Status)

	require.Len(t, broadcaster.events, 2)
	require.Equal(t, models.EventTypeScoreUpdated, broadcaster.events[1].Type)
}

func TestApp_UpdateScore_NotFound(t *testing.T) {
	repo := &fakeRepo{}
	broadcaster := &fakeBroadcaster{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC))
	app := NewApp(repo, clock, broadcaster)

	_, err := app.UpdateScore(context.Background(), 999, 1, 0)
	require.ErrorIs(t, err, ErrMatchNotFound)
	require.Empty(t, broadcaster.events)
}
