package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sportzhq/sportz/go/internal/matches/db"
	"github.com/sportzhq/sportz/go/internal/models"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateMatch(ctx context.Context, arg db.CreateMatchParams) (db.Match, error)
	GetMatch(ctx context.Context, id int32) (db.Match, error)
	ListMatches(ctx context.Context, limit int32) ([]db.Match, error)
	UpdateMatchScore(ctx context.Context, arg db.UpdateMatchScoreParams) (db.Match, error)
}

// Repository implements match data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new matches repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateMatch persists a new match with the given derived status
func (r *Repository) CreateMatch(ctx context.Context, req CreateMatchRequest, status models.MatchStatus) (*models.Match, error) {
	homeScore := 0
	if req.HomeScore != nil {
		homeScore = *req.HomeScore
	}
	awayScore := 0
	if req.AwayScore != nil {
		awayScore = *req.AwayScore
	}

	match, err := r.queries.CreateMatch(ctx, db.CreateMatchParams{
		Sport:     req.Sport,
		HomeTeam:  req.HomeTeam,
		AwayTeam:  req.AwayTeam,
		Status:    db.MatchStatus(status),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		HomeScore: int32(homeScore),
		AwayScore: int32(awayScore),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return r.dbMatchToModel(match), nil
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	match, err := r.queries.GetMatch(ctx, int32(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return r.dbMatchToModel(match), nil
}

// ListMatches retrieves the most recently created matches
func (r *Repository) ListMatches(ctx context.Context, limit int) ([]models.Match, error) {
	matches, err := r.queries.ListMatches(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return r.dbMatchesToModels(matches), nil
}

// UpdateMatchScore updates only the scores of a match; the stored status is untouched
func (r *Repository) UpdateMatchScore(ctx context.Context, id int64, homeScore, awayScore int) (*models.Match, error) {
	match, err := r.queries.UpdateMatchScore(ctx, db.UpdateMatchScoreParams{
		ID:        int32(id),
		HomeScore: int32(homeScore),
		AwayScore: int32(awayScore),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match score: %w", err)
	}

	return r.dbMatchToModel(match), nil
}

func (r *Repository) dbMatchToModel(match db.Match) *models.Match {
	return &models.Match{
		ID:        int64(match.ID),
		Sport:     match.Sport,
		HomeTeam:  match.HomeTeam,
		AwayTeam:  match.AwayTeam,
		Status:    models.MatchStatus(match.Status),
		StartTime: match.StartTime,
		EndTime:   match.EndTime,
		HomeScore: int(match.HomeScore),
		AwayScore: int(match.AwayScore),
		CreatedAt: match.CreatedAt,
	}
}

func (r *Repository) dbMatchesToModels(matches []db.Match) []models.Match {
	result := make([]models.Match, len(matches))
	for i, match := range matches {
		result[i] = *r.dbMatchToModel(match)
	}
	return result
}
