package commentary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sqlc-dev/pqtype"
	"github.com/sportzhq/sportz/go/internal/commentary/db"
	"github.com/sportzhq/sportz/go/internal/models"
	"github.com/sportzhq/sportz/go/internal/sqlutil"
)

// Repository implements commentary data access operations. Append runs the
// match-existence check and the insert inside one transaction so an entry
// can never land on a match deleted between the two statements.
type Repository struct {
	database *sql.DB
	queries  *db.Queries
}

// NewRepository creates a new commentary repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
	}
}

// Append inserts a commentary entry for an existing match and returns the
// persisted row
func (r *Repository) Append(ctx context.Context, matchID int64, req AppendCommentaryRequest) (*models.Commentary, error) {
	metadata := pqtype.NullRawMessage{}
	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	var created db.Commentary
	err := sqlutil.Run(ctx, r.database,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			exists, err := q.MatchExists(ctx, int32(matchID))
			if err != nil {
				return fmt.Errorf("failed to check match: %w", err)
			}
			if !exists {
				return ErrMatchNotFound
			}

			created, err = q.CreateCommentary(ctx, db.CreateCommentaryParams{
				MatchID:   int32(matchID),
				Minute:    sqlutil.ToSqlInt32(req.Minute),
				Sequence:  sqlutil.ToSqlInt32(req.Sequence),
				Period:    sqlutil.ToSqlString(req.Period),
				EventType: sqlutil.ToSqlString(req.EventType),
				Actor:     sqlutil.ToSqlString(req.Actor),
				Team:      sqlutil.ToSqlString(req.Team),
				Message:   req.Message,
				Metadata:  metadata,
				Tags:      req.Tags,
			})
			if err != nil {
				return fmt.Errorf("failed to create commentary: %w", err)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return r.dbCommentaryToModel(created)
}

// ListByMatch returns all commentary rows for a match in creation order
func (r *Repository) ListByMatch(ctx context.Context, matchID int64) ([]models.Commentary, error) {
	exists, err := r.queries.MatchExists(ctx, int32(matchID))
	if err != nil {
		return nil, fmt.Errorf("failed to check match: %w", err)
	}
	if !exists {
		return nil, ErrMatchNotFound
	}

	rows, err := r.queries.ListCommentaryByMatch(ctx, int32(matchID))
	if err != nil {
		return nil, fmt.Errorf("failed to list commentary: %w", err)
	}

	result := make([]models.Commentary, 0, len(rows))
	for _, row := range rows {
		entry, err := r.dbCommentaryToModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *entry)
	}
	return result, nil
}

func (r *Repository) dbCommentaryToModel(row db.Commentary) (*models.Commentary, error) {
	var metadata map[string]interface{}
	if row.Metadata.Valid {
		if err := json.Unmarshal(row.Metadata.RawMessage, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &models.Commentary{
		ID:        int64(row.ID),
		MatchID:   int64(row.MatchID),
		Minute:    sqlutil.FromSqlInt32(row.Minute),
		Sequence:  sqlutil.FromSqlInt32(row.Sequence),
		Period:    sqlutil.FromSqlStringPtr(row.Period),
		EventType: sqlutil.FromSqlStringPtr(row.EventType),
		Actor:     sqlutil.FromSqlStringPtr(row.Actor),
		Team:      sqlutil.FromSqlStringPtr(row.Team),
		Message:   row.Message,
		Metadata:  metadata,
		Tags:      row.Tags,
		CreatedAt: row.CreatedAt,
	}, nil
}
