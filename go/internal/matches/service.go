package matches

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sportzhq/sportz/go/internal/httpapi"
	"github.com/sportzhq/sportz/go/internal/models"
)

const (
	// DefaultListLimit applies when no limit query parameter is given
	DefaultListLimit = 50
	// MaxListLimit is the largest accepted limit
	MaxListLimit = 100
)

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
	ListMatches(ctx context.Context, limit int) ([]models.Match, error)
	UpdateScore(ctx context.Context, id int64, homeScore, awayScore int) (*models.Match, error)
}

// Service exposes the matches HTTP endpoints
type Service struct {
	app      MatchesApp
	validate *validator.Validate
}

// NewService creates a new matches HTTP service
func NewService(app MatchesApp) *Service {
	return &Service{
		app:      app,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the match routes with an HTTP mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /matches", s.ListMatches)
	mux.HandleFunc("POST /matches", s.CreateMatch)
	mux.HandleFunc("GET /matches/{id}", s.GetMatch)
	mux.HandleFunc("PATCH /matches/{id}/score", s.UpdateScore)
}

// ListMatches handles GET /matches
func (s *Service) ListMatches(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpapi.ErrorWithDetails(w, http.StatusBadRequest, "Invalid query.", "limit must be an integer")
			return
		}
		if parsed <= 0 {
			httpapi.ErrorWithDetails(w, http.StatusBadRequest, "Invalid query.", "limit must be a positive integer")
			return
		}
		if parsed > MaxListLimit {
			httpapi.ErrorWithDetails(w, http.StatusBadRequest, "Invalid query.", "limit cannot exceed 100")
			return
		}
		limit = parsed
	}

	data, err := s.app.ListMatches(r.Context(), limit)
	if err != nil {
		httpapi.Error(w, http.StatusInternalServerError, "Failed to list matches")
		return
	}
	if data == nil {
		data = []models.Match{}
	}

	httpapi.Data(w, http.StatusOK, data)
}

// CreateMatch handles POST /matches
func (s *Service) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	req.Sport = strings.TrimSpace(req.Sport)
	req.HomeTeam = strings.TrimSpace(req.HomeTeam)
	req.AwayTeam = strings.TrimSpace(req.AwayTeam)

	if err := s.validate.Struct(req); err != nil {
		httpapi.ValidationFailed(w, err)
		return
	}

	match, err := s.app.CreateMatch(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidTimeRange) {
			httpapi.ErrorWithDetails(w, http.StatusBadRequest, "Invalid payload.",
				"End time must be chronologically after start time")
			return
		}
		httpapi.Error(w, http.StatusInternalServerError, "Failed to create match.")
		return
	}

	httpapi.Data(w, http.StatusCreated, match)
}

// GetMatch handles GET /matches/{id}
func (s *Service) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := matchIDFromPath(w, r)
	if !ok {
		return
	}

	match, err := s.app.GetMatch(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			httpapi.Error(w, http.StatusNotFound, "Match not found")
			return
		}
		httpapi.Error(w, http.StatusInternalServerError, "Failed to get match")
		return
	}

	httpapi.Data(w, http.StatusOK, match)
}

// UpdateScore handles PATCH /matches/{id}/score
func (s *Service) UpdateScore(w http.ResponseWriter, r *http.Request) {
	id, ok := matchIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		httpapi.ValidationFailed(w, err)
		return
	}

	match, err := s.app.UpdateScore(r.Context(), id, *req.HomeScore, *req.AwayScore)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			httpapi.Error(w, http.StatusNotFound, "Match not found")
			return
		}
		httpapi.Error(w, http.StatusInternalServerError, "Failed to update score")
		return
	}

	httpapi.Data(w, http.StatusOK, match)
}

func matchIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	// IDs are serial int4 in the database; anything wider cannot name a row
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 || id > math.MaxInt32 {
		httpapi.ErrorWithDetails(w, http.StatusBadRequest, "Invalid path.", "ID must be a positive integer")
		return 0, false
	}
	return id, true
}
