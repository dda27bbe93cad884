package commentary

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

// CommentaryApp defines what the service layer needs from the commentary application
type CommentaryApp interface {
	Append(ctx context.Context, matchID int64, req AppendCommentaryRequest) (*models.Commentary, error)
	List(ctx context.Context, matchID int64) ([]models.Commentary, error)
}

// Service exposes the commentary HTTP endpoints
type Service struct {
	app      CommentaryApp
	validate *validator.Validate
}

// NewService creates a new commentary HTTP service
func NewService(app CommentaryApp) *Service {
	return &Service{
		app:      app,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the commentary routes with an HTTP mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /matches/{id}/commentary", s.AppendCommentary)
	mux.HandleFunc("GET /matches/{id}/commentary", s.ListCommentary)
}

// AppendCommentary handles POST /matches/{id}/commentary
func (s *Service) AppendCommentary(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDFromPath(w, r)
	if !ok {
		return
	}

	var req AppendCommentaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	req.Message = strings.TrimSpace(req.Message)

	if err := s.validate.Struct(req); err != nil {
		httpapi.ValidationFailed(w, err)
		return
	}

	entry, err := s.app.Append(r.Context(), matchID, req)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			httpapi.Error(w, http.StatusNotFound, "Match not found")
			return
		}
		httpapi.Error(w, http.StatusInternalServerError, "Failed to append commentary")
		return
	}

	httpapi.Data(w, http.StatusCreated, entry)
}

// ListCommentary handles GET /matches/{id}/commentary
func (s *Service) ListCommentary(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDFromPath(w, r)
	if !ok {
		return
	}

	entries, err := s.app.List(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			httpapi.Error(w, http.StatusNotFound, "Match not found")
			return
		}
		httpapi.Error(w, http.StatusInternalServerError, "Failed to list commentary")
		return
	}
	if entries == nil {
		entries = []models.Commentary{}
	}

	httpapi.Data(w, http.StatusOK, entries)
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
