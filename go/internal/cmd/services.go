package main

import (
	"database/sql"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sportzhq/sportz/go/internal/commentary"
	"github.com/sportzhq/sportz/go/internal/matches"
	matchesdb "github.com/sportzhq/sportz/go/internal/matches/db"
	"github.com/sportzhq/sportz/go/internal/realtime"
)

type Services struct {
	Matches    *matches.Service
	Commentary *commentary.Service
	Realtime   *realtime.Service
}

func setupServices(database *sql.DB, config *Config) (*Services, error) {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	// Realtime first: both domain apps publish through it
	realtimeService, err := realtime.NewService(config.realtimeConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create realtime service: %w", err)
	}

	clock := clockwork.NewRealClock()

	// Matches
	matchQueries := matchesdb.New(database)
	matchesRepo := matches.NewRepository(matchQueries)
	matchesApp := matches.NewApp(matchesRepo, clock, realtimeService)
	matchesService := matches.NewService(matchesApp)

	// Commentary
	commentaryRepo := commentary.NewRepository(database)
	commentaryApp := commentary.NewApp(commentaryRepo, realtimeService)
	commentaryService := commentary.NewService(commentaryApp)

	return &Services{
		Matches:    matchesService,
		Commentary: commentaryService,
		Realtime:   realtimeService,
	}, nil
}
