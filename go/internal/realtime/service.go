package realtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sportzhq/sportz/go/internal/models"
)

// Service owns the connection manager, WebSocket handler, and the optional
// JetStream consumer. One instance per server process, torn down on shutdown.
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	eventConsumer     *EventConsumer
}

// Config holds configuration for the realtime service
type Config struct {
	ConnectionConfig ConnectionConfig
	ConsumeExternal  bool
	JetStreamConfig  JetStreamConsumerConfig
}

// DefaultConfig returns default configuration for the realtime service
func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		ConsumeExternal:  false,
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
	}
}

// NewService creates a new realtime service
func NewService(config Config) (*Service, error) {
	connectionManager := NewConnectionManager(config.ConnectionConfig)
	wsHandler := NewWebSocketHandler(connectionManager)

	var eventConsumer *EventConsumer
	if config.ConsumeExternal {
		var err error
		eventConsumer, err = NewEventConsumer(connectionManager, config.JetStreamConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create event consumer: %w", err)
		}
	}

	return &Service{
		connectionManager: connectionManager,
		wsHandler:         wsHandler,
		eventConsumer:     eventConsumer,
	}, nil
}

// Start begins the realtime service and blocks until ctx is cancelled
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting realtime service")

	if s.eventConsumer != nil {
		go func() {
			if err := s.eventConsumer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("event consumer failed")
			}
		}()
	}

	s.connectionManager.Start(ctx)

	log.Info().Msg("realtime service shutting down")
	return s.Stop()
}

// Stop gracefully shuts down the realtime service
func (s *Service) Stop() error {
	if s.eventConsumer != nil {
		if err := s.eventConsumer.Stop(); err != nil {
			log.Error().Err(err).Msg("failed to stop event consumer")
		}
	}

	log.Info().Msg("realtime service stopped")
	return nil
}

// RegisterRoutes registers the WebSocket HTTP routes
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
}

// Broadcast delivers an event to every currently-connected client
func (s *Service) Broadcast(event models.Event) {
	s.connectionManager.Broadcast(event)
}

// ConnectionCount returns the number of active connections
func (s *Service) ConnectionCount() int {
	return s.connectionManager.ConnectionCount()
}
