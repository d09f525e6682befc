// Package http contains the inbound HTTP delivery layer: the Telegram
// webhook endpoint and the small administrative surface
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/yourusername/telegram-media-vault/config"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/deps"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 30 * time.Second
)

// Dispatcher is the asynchronous hand-off to update processing.
// Enqueue must not block; false means the queue is full.
type Dispatcher interface {
	Enqueue(update *models.Update) bool
}

// Server is the inbound HTTP server
type Server struct {
	addr       string
	secret     string
	dispatcher Dispatcher
	cache      deps.MediaCache
	logger     zerolog.Logger
	server     *http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.ServerConfig,
	webhook *config.WebhookConfig,
	dispatcher Dispatcher,
	cache deps.MediaCache,
	logger zerolog.Logger,
) *Server {
	return &Server{
		addr:       fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		secret:     webhook.Secret,
		dispatcher: dispatcher,
		cache:      cache,
		logger:     logger,
	}
}

// Handler builds the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/webhook/{secret}", s.handleWebhook)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/cache_keys", s.handleCacheKeys)
	mux.HandleFunc("/admin/delete_cache/{file_id}", s.handleDeleteCache)

	return mux
}

// Start begins listening on the configured host:port
func (s *Server) Start(_ context.Context) error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	s.logger.Info().Str("addr", s.addr).Msg("Starting HTTP server")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}()

	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info().Msg("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
