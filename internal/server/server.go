// Package server exposes the roster over a JSON HTTP API, an ICS feed,
// prometheus metrics and the Slack slash command endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/handlers"
	"github.com/jhrahman/shiftmate/internal/metrics"
)

type Config struct {
	Listen string
	// APIKey guards the notify endpoints when set.
	APIKey       string
	Location     *time.Location
	CalendarName string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Listen == "" {
		c.Listen = ":3000"
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.CalendarName == "" {
		c.CalendarName = "Shift Roster"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 30 * time.Second
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 60 * time.Second
	}
	return c
}

type Server struct {
	cfg     Config
	router  *mux.Router
	server  *http.Server
	roster  contract.RosterService
	slack   *handlers.SlackHandler
	metrics *metrics.Registry
	log     *zap.Logger
	now     func() time.Time
}

// New builds the server. slackHandler and registry may be nil, in which case
// their routes are not mounted.
func New(cfg Config, rosterService contract.RosterService, slackHandler *handlers.SlackHandler, registry *metrics.Registry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	s := &Server{
		cfg:     cfg,
		router:  mux.NewRouter(),
		roster:  rosterService,
		slack:   slackHandler,
		metrics: registry,
		log:     log,
		now:     time.Now,
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Listen,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)

	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	s.router.HandleFunc("/roster.ics", s.calendarFeed).Methods(http.MethodGet)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
	if s.slack != nil {
		s.router.HandleFunc("/slack/commands", s.slack.HandleSlashCommand).Methods(http.MethodPost)
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/team", s.team).Methods(http.MethodGet)
	api.HandleFunc("/roster", s.rosterWeek).Methods(http.MethodGet)
	api.HandleFunc("/roster/upcoming", s.rosterUpcoming).Methods(http.MethodGet)
	api.HandleFunc("/overrides/{week}", s.getOverride).Methods(http.MethodGet)
	api.HandleFunc("/overrides/{week}", s.setMorning).Methods(http.MethodPut)
	api.HandleFunc("/overrides/{week}", s.clearOverride).Methods(http.MethodDelete)
	api.HandleFunc("/overrides/{week}/evening", s.setEvening).Methods(http.MethodPut)
	api.HandleFunc("/config/webhook-status", s.webhookStatus).Methods(http.MethodGet)

	api.Handle("/notify", s.apiKeyMiddleware(http.HandlerFunc(s.notify))).Methods(http.MethodPost)
	api.Handle("/notify-weekly", s.apiKeyMiddleware(http.HandlerFunc(s.notifyWeekly))).Methods(http.MethodPost)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}

// Handler is the routed handler, without a listener.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Listen, err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Info("Shutting down HTTP server")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
