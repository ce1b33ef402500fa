// SPDX-License-Identifier: MIT

// Package server exposes ranking over HTTP.
//
// Routes:
//
//	POST /v1/rank        problem JSON → full ranking (?save=true&label=x, ?format=csv, ?strict=true)
//	POST /v1/best        problem JSON → top alternative
//	GET  /v1/runs        stored runs, newest first (?limit=n)
//	GET  /v1/runs/{id}   one stored run
//	GET  /healthz        liveness
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/katalvlaran/lvmcdm/internal/logging"
	"github.com/katalvlaran/lvmcdm/internal/store"
	"golang.org/x/time/rate"
)

// Timeouts.
const (
	ReadTimeout     = 15 * time.Second
	WriteTimeout    = 15 * time.Second
	IdleTimeout     = 60 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// MaxBodyBytes bounds a problem document.
const MaxBodyBytes = 4 << 20

// History is the subset of the run store used by the service.
type History interface {
	SaveRun(ctx context.Context, run store.Run) (store.Run, error)
	ListRuns(ctx context.Context, limit int) ([]store.Summary, error)
	GetRun(ctx context.Context, id string) (store.Run, error)
}

// Config holds the service settings.
type Config struct {
	Addr      string
	Strict    bool
	RateLimit float64 // requests per second; ≤ 0 disables limiting
	RateBurst int
}

// Server is the HTTP ranking service.
type Server struct {
	cfg     Config
	logger  *log.Logger
	history History
	limiter *rate.Limiter
	router  *mux.Router
}

// New builds a Server. history may be nil, in which case the history
// routes answer 503 and ?save=true is rejected. A nil logger discards.
func New(cfg Config, logger *log.Logger, history History) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{cfg: cfg, logger: logger, history: history}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/rank", s.handleRank).Methods(http.MethodPost)
	api.HandleFunc("/best", s.handleBest).Methods(http.MethodPost)
	api.HandleFunc("/runs", s.handleListRuns).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}", s.handleGetRun).Methods(http.MethodGet)
	api.Use(s.rateLimit)

	s.router.Use(s.requestLogging)
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on cfg.Addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully,
// waiting up to ShutdownTimeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("serving", "addr", ln.Addr().String(), "strict", s.cfg.Strict)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	<-errCh

	return nil
}
