package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/researchdesk/internal/bootstrap"
	"github.com/yigit/researchdesk/internal/config"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

const (
	startupTimeout  = time.Minute
	shutdownTimeout = 10 * time.Second
)

// Server owns the HTTP listener and the database pool behind it.
type Server struct {
	config  *config.Config
	handler http.Handler
	dbPool  *pgxpool.Pool
	logger  zerolog.Logger
}

// startupStep prepares the database before the listener opens.
// A failing optional step is logged and skipped.
type startupStep struct {
	name     string
	optional bool
	run      func(ctx context.Context) error
}

// NewServer connects to the database, applies the schema, seeds lookup data when
// enabled and builds the router.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}
	lgr = lgr.With().Str("component", "server").Str("mode", cfg.Server.Mode).Logger()

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Server{config: cfg, dbPool: dbPool, logger: lgr}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := prepare(ctx, lgr, s.startupSteps()); err != nil {
		dbPool.Close()
		return nil, err
	}

	deps := bootstrap.BuildDependencies(dbPool, lgr)
	s.handler = bootstrap.SetupRouter(cfg, deps, lgr)
	return s, nil
}

func (s *Server) startupSteps() []startupStep {
	steps := []startupStep{{
		name: "migrate",
		run: func(ctx context.Context) error {
			return bootstrap.MigrateSchema(ctx, s.dbPool)
		},
	}}
	if s.config.Seed.Enabled {
		steps = append(steps, startupStep{
			name:     "seed",
			optional: true,
			run: func(ctx context.Context) error {
				return bootstrap.SeedLookups(ctx, s.dbPool, s.logger)
			},
		})
	}
	return steps
}

// prepare runs steps in order and stops at the first required failure.
func prepare(ctx context.Context, lgr zerolog.Logger, steps []startupStep) error {
	for _, step := range steps {
		stepLog := lgr.With().Str("step", step.name).Logger()
		start := time.Now()

		stepLog.Info().Msg("Startup step running")
		if err := step.run(ctx); err != nil {
			if step.optional {
				stepLog.Warn().Err(err).Msg("Optional startup step failed, continuing")
				continue
			}
			stepLog.Error().Err(err).Msg("Startup step failed")
			return fmt.Errorf("startup step %s: %w", step.name, err)
		}
		stepLog.Info().Dur("took", time.Since(start)).Msg("Startup step finished")
	}
	return nil
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  helpers.ParseDuration(cfg.Server.ReadTimeout, 10*time.Second),
		WriteTimeout: helpers.ParseDuration(cfg.Server.WriteTimeout, 10*time.Second),
		IdleTimeout:  120 * time.Second,
	}
}

// Run serves until SIGINT or SIGTERM and then shuts down gracefully.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.serve(ctx)
}

// serve listens until ctx is done or the listener fails.
func (s *Server) serve(ctx context.Context) error {
	srv := newHTTPServer(s.config, s.handler)
	listenErr := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closePool()
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested")
	}

	return s.shutdown(srv)
}

func (s *Server) shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		s.logger.Info().Msg("HTTP server gracefully stopped.")
	}

	s.closePool()
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (s *Server) closePool() {
	if s.dbPool == nil {
		return
	}
	s.dbPool.Close()
	s.logger.Info().Msg("Database connection pool closed.")
}
