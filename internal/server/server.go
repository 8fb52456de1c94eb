// Package server exposes the calculators and the account endpoints over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mutualfundportal/portal/internal/auth"
	"github.com/mutualfundportal/portal/internal/calculation"
	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/logger"
	"github.com/mutualfundportal/portal/internal/repository"
	"github.com/mutualfundportal/portal/internal/validation"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators a Server is built from. Nil Cache, Engine,
// Validator and Parser get in-process defaults.
type Deps struct {
	Store     repository.Store
	Cache     repository.CacheRepository
	Auth      *auth.Service
	Engine    *calculation.Engine
	Validator *validation.Validator
	Parser    *config.InputParser
}

type Server struct {
	cfg       config.ServerConfig
	store     repository.Store
	cache     repository.CacheRepository
	auth      *auth.Service
	engine    *calculation.Engine
	validator *validation.Validator
	parser    *config.InputParser
	limiter   *RateLimiter
	router    *chi.Mux
}

// New wires the routes.
func New(cfg config.ServerConfig, deps Deps) (*Server, error) {
	if deps.Store == nil || deps.Auth == nil {
		return nil, errors.New("server requires a store and an auth service")
	}
	s := &Server{
		cfg:       cfg,
		store:     deps.Store,
		cache:     deps.Cache,
		auth:      deps.Auth,
		engine:    deps.Engine,
		validator: deps.Validator,
		parser:    deps.Parser,
	}
	if s.cache == nil {
		s.cache = repository.NewMemoryCache()
	}
	if s.engine == nil {
		s.engine = calculation.NewEngine()
	}
	if s.parser == nil {
		s.parser = config.NewInputParser()
	}
	if s.validator == nil {
		v, err := validation.NewValidator(validation.DefaultRules()...)
		if err != nil {
			return nil, fmt.Errorf("failed to compile validation rules: %w", err)
		}
		s.validator = v
	}
	// started last so a failed New leaves no cleanup goroutine behind
	s.limiter = NewRateLimiter(cfg.AuthRate, cfg.AuthBurst)
	s.setupRoutes()
	return s, nil
}

// Close releases the background work started by New. Run calls it on
// shutdown; servers used only as handlers must call it themselves.
func (s *Server) Close() {
	s.limiter.Stop()
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
	})
	r.With(s.requireAuth).Get("/stats", s.handleStats)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/calculators", s.handleListCalculators)
		r.With(s.requireAuth).Post("/calculators/{calculatorId}", s.handleCalculate)
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	defer s.Close()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", s.cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}
