package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mutualfundportal/portal/internal/auth"
	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/internal/logger"
	"github.com/mutualfundportal/portal/internal/validation"
)

const statsCacheKey = "portal:stats"

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	sess, err := s.auth.Register(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrUserExists), errors.Is(err, auth.ErrPasswordTooLong):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	logger.Info("user registered", "username", sess.User.Username)
	respondJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	sess, err := s.auth.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials), errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// Stats is the /stats payload.
type Stats struct {
	Users     int `json:"users"`
	Proposals int `json:"proposals"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cached, ok := s.cache.Get(ctx, statsCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	users, err := s.store.CountUsers(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	proposals, err := s.store.CountProposals(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Server error", err)
		return
	}

	stats := Stats{Users: users, Proposals: proposals}
	if data, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, string(data)+"\n", s.cfg.StatsCacheTTL); err != nil {
			logger.Warn("failed to cache stats", "error", err)
		}
	}
	w.Header().Set("X-Cache", "MISS")
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"calculators": len(domain.AllKinds),
		"requests": map[string]int64{
			"errors": logger.TotalErrors.Load(),
			"4xx":    logger.Total4xxErrors.Load(),
			"5xx":    logger.Total5xxErrors.Load(),
			"429":    logger.Total429Errors.Load(),
		},
	})
}

func (s *Server) handleListCalculators(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"calculators": domain.Catalog(),
	})
}

// calculateRequest is the modal form: the holder's profile plus raw field
// values, percentages entered as 0-100.
type calculateRequest struct {
	Profile domain.BasicInfo   `json:"profile"`
	Fields  map[string]float64 `json:"fields"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "calculatorId")
	kind, err := domain.ParseKind(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "calculator not found", nil)
		return
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	in, err := s.parser.BuildInput(domain.CalculationRequest{Calculator: string(kind), Fields: req.Fields}, req.Profile)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := s.validator.Validate(in); err != nil {
		var violations validation.Violations
		if errors.As(err, &violations) {
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"message":    err.Error(),
				"violations": violations,
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "validation failed", err)
		return
	}

	result, err := s.engine.Calculate(in)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "calculation failed", err)
		return
	}
	if c, ok := claimsFrom(r.Context()); ok {
		logger.Debug("calculation", "calculator", kind, "user", c.Username)
	}
	respondJSON(w, http.StatusOK, result)
}
