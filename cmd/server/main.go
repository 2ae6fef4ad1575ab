package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/tripforge/packlist/entitlement"
	"github.com/tripforge/packlist/internal/logger"
	"github.com/tripforge/packlist/packing"
	"github.com/tripforge/packlist/trips"
)

// Config is loaded from the environment. Without DATABASE_URL the server
// runs entirely on in-memory stores.
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	Port           string `env:"PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"INFO"`
	TierLimitsFile string `env:"TIER_LIMITS_FILE"`
}

type Server struct {
	db         *sql.DB
	generator  *packing.Generator
	ruleEngine *packing.RuleEngine
	evaluator  *entitlement.Evaluator
	tripStore  trips.Store
	router     *chi.Mux
}

func NewServer(cfg Config) (*Server, error) {
	var db *sql.DB
	var tripStore trips.Store
	var ruleStore packing.RuleStore
	var usageStore entitlement.UsageStore

	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		tripStore = trips.NewPostgresStore(db)
		ruleStore = packing.NewPostgresRuleStore(db)
		usageStore = entitlement.NewPostgresUsageStore(db)
		logger.Logger.Info("using postgres stores")
	} else {
		tripStore = trips.NewInMemoryStore()
		ruleStore = packing.NewInMemoryRuleStore()
		usageStore = entitlement.NewInMemoryUsageStore()
		logger.Logger.Info("DATABASE_URL not set, using in-memory stores")
	}

	ruleEngine, err := packing.NewRuleEngine(ruleStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule engine: %w", err)
	}

	limits := entitlement.DefaultLimits()
	if cfg.TierLimitsFile != "" {
		limits, err = entitlement.LoadLimits(cfg.TierLimitsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load tier limits: %w", err)
		}
		logger.Logger.Info("loaded tier limits", "file", cfg.TierLimitsFile)
	}

	s := &Server{
		db:         db,
		generator:  packing.NewGenerator(packing.WithCustomRules(ruleEngine)),
		ruleEngine: ruleEngine,
		evaluator:  entitlement.NewEvaluator(limits, usageStore),
		tripStore:  tripStore,
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/api/v1/health", s.handleHealth)

	r.Post("/api/v1/packing-lists", s.handleGenerate)

	r.Post("/api/v1/entitlements/check", s.handleCheckEntitlement)

	r.Route("/api/v1/trips", func(r chi.Router) {
		r.Get("/", s.handleListTrips)
		r.Post("/", s.handleCreateTrip)

		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Put("/", s.handleUpdateTrip)
			r.Delete("/", s.handleDeleteTrip)
			r.Get("/packing-list", s.handleTripPackingList)
		})
	})

	r.Route("/api/v1/rules", func(r chi.Router) {
		r.Get("/", s.handleListRules)
		r.Post("/", s.handleCreateRule)
		r.Get("/{ruleId}", s.handleGetRule)
		r.Put("/{ruleId}", s.handleUpdateRule)
		r.Delete("/{ruleId}", s.handleDeleteRule)
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// handleGenerate builds a packing list directly from request parameters
// without persisting anything. Generation is not metered.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	startTime := time.Now()
	items, warnings := s.generator.Generate(&req.Trip)

	respondJSON(w, http.StatusOK, GenerateResponse{
		Items:          items,
		Warnings:       warnings,
		GenerationTime: time.Since(startTime).String(),
	})
}

func (s *Server) handleCheckEntitlement(w http.ResponseWriter, r *http.Request) {
	var req EntitlementCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Action == "" {
		respondError(w, http.StatusBadRequest, "action is required", nil)
		return
	}

	decision, err := s.evaluator.CanPerform(req.Subscription, req.Action)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "entitlement check failed", err)
		return
	}

	respondJSON(w, http.StatusOK, decision)
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	all, err := s.tripStore.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list trips", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"trips": all,
	})
}

// handleCreateTrip is entitlement-gated: the check happens before the
// insert, and usage is recorded only after the insert succeeds.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Trip.Name == "" || req.Trip.Destination == "" {
		respondError(w, http.StatusBadRequest, "name and destination are required", nil)
		return
	}

	decision, err := s.evaluator.CanPerform(req.Subscription, entitlement.ActionCreateTrip)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "entitlement check failed", err)
		return
	}
	if !decision.Allowed {
		respondJSON(w, http.StatusForbidden, map[string]any{
			"error":    "trip limit reached for the current plan",
			"decision": decision,
		})
		return
	}

	trip := req.Trip
	trip.ID = uuid.NewString()

	if err := s.tripStore.Add(&trip); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create trip", err)
		return
	}

	if err := s.evaluator.RecordUsage(entitlement.ActionCreateTrip); err != nil {
		logger.Logger.Error("failed to record usage", "action", entitlement.ActionCreateTrip, "error", err)
	}

	respondJSON(w, http.StatusCreated, trip)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	trip, err := s.tripStore.Get(tripID)
	if err != nil {
		respondError(w, http.StatusNotFound, "trip not found", err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	var trip trips.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	trip.ID = tripID

	if err := s.tripStore.Update(&trip); err != nil {
		respondError(w, http.StatusNotFound, "failed to update trip", err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	if err := s.tripStore.Delete(tripID); err != nil {
		respondError(w, http.StatusNotFound, "trip not found", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleTripPackingList generates a fresh list from a saved trip. The result
// replaces any previously generated list; edits are not reconciled.
func (s *Server) handleTripPackingList(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	trip, err := s.tripStore.Get(tripID)
	if err != nil {
		respondError(w, http.StatusNotFound, "trip not found", err)
		return
	}

	params := trip.Parameters()
	startTime := time.Now()
	items, warnings := s.generator.Generate(&params)

	respondJSON(w, http.StatusOK, GenerateResponse{
		Items:          items,
		Warnings:       warnings,
		GenerationTime: time.Since(startTime).String(),
	})
}

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.ruleEngine.ListActive()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list rules", err)
		return
	}
	if rules == nil {
		rules = []*packing.CustomRule{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"rules": rules,
	})
}

func (s *Server) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	var req CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Name == "" || req.Expression == "" {
		respondError(w, http.StatusBadRequest, "name and expression are required", nil)
		return
	}

	rule := &packing.CustomRule{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Expression: req.Expression,
		Points:     req.Points,
		Active:     req.Active,
	}

	if err := s.ruleEngine.AddRule(rule); err != nil {
		respondError(w, http.StatusBadRequest, "failed to add rule", err)
		return
	}

	respondJSON(w, http.StatusCreated, rule)
}

func (s *Server) handleGetRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "ruleId")

	rule, err := s.ruleEngine.GetRule(ruleID)
	if err != nil {
		respondError(w, http.StatusNotFound, "rule not found", err)
		return
	}

	respondJSON(w, http.StatusOK, rule)
}

func (s *Server) handleUpdateRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "ruleId")

	var req CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rule := &packing.CustomRule{
		ID:         ruleID,
		Name:       req.Name,
		Expression: req.Expression,
		Points:     req.Points,
		Active:     req.Active,
	}

	if err := s.ruleEngine.UpdateRule(rule); err != nil {
		respondError(w, http.StatusBadRequest, "failed to update rule", err)
		return
	}

	respondJSON(w, http.StatusOK, rule)
}

func (s *Server) handleDeleteRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "ruleId")

	if err := s.ruleEngine.DeleteRule(ruleID); err != nil {
		respondError(w, http.StatusNotFound, "rule not found", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		logger.Logger.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	if level, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		logger.Logger.Warn("invalid log level", "value", cfg.LogLevel)
	} else {
		logger.SetLevel(level)
	}

	server, err := NewServer(cfg)
	if err != nil {
		logger.Logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}
	if server.db != nil {
		defer server.db.Close()
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("server starting", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Logger.Error("server shutdown error", "error", err)
	}

	logger.Logger.Info("server stopped")
}
