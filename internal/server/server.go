// Package server provides the HTTP REST API for the talent engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-engine/internal/matching"
	"github.com/jonathan/talent-engine/internal/rules"
	"github.com/jonathan/talent-engine/internal/scoring"
	"github.com/jonathan/talent-engine/internal/server/ratelimit"
	"github.com/jonathan/talent-engine/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	scorer      *scoring.Engine
	matcher     *matching.Engine
	ruleEngine  *rules.Engine
	executions  store.ExecutionStore
	pgStore     *store.PostgresStore
	rateLimiter *ratelimit.Limiter
	log         *zap.Logger
	minScore    float64
}

// Config holds server configuration
type Config struct {
	ListenAddr       string
	DatabaseURL      string
	RulesFile        string
	ActionTimeout    time.Duration
	ExecutionHistory int
	MinScore         float64
	Logger           *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		scorer:   scoring.MustDefault(),
		log:      log,
		minScore: cfg.MinScore,
	}
	s.matcher = matching.NewEngine(s.scorer)

	// Execution store: Postgres when configured, bounded memory otherwise.
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.pgStore = pg
		s.executions = pg
	} else {
		s.executions = store.NewMemoryStore(cfg.ExecutionHistory)
	}

	ruleSet := rules.BuiltinRules()
	if cfg.RulesFile != "" {
		loaded, err := rules.LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule file: %w", err)
		}
		ruleSet = loaded
	}
	ruleEngine, err := rules.NewEngine(ruleSet, rules.Options{
		Store:         s.executions,
		Logger:        log,
		ActionTimeout: cfg.ActionTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build rule engine: %w", err)
	}
	s.ruleEngine = ruleEngine

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /match/rank", s.handleRankCandidates)
	mux.HandleFunc("POST /match/jobs", s.handleRankJobs)
	mux.HandleFunc("POST /benchmark", s.handleBenchmark)
	mux.HandleFunc("POST /benchmark/stats", s.handleBenchmarkStats)
	mux.HandleFunc("POST /pipeline/advance", s.handlePipelineAdvance)
	mux.HandleFunc("POST /pipeline/stats", s.handlePipelineStats)
	mux.HandleFunc("POST /recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /executions", s.handleListExecutions)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.pgStore != nil {
		s.pgStore.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
