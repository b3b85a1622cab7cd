package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/recommend"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *Store
	catalog     *catalog.Catalog
	ingestor    *ingestion.Ingestor
	engine      *recommend.Engine
	rateLimiter *ratelimit.Limiter
	printer     *observability.Printer

	rngMu sync.Mutex // rand.Rand is not safe for concurrent use
	rng   *rand.Rand
}

// Config holds server configuration
type Config struct {
	Host          string
	Port          int
	Ingest        ingestion.Config
	AnalysisDelay time.Duration
	Seed          int64 // 0 means time-based
	Verbose       bool
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load career catalog: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Server{
		store:    NewStore(),
		catalog:  cat,
		ingestor: ingestion.New(cfg.Ingest),
		engine:   recommend.New(cat, rand.New(rand.NewSource(seed)), cfg.AnalysisDelay),
		rng:      rand.New(rand.NewSource(seed + 1)),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	if cfg.Verbose {
		s.printer = observability.NewPrinter(os.Stdout)
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session lifecycle
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /sessions/{id}/start", s.handleStart)
	mux.HandleFunc("POST /sessions/{id}/navigate", s.handleNavigate)

	// Profile ingestion
	mux.HandleFunc("POST /sessions/{id}/profile/file", s.handleProfileFile)
	mux.HandleFunc("POST /sessions/{id}/profile/linkedin", s.handleProfileLinkedIn)
	mux.HandleFunc("POST /sessions/{id}/profile/text", s.handleProfileText)

	// Alignment wizard
	mux.HandleFunc("GET /sessions/{id}/wizard", s.handleGetWizard)
	mux.HandleFunc("POST /sessions/{id}/wizard/careers", s.handleToggleCareer)
	mux.HandleFunc("POST /sessions/{id}/wizard/environment", s.handleSetEnvironment)
	mux.HandleFunc("POST /sessions/{id}/wizard/role", s.handleSetRoleFlavor)
	mux.HandleFunc("POST /sessions/{id}/wizard/location", s.handleSetLocation)
	mux.HandleFunc("POST /sessions/{id}/wizard/hours", s.handleSetHours)
	mux.HandleFunc("POST /sessions/{id}/wizard/next", s.handleWizardNext)
	mux.HandleFunc("POST /sessions/{id}/wizard/back", s.handleWizardBack)

	// Analysis and career selection
	mux.HandleFunc("POST /sessions/{id}/analysis", s.handleRunAnalysis)
	mux.HandleFunc("GET /sessions/{id}/recommendations", s.handleGetRecommendations)
	mux.HandleFunc("POST /sessions/{id}/career", s.handleSelectCareer)
	mux.HandleFunc("GET /sessions/{id}/dashboard", s.handleGetDashboard)

	// Learning roadmap
	mux.HandleFunc("POST /sessions/{id}/roadmap", s.handleGenerateRoadmap)
	mux.HandleFunc("GET /sessions/{id}/roadmap", s.handleGetRoadmap)
	mux.HandleFunc("POST /sessions/{id}/roadmap/tasks/{task_id}/toggle", s.handleToggleRoadmapTask)

	// Study schedule
	mux.HandleFunc("POST /sessions/{id}/schedule", s.handleGenerateSchedule)
	mux.HandleFunc("GET /sessions/{id}/schedule", s.handleGetSchedule)
	mux.HandleFunc("POST /sessions/{id}/schedule/sessions", s.handleAddStudySession)
	mux.HandleFunc("POST /sessions/{id}/schedule/sessions/{study_id}/toggle", s.handleToggleStudySession)
	mux.HandleFunc("DELETE /sessions/{id}/schedule/sessions/{study_id}", s.handleDeleteStudySession)

	// Interview simulator
	mux.HandleFunc("POST /sessions/{id}/interview", s.handleStartInterview)
	mux.HandleFunc("GET /sessions/{id}/interview", s.handleGetInterview)
	mux.HandleFunc("POST /sessions/{id}/interview/answer", s.handleSubmitAnswer)
	mux.HandleFunc("POST /sessions/{id}/interview/previous", s.handlePreviousQuestion)
	mux.HandleFunc("GET /sessions/{id}/interview/feedback", s.handleGetFeedback)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // Ingestion and analysis hold the request open
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("[server] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("[server] shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	// Stop rate limiter cleanup goroutine and release session timers
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.store.CloseAll()

	log.Println("[server] stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
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
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
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
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// domainError maps a domain error onto its HTTP status
func (s *Server) domainError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// newRoadmapRand derives a fresh RNG from the shared seed source, so plan
// generation never races on a shared rand.Rand.
func (s *Server) newRoadmapRand() *rand.Rand {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
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

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
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

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
