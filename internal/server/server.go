package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/paceline/internal/ingest/csvfeed"
	"github.com/claude/paceline/internal/ingest/jsonfeed"
	"github.com/claude/paceline/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	json   *jsonfeed.Provider
	csv    *csvfeed.Provider
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, jsonProvider *jsonfeed.Provider, csvProvider *csvfeed.Provider, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		json:   jsonProvider,
		csv:    csvProvider,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Ingest endpoints (API key required)
	s.router.Route("/api/v1/ingest", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleJSONIngest)
		r.Post("/csv", s.handleCSVIngest)
	})

	// One-shot computation, no storage involved
	s.router.Post("/api/v1/compute", s.handleCompute)

	// Dashboard API endpoints
	s.router.Get("/api/v1/sessions", s.handleQuerySessions)
	s.router.Get("/api/v1/sessions/{id}", s.handleGetSession)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/healthz", s.handleHealthz)
}
