package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/bisforge/internal/metrics"
	"github.com/meur/bisforge/internal/scrape"
	"github.com/meur/bisforge/internal/storage"
	"go.uber.org/zap"
)

// Options configures the HTTP server
type Options struct {
	AllowedOrigins []string
	// AccessLog enables chi's request logger
	AccessLog bool
}

// Server holds the HTTP server dependencies
type Server struct {
	svc     *scrape.Service
	store   *storage.Store
	metrics *metrics.Metrics
	log     *zap.Logger
	router  chi.Router
}

// New creates a new API server. store and m may be nil, which leaves the
// guide and metrics routes unmounted.
func New(svc *scrape.Service, store *storage.Store, m *metrics.Metrics, log *zap.Logger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		svc:     svc,
		store:   store,
		metrics: m,
		log:     log,
		router:  chi.NewRouter(),
	}

	s.setupMiddleware(opts)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(opts Options) {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.router.Use(middleware.RequestID)
	if opts.AccessLog {
		s.router.Use(middleware.Logger)
	}
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	// Scrapes
	s.router.Get("/scrape", s.handleScrape)
	s.router.Get("/scrape-full", s.handleScrapeFull)
	s.router.Get("/scrape-both", s.handleScrapeBoth)

	// Guide catalog
	if s.store != nil {
		s.router.Route("/api", func(r chi.Router) {
			r.Get("/guides", s.handleGetGuides)
			r.Get("/guides/{id}", s.handleGetGuide)
			r.Get("/guides/{id}/scrape", s.handleScrapeGuide)
		})
	}

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler())
	}

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{"success": false, "error": message})
}
