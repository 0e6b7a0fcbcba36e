package api

import (
	"errors"
	"net/http"

	"github.com/meur/bisforge/internal/scrape"
	"go.uber.org/zap"
)

const (
	msgNoURL         = "No URL provided. Use ?url=YOUR_WOWHEAD_URL&role=tank|dps|healer"
	msgNoBiSURL      = "No BiS URL provided"
	msgUnsupported   = "Only Wowhead URLs are supported"
	msgInvalidRole   = "Role must be tank, dps, or healer"
	msgNoGear        = "No gear items found on that page. Make sure it's a BiS guide URL."
	msgNothingFound  = "No gear or enchants found. Make sure the URLs are correct."
	msgScrapeFailure = "Failed to scrape page"
)

// handleScrape returns the gear list of a guide page
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.Gear(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		s.respondScrapeError(w, r, err, msgNoURL)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleScrapeFull returns gear, enchants and the import string for a role
func (s *Server) handleScrapeFull(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := s.svc.Full(r.Context(), q.Get("url"), q.Get("role"))
	if err != nil {
		s.respondScrapeError(w, r, err, msgNoURL)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleScrapeBoth scrapes gear and enchants from two explicit URLs
func (s *Server) handleScrapeBoth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := s.svc.Both(r.Context(), q.Get("bisUrl"), q.Get("enchantsUrl"))
	if err != nil {
		s.respondScrapeError(w, r, err, msgNoBiSURL)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) respondScrapeError(w http.ResponseWriter, r *http.Request, err error, missingURL string) {
	switch {
	case errors.Is(err, scrape.ErrMissingURL):
		respondError(w, http.StatusBadRequest, missingURL)
	case errors.Is(err, scrape.ErrUnsupportedURL):
		respondError(w, http.StatusBadRequest, msgUnsupported)
	case errors.Is(err, scrape.ErrInvalidRole):
		respondError(w, http.StatusBadRequest, msgInvalidRole)
	case errors.Is(err, scrape.ErrNoGear):
		respondError(w, http.StatusNotFound, msgNoGear)
	case errors.Is(err, scrape.ErrNothingFound):
		respondError(w, http.StatusNotFound, msgNothingFound)
	default:
		s.log.Error("scrape failed", zap.String("path", r.URL.Path), zap.Error(err))
		respondError(w, http.StatusInternalServerError, msgScrapeFailure)
	}
}
