package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meur/bisforge/internal/models"
	"go.uber.org/zap"
)

// handleGetGuides returns the catalog, optionally filtered by class
func (s *Server) handleGetGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := s.store.GetGuides(r.URL.Query().Get("class"))
	if err != nil {
		s.log.Error("failed to list guides", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch guides")
		return
	}
	if guides == nil {
		guides = []models.Guide{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"guides":      guides,
		"total_count": len(guides),
	})
}

// handleGetGuide returns a single guide by ID
func (s *Server) handleGetGuide(w http.ResponseWriter, r *http.Request) {
	guide, ok := s.lookupGuide(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, guide)
}

// handleScrapeGuide runs a full scrape of a catalog guide. The role
// defaults to the guide's own.
func (s *Server) handleScrapeGuide(w http.ResponseWriter, r *http.Request) {
	guide, ok := s.lookupGuide(w, r)
	if !ok {
		return
	}

	role := guide.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		parsed, valid := models.ParseRole(raw)
		if !valid {
			respondError(w, http.StatusBadRequest, msgInvalidRole)
			return
		}
		role = parsed
	}

	result, err := s.svc.FullForRole(r.Context(), guide.URL, role)
	if err != nil {
		s.respondScrapeError(w, r, err, msgNoURL)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) lookupGuide(w http.ResponseWriter, r *http.Request) (*models.Guide, bool) {
	id := chi.URLParam(r, "id")

	guide, err := s.store.GetGuide(id)
	if err != nil {
		s.log.Error("failed to fetch guide", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch guide")
		return nil, false
	}
	if guide == nil {
		respondError(w, http.StatusNotFound, "Guide not found")
		return nil, false
	}
	return guide, true
}
