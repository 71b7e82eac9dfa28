package handlers

import (
	"net/http"
	"strings"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// TreatmentService defines the treatment operations used by the handler.
type TreatmentService interface {
	Search(query, category string) []entities.Treatment
	Categories() []entities.TreatmentCategory
}

// TreatmentHandler handles treatment suggestion requests
type TreatmentHandler struct {
	service TreatmentService
}

// NewTreatmentHandler creates a new treatment handler
func NewTreatmentHandler(service TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{service: service}
}

// SearchTreatments handles GET /api/treatments?q=&category=
func (h *TreatmentHandler) SearchTreatments(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		category = entities.CategoryAll
	}

	results := h.service.Search(query, category)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"query":      query,
		"category":   category,
		"treatments": results,
		"count":      len(results),
	})
}

// ListCategories handles GET /api/treatment-categories
func (h *TreatmentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.service.Categories(),
	})
}
