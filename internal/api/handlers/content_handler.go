package handlers

import (
	"net/http"

	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// ContentService defines the static content lookups used by the handlers.
type ContentService interface {
	Navigation() []entities.NavItem
	Home() entities.HomePage
	About() entities.AboutPage
	Testimonials() entities.TestimonialsPage
	ContactPage() entities.ContactPage
	PrivacyPolicy() entities.PrivacyPolicy
	FAQs() []entities.FAQ
	Dashboard(tab string) services.DashboardView
}

// ContentHandler serves the static site content as JSON
type ContentHandler struct {
	service ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(service ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetNavigation handles GET /api/navigation
func (h *ContentHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.service.Navigation(),
	})
}

// GetTestimonials handles GET /api/testimonials
func (h *ContentHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Testimonials())
}

// GetFAQs handles GET /api/faqs
func (h *ContentHandler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"faqs": h.service.FAQs(),
	})
}

// GetPrivacyPolicy handles GET /api/privacy-policy
func (h *ContentHandler) GetPrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.PrivacyPolicy())
}

// GetDashboard handles GET /api/dashboard?tab=
func (h *ContentHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Dashboard(r.URL.Query().Get("tab")))
}
