package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthmateai/healthmate/internal/api/handlers"
	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
)

func TestContentHandler_GetDashboard_PassesTab(t *testing.T) {
	mockService := new(MockContentService)
	handler := handlers.NewContentHandler(mockService)
	mockService.On("Dashboard", "bogus").Return(services.DashboardView{ActiveTab: entities.DashboardTabOverview})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?tab=bogus", nil)
	w := httptest.NewRecorder()
	handler.GetDashboard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active_tab":"overview"`)
	mockService.AssertExpectations(t)
}

func TestContentHandler_StaticContent(t *testing.T) {
	mockService := new(MockContentService)
	handler := handlers.NewContentHandler(mockService)
	mockService.On("Navigation").Return([]entities.NavItem{{Name: "Home", Path: "/"}})
	mockService.On("FAQs").Return([]entities.FAQ{{Question: "Is my health data secure?"}})
	mockService.On("Testimonials").Return(entities.TestimonialsPage{Testimonials: []entities.Testimonial{{Name: "Sarah M."}}})
	mockService.On("PrivacyPolicy").Return(entities.PrivacyPolicy{LastUpdated: "December 20, 2024"})

	tests := []struct {
		handler  http.HandlerFunc
		url      string
		wantBody string
	}{
		{handler.GetNavigation, "/api/navigation", `"items":[{"name":"Home","path":"/"}]`},
		{handler.GetFAQs, "/api/faqs", `"question":"Is my health data secure?"`},
		{handler.GetTestimonials, "/api/testimonials", `"name":"Sarah M."`},
		{handler.GetPrivacyPolicy, "/api/privacy-policy", `"last_updated":"December 20, 2024"`},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			tt.handler(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
