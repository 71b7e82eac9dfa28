package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthmateai/healthmate/internal/adapters/catalog"
	"github.com/healthmateai/healthmate/internal/adapters/providers/analysis"
	"github.com/healthmateai/healthmate/internal/adapters/providers/scheduling"
	"github.com/healthmateai/healthmate/internal/api/handlers"
	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/web"
)

func newPageHandler(t *testing.T) *handlers.PageHandler {
	t.Helper()

	c := catalog.MustLoad()
	renderer, err := web.NewRenderer(5 * time.Second)
	require.NoError(t, err)

	return handlers.NewPageHandler(handlers.PageDependencies{
		Content:      services.NewContentService(c),
		Appointments: services.NewAppointmentService(c, scheduling.NewMockAdapter(0), nil),
		Symptoms:     services.NewSymptomCheckerService(analysis.NewCannedAnalyzer(c, 0), nil),
		Treatments:   services.NewTreatmentService(c),
		Contact:      services.NewContactService(nil),
		Guard:        handlers.NewSubmissionGuard(nil, 5, time.Minute, time.Hour),
		Renderer:     renderer,
	})
}

func postForm(h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "192.0.2.10:41234"
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestPageHandler_StaticPages(t *testing.T) {
	handler := newPageHandler(t)

	tests := []struct {
		name       string
		serve      http.HandlerFunc
		path       string
		wantStatus int
		wantBody   string
	}{
		{"home", handler.Home, "/", http.StatusOK, "Why Choose HealthMate AI?"},
		{"about", handler.About, "/about", http.StatusOK, "Making healthcare accessible, intelligent, and human."},
		{"privacy", handler.PrivacyPolicy, "/privacy-policy", http.StatusOK, "Data Retention"},
		{"dashboard", handler.Dashboard, "/dashboard?tab=appointments", http.StatusOK, `href="/dashboard?tab=appointments" class="tab active"`},
		{"unknown path", handler.NotFound, "/no-such-page", http.StatusNotFound, "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			tt.serve(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestPageHandler_SymptomChecker_Steps(t *testing.T) {
	handler := newPageHandler(t)

	w := postForm(handler.SymptomCheckerSubmit, "/symptom-checker", url.Values{
		"step":   {"1"},
		"action": {"next"},
		"age":    {"34"},
		"gender": {"female"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Step 2 of 4")
	assert.Contains(t, body, `name="age" value="34"`)

	w = postForm(handler.SymptomCheckerSubmit, "/symptom-checker", url.Values{
		"step":   {"1"},
		"action": {"back"},
	})
	assert.Contains(t, w.Body.String(), "Step 1 of 4")

	w = postForm(handler.SymptomCheckerSubmit, "/symptom-checker", url.Values{
		"step":   {"4"},
		"action": {"next"},
	})
	assert.Contains(t, w.Body.String(), "Step 4 of 4")
}

func TestPageHandler_SymptomChecker_AnalyzeOnlyOnReviewStep(t *testing.T) {
	handler := newPageHandler(t)

	w := postForm(handler.SymptomCheckerSubmit, "/symptom-checker", url.Values{
		"step":     {"2"},
		"action":   {"analyze"},
		"symptoms": {"headache"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Step 2 of 4")
	assert.NotContains(t, w.Body.String(), "Urgency Level")

	w = postForm(handler.SymptomCheckerSubmit, "/symptom-checker", url.Values{
		"step":     {"4"},
		"action":   {"analyze"},
		"symptoms": {"headache"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Urgency Level: <strong>Low</strong>")
	assert.Contains(t, body, "Common Cold")
	assert.Contains(t, body, "Start Over")

	w = postForm(handler.SymptomCheckerSubmit, "/symptom-checker", url.Values{
		"step":     {"4"},
		"action":   {"restart"},
		"symptoms": {"headache"},
	})
	assert.Contains(t, w.Body.String(), "Step 1 of 4")
	assert.NotContains(t, w.Body.String(), `value="headache"`)
}

func TestPageHandler_TreatmentSuggestions(t *testing.T) {
	handler := newPageHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/treatment-suggestions?q=headache", nil)
	w := httptest.NewRecorder()
	handler.TreatmentSuggestions(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Headache")
	assert.NotContains(t, w.Body.String(), "Upset Stomach")

	req = httptest.NewRequest(http.MethodGet, "/treatment-suggestions?q=xyznotfound", nil)
	w = httptest.NewRecorder()
	handler.TreatmentSuggestions(w, req)
	assert.Contains(t, w.Body.String(), "No treatments found matching your criteria.")
}

func TestPageHandler_BookAppointment(t *testing.T) {
	handler := newPageHandler(t)

	t.Run("selecting a doctor keeps the draft", func(t *testing.T) {
		w := postForm(handler.BookAppointmentSubmit, "/book-appointment", url.Values{
			"action":    {"select"},
			"doctor_id": {"1"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "4:45 PM")
		assert.NotContains(t, w.Body.String(), "Missing Information")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postForm(handler.BookAppointmentSubmit, "/book-appointment", url.Values{
			"action":    {"book"},
			"doctor_id": {"1"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing Information")
		assert.Contains(t, w.Body.String(), "invalid")
	})

	t.Run("booked", func(t *testing.T) {
		w := postForm(handler.BookAppointmentSubmit, "/book-appointment", url.Values{
			"action":     {"book"},
			"doctor_id":  {"1"},
			"date":       {"2026-11-02"},
			"time":       {"9:00 AM"},
			"type":       {"consultation"},
			"first_name": {"Jane"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Appointment Booked!")
		assert.Contains(t, body, "Appointment Confirmed")
		assert.Contains(t, body, "Dr. Sarah Johnson")
	})
}

func TestPageHandler_ContactSubmit(t *testing.T) {
	handler := newPageHandler(t)
	form := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"message": {"Do you accept Aetna?"},
	}

	w := postForm(handler.ContactSubmit, "/contact", url.Values{"name": {"Jane Doe"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing Information")
	assert.Contains(t, w.Body.String(), `value="Jane Doe"`)

	w = postForm(handler.ContactSubmit, "/contact", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message Sent!")
	assert.NotContains(t, w.Body.String(), `value="Jane Doe"`)

	w = postForm(handler.ContactSubmit, "/contact", form)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Already Received")
}
