package routes

import (
	"net/http"

	"github.com/healthmateai/healthmate/internal/api/handlers"
	"github.com/healthmateai/healthmate/internal/api/middleware"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	pageHandler         *handlers.PageHandler
	appointmentHandler  *handlers.AppointmentHandler
	symptomHandler      *handlers.SymptomCheckerHandler
	treatmentHandler    *handlers.TreatmentHandler
	contactHandler      *handlers.ContactHandler
	contentHandler      *handlers.ContentHandler
	notificationHandler *handlers.NotificationStreamHandler
	staticHandler       http.Handler
	cacheMiddleware     *middleware.CacheMiddleware
	allowedOrigins      []string
	secureCookies       bool
	metrics             *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	pageHandler *handlers.PageHandler,
	appointmentHandler *handlers.AppointmentHandler,
	symptomHandler *handlers.SymptomCheckerHandler,
	treatmentHandler *handlers.TreatmentHandler,
	contactHandler *handlers.ContactHandler,
	contentHandler *handlers.ContentHandler,
	notificationHandler *handlers.NotificationStreamHandler,
	staticHandler http.Handler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	secureCookies bool,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                 http.NewServeMux(),
		pageHandler:         pageHandler,
		appointmentHandler:  appointmentHandler,
		symptomHandler:      symptomHandler,
		treatmentHandler:    treatmentHandler,
		contactHandler:      contactHandler,
		contentHandler:      contentHandler,
		notificationHandler: notificationHandler,
		staticHandler:       staticHandler,
		cacheMiddleware:     cacheMiddleware,
		allowedOrigins:      allowedOrigins,
		secureCookies:       secureCookies,
		metrics:             metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Pages
	r.mux.HandleFunc("GET /{$}", r.pageHandler.Home)
	r.mux.HandleFunc("GET /about", r.pageHandler.About)
	r.mux.HandleFunc("GET /testimonials", r.pageHandler.Testimonials)
	r.mux.HandleFunc("GET /privacy-policy", r.pageHandler.PrivacyPolicy)
	r.mux.HandleFunc("GET /dashboard", r.pageHandler.Dashboard)
	r.mux.HandleFunc("GET /symptom-checker", r.pageHandler.SymptomChecker)
	r.mux.HandleFunc("POST /symptom-checker", r.pageHandler.SymptomCheckerSubmit)
	r.mux.HandleFunc("GET /treatment-suggestions", r.pageHandler.TreatmentSuggestions)
	r.mux.HandleFunc("GET /book-appointment", r.pageHandler.BookAppointment)
	r.mux.HandleFunc("POST /book-appointment", r.pageHandler.BookAppointmentSubmit)
	r.mux.HandleFunc("GET /contact", r.pageHandler.Contact)
	r.mux.HandleFunc("POST /contact", r.pageHandler.ContactSubmit)
	r.mux.Handle("GET /static/", r.staticHandler)
	r.mux.HandleFunc("/", r.pageHandler.NotFound)

	// Appointment endpoints
	r.mux.HandleFunc("GET /api/doctors", r.appointmentHandler.ListDoctors)
	r.mux.HandleFunc("GET /api/doctors/{id}", r.appointmentHandler.GetDoctor)
	r.mux.HandleFunc("GET /api/appointment-types", r.appointmentHandler.ListAppointmentTypes)
	r.mux.HandleFunc("GET /api/time-slots", r.appointmentHandler.GetTimeSlots)
	r.mux.HandleFunc("POST /api/appointments", r.appointmentHandler.BookAppointment)

	// Symptom checker endpoints
	r.mux.HandleFunc("POST /api/symptom-checker/step", r.symptomHandler.Step)
	r.mux.HandleFunc("POST /api/symptom-checker/analyze", r.symptomHandler.Analyze)

	// Treatment endpoints
	r.mux.HandleFunc("GET /api/treatments", r.treatmentHandler.SearchTreatments)
	r.mux.HandleFunc("GET /api/treatment-categories", r.treatmentHandler.ListCategories)

	// Content endpoints
	r.mux.HandleFunc("GET /api/navigation", r.contentHandler.GetNavigation)
	r.mux.HandleFunc("GET /api/testimonials", r.contentHandler.GetTestimonials)
	r.mux.HandleFunc("GET /api/faqs", r.contentHandler.GetFAQs)
	r.mux.HandleFunc("GET /api/privacy-policy", r.contentHandler.GetPrivacyPolicy)
	r.mux.HandleFunc("GET /api/dashboard", r.contentHandler.GetDashboard)

	// Contact endpoint
	r.mux.HandleFunc("POST /api/contact", r.contactHandler.SubmitContact)

	// Notification stream
	r.mux.HandleFunc("GET "+middleware.StreamPath, r.notificationHandler.Stream)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	// Outside the cache so every visitor gets a cookie even on cache HITs
	handler = middleware.ClientID(r.secureCookies)(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.RequestID(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORS(r.allowedOrigins)(handler)

	return handler
}
