package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/wizard"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
	"github.com/healthmateai/healthmate/internal/web"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

const maxFormBytes = 64 << 10

// Form actions posted by the page templates.
const (
	formActionAnalyze = "analyze"
	formActionRestart = "restart"
	formActionBook    = "book"
)

// PageRenderer renders a named page template.
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, page string, data web.PageData) error
}

// PageDependencies are the collaborators of the page handler.
type PageDependencies struct {
	Content      ContentService
	Appointments AppointmentService
	Symptoms     SymptomCheckerService
	Treatments   TreatmentService
	Contact      ContactService
	Guard        *SubmissionGuard
	Renderer     PageRenderer
	Metrics      *observability.Metrics
}

// PageHandler serves the server-rendered HTML pages. All page state comes
// from the request; nothing is kept between requests.
type PageHandler struct {
	deps PageDependencies
	now  func() time.Time
}

// NewPageHandler creates a new page handler
func NewPageHandler(deps PageDependencies) *PageHandler {
	return &PageHandler{deps: deps, now: time.Now}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageHome, "", h.deps.Content.Home(), nil)
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageAbout, "About", h.deps.Content.About(), nil)
}

// Testimonials handles GET /testimonials
func (h *PageHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageTestimonials, "Testimonials", h.deps.Content.Testimonials(), nil)
}

// PrivacyPolicy handles GET /privacy-policy
func (h *PageHandler) PrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PagePrivacy, "Privacy Policy", h.deps.Content.PrivacyPolicy(), nil)
}

// Dashboard handles GET /dashboard?tab=
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageDashboard, "Dashboard", h.deps.Content.Dashboard(r.URL.Query().Get("tab")), nil)
}

// NotFound renders the 404 page for any unmatched path.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	observability.LoggerFromContext(r.Context()).Warn().Str("path", r.URL.Path).Msg("Page not found")
	h.render(w, r, http.StatusNotFound, web.PageNotFound, "Page Not Found", nil, nil)
}

// SymptomChecker handles GET /symptom-checker
func (h *PageHandler) SymptomChecker(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageSymptomChecker, "Symptom Checker", h.symptomView(services.NewSymptomSession()), nil)
}

// SymptomCheckerSubmit handles POST /symptom-checker. The form carries the
// current step and every answer given so far.
func (h *PageHandler) SymptomCheckerSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	step, _ := strconv.Atoi(r.PostFormValue("step"))
	session := services.SymptomSession{
		Step:   wizard.At(step, services.SymptomCheckerSteps),
		Intake: intakeFromForm(r),
	}

	action := r.PostFormValue("action")
	switch action {
	case formActionRestart:
		session = services.NewSymptomSession()
	case formActionAnalyze:
		session = h.deps.Symptoms.Step(session, services.StepStay)
		if !session.Step.IsLast() {
			break
		}
		result, err := h.deps.Symptoms.Analyze(r.Context(), session.Intake)
		if err != nil {
			if isCancelled(err) {
				return
			}
			observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "symptom_checker", "error")
			h.renderError(w, r, err)
			return
		}
		observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "symptom_checker", "analyzed")
		view := h.symptomView(session)
		view.Result = result
		h.render(w, r, http.StatusOK, web.PageSymptomChecker, "Symptom Checker", view, nil)
		return
	default:
		session = h.deps.Symptoms.Step(session, services.StepAction(action))
	}

	h.render(w, r, http.StatusOK, web.PageSymptomChecker, "Symptom Checker", h.symptomView(session), nil)
}

// TreatmentSuggestions handles GET /treatment-suggestions?q=&category=
func (h *PageHandler) TreatmentSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = entities.CategoryAll
	}

	view := web.TreatmentsView{
		Query:      query,
		Category:   category,
		Categories: h.deps.Treatments.Categories(),
		Treatments: h.deps.Treatments.Search(query, category),
	}
	h.render(w, r, http.StatusOK, web.PageTreatments, "Treatment Suggestions", view, nil)
}

// BookAppointment handles GET /book-appointment?doctor=
func (h *PageHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	draft := entities.AppointmentDraft{}
	if id, err := strconv.Atoi(r.URL.Query().Get("doctor")); err == nil {
		draft = draft.WithDoctor(id)
	}
	h.render(w, r, http.StatusOK, web.PageBooking, "Book Appointment", h.bookingView(draft), nil)
}

// BookAppointmentSubmit handles POST /book-appointment. Any action other
// than "book" re-renders the form with the posted selections.
func (h *PageHandler) BookAppointmentSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	draft := draftFromForm(r)
	if r.PostFormValue("action") != formActionBook {
		h.render(w, r, http.StatusOK, web.PageBooking, "Book Appointment", h.bookingView(draft), nil)
		return
	}

	outcome, err := h.deps.Appointments.Book(r.Context(), draft)
	if err != nil {
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeValidation && outcome != nil {
			observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "booking", "invalid")
			view := h.bookingView(outcome.Draft)
			view.Missing = appErr.Fields
			h.render(w, r, http.StatusBadRequest, web.PageBooking, "Book Appointment", view, &outcome.Notification)
			return
		}
		if isCancelled(err) {
			return
		}
		observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "booking", "error")
		h.renderError(w, r, err)
		return
	}

	observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "booking", "booked")
	view := h.bookingView(outcome.Draft)
	view.Confirmation = outcome.Confirmation
	h.render(w, r, http.StatusOK, web.PageBooking, "Book Appointment", view, &outcome.Notification)
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageContact, "Contact", web.ContactView{Page: h.deps.Content.ContactPage()}, nil)
}

// ContactSubmit handles POST /contact
func (h *PageHandler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	msg := entities.ContactMessage{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Subject:  r.PostFormValue("subject"),
		Message:  r.PostFormValue("message"),
		Category: r.PostFormValue("category"),
	}
	view := web.ContactView{Page: h.deps.Content.ContactPage(), Form: msg}

	ip := clientIP(r)
	if allowed, retryAfter := h.deps.Guard.Allow(r.Context(), "contact:"+ip); !allowed {
		observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "contact", "rate_limited")
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		n := entities.NewErrorNotification("Too Many Messages", "Please wait a while before sending another message.")
		h.render(w, r, http.StatusTooManyRequests, web.PageContact, "Contact", view, &n)
		return
	}

	fp := contactFingerprint(msg, ip)
	if h.deps.Guard.Seen(r.Context(), fp) {
		observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "contact", "duplicate")
		n := entities.NewNotification("Already Received", "We already have this message and will reply soon.")
		h.render(w, r, http.StatusOK, web.PageContact, "Contact", web.ContactView{Page: view.Page}, &n)
		return
	}

	outcome, err := h.deps.Contact.Submit(r.Context(), msg)
	if err != nil {
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeValidation && outcome != nil {
			observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "contact", "invalid")
			view.Form = outcome.Message
			view.Missing = appErr.Fields
			h.render(w, r, http.StatusBadRequest, web.PageContact, "Contact", view, &outcome.Notification)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.deps.Guard.Remember(r.Context(), fp)
	observability.RecordFormSubmission(r.Context(), h.deps.Metrics, "contact", "sent")
	view.Form = outcome.Message
	h.render(w, r, http.StatusOK, web.PageContact, "Contact", view, &outcome.Notification)
}

func (h *PageHandler) symptomView(session services.SymptomSession) web.SymptomCheckerView {
	return web.SymptomCheckerView{
		Session:         session,
		GenderOptions:   entities.GenderOptions,
		SeverityOptions: entities.SeverityOptions,
		DurationOptions: entities.DurationOptions,
	}
}

func (h *PageHandler) bookingView(draft entities.AppointmentDraft) web.BookingView {
	view := web.BookingView{
		Draft:            draft,
		Doctors:          h.deps.Appointments.Doctors(),
		AppointmentTypes: h.deps.Appointments.AppointmentTypes(),
		Insurance:        h.deps.Appointments.InsuranceOptions(),
		TimeSlots:        h.deps.Appointments.TimeSlots(draft.DoctorID),
		MinDate:          h.now().Format("2006-01-02"),
	}
	if draft.HasDoctor() {
		if doctor, err := h.deps.Appointments.Doctor(draft.DoctorID); err == nil {
			view.SelectedDoctor = doctor
		}
	}
	for i := range view.AppointmentTypes {
		if view.AppointmentTypes[i].ID == draft.Type {
			view.SelectedType = &view.AppointmentTypes[i]
			break
		}
	}
	return view
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, content interface{}, n *entities.Notification) {
	data := web.PageData{
		Title:        title,
		Path:         r.URL.Path,
		Nav:          h.deps.Content.Navigation(),
		Notification: n,
		Content:      content,
	}
	if err := h.deps.Renderer.Render(w, status, page, data); err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Something went wrong. Please try again."
	if appErr, ok := apperrors.As(err); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			status, message = http.StatusNotFound, appErr.Message
		case apperrors.ErrorTypeExternal:
			status, message = http.StatusBadGateway, "The service is temporarily unavailable. Please try again."
		}
	}
	observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Page request failed")
	h.render(w, r, status, web.PageError, "Error", web.ErrorView{Status: status, Message: message}, nil)
}

func (h *PageHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, web.PageError, "Error",
			web.ErrorView{Status: http.StatusBadRequest, Message: "The form could not be read."}, nil)
		return false
	}
	return true
}

func intakeFromForm(r *http.Request) entities.SymptomIntake {
	return entities.SymptomIntake{
		Age:            r.PostFormValue("age"),
		Gender:         r.PostFormValue("gender"),
		Symptoms:       r.PostFormValue("symptoms"),
		Severity:       entities.Severity(r.PostFormValue("severity")),
		Duration:       entities.SymptomDuration(r.PostFormValue("duration")),
		AdditionalInfo: r.PostFormValue("additional_info"),
	}
}

func draftFromForm(r *http.Request) entities.AppointmentDraft {
	doctorID, _ := strconv.Atoi(r.PostFormValue("doctor_id"))
	return entities.AppointmentDraft{}.
		WithDoctor(doctorID).
		WithDate(r.PostFormValue("date")).
		WithTime(r.PostFormValue("time")).
		WithType(r.PostFormValue("type")).
		WithContact(entities.ContactInfo{
			FirstName: r.PostFormValue("first_name"),
			LastName:  r.PostFormValue("last_name"),
			Email:     r.PostFormValue("email"),
			Phone:     r.PostFormValue("phone"),
			Insurance: r.PostFormValue("insurance"),
			Reason:    r.PostFormValue("reason"),
		})
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
