package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

// AppointmentService defines the interface for appointment operations
type AppointmentService interface {
	Doctors() []entities.Doctor
	Doctor(id int) (*entities.Doctor, error)
	AppointmentTypes() []entities.AppointmentType
	InsuranceOptions() []entities.Option
	TimeSlots(doctorID int) []string
	Book(ctx context.Context, draft entities.AppointmentDraft) (*services.BookingOutcome, error)
}

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service AppointmentService
	metrics *observability.Metrics
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service AppointmentService, metrics *observability.Metrics) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		metrics: metrics,
	}
}

type bookAppointmentRequest struct {
	DoctorID int                  `json:"doctor_id"`
	Date     string               `json:"date"`
	Time     string               `json:"time"`
	Type     string               `json:"type"`
	Contact  entities.ContactInfo `json:"contact"`
}

func (req bookAppointmentRequest) draft() entities.AppointmentDraft {
	return entities.AppointmentDraft{}.
		WithDoctor(req.DoctorID).
		WithDate(req.Date).
		WithTime(req.Time).
		WithType(req.Type).
		WithContact(req.Contact)
}

// ListDoctors handles GET /api/doctors
func (h *AppointmentHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctors": h.service.Doctors(),
	})
}

// GetDoctor handles GET /api/doctors/{id}
func (h *AppointmentHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		respondWithError(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	doctor, err := h.service.Doctor(id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, doctor)
}

// ListAppointmentTypes handles GET /api/appointment-types
func (h *AppointmentHandler) ListAppointmentTypes(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointment_types": h.service.AppointmentTypes(),
		"insurance":         h.service.InsuranceOptions(),
	})
}

// GetTimeSlots handles GET /api/time-slots?doctor={id}
func (h *AppointmentHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := 0
	if raw := r.URL.Query().Get("doctor"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid doctor parameter")
			return
		}
		doctorID = parsed
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctor_id":  doctorID,
		"time_slots": h.service.TimeSlots(doctorID),
	})
}

// BookAppointment handles POST /api/appointments
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req bookAppointmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	outcome, err := h.service.Book(r.Context(), req.draft())
	if err != nil {
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeValidation && outcome != nil {
			observability.RecordFormSubmission(r.Context(), h.metrics, "booking", "invalid")
			respondWithValidationError(w, appErr, outcome.Notification)
			return
		}
		if r.Context().Err() != nil {
			return
		}
		observability.RecordFormSubmission(r.Context(), h.metrics, "booking", "error")
		respondWithAppError(w, r, err)
		return
	}

	observability.RecordFormSubmission(r.Context(), h.metrics, "booking", "booked")
	respondWithJSON(w, http.StatusCreated, outcome)
}
