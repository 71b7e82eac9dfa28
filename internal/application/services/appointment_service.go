package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/domain/repositories"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

const (
	bookingMissingTitle       = "Missing Information"
	bookingMissingDescription = "Please fill in all required fields to book your appointment."
	bookingSuccessTitle       = "Appointment Booked!"
)

// BookingOutcome is the result of a booking attempt.
type BookingOutcome struct {
	// Draft is the draft the page should show next: unchanged after a
	// validation failure, empty after a successful booking.
	Draft        entities.AppointmentDraft         `json:"draft"`
	Confirmation *entities.AppointmentConfirmation `json:"confirmation,omitempty"`
	Notification entities.Notification             `json:"notification"`
}

// AppointmentService handles appointment booking logic
type AppointmentService struct {
	catalog  repositories.CatalogRepository
	provider providers.AppointmentProvider
	notifier providers.Notifier
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	catalog repositories.CatalogRepository,
	provider providers.AppointmentProvider,
	notifier providers.Notifier,
) *AppointmentService {
	return &AppointmentService{
		catalog:  catalog,
		provider: provider,
		notifier: notifier,
	}
}

// Doctors returns the bookable doctors
func (s *AppointmentService) Doctors() []entities.Doctor {
	return s.catalog.Doctors()
}

// Doctor returns one doctor or a NOT_FOUND error
func (s *AppointmentService) Doctor(id int) (*entities.Doctor, error) {
	return s.catalog.DoctorByID(id)
}

// AppointmentTypes returns the bookable visit kinds
func (s *AppointmentService) AppointmentTypes() []entities.AppointmentType {
	return s.catalog.AppointmentTypes()
}

// InsuranceOptions returns the insurance select options
func (s *AppointmentService) InsuranceOptions() []entities.Option {
	return s.catalog.InsuranceOptions()
}

// TimeSlots returns the selected doctor's slots, or the default slots when
// no known doctor is selected.
func (s *AppointmentService) TimeSlots(doctorID int) []string {
	if doctorID > 0 {
		if doctor, err := s.catalog.DoctorByID(doctorID); err == nil && len(doctor.AvailableSlots) > 0 {
			return doctor.AvailableSlots
		}
	}
	return s.catalog.DefaultTimeSlots()
}

// Book confirms draft. When a required field is missing, or the doctor or
// appointment type is unknown, it returns a VALIDATION error together with
// an outcome carrying the unchanged draft and the error notification.
func (s *AppointmentService) Book(ctx context.Context, draft entities.AppointmentDraft) (*BookingOutcome, error) {
	ctx, span := observability.StartSpan(ctx, "AppointmentService.Book")
	defer span.End()

	logger := observability.LoggerFromContext(ctx)

	missing := draft.MissingFields()
	var doctor *entities.Doctor
	var apptType *entities.AppointmentType
	if draft.HasDoctor() {
		d, err := s.catalog.DoctorByID(draft.DoctorID)
		if err != nil {
			missing = append([]string{entities.FieldDoctor}, missing...)
		}
		doctor = d
	}
	if strings.TrimSpace(draft.Type) != "" {
		t, err := s.catalog.AppointmentTypeByID(draft.Type)
		if err != nil {
			missing = append(missing, entities.FieldType)
		}
		apptType = t
	}

	if len(missing) > 0 {
		outcome := &BookingOutcome{
			Draft:        draft,
			Notification: stamp(entities.NewErrorNotification(bookingMissingTitle, bookingMissingDescription)),
		}
		publish(ctx, s.notifier, outcome.Notification)
		logger.Info().Strs("missing", missing).Msg("Booking rejected")
		return outcome, apperrors.NewValidationError(bookingMissingDescription, missing...)
	}

	confirmation, err := s.provider.Confirm(ctx, draft, *doctor, *apptType)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		observability.RecordError(span, err)
		return nil, apperrors.NewExternalError("failed to confirm appointment", err)
	}

	outcome := &BookingOutcome{
		Draft:        draft.Reset(),
		Confirmation: confirmation,
		Notification: stamp(entities.NewNotification(
			bookingSuccessTitle,
			fmt.Sprintf("Your appointment with %s has been confirmed for %s at %s.", doctor.Name, draft.Date, draft.Time),
		)),
	}
	publish(ctx, s.notifier, outcome.Notification)

	logger.Info().
		Str("reference", confirmation.Reference).
		Int("doctor_id", doctor.ID).
		Str("type", apptType.ID).
		Msg("Appointment booked")

	return outcome, nil
}
