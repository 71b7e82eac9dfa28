package providers

import (
	"context"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// AppointmentProvider confirms bookings. The only implementation today is
// a simulated scheduler; a real scheduling backend would satisfy the same
// interface.
type AppointmentProvider interface {
	// Confirm books the draft with the resolved doctor and appointment type.
	Confirm(ctx context.Context, draft entities.AppointmentDraft, doctor entities.Doctor, apptType entities.AppointmentType) (*entities.AppointmentConfirmation, error)
}
