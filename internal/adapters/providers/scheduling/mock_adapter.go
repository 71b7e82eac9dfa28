package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
)

// MockAdapter confirms every booking after an optional artificial delay.
// No calendar is consulted and nothing is stored.
type MockAdapter struct {
	delay time.Duration
	now   func() time.Time
}

// NewMockAdapter creates a simulated scheduling provider.
func NewMockAdapter(delay time.Duration) providers.AppointmentProvider {
	return &MockAdapter{
		delay: delay,
		now:   time.Now,
	}
}

// Confirm returns a confirmation with a fresh booking reference. It returns
// ctx.Err() if the context ends during the simulated delay.
func (m *MockAdapter) Confirm(ctx context.Context, draft entities.AppointmentDraft, doctor entities.Doctor, apptType entities.AppointmentType) (*entities.AppointmentConfirmation, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &entities.AppointmentConfirmation{
		Reference:   "HM-" + strings.ToUpper(uuid.NewString()[:8]),
		Doctor:      doctor,
		Date:        draft.Date,
		Time:        draft.Time,
		Type:        apptType,
		PatientName: draft.Contact.FullName(),
		ConfirmedAt: m.now().UTC(),
	}, nil
}
