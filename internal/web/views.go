package web

import (
	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// SymptomCheckerView is the symptom checker page.
type SymptomCheckerView struct {
	Session         services.SymptomSession
	Result          *entities.AnalysisResult
	GenderOptions   []entities.Option
	SeverityOptions []entities.Option
	DurationOptions []entities.Option
}

// TreatmentsView is the treatment suggestions page.
type TreatmentsView struct {
	Query      string
	Category   string
	Categories []entities.TreatmentCategory
	Treatments []entities.Treatment
}

// BookingView is the appointment booking page.
type BookingView struct {
	Draft            entities.AppointmentDraft
	Doctors          []entities.Doctor
	AppointmentTypes []entities.AppointmentType
	Insurance        []entities.Option
	TimeSlots        []string
	SelectedDoctor   *entities.Doctor
	SelectedType     *entities.AppointmentType
	Confirmation     *entities.AppointmentConfirmation
	Missing          []string
	MinDate          string
}

// ShowSummary reports whether enough is chosen to show the summary box.
func (v BookingView) ShowSummary() bool {
	return v.SelectedDoctor != nil && v.Draft.Date != "" && v.Draft.Time != ""
}

// ContactView is the contact page.
type ContactView struct {
	Page    entities.ContactPage
	Form    entities.ContactMessage
	Missing []string
}

// ErrorView is the generic failure page.
type ErrorView struct {
	Status  int
	Message string
}
