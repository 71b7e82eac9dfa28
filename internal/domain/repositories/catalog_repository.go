package repositories

import (
	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// CatalogRepository serves the static content tables. Returned values are
// read-only snapshots; callers must not mutate shared slices.
type CatalogRepository interface {
	// Navigation returns the navigation bar links in display order
	Navigation() []entities.NavItem

	// Doctors returns the bookable doctors in display order
	Doctors() []entities.Doctor

	// DoctorByID returns a doctor or a NOT_FOUND AppError
	DoctorByID(id int) (*entities.Doctor, error)

	// AppointmentTypes returns the bookable visit kinds
	AppointmentTypes() []entities.AppointmentType

	// AppointmentTypeByID returns a visit kind or a NOT_FOUND AppError
	AppointmentTypeByID(id string) (*entities.AppointmentType, error)

	// DefaultTimeSlots returns the slots offered before a doctor is chosen
	DefaultTimeSlots() []string

	// InsuranceOptions returns the insurance providers for the booking form
	InsuranceOptions() []entities.Option

	// Treatments returns the self-care guides in display order
	Treatments() []entities.Treatment

	// TreatmentCategories returns the category selector, wildcard first
	TreatmentCategories() []entities.TreatmentCategory

	// CannedAnalysis returns the fixed symptom analysis
	CannedAnalysis() entities.AnalysisResult

	Home() entities.HomePage
	About() entities.AboutPage
	Testimonials() entities.TestimonialsPage
	Contact() entities.ContactPage
	PrivacyPolicy() entities.PrivacyPolicy
	Dashboard() entities.Dashboard
}
