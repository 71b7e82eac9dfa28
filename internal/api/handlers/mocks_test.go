package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
)

type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) Doctors() []entities.Doctor {
	args := m.Called()
	return args.Get(0).([]entities.Doctor)
}

func (m *MockAppointmentService) Doctor(id int) (*entities.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Doctor), args.Error(1)
}

func (m *MockAppointmentService) AppointmentTypes() []entities.AppointmentType {
	args := m.Called()
	return args.Get(0).([]entities.AppointmentType)
}

func (m *MockAppointmentService) InsuranceOptions() []entities.Option {
	args := m.Called()
	return args.Get(0).([]entities.Option)
}

func (m *MockAppointmentService) TimeSlots(doctorID int) []string {
	args := m.Called(doctorID)
	return args.Get(0).([]string)
}

func (m *MockAppointmentService) Book(ctx context.Context, draft entities.AppointmentDraft) (*services.BookingOutcome, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.BookingOutcome), args.Error(1)
}

type MockSymptomCheckerService struct {
	mock.Mock
}

func (m *MockSymptomCheckerService) Step(session services.SymptomSession, action services.StepAction) services.SymptomSession {
	args := m.Called(session, action)
	return args.Get(0).(services.SymptomSession)
}

func (m *MockSymptomCheckerService) Analyze(ctx context.Context, intake entities.SymptomIntake) (*entities.AnalysisResult, error) {
	args := m.Called(ctx, intake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AnalysisResult), args.Error(1)
}

type MockTreatmentService struct {
	mock.Mock
}

func (m *MockTreatmentService) Search(query, category string) []entities.Treatment {
	args := m.Called(query, category)
	return args.Get(0).([]entities.Treatment)
}

func (m *MockTreatmentService) Categories() []entities.TreatmentCategory {
	args := m.Called()
	return args.Get(0).([]entities.TreatmentCategory)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, msg entities.ContactMessage) (*services.ContactOutcome, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ContactOutcome), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Navigation() []entities.NavItem {
	return m.Called().Get(0).([]entities.NavItem)
}

func (m *MockContentService) Home() entities.HomePage {
	return m.Called().Get(0).(entities.HomePage)
}

func (m *MockContentService) About() entities.AboutPage {
	return m.Called().Get(0).(entities.AboutPage)
}

func (m *MockContentService) Testimonials() entities.TestimonialsPage {
	return m.Called().Get(0).(entities.TestimonialsPage)
}

func (m *MockContentService) ContactPage() entities.ContactPage {
	return m.Called().Get(0).(entities.ContactPage)
}

func (m *MockContentService) PrivacyPolicy() entities.PrivacyPolicy {
	return m.Called().Get(0).(entities.PrivacyPolicy)
}

func (m *MockContentService) FAQs() []entities.FAQ {
	return m.Called().Get(0).([]entities.FAQ)
}

func (m *MockContentService) Dashboard(tab string) services.DashboardView {
	return m.Called(tab).Get(0).(services.DashboardView)
}
