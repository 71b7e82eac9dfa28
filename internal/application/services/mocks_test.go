package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

type MockAppointmentProvider struct {
	mock.Mock
}

func (m *MockAppointmentProvider) Confirm(ctx context.Context, draft entities.AppointmentDraft, doctor entities.Doctor, apptType entities.AppointmentType) (*entities.AppointmentConfirmation, error) {
	args := m.Called(ctx, draft, doctor, apptType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AppointmentConfirmation), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n entities.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockSymptomAnalyzer struct {
	mock.Mock
}

func (m *MockSymptomAnalyzer) Analyze(ctx context.Context, intake entities.SymptomIntake) (*entities.AnalysisResult, error) {
	args := m.Called(ctx, intake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AnalysisResult), args.Error(1)
}
