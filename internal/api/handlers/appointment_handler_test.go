package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/healthmateai/healthmate/internal/api/handlers"
	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

func TestAppointmentHandler_ListDoctors(t *testing.T) {
	mockService := new(MockAppointmentService)
	handler := handlers.NewAppointmentHandler(mockService, nil)

	mockService.On("Doctors").Return([]entities.Doctor{
		{ID: 1, Name: "Dr. Sarah Johnson"},
		{ID: 2, Name: "Dr. Michael Chen"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	w := httptest.NewRecorder()
	handler.ListDoctors(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Doctors []entities.Doctor `json:"doctors"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Doctors, 2)
	assert.Equal(t, "Dr. Michael Chen", resp.Doctors[1].Name)
}

func TestAppointmentHandler_GetDoctor(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setup      func(m *MockAppointmentService)
		wantStatus int
	}{
		{
			name:       "found",
			id:         "3",
			setup:      func(m *MockAppointmentService) { m.On("Doctor", 3).Return(&entities.Doctor{ID: 3, Name: "Dr. Emily Rodriguez"}, nil) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown doctor",
			id:         "42",
			setup:      func(m *MockAppointmentService) { m.On("Doctor", 42).Return(nil, apperrors.NewNotFoundError("doctor 42 not found")) },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not a number",
			id:         "abc",
			setup:      func(m *MockAppointmentService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAppointmentService)
			tt.setup(mockService)
			handler := handlers.NewAppointmentHandler(mockService, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/doctors/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			handler.GetDoctor(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAppointmentHandler_GetTimeSlots(t *testing.T) {
	mockService := new(MockAppointmentService)
	handler := handlers.NewAppointmentHandler(mockService, nil)

	mockService.On("TimeSlots", 2).Return([]string{"8:30 AM", "11:00 AM"})
	mockService.On("TimeSlots", 0).Return([]string{"8:00 AM"})

	req := httptest.NewRequest(http.MethodGet, "/api/time-slots?doctor=2", nil)
	w := httptest.NewRecorder()
	handler.GetTimeSlots(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"time_slots":["8:30 AM","11:00 AM"]`)

	req = httptest.NewRequest(http.MethodGet, "/api/time-slots", nil)
	w = httptest.NewRecorder()
	handler.GetTimeSlots(w, req)
	assert.Contains(t, w.Body.String(), `"time_slots":["8:00 AM"]`)

	req = httptest.NewRequest(http.MethodGet, "/api/time-slots?doctor=two", nil)
	w = httptest.NewRecorder()
	handler.GetTimeSlots(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointmentHandler_BookAppointment_MissingFields(t *testing.T) {
	mockService := new(MockAppointmentService)
	handler := handlers.NewAppointmentHandler(mockService, nil)

	draft := entities.AppointmentDraft{}.WithDoctor(1)
	notification := entities.NewErrorNotification("Missing Information", "Please fill in all required fields to book your appointment.")
	notification.ID = "n-1"
	mockService.On("Book", mock.Anything, draft).Return(
		&services.BookingOutcome{Draft: draft, Notification: notification},
		apperrors.NewValidationError("Please fill in all required fields to book your appointment.", "date", "time", "type"),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"doctor_id":1}`))
	w := httptest.NewRecorder()
	handler.BookAppointment(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Error        string                `json:"error"`
		Fields       []string              `json:"fields"`
		Notification entities.Notification `json:"notification"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"date", "time", "type"}, resp.Fields)
	assert.Equal(t, "Missing Information", resp.Notification.Title)
	assert.Equal(t, entities.NotificationDestructive, resp.Notification.Variant)
	assert.Equal(t, "n-1", resp.Notification.ID)
}

func TestAppointmentHandler_BookAppointment_Success(t *testing.T) {
	mockService := new(MockAppointmentService)
	handler := handlers.NewAppointmentHandler(mockService, nil)

	mockService.On("Book", mock.Anything, mock.MatchedBy(func(d entities.AppointmentDraft) bool {
		return d.DoctorID == 1 && d.Date == "2026-11-02" && d.Time == "9:00 AM" && d.Type == "routine" && d.Contact.FirstName == "Ada"
	})).Return(&services.BookingOutcome{
		Confirmation: &entities.AppointmentConfirmation{Reference: "HM-1234ABCD"},
		Notification: entities.NewNotification("Appointment Booked!", "Your appointment with Dr. Sarah Johnson has been confirmed for 2026-11-02 at 9:00 AM."),
	}, nil)

	body := `{"doctor_id":1,"date":"2026-11-02","time":"9:00 AM","type":"routine","contact":{"first_name":"Ada"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.BookAppointment(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp services.BookingOutcome
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Draft.IsEmpty())
	assert.Equal(t, "HM-1234ABCD", resp.Confirmation.Reference)
	assert.Equal(t, "Appointment Booked!", resp.Notification.Title)
}

func TestAppointmentHandler_BookAppointment_BadPayload(t *testing.T) {
	mockService := new(MockAppointmentService)
	handler := handlers.NewAppointmentHandler(mockService, nil)

	for _, body := range []string{"", "{not json"} {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.BookAppointment(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	mockService.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
}

func TestAppointmentHandler_BookAppointment_ProviderFailure(t *testing.T) {
	mockService := new(MockAppointmentService)
	handler := handlers.NewAppointmentHandler(mockService, nil)

	mockService.On("Book", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewExternalError("booking failed", errors.New("scheduler down")))

	body := `{"doctor_id":1,"date":"2026-11-02","time":"9:00 AM","type":"routine"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.BookAppointment(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAppointmentHandler_BookAppointment_ClientGone(t *testing.T) {
	mockService := new(MockAppointmentService)
	handler := handlers.NewAppointmentHandler(mockService, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mockService.On("Book", mock.Anything, mock.Anything).Return(nil, context.Canceled)

	body := `{"doctor_id":1,"date":"2026-11-02","time":"9:00 AM","type":"routine"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body)).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.BookAppointment(w, req)

	assert.Zero(t, w.Body.Len())
}
