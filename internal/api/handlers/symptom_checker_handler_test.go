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
	"github.com/healthmateai/healthmate/internal/domain/wizard"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

func TestSymptomCheckerHandler_Step(t *testing.T) {
	mockService := new(MockSymptomCheckerService)
	handler := handlers.NewSymptomCheckerHandler(mockService, nil)

	in := services.SymptomSession{Step: wizard.At(1, 4), Intake: entities.SymptomIntake{Age: "34"}}
	out := services.SymptomSession{Step: wizard.At(2, 4), Intake: in.Intake}
	mockService.On("Step", in, services.StepNext).Return(out)

	body := `{"session":{"step":{"current":1,"total":4},"intake":{"age":"34"}},"action":"next"}`
	req := httptest.NewRequest(http.MethodPost, "/api/symptom-checker/step", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Step(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp services.SymptomSession
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Step.Current)
	assert.Equal(t, "34", resp.Intake.Age)
}

func TestSymptomCheckerHandler_Step_UnknownAction(t *testing.T) {
	mockService := new(MockSymptomCheckerService)
	handler := handlers.NewSymptomCheckerHandler(mockService, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/symptom-checker/step", strings.NewReader(`{"action":"jump"}`))
	w := httptest.NewRecorder()
	handler.Step(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Step", mock.Anything, mock.Anything)
}

func TestSymptomCheckerHandler_Analyze(t *testing.T) {
	tests := []struct {
		name       string
		result     *entities.AnalysisResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "analysis complete",
			result:     &entities.AnalysisResult{UrgencyLevel: entities.UrgencyLow},
			wantStatus: http.StatusOK,
			wantBody:   `"urgency_level":"Low"`,
		},
		{
			name:       "analyzer failure",
			err:        apperrors.NewExternalError("symptom analysis failed", errors.New("boom")),
			wantStatus: http.StatusBadGateway,
			wantBody:   `"error":"symptom analysis failed"`,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSymptomCheckerService)
			handler := handlers.NewSymptomCheckerHandler(mockService, nil)
			if tt.result != nil {
				mockService.On("Analyze", mock.Anything, mock.Anything).Return(tt.result, nil)
			} else {
				mockService.On("Analyze", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/symptom-checker/analyze", strings.NewReader(`{"symptoms":"cough"}`))
			w := httptest.NewRecorder()
			handler.Analyze(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestSymptomCheckerHandler_Analyze_Abandoned(t *testing.T) {
	mockService := new(MockSymptomCheckerService)
	handler := handlers.NewSymptomCheckerHandler(mockService, nil)

	mockService.On("Analyze", mock.Anything, entities.SymptomIntake{Symptoms: "cough"}).Return(nil, context.Canceled)

	req := httptest.NewRequest(http.MethodPost, "/api/symptom-checker/analyze", strings.NewReader(`{"symptoms":"cough"}`))
	w := httptest.NewRecorder()
	handler.Analyze(w, req)

	assert.Zero(t, w.Body.Len())
	mockService.AssertExpectations(t)
}
