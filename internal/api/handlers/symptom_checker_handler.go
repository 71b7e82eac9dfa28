package handlers

import (
	"context"
	"net/http"

	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
)

// SymptomCheckerService defines the symptom checker operations used by the handler.
type SymptomCheckerService interface {
	Step(session services.SymptomSession, action services.StepAction) services.SymptomSession
	Analyze(ctx context.Context, intake entities.SymptomIntake) (*entities.AnalysisResult, error)
}

// SymptomCheckerHandler handles symptom checker requests
type SymptomCheckerHandler struct {
	service SymptomCheckerService
	metrics *observability.Metrics
}

// NewSymptomCheckerHandler creates a new symptom checker handler
func NewSymptomCheckerHandler(service SymptomCheckerService, metrics *observability.Metrics) *SymptomCheckerHandler {
	return &SymptomCheckerHandler{service: service, metrics: metrics}
}

type stepRequest struct {
	Session services.SymptomSession `json:"session"`
	Action  services.StepAction     `json:"action"`
}

// Step handles POST /api/symptom-checker/step
func (h *SymptomCheckerHandler) Step(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	switch req.Action {
	case services.StepNext, services.StepBack, services.StepStay:
	default:
		respondWithError(w, http.StatusBadRequest, "action must be next or back")
		return
	}

	respondWithJSON(w, http.StatusOK, h.service.Step(req.Session, req.Action))
}

// Analyze handles POST /api/symptom-checker/analyze
func (h *SymptomCheckerHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var intake entities.SymptomIntake
	if err := decodeJSON(w, r, &intake); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.Analyze(r.Context(), intake)
	if err != nil {
		if isCancelled(err) {
			// the visitor left; nobody is waiting for a response
			return
		}
		observability.RecordFormSubmission(r.Context(), h.metrics, "symptom_checker", "error")
		respondWithAppError(w, r, err)
		return
	}

	observability.RecordFormSubmission(r.Context(), h.metrics, "symptom_checker", "analyzed")
	respondWithJSON(w, http.StatusOK, result)
}
