package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

// ContactService defines the contact form operations used by the handler.
type ContactService interface {
	Submit(ctx context.Context, msg entities.ContactMessage) (*services.ContactOutcome, error)
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service ContactService
	guard   *SubmissionGuard
	metrics *observability.Metrics
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service ContactService, guard *SubmissionGuard, metrics *observability.Metrics) *ContactHandler {
	return &ContactHandler{
		service: service,
		guard:   guard,
		metrics: metrics,
	}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg entities.ContactMessage
	if err := decodeJSON(w, r, &msg); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	ip := clientIP(r)
	allowed, retryAfter := h.guard.Allow(r.Context(), "contact:"+ip)
	if !allowed {
		observability.RecordFormSubmission(r.Context(), h.metrics, "contact", "rate_limited")
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	fp := contactFingerprint(msg, ip)
	if h.guard.Seen(r.Context(), fp) {
		observability.RecordFormSubmission(r.Context(), h.metrics, "contact", "duplicate")
		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"status": "duplicate_ignored",
		})
		return
	}

	outcome, err := h.service.Submit(r.Context(), msg)
	if err != nil {
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeValidation && outcome != nil {
			observability.RecordFormSubmission(r.Context(), h.metrics, "contact", "invalid")
			respondWithValidationError(w, appErr, outcome.Notification)
			return
		}
		respondWithAppError(w, r, err)
		return
	}

	h.guard.Remember(r.Context(), fp)
	observability.RecordFormSubmission(r.Context(), h.metrics, "contact", "sent")
	respondWithJSON(w, http.StatusCreated, outcome)
}

func contactFingerprint(msg entities.ContactMessage, ip string) string {
	return fingerprint(msg.Name, msg.Email, msg.Subject, msg.Message, msg.Category, ip)
}
