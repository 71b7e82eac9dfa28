package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

const (
	contactMissingTitle       = "Missing Information"
	contactMissingDescription = "Please fill in all required fields."
	contactInvalidTitle       = "Invalid Information"
	contactInvalidDescription = "Please check the highlighted fields and try again."
	contactSentTitle          = "Message Sent!"
	contactSentDescription    = "We'll get back to you within 24 hours."
)

// ContactOutcome is the result of a contact form submission.
type ContactOutcome struct {
	// Message is the form the page should show next: unchanged after a
	// validation failure, empty after a successful send.
	Message      entities.ContactMessage `json:"message"`
	Notification entities.Notification   `json:"notification"`
}

// ContactService accepts contact form messages. Messages are acknowledged
// and logged, never stored.
type ContactService struct {
	validate *validator.Validate
	notifier providers.Notifier
	now      func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(notifier providers.Notifier) *ContactService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &ContactService{validate: v, notifier: notifier, now: time.Now}
}

// Submit validates msg. On failure it returns a VALIDATION error naming the
// offending fields together with an outcome that keeps the form contents.
func (s *ContactService) Submit(ctx context.Context, msg entities.ContactMessage) (*ContactOutcome, error) {
	logger := observability.LoggerFromContext(ctx)

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	msg.Category = strings.TrimSpace(msg.Category)

	if err := s.validate.StructCtx(ctx, msg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, apperrors.NewInternalError("failed to validate contact message", err)
		}
		fields := make([]string, 0, len(verrs))
		title, description := contactInvalidTitle, contactInvalidDescription
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
			if fe.Tag() == "required" {
				title, description = contactMissingTitle, contactMissingDescription
			}
		}
		outcome := &ContactOutcome{
			Message:      msg,
			Notification: stamp(entities.NewErrorNotification(title, description)),
		}
		publish(ctx, s.notifier, outcome.Notification)
		logger.Info().Strs("fields", fields).Msg("Contact message rejected")
		return outcome, apperrors.NewValidationError(description, fields...)
	}

	msg.ID = uuid.NewString()
	msg.SubmittedAt = s.now().UTC()
	logger.Info().
		Str("message_id", msg.ID).
		Str("category", msg.Category).
		Int("length", len(msg.Message)).
		Msg("Contact message received")

	outcome := &ContactOutcome{
		Notification: stamp(entities.NewNotification(contactSentTitle, contactSentDescription)),
	}
	publish(ctx, s.notifier, outcome.Notification)
	return outcome, nil
}
