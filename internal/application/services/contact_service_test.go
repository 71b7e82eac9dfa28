package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

func TestContactService_Submit(t *testing.T) {
	valid := entities.ContactMessage{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Subject:  "Question",
		Message:  "How accurate is the checker?",
		Category: "medical",
	}

	t.Run("accepts a complete message", func(t *testing.T) {
		notifier := new(MockNotifier)
		service := services.NewContactService(notifier)
		notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
			return n.Title == "Message Sent!"
		})).Return(nil)

		outcome, err := service.Submit(context.Background(), valid)

		require.NoError(t, err)
		assert.Equal(t, entities.ContactMessage{}, outcome.Message, "form resets")
		assert.Equal(t, "Message Sent!", outcome.Notification.Title)
		assert.Equal(t, "We'll get back to you within 24 hours.", outcome.Notification.Description)
		notifier.AssertExpectations(t)
	})

	const missing, invalid = "Missing Information", "Invalid Information"

	cases := []struct {
		name   string
		mutate func(m entities.ContactMessage) entities.ContactMessage
		fields []string
		title  string
	}{
		{"missing name", func(m entities.ContactMessage) entities.ContactMessage { m.Name = "  "; return m }, []string{"name"}, missing},
		{"missing email", func(m entities.ContactMessage) entities.ContactMessage { m.Email = ""; return m }, []string{"email"}, missing},
		{"malformed email", func(m entities.ContactMessage) entities.ContactMessage { m.Email = "not-an-email"; return m }, []string{"email"}, invalid},
		{"overlong subject", func(m entities.ContactMessage) entities.ContactMessage { m.Subject = strings.Repeat("a", 201); return m }, []string{"subject"}, invalid},
		{"missing message", func(m entities.ContactMessage) entities.ContactMessage { m.Message = ""; return m }, []string{"message"}, missing},
		{"missing name and malformed email", func(m entities.ContactMessage) entities.ContactMessage {
			m.Name = ""
			m.Email = "nope"
			return m
		}, []string{"name", "email"}, missing},
		{"everything missing", func(entities.ContactMessage) entities.ContactMessage { return entities.ContactMessage{} }, []string{"name", "email", "message"}, missing},
	}

	for _, tc := range cases {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			notifier := new(MockNotifier)
			service := services.NewContactService(notifier)
			notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

			outcome, err := service.Submit(context.Background(), tc.mutate(valid))

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			assert.Equal(t, tc.fields, appErr.Fields)

			require.NotNil(t, outcome)
			assert.Equal(t, tc.title, outcome.Notification.Title)
			assert.Equal(t, appErr.Message, outcome.Notification.Description)
			if tc.title == missing {
				assert.Equal(t, "Please fill in all required fields.", outcome.Notification.Description)
			}
			assert.Equal(t, entities.NotificationDestructive, outcome.Notification.Variant)
		})
	}

	t.Run("subject is optional", func(t *testing.T) {
		service := services.NewContactService(nil)
		m := valid
		m.Subject = ""
		_, err := service.Submit(context.Background(), m)
		assert.NoError(t, err)
	})
}
