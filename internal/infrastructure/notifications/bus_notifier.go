package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
)

type recipientKey struct{}

// WithRecipient stores the visitor id notifications should be routed to.
func WithRecipient(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, recipientKey{}, clientID)
}

// RecipientFromContext returns the visitor id set by WithRecipient.
func RecipientFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(recipientKey{}).(string)
	return id, ok && id != ""
}

// BusNotifier publishes notifications on the visitor's event bus channel,
// where the notification stream picks them up.
type BusNotifier struct {
	bus providers.EventBus
	now func() time.Time
}

// NewBusNotifier creates a notifier backed by bus
func NewBusNotifier(bus providers.EventBus) *BusNotifier {
	return &BusNotifier{bus: bus, now: time.Now}
}

var _ providers.Notifier = (*BusNotifier)(nil)

// Notify stamps and publishes n. Requests without a recipient have nobody
// listening, so the notification is dropped.
func (s *BusNotifier) Notify(ctx context.Context, n entities.Notification) error {
	clientID, ok := RecipientFromContext(ctx)
	if !ok {
		observability.LoggerFromContext(ctx).Debug().
			Str("title", n.Title).
			Msg("No recipient for notification, dropping")
		return nil
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now().UTC()
	}
	if n.Variant == "" {
		n.Variant = entities.NotificationDefault
	}

	if err := s.bus.Publish(ctx, providers.GetNotificationChannel(clientID), &n); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	return nil
}
