package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
)

// stamp gives n an id and timestamp so the copy rendered in the response
// and the copy pushed on the stream can be matched by the page.
func stamp(n entities.Notification) entities.Notification {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	return n
}

// publish hands n to the notifier. Delivery failures are logged only: the
// response still carries the notification.
func publish(ctx context.Context, notifier providers.Notifier, n entities.Notification) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, n); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("title", n.Title).Msg("Failed to publish notification")
	}
}
