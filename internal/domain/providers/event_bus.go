package providers

import (
	"context"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// notifications
type EventBus interface {
	// Publish publishes a notification to all subscribers of channel
	Publish(ctx context.Context, channel string, notification *entities.Notification) error

	// Subscribe subscribes to a channel until ctx is done
	Subscribe(ctx context.Context, channel string) (<-chan *entities.Notification, error)

	// Unsubscribe drops every subscriber of a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelNotificationPrefix is the prefix for per-visitor channels
const EventChannelNotificationPrefix = "notifications:"

// GetNotificationChannel returns the channel name for a visitor
func GetNotificationChannel(clientID string) string {
	return EventChannelNotificationPrefix + clientID
}
