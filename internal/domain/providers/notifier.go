package providers

import (
	"context"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// Notifier delivers transient notifications to the visitor that triggered
// the current request.
type Notifier interface {
	Notify(ctx context.Context, notification entities.Notification) error
}
