package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/infrastructure/notifications"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
)

const defaultHeartbeatInterval = 30 * time.Second

// NotificationStreamHandler pushes a visitor's notifications over
// Server-Sent Events.
type NotificationStreamHandler struct {
	eventBus          providers.EventBus
	toastDuration     time.Duration
	heartbeatInterval time.Duration
	metrics           *observability.Metrics
}

// NewNotificationStreamHandler creates a new notification stream handler
func NewNotificationStreamHandler(eventBus providers.EventBus, toastDuration time.Duration, metrics *observability.Metrics) *NotificationStreamHandler {
	return &NotificationStreamHandler{
		eventBus:          eventBus,
		toastDuration:     toastDuration,
		heartbeatInterval: defaultHeartbeatInterval,
		metrics:           metrics,
	}
}

// WithHeartbeatInterval overrides the keep-alive interval.
func (h *NotificationStreamHandler) WithHeartbeatInterval(d time.Duration) *NotificationStreamHandler {
	h.heartbeatInterval = d
	return h
}

// Stream handles GET /api/notifications/stream
func (h *NotificationStreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerFromContext(ctx)

	clientID, ok := notifications.RecipientFromContext(ctx)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "client ID is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	events, err := h.eventBus.Subscribe(ctx, providers.GetNotificationChannel(clientID))
	if err != nil {
		logger.Error().Err(err).Str("client_id", clientID).Msg("Failed to subscribe to notifications")
		respondWithError(w, http.StatusServiceUnavailable, "notifications unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	observability.TrackStream(ctx, h.metrics, 1)
	defer observability.TrackStream(ctx, h.metrics, -1)

	sendEvent(w, "connected", map[string]interface{}{
		"client_id":         clientID,
		"toast_duration_ms": h.toastDuration.Milliseconds(),
		"timestamp":         time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Str("client_id", clientID).Msg("Notification stream closed")
			return
		case <-ticker.C:
			sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case n, ok := <-events:
			if !ok {
				return
			}
			if n == nil {
				continue
			}
			sendEvent(w, "notification", n)
			flusher.Flush()
		}
	}
}

// sendEvent writes one SSE frame.
func sendEvent(w io.Writer, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}
