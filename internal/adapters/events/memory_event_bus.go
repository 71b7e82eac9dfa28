package events

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
)

// MemoryEventBus is a single-process EventBus used when Redis is disabled.
type MemoryEventBus struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan *entities.Notification]struct{}
	closed      bool
}

// NewMemoryEventBus creates an in-process event bus
func NewMemoryEventBus() providers.EventBus {
	return &MemoryEventBus{
		subscribers: make(map[string]map[chan *entities.Notification]struct{}),
	}
}

// Publish delivers a copy of notification to every current subscriber
func (b *MemoryEventBus) Publish(_ context.Context, channel string, notification *entities.Notification) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return errors.New("event bus closed")
	}

	for subscriber := range b.subscribers[channel] {
		n := *notification
		select {
		case subscriber <- &n:
		default:
			log.Warn().Str("channel", channel).Str("notification_id", n.ID).Msg("Subscriber queue full, dropping notification")
		}
	}
	return nil
}

// Subscribe subscribes to notifications on a channel until ctx is done
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.Notification, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, errors.New("event bus closed")
	}
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entities.Notification]struct{})
	}
	notifications := make(chan *entities.Notification, subscriberBuffer)
	b.subscribers[channel][notifications] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.removeSubscriber(channel, notifications)
	}()

	return notifications, nil
}

func (b *MemoryEventBus) removeSubscriber(channel string, notifications chan *entities.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, ok := b.subscribers[channel]
	if !ok {
		return
	}
	if _, ok := subscribers[notifications]; !ok {
		return
	}
	delete(subscribers, notifications)
	close(notifications)
	if len(subscribers) == 0 {
		delete(b.subscribers, channel)
	}
}

// Unsubscribe drops every subscriber of a channel
func (b *MemoryEventBus) Unsubscribe(_ context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for subscriber := range b.subscribers[channel] {
		close(subscriber)
	}
	delete(b.subscribers, channel)
	return nil
}

// Close closes the event bus and all subscriptions
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for channel, subscribers := range b.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}
		delete(b.subscribers, channel)
	}
	b.closed = true
	return nil
}
