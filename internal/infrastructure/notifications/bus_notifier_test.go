package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, n *entities.Notification) error {
	args := m.Called(ctx, channel, n)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.Notification, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *entities.Notification), args.Error(1)
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	return m.Called(ctx, channel).Error(0)
}

func (m *MockEventBus) Close() error {
	return m.Called().Error(0)
}

func TestRecipientFromContext(t *testing.T) {
	_, ok := RecipientFromContext(context.Background())
	assert.False(t, ok)

	_, ok = RecipientFromContext(WithRecipient(context.Background(), ""))
	assert.False(t, ok)

	id, ok := RecipientFromContext(WithRecipient(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestBusNotifier_PublishesToVisitorChannel(t *testing.T) {
	bus := new(MockEventBus)
	notifier := NewBusNotifier(bus)
	ctx := WithRecipient(context.Background(), "visitor-1")

	bus.On("Publish", ctx, "notifications:visitor-1", mock.MatchedBy(func(n *entities.Notification) bool {
		return n.ID != "" &&
			!n.CreatedAt.IsZero() &&
			n.Title == "Appointment Booked!" &&
			n.Variant == entities.NotificationDefault
	})).Return(nil)

	err := notifier.Notify(ctx, entities.Notification{Title: "Appointment Booked!", Description: "ok"})
	require.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestBusNotifier_NoRecipientIsDropped(t *testing.T) {
	bus := new(MockEventBus)
	notifier := NewBusNotifier(bus)

	err := notifier.Notify(context.Background(), entities.NewNotification("t", "d"))
	require.NoError(t, err)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestBusNotifier_PublishError(t *testing.T) {
	bus := new(MockEventBus)
	notifier := NewBusNotifier(bus)
	ctx := WithRecipient(context.Background(), "visitor-1")

	bus.On("Publish", ctx, "notifications:visitor-1", mock.Anything).Return(errors.New("redis down"))

	err := notifier.Notify(ctx, entities.NewErrorNotification("t", "d"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}
