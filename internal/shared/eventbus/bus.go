package eventbus

import (
	"context"
	"sync"
	"time"

	"workforce-api/internal/shared/logger"
)

// Event represents a generic event flowing through the bus.
type Event interface {
	Name() string
	Payload() interface{}
	OccurredAt() time.Time
}

// Handler is invoked for every published event it subscribes to.
type Handler func(ctx context.Context, event Event) error

// Bus is the contract for event bus implementations.
type Bus interface {
	Subscribe(eventName string, handler Handler) (unsubscribe func())
	Publish(ctx context.Context, event Event) error
	PublishAndForget(ctx context.Context, event Event)
	SubscriberCount(eventName string) int
}

// Wildcard subscribes a handler to every event regardless of name.
const Wildcard = "*"

type subscription struct {
	id      uint64
	handler Handler
}

// EventBus is an in-memory, synchronous event bus.
type EventBus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]subscription
	logger   logger.Logger
}

// New creates a new event bus instance.
func New(log logger.Logger) *EventBus {
	return &EventBus{
		handlers: make(map[string][]subscription),
		logger:   log,
	}
}

// Subscribe registers a handler for the named event (or Wildcard) and returns
// a function that removes exactly this subscription.
func (b *EventBus) Subscribe(eventName string, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventName] = append(b.handlers[eventName], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventName]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventName] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event synchronously to named and wildcard subscribers.
// The first handler error aborts delivery and is returned to the caller.
func (b *EventBus) Publish(ctx context.Context, event Event) error {
	for _, sub := range b.snapshot(event.Name()) {
		if err := sub.handler(ctx, event); err != nil {
			if b.logger != nil {
				b.logger.WithFields(map[string]interface{}{
					"event": event.Name(),
				}).Errorf("event handler failed: %v", err)
			}
			return err
		}
	}
	return nil
}

// PublishAndForget delivers the event synchronously but swallows handler
// errors; failures are logged and delivery continues to remaining handlers.
func (b *EventBus) PublishAndForget(ctx context.Context, event Event) {
	for _, sub := range b.snapshot(event.Name()) {
		if err := sub.handler(ctx, event); err != nil && b.logger != nil {
			b.logger.WithFields(map[string]interface{}{
				"event": event.Name(),
			}).Warnf("event handler failed (ignored): %v", err)
		}
	}
}

// SubscriberCount returns the number of handlers registered for eventName.
func (b *EventBus) SubscriberCount(eventName string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventName])
}

// snapshot copies the matching subscriptions so handlers can subscribe or
// unsubscribe during delivery without deadlocking.
func (b *EventBus) snapshot(eventName string) []subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subs := make([]subscription, 0, len(b.handlers[eventName])+len(b.handlers[Wildcard]))
	subs = append(subs, b.handlers[eventName]...)
	if eventName != Wildcard {
		subs = append(subs, b.handlers[Wildcard]...)
	}
	return subs
}
