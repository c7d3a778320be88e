// internal/simulation/bus.go
package simulation

import (
	"sync"

	"crmdemo-service/internal/domain/demo"

	"go.uber.org/zap"
)

// Handler receives the payload published on an event channel.
type Handler func(payload interface{})

// SubscriptionID identifies a registered handler for removal. Go
// function values are not comparable, so unsubscription goes through
// the id handed out by On.
type SubscriptionID uint64

type subscription struct {
	id SubscriptionID
	fn Handler
}

// Bus is the minimal publish/subscribe mechanism decoupling simulation
// actions from their consumers. Delivery is synchronous and in
// registration order; each handler runs isolated so one panicking
// subscriber cannot break the publish loop for the rest.
type Bus struct {
	mu     sync.RWMutex
	nextID SubscriptionID
	subs   map[demo.Event][]subscription
	logger *zap.Logger
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		subs:   make(map[demo.Event][]subscription),
		logger: logger,
	}
}

// On registers a handler under the named event channel.
func (b *Bus) On(event demo.Event, fn Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[event] = append(b.subs[event], subscription{id: b.nextID, fn: fn})
	return b.nextID
}

// Off removes a previously registered handler. Unknown ids and empty
// channels are no-ops.
func (b *Bus) Off(event demo.Event, id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[event]
	for i, sub := range subs {
		if sub.id == id {
			b.subs[event] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Notify synchronously invokes every handler currently registered for
// the channel, in registration order. No handlers means no-op.
func (b *Bus) Notify(event demo.Event, payload interface{}) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs[event]))
	copy(subs, b.subs[event])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.invoke(event, sub, payload)
	}
}

func (b *Bus) invoke(event demo.Event, sub subscription, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event subscriber panicked",
				zap.String("event", string(event)),
				zap.Uint64("subscription", uint64(sub.id)),
				zap.Any("panic", r),
			)
		}
	}()
	sub.fn(payload)
}

// SubscriberCount reports how many handlers a channel currently has.
func (b *Bus) SubscriberCount(event demo.Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[event])
}
