package feed

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
)

// Hub fans activity events out to any number of subscribers. Each
// subscriber gets a bounded queue; when a queue is full the oldest
// event is dropped so a slow subscriber never blocks the publisher.
type Hub struct {
	mu          sync.RWMutex
	bufferSize  int
	subscribers map[uuid.UUID]*Subscription
}

// Subscription is one registered observer of the activity feed
type Subscription struct {
	id      uuid.UUID
	events  chan models.ActivityEvent
	dropped int64
}

// NewHub creates a hub with the given per-subscriber queue size
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Hub{
		bufferSize:  bufferSize,
		subscribers: make(map[uuid.UUID]*Subscription),
	}
}

// Subscribe registers a new observer and returns its subscription
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		id:     uuid.New(),
		events: make(chan models.ActivityEvent, h.bufferSize),
	}

	h.mu.Lock()
	h.subscribers[sub.id] = sub
	h.mu.Unlock()

	return sub
}

// Unsubscribe removes an observer. Calling it more than once is a no-op.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, exists := h.subscribers[id]
	if !exists {
		return
	}
	delete(h.subscribers, id)
	close(sub.events)
}

// Publish delivers the event to every subscriber without blocking.
// A full subscriber queue drops its oldest event first.
func (h *Hub) Publish(event models.ActivityEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.events <- event:
			continue
		default:
		}

		// Queue full: evict the oldest event, then retry once.
		select {
		case <-sub.events:
			atomic.AddInt64(&sub.dropped, 1)
		default:
		}

		select {
		case sub.events <- event:
		default:
			atomic.AddInt64(&sub.dropped, 1)
			logger.Warn("Dropped activity event for slow subscriber",
				logger.String("subscription_id", sub.id.String()))
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// ID returns the subscription identifier used for Unsubscribe
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Events returns the subscriber's event channel. The channel is closed
// on Unsubscribe.
func (s *Subscription) Events() <-chan models.ActivityEvent {
	return s.events
}

// Dropped returns how many events were discarded because the
// subscriber's queue was full
func (s *Subscription) Dropped() int64 {
	return atomic.LoadInt64(&s.dropped)
}
