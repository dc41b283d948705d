package feed

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(outcome models.ActivityOutcome) models.ActivityEvent {
	return models.ActivityEvent{
		Type: models.ActivityCreated,
		Record: models.ActivityRecord{
			ID:      uuid.New(),
			Outcome: outcome,
		},
		Timestamp: time.Now(),
	}
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub(8)

	sub1 := hub.Subscribe()
	sub2 := hub.Subscribe()
	defer hub.Unsubscribe(sub1.ID())
	defer hub.Unsubscribe(sub2.ID())

	event := makeEvent(models.OutcomeApproved)
	hub.Publish(event)

	for _, sub := range []*Subscription{sub1, sub2} {
		select {
		case got := <-sub.Events():
			assert.Equal(t, event.Record.ID, got.Record.ID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestHub_SlowSubscriberDropsOldest(t *testing.T) {
	hub := NewHub(2)

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub.ID())

	first := makeEvent(models.OutcomeApproved)
	second := makeEvent(models.OutcomeDenied)
	third := makeEvent(models.OutcomeExecutionFailed)

	hub.Publish(first)
	hub.Publish(second)
	hub.Publish(third)

	// Queue of two: the first event was evicted to make room.
	got := <-sub.Events()
	assert.Equal(t, second.Record.ID, got.Record.ID)
	got = <-sub.Events()
	assert.Equal(t, third.Record.ID, got.Record.ID)
	assert.Equal(t, int64(1), sub.Dropped())
}

func TestHub_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	hub := NewHub(1)

	slow := hub.Subscribe()
	fast := hub.Subscribe()
	defer hub.Unsubscribe(slow.ID())
	defer hub.Unsubscribe(fast.ID())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.Publish(makeEvent(models.OutcomeApproved))
			// Keep the fast subscriber drained.
			select {
			case <-fast.Events():
			default:
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(8)

	sub := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	hub.Unsubscribe(sub.ID())

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHub_UnsubscribeTwiceIsNoOp(t *testing.T) {
	hub := NewHub(8)

	sub := hub.Subscribe()
	hub.Unsubscribe(sub.ID())

	assert.NotPanics(t, func() {
		hub.Unsubscribe(sub.ID())
	})
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	hub := NewHub(64)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := hub.Subscribe()
			for j := 0; j < 20; j++ {
				hub.Publish(makeEvent(models.OutcomeApproved))
			}
			hub.Unsubscribe(sub.ID())
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent hub usage deadlocked")
	}
	assert.Equal(t, 0, hub.SubscriberCount())
}
