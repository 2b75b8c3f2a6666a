package queue

import (
	"sync"
	"testing"
)

func TestEventQueueDrainReturnsInPushOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push("a")
	q.Push("b")
	q.Push("c")

	events := q.Drain()
	want := []string{"a", "b", "c"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, e := range events {
		if e.(string) != want[i] {
			t.Errorf("event %d = %v, want %v", i, e, want[i])
		}
	}
}

func TestEventQueueDrainEmpty(t *testing.T) {
	q := NewEventQueue()
	if events := q.Drain(); events != nil {
		t.Errorf("expected nil for an empty drain, got %v", events)
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				q.Push(i)
			}
		}()
	}
	wg.Wait()

	if events := q.Drain(); len(events) != 100 {
		t.Errorf("expected 100 events from 4 producers, got %d", len(events))
	}
}
