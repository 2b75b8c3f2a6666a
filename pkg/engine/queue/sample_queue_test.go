package queue

import "testing"

func TestSampleQueuePushPop(t *testing.T) {
	q := NewSampleQueue(4)
	if !q.Push(1.0) {
		t.Fatal("expected push to succeed")
	}
	v, ok := q.Pop()
	if !ok || v != 1.0 {
		t.Errorf("expected (1.0, true), got (%f, %v)", v, ok)
	}
}

func TestSampleQueuePopEmpty(t *testing.T) {
	q := NewSampleQueue(4)
	_, ok := q.Pop()
	if ok {
		t.Error("expected Pop on empty queue to return false")
	}
}

func TestSampleQueueFillsToCapacity(t *testing.T) {
	q := NewSampleQueue(4) // rounds up to a power of two internally
	pushed := 0
	for q.Push(float32(pushed)) {
		pushed++
		if pushed > 1000 {
			t.Fatal("queue never reported full")
		}
	}
	if pushed == 0 {
		t.Error("expected at least one successful push before the queue filled")
	}
}

func TestSampleQueueFIFOOrder(t *testing.T) {
	q := NewSampleQueue(8)
	for i := 0; i < 5; i++ {
		q.Push(float32(i))
	}
	for i := 0; i < 5; i++ {
		v, ok := q.Pop()
		if !ok || v != float32(i) {
			t.Errorf("expected sample %d, got %f (ok=%v)", i, v, ok)
		}
	}
}
