// Package queue implements the lock-free queues connecting the command
// stage, render stage and device callback: a single-producer/single-
// consumer sample queue (render -> device), a single-producer/single-
// consumer message queue (command -> render), and an unbounded
// multi-producer/single-consumer event queue (any stage -> UI).
package queue

import "sync/atomic"

// SampleQueue is a lock-free single-producer/single-consumer ring buffer
// of audio samples. Capacity is rounded up to the next power of two so
// index wrapping is a mask instead of a modulo, matching the technique
// the write-ahead buffer uses for its own position arithmetic.
type SampleQueue struct {
	data     []float32
	mask     uint64
	readPos  uint64
	writePos uint64
}

// NewSampleQueue creates a queue with room for at least capacity samples.
func NewSampleQueue(capacity int) *SampleQueue {
	size := nextPowerOfTwo(uint64(capacity))
	return &SampleQueue{
		data: make([]float32, size),
		mask: size - 1,
	}
}

// Push appends one sample. It never blocks; if the queue is full the
// sample is dropped and false is returned, which the render stage treats
// as a reason to retry on its next loop iteration rather than allocate.
func (q *SampleQueue) Push(v float32) bool {
	writePos := atomic.LoadUint64(&q.writePos)
	readPos := atomic.LoadUint64(&q.readPos)
	if writePos-readPos >= uint64(len(q.data)) {
		return false
	}
	q.data[writePos&q.mask] = v
	atomic.StoreUint64(&q.writePos, writePos+1)
	return true
}

// Pop removes and returns the oldest sample. The device callback calls
// this; on an empty queue it returns (0, false) and the callback writes
// silence rather than blocking.
func (q *SampleQueue) Pop() (float32, bool) {
	readPos := atomic.LoadUint64(&q.readPos)
	writePos := atomic.LoadUint64(&q.writePos)
	if readPos >= writePos {
		return 0, false
	}
	v := q.data[readPos&q.mask]
	atomic.StoreUint64(&q.readPos, readPos+1)
	return v, true
}

// Len returns the number of samples currently queued.
func (q *SampleQueue) Len() int {
	writePos := atomic.LoadUint64(&q.writePos)
	readPos := atomic.LoadUint64(&q.readPos)
	return int(writePos - readPos)
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}
