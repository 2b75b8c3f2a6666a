package queue

import "sync/atomic"

// MessageQueue is a lock-free single-producer/single-consumer ring buffer
// of arbitrary audio-message values (see engine.Message), connecting the
// command stage to the render stage. Audio-messages from a single
// producer drain in the order they were pushed.
type MessageQueue struct {
	data     []interface{}
	mask     uint64
	readPos  uint64
	writePos uint64
}

// NewMessageQueue creates a queue with room for at least capacity
// messages.
func NewMessageQueue(capacity int) *MessageQueue {
	size := nextPowerOfTwo(uint64(capacity))
	return &MessageQueue{
		data: make([]interface{}, size),
		mask: size - 1,
	}
}

// Push appends one message, returning false if the queue is full.
func (q *MessageQueue) Push(msg interface{}) bool {
	writePos := atomic.LoadUint64(&q.writePos)
	readPos := atomic.LoadUint64(&q.readPos)
	if writePos-readPos >= uint64(len(q.data)) {
		return false
	}
	q.data[writePos&q.mask] = msg
	atomic.StoreUint64(&q.writePos, writePos+1)
	return true
}

// Pop removes and returns the oldest message, or (nil, false) if empty.
func (q *MessageQueue) Pop() (interface{}, bool) {
	readPos := atomic.LoadUint64(&q.readPos)
	writePos := atomic.LoadUint64(&q.writePos)
	if readPos >= writePos {
		return nil, false
	}
	msg := q.data[readPos&q.mask]
	q.data[readPos&q.mask] = nil
	atomic.StoreUint64(&q.readPos, readPos+1)
	return msg, true
}
