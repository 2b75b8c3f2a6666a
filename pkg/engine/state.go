// Package engine wires the command stage, render stage and device callback
// together: shared atomic state, configuration, the lock-free queues that
// connect the three stages, and the stages themselves.
package engine

import (
	"sync/atomic"
	"unsafe"
)

// SharedState is the process-wide record every stage reads and writes
// without locking: a shutdown flag, an underrun counter, the configured
// sample rate, and the master volume. All fields are accessed through
// atomic operations; master volume round-trips through its bit pattern
// since float32 is not itself an atomic primitive.
type SharedState struct {
	shutdown      uint32
	underrunCount uint64
	sampleRate    uint32
	masterVolume  uint32
}

// NewSharedState creates a shared state record initialized from a
// configuration document.
func NewSharedState(sampleRate uint32, masterVolume float32) *SharedState {
	s := &SharedState{sampleRate: sampleRate}
	s.SetMasterVolume(masterVolume)
	return s
}

// RequestShutdown sets the cooperative shutdown flag. Every stage observes
// it at its next loop iteration; there is no forced termination.
func (s *SharedState) RequestShutdown() {
	atomic.StoreUint32(&s.shutdown, 1)
}

// ShuttingDown reports whether shutdown has been requested.
func (s *SharedState) ShuttingDown() bool {
	return atomic.LoadUint32(&s.shutdown) != 0
}

// ReportUnderrun increments the underrun counter. Called from the device
// callback, which must not allocate or lock; atomic add satisfies both.
func (s *SharedState) ReportUnderrun() {
	atomic.AddUint64(&s.underrunCount, 1)
}

// UnderrunCount returns the current underrun count for periodic reporting.
func (s *SharedState) UnderrunCount() uint64 {
	return atomic.LoadUint64(&s.underrunCount)
}

// SampleRate returns the configured sample rate.
func (s *SharedState) SampleRate() uint32 {
	return atomic.LoadUint32(&s.sampleRate)
}

// MasterVolume returns the current master volume.
func (s *SharedState) MasterVolume() float32 {
	bits := atomic.LoadUint32(&s.masterVolume)
	return float32frombits(bits)
}

// SetMasterVolume updates the master volume, clamped to [0, 1].
func (s *SharedState) SetMasterVolume(v float32) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	atomic.StoreUint32(&s.masterVolume, float32bits(v))
}

func float32bits(f float32) uint32 {
	return *(*uint32)(unsafe.Pointer(&f))
}

func float32frombits(b uint32) float32 {
	return *(*float32)(unsafe.Pointer(&b))
}
