package engine

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"

	"github.com/dspforge/synthcore/pkg/engine/queue"
)

// DeviceCallback is the real-time audio callback adapter: it implements
// io.Reader for oto's player, popping samples from the output queue and
// writing them to the hardware buffer. It must never allocate, lock, or
// block — an empty queue writes silence instead of waiting.
type DeviceCallback struct {
	state   *SharedState
	samples *queue.SampleQueue
	ctx     *oto.Context
	player  *oto.Player
}

// OpenDevice opens the default output device at sampleRate, mono,
// IEEE-754 float32 samples, per the startup sequence's device-open step.
func OpenDevice(state *SharedState, samples *queue.SampleQueue, sampleRate int) (*DeviceCallback, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, &DeviceOpenFailedError{Reason: err.Error()}
	}
	<-ready

	d := &DeviceCallback{state: state, samples: samples, ctx: ctx}
	d.player = ctx.NewPlayer(d)
	return d, nil
}

// Start begins playback; the OS audio service calls Read on its own
// real-time thread from this point on.
func (d *DeviceCallback) Start() { d.player.Play() }

// Close stops playback and releases the device.
func (d *DeviceCallback) Close() { d.player.Close() }

// Read pops one sample per four bytes from the output queue and writes it
// little-endian IEEE-754 float32. On an empty queue it writes zeros,
// counts an underrun, and returns — it never blocks.
func (d *DeviceCallback) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		sample, ok := d.samples.Pop()
		if !ok {
			sample = 0
			d.state.ReportUnderrun()
		}
		binary.LittleEndian.PutUint32(p[i*4:i*4+4], math.Float32bits(sample))
	}
	for i := n * 4; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}
