package instrument

import (
	"math"

	"github.com/dspforge/synthcore/pkg/dsp/envelope"
)

// voiceState mirrors oscState but at the voice level, since a voice stays
// IsActive through its release tail even after StopNote.
type voiceState int

const (
	voiceIdle voiceState = iota
	voiceActive
	voiceReleasing
)

// Voice is one polyphonic slot: a multi-tone generator tuned to a note,
// gated by an amplitude envelope shaped by attack/release times. Age is a
// monotonically increasing counter stamped at TriggerNote, used by the
// allocator's least-recently-started stealing policy.
type Voice struct {
	generator *MultiToneGenerator
	gate      *envelope.AR

	note     int
	velocity float32
	age      uint64

	state    voiceState
	envLevel float32
}

// NewVoice creates a voice with a default single-sine-tone generator at
// middle frequency; callers reconfigure the generator's tones before use.
func NewVoice(sampleRate float64) *Voice {
	gen := NewMultiToneGenerator(sampleRate)
	gen.AddTone(WaveformSine, ToneRelation{Kind: RelationIdentity})
	gate := envelope.NewAR(sampleRate)
	gate.SetAttack(0.005)
	gate.SetRelease(0.05)
	return &Voice{
		generator: gen,
		gate:      gate,
	}
}

// Generator exposes the voice's tone generator for configuration
// (waveforms, tone relations, mix mode) before it is triggered.
func (v *Voice) Generator() *MultiToneGenerator { return v.generator }

// SetAttackRelease configures the amplitude gate's attack and release
// times in seconds.
func (v *Voice) SetAttackRelease(attackSeconds, releaseSeconds float64) {
	v.gate.SetAttack(attackSeconds)
	v.gate.SetRelease(releaseSeconds)
}

// TriggerNote starts the voice on note at the given velocity (0..1),
// stamping age from the caller's monotonic counter.
func (v *Voice) TriggerNote(note int, velocity float32, age uint64) {
	v.note = note
	v.velocity = velocity
	v.age = age
	v.state = voiceActive
	v.generator.SetBaseFrequency(noteToFrequency(note))
	v.generator.Start()
	v.gate.Trigger()
}

// ReleaseNote begins the release tail; the voice stays active until the
// envelope gate decays to silence.
func (v *Voice) ReleaseNote() {
	if v.state == voiceActive {
		v.state = voiceReleasing
		v.gate.Release()
	}
}

// Stop forces the voice silent immediately, bypassing release.
func (v *Voice) Stop() {
	v.state = voiceIdle
	v.envLevel = 0
	v.gate.Release()
	v.generator.Stop()
}

// IsActive reports whether the voice is producing sound (attack, sustain
// or release).
func (v *Voice) IsActive() bool { return v.state != voiceIdle }

// Note, Velocity and Age expose the voice's current assignment for the
// allocator's bookkeeping.
func (v *Voice) Note() int         { return v.note }
func (v *Voice) Velocity() float32 { return v.velocity }
func (v *Voice) Age() uint64       { return v.age }

// Tick advances the voice by one sample and returns its gated output.
func (v *Voice) Tick() float32 {
	if v.state == voiceIdle {
		return 0
	}

	v.envLevel = v.gate.Next()
	sample := v.generator.Tick()

	if v.state == voiceReleasing && v.envLevel < 1e-4 {
		v.state = voiceIdle
		v.envLevel = 0
		v.generator.Stop()
	}

	return sample * v.envLevel * v.velocity
}

// noteToFrequency converts a MIDI-style note number (69 = A4 = 440Hz) to
// a frequency in Hz using equal temperament.
func noteToFrequency(note int) float64 {
	return 440.0 * math.Pow(2.0, float64(note-69)/12.0)
}
