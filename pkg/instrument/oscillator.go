// Package instrument implements the polyphonic instrument model: oscillators
// with pitch/amplitude envelopes, multi-tone generators, voices and the
// fixed-voice-count allocator that drives them from NoteStart/NoteStop.
package instrument

import "math"

// Waveform selects an oscillator's periodic function.
type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformSquare
	WaveformSawtooth
	WaveformTriangle
	WaveformNoise
)

// EnvelopeFunc maps normalized time (>= 0) to a scalar. It is a pure
// function with no global state so it can be cloned freely across voices.
type EnvelopeFunc func(normalizedTime float64) float64

// Constant returns an envelope that is always value.
func Constant(value float64) EnvelopeFunc {
	return func(float64) float64 { return value }
}

// LinearRamp returns an envelope that rises from start to end over
// durationSeconds, then holds at end.
func LinearRamp(start, end, durationSeconds float64) EnvelopeFunc {
	return func(t float64) float64 {
		if durationSeconds <= 0 || t >= durationSeconds {
			return end
		}
		frac := t / durationSeconds
		return start + (end-start)*frac
	}
}

// oscState is the lifecycle of an Oscillator.
type oscState int

const (
	oscIdle oscState = iota
	oscRunning
	oscStopped
	oscCompleted
)

// Oscillator is an addressable synthesis unit: a waveform variant, a
// fundamental frequency, an amplitude, a pitch envelope (normalized-time ->
// multiplicative pitch factor) and an amplitude envelope (normalized-time ->
// 0..1), a running phase and a running normalized time. Start/Stop never
// allocate.
type Oscillator struct {
	sampleRate float64
	waveform   Waveform

	frequency float64
	amplitude float64

	pitchEnvelope EnvelopeFunc
	ampEnvelope   EnvelopeFunc

	phase          float64
	normalizedTime float64
	state          oscState
	noiseSeed      uint64
}

// NewOscillator creates an idle oscillator at the given sample rate.
func NewOscillator(sampleRate float64) *Oscillator {
	return &Oscillator{
		sampleRate:    sampleRate,
		waveform:      WaveformSine,
		frequency:     440.0,
		amplitude:     1.0,
		pitchEnvelope: Constant(1.0),
		ampEnvelope:   Constant(1.0),
		state:         oscIdle,
		noiseSeed:     0x2545F4914F6CDD1D,
	}
}

func (o *Oscillator) SetWaveform(w Waveform)              { o.waveform = w }
func (o *Oscillator) SetFrequency(hz float64)             { o.frequency = hz }
func (o *Oscillator) SetAmplitude(a float64)              { o.amplitude = a }
func (o *Oscillator) SetPitchEnvelope(f EnvelopeFunc)     { o.pitchEnvelope = f }
func (o *Oscillator) SetAmplitudeEnvelope(f EnvelopeFunc) { o.ampEnvelope = f }

// Start resets phase and normalized time and begins producing. Does not
// allocate.
func (o *Oscillator) Start() {
	o.phase = 0
	o.normalizedTime = 0
	o.state = oscRunning
}

// Stop marks the oscillator stopped; it keeps producing through the
// amplitude envelope's release until that envelope reaches zero, at which
// point Tick marks it Completed. Does not allocate.
func (o *Oscillator) Stop() {
	if o.state == oscRunning {
		o.state = oscStopped
	}
}

// IsCompleted reports whether the amplitude envelope has returned to zero
// after Stop.
func (o *Oscillator) IsCompleted() bool { return o.state == oscCompleted }

// IsActive reports whether the oscillator is producing (running or in
// release).
func (o *Oscillator) IsActive() bool { return o.state == oscRunning || o.state == oscStopped }

// Tick advances phase and normalized time by one sample and returns the
// next output sample.
func (o *Oscillator) Tick() float32 {
	if o.state == oscIdle || o.state == oscCompleted {
		return 0
	}

	dt := 1.0 / o.sampleRate
	pitchFactor := o.pitchEnvelope(o.normalizedTime)
	ampFactor := o.ampEnvelope(o.normalizedTime)

	sample := o.waveformSample()

	o.phase += 2.0 * math.Pi * o.frequency * pitchFactor / o.sampleRate
	if o.phase >= 2.0*math.Pi {
		o.phase -= 2.0 * math.Pi
	}
	o.normalizedTime += dt

	if o.state == oscStopped && ampFactor <= 0 {
		o.state = oscCompleted
	}

	return float32(sample * o.amplitude * ampFactor)
}

func (o *Oscillator) waveformSample() float64 {
	switch o.waveform {
	case WaveformSine:
		return math.Sin(o.phase)
	case WaveformSquare:
		if math.Sin(o.phase) >= 0 {
			return 1
		}
		return -1
	case WaveformSawtooth:
		return 2.0*(o.phase/(2*math.Pi)) - 1.0
	case WaveformTriangle:
		t := o.phase / (2 * math.Pi)
		if t < 0.5 {
			return 4.0*t - 1.0
		}
		return 3.0 - 4.0*t
	case WaveformNoise:
		return o.nextNoise()
	default:
		return 0
	}
}

// nextNoise advances a small xorshift64 generator to avoid depending on
// math/rand's lock-protected global source on the render hot path.
func (o *Oscillator) nextNoise() float64 {
	x := o.noiseSeed
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	o.noiseSeed = x
	return (float64(x>>11) / float64(1<<53))*2.0 - 1.0
}
