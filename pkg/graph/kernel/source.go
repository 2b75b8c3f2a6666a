package kernel

import (
	"math"
	"math/rand"
)

// Waveform selects the periodic function a Source kernel generates.
type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformSquare
	WaveformSawtooth
	WaveformTriangle
	WaveformNoise
)

// Source is a zero-input kernel that produces samples from its own running
// phase: a graph-level oscillator. It has no input ports.
type Source struct {
	sampleRate float64
	waveform   Waveform
	frequency  float64
	amplitude  float64
	phase      float64
	rng        *rand.Rand
}

// NewSource creates a source oscillator at the given sample rate.
func NewSource(sampleRate float64) *Source {
	return &Source{
		sampleRate: sampleRate,
		waveform:   WaveformSine,
		frequency:  440.0,
		amplitude:  1.0,
		rng:        rand.New(rand.NewSource(1)),
	}
}

func (s *Source) NumInputs() int  { return 0 }
func (s *Source) NumOutputs() int { return 1 }

func (s *Source) Push(value float32, port int) {}

func (s *Source) Transform() []float32 {
	var sample float64
	switch s.waveform {
	case WaveformSine:
		sample = math.Sin(s.phase)
	case WaveformSquare:
		if math.Sin(s.phase) >= 0 {
			sample = 1
		} else {
			sample = -1
		}
	case WaveformSawtooth:
		sample = 2.0*(s.phase/(2*math.Pi)) - 1.0
	case WaveformTriangle:
		t := s.phase / (2 * math.Pi)
		if t < 0.5 {
			sample = 4.0*t - 1.0
		} else {
			sample = 3.0 - 4.0*t
		}
	case WaveformNoise:
		sample = s.rng.Float64()*2.0 - 1.0
	}

	s.phase += 2.0 * math.Pi * s.frequency / s.sampleRate
	if s.phase >= 2.0*math.Pi {
		s.phase -= 2.0 * math.Pi
	}

	return []float32{float32(sample * s.amplitude)}
}

func (s *Source) Postponable() bool { return false }

func (s *Source) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "frequency_hz", Min: 0.0, Max: float32(s.sampleRate / 2), Default: 440.0},
		{Name: "amplitude", Min: 0.0, Max: 1.0, Default: 1.0},
		{Name: "waveform", Min: 0.0, Max: float32(WaveformNoise), Default: 0.0},
	}
}

func (s *Source) SetParameter(name string, value float32) error {
	switch name {
	case "frequency_hz":
		s.frequency = float64(clamp(value, 0.0, float32(s.sampleRate/2)))
	case "amplitude":
		s.amplitude = float64(clamp(value, 0.0, 1.0))
	case "waveform":
		s.waveform = Waveform(clamp(value, 0.0, float32(WaveformNoise)))
	default:
		return &UnknownParameterError{Kernel: "source", Name: name}
	}
	return nil
}
