package kernel

import "math"

// Tremolo implements sinusoidal amplitude modulation: a phase accumulator
// drives a sine modulator mapped onto [lower, upper], and the input is
// scaled by that modulator each step.
type Tremolo struct {
	sampleRate float64
	lfoHz      float64
	lower      float64
	upper      float64
	phase      float64
	in         float32
}

// NewTremolo creates a tremolo kernel at the given sample rate.
func NewTremolo(sampleRate float64) *Tremolo {
	return &Tremolo{sampleRate: sampleRate, lfoHz: 5.0, lower: 0.0, upper: 1.0}
}

func (t *Tremolo) NumInputs() int  { return 1 }
func (t *Tremolo) NumOutputs() int { return 1 }

func (t *Tremolo) Push(value float32, port int) {
	if port == 0 {
		t.in = value
	}
}

func (t *Tremolo) Transform() []float32 {
	modulator := math.Sin(t.phase)*(t.upper-t.lower)/2.0 + (t.upper+t.lower)/2.0

	t.phase += 2.0 * math.Pi * t.lfoHz / t.sampleRate
	if t.phase >= 2.0*math.Pi {
		t.phase -= 2.0 * math.Pi
	}

	out := t.in * float32(modulator)
	t.in = 0
	return []float32{out}
}

func (t *Tremolo) Postponable() bool { return false }

func (t *Tremolo) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "lfo_hz", Min: 0.01, Max: 50.0, Default: 5.0},
		{Name: "lower", Min: -1.0, Max: 1.0, Default: 0.0},
		{Name: "upper", Min: -1.0, Max: 1.0, Default: 1.0},
	}
}

func (t *Tremolo) SetParameter(name string, value float32) error {
	switch name {
	case "lfo_hz":
		t.lfoHz = float64(clamp(value, 0.01, 50.0))
	case "lower":
		t.lower = float64(clamp(value, -1.0, 1.0))
	case "upper":
		t.upper = float64(clamp(value, -1.0, 1.0))
	default:
		return &UnknownParameterError{Kernel: "tremolo", Name: name}
	}
	return nil
}
