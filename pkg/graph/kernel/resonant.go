package kernel

import "math"

// ResonantBandPass implements a two-pole resonant band-pass biquad with pole
// radius r = exp(-pi*(centerHz/Q)/sampleRate). The denominator is
// a = [1, -2r*cos(2*pi*centerHz/sampleRate), r^2]; the numerator is
// normalized for unity pass-band peak: b = [1-r, 0, -(1-r)*r]. Processed
// with the transposed direct-form-II update; state is two f64 accumulators.
// Stability is automatic because r < 1 by construction.
type ResonantBandPass struct {
	sampleRate float64
	centerHz   float64
	q          float64

	b0, b2 float64
	a1, a2 float64

	z1, z2 float64
	in     float32
}

// NewResonantBandPass creates a resonant band-pass at the given sample rate.
func NewResonantBandPass(sampleRate float64) *ResonantBandPass {
	r := &ResonantBandPass{sampleRate: sampleRate, centerHz: 440.0, q: 1.0}
	r.recompute()
	return r
}

func (r *ResonantBandPass) recompute() {
	pole := math.Exp(-math.Pi * (r.centerHz / r.q) / r.sampleRate)
	r.a1 = -2.0 * pole * math.Cos(2.0*math.Pi*r.centerHz/r.sampleRate)
	r.a2 = pole * pole
	r.b0 = 1.0 - pole
	r.b2 = -(1.0 - pole) * pole
}

func (r *ResonantBandPass) NumInputs() int  { return 1 }
func (r *ResonantBandPass) NumOutputs() int { return 1 }

func (r *ResonantBandPass) Push(value float32, port int) {
	if port == 0 {
		r.in = value
	}
}

func (r *ResonantBandPass) Transform() []float32 {
	x := float64(r.in)
	y := r.b0*x + r.z1
	r.z1 = r.b2*x - r.a1*y + r.z2
	r.z2 = -r.a2 * y
	r.in = 0
	return []float32{float32(y)}
}

// Postponable is false: the transposed direct-form-II update folds b0*x[n]
// directly into this step's output, so it depends on this step's input the
// same way the one-pole filters do.
func (r *ResonantBandPass) Postponable() bool { return false }

func (r *ResonantBandPass) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "center_hz", Min: 1.0, Max: float32(r.sampleRate / 2), Default: 440.0},
		{Name: "q", Min: 0.1, Max: 20.0, Default: 1.0},
	}
}

func (r *ResonantBandPass) SetParameter(name string, value float32) error {
	switch name {
	case "center_hz":
		r.centerHz = float64(clamp(value, 1.0, float32(r.sampleRate/2)))
	case "q":
		r.q = float64(clamp(value, 0.1, 20.0))
	default:
		return &UnknownParameterError{Kernel: "resonant_bandpass", Name: name}
	}
	r.recompute()
	return nil
}
