package kernel

import "math"

// OnePoleLowPass implements y[n] = a*x[n] + (1-a)*y[n-1] with
// a = 1 - exp(-2*pi*cutoff/sampleRate). The naive a = fc/(fc+1) seen in
// some references ignores sample rate and must not be used.
type OnePoleLowPass struct {
	sampleRate float64
	cutoffHz   float64
	alpha      float64
	prevOut    float64
	in         float32
}

// NewOnePoleLowPass creates a low-pass kernel at the given sample rate.
func NewOnePoleLowPass(sampleRate float64) *OnePoleLowPass {
	lp := &OnePoleLowPass{sampleRate: sampleRate, cutoffHz: 1000.0}
	lp.recompute()
	return lp
}

func (lp *OnePoleLowPass) recompute() {
	lp.alpha = 1.0 - math.Exp(-2.0*math.Pi*lp.cutoffHz/lp.sampleRate)
}

func (lp *OnePoleLowPass) NumInputs() int  { return 1 }
func (lp *OnePoleLowPass) NumOutputs() int { return 1 }

func (lp *OnePoleLowPass) Push(value float32, port int) {
	if port == 0 {
		lp.in = value
	}
}

func (lp *OnePoleLowPass) Transform() []float32 {
	y := lp.alpha*float64(lp.in) + (1.0-lp.alpha)*lp.prevOut
	lp.prevOut = y
	lp.in = 0
	return []float32{float32(y)}
}

func (lp *OnePoleLowPass) Postponable() bool { return false }

func (lp *OnePoleLowPass) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "cutoff_hz", Min: 1.0, Max: float32(lp.sampleRate / 2), Default: 1000.0},
	}
}

func (lp *OnePoleLowPass) SetParameter(name string, value float32) error {
	switch name {
	case "cutoff_hz":
		nyquist := float32(lp.sampleRate / 2)
		lp.cutoffHz = float64(clamp(value, 1.0, nyquist))
		lp.recompute()
		return nil
	default:
		return &UnknownParameterError{Kernel: "one_pole_lowpass", Name: name}
	}
}

// OnePoleHighPass implements y[n] = a*(y[n-1] + x[n] - x[n-1]) with
// a = RC/(RC+dt), RC = 1/(2*pi*cutoff), dt = 1/sampleRate.
type OnePoleHighPass struct {
	sampleRate float64
	cutoffHz   float64
	alpha      float64
	prevIn     float64
	prevOut    float64
	in         float32
}

// NewOnePoleHighPass creates a high-pass kernel at the given sample rate.
func NewOnePoleHighPass(sampleRate float64) *OnePoleHighPass {
	hp := &OnePoleHighPass{sampleRate: sampleRate, cutoffHz: 1000.0}
	hp.recompute()
	return hp
}

func (hp *OnePoleHighPass) recompute() {
	rc := 1.0 / (2.0 * math.Pi * hp.cutoffHz)
	dt := 1.0 / hp.sampleRate
	hp.alpha = rc / (rc + dt)
}

func (hp *OnePoleHighPass) NumInputs() int  { return 1 }
func (hp *OnePoleHighPass) NumOutputs() int { return 1 }

func (hp *OnePoleHighPass) Push(value float32, port int) {
	if port == 0 {
		hp.in = value
	}
}

func (hp *OnePoleHighPass) Transform() []float32 {
	x := float64(hp.in)
	y := hp.alpha * (hp.prevOut + x - hp.prevIn)
	hp.prevIn = x
	hp.prevOut = y
	hp.in = 0
	return []float32{float32(y)}
}

func (hp *OnePoleHighPass) Postponable() bool { return false }

func (hp *OnePoleHighPass) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "cutoff_hz", Min: 1.0, Max: float32(hp.sampleRate / 2), Default: 1000.0},
	}
}

func (hp *OnePoleHighPass) SetParameter(name string, value float32) error {
	switch name {
	case "cutoff_hz":
		nyquist := float32(hp.sampleRate / 2)
		hp.cutoffHz = float64(clamp(value, 1.0, nyquist))
		hp.recompute()
		return nil
	default:
		return &UnknownParameterError{Kernel: "one_pole_highpass", Name: name}
	}
}
