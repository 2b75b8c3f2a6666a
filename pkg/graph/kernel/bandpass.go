package kernel

// BandPassCascade implements a band-pass as a high-pass at lowerHz followed
// by a low-pass at upperHz. It inherits stability from its stages.
type BandPassCascade struct {
	hp *OnePoleHighPass
	lp *OnePoleLowPass
	in float32
}

// NewBandPassCascade creates a cascaded band-pass at the given sample rate.
func NewBandPassCascade(sampleRate float64) *BandPassCascade {
	b := &BandPassCascade{
		hp: NewOnePoleHighPass(sampleRate),
		lp: NewOnePoleLowPass(sampleRate),
	}
	b.hp.SetParameter("cutoff_hz", 200.0)
	b.lp.SetParameter("cutoff_hz", 4000.0)
	return b
}

func (b *BandPassCascade) NumInputs() int  { return 1 }
func (b *BandPassCascade) NumOutputs() int { return 1 }

func (b *BandPassCascade) Push(value float32, port int) {
	if port == 0 {
		b.in = value
	}
}

func (b *BandPassCascade) Transform() []float32 {
	b.hp.Push(b.in, 0)
	hpOut := b.hp.Transform()[0]
	b.lp.Push(hpOut, 0)
	lpOut := b.lp.Transform()[0]
	b.in = 0
	return []float32{lpOut}
}

func (b *BandPassCascade) Postponable() bool { return false }

func (b *BandPassCascade) Params() []ParamSpec {
	lpSpec := b.lp.Params()[0]
	return []ParamSpec{
		{Name: "lower_hz", Min: 1.0, Max: lpSpec.Max, Default: 200.0},
		{Name: "upper_hz", Min: 1.0, Max: lpSpec.Max, Default: 4000.0},
	}
}

func (b *BandPassCascade) SetParameter(name string, value float32) error {
	switch name {
	case "lower_hz":
		return b.hp.SetParameter("cutoff_hz", value)
	case "upper_hz":
		return b.lp.SetParameter("cutoff_hz", value)
	default:
		return &UnknownParameterError{Kernel: "bandpass_cascade", Name: name}
	}
}
