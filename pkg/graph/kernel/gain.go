package kernel

// Gain scales its input by a fixed linear factor.
type Gain struct {
	factor float32
	in     float32
}

// NewGain creates a unity-gain kernel.
func NewGain() *Gain { return &Gain{factor: 1.0} }

func (g *Gain) NumInputs() int  { return 1 }
func (g *Gain) NumOutputs() int { return 1 }

func (g *Gain) Push(value float32, port int) {
	if port == 0 {
		g.in = value
	}
}

func (g *Gain) Transform() []float32 {
	out := g.in * g.factor
	g.in = 0
	return []float32{out}
}

func (g *Gain) Postponable() bool { return false }

func (g *Gain) Params() []ParamSpec {
	return []ParamSpec{{Name: "factor", Min: -4.0, Max: 4.0, Default: 1.0}}
}

func (g *Gain) SetParameter(name string, value float32) error {
	spec := findParam(g.Params(), name)
	if spec == nil {
		return &UnknownParameterError{Kernel: "gain", Name: name}
	}
	g.factor = clamp(value, spec.Min, spec.Max)
	return nil
}
