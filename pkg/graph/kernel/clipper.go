package kernel

// Clipper hard-clamps its input to [-max, +max], symmetric about zero.
// Asymmetric clipping would introduce a DC offset and is a defect.
type Clipper struct {
	maxAmplitude float32
	in           float32
}

// NewClipper creates a clipper with unity max amplitude.
func NewClipper() *Clipper { return &Clipper{maxAmplitude: 1.0} }

func (c *Clipper) NumInputs() int  { return 1 }
func (c *Clipper) NumOutputs() int { return 1 }

func (c *Clipper) Push(value float32, port int) {
	if port == 0 {
		c.in = value
	}
}

func (c *Clipper) Transform() []float32 {
	out := clamp(c.in, -c.maxAmplitude, c.maxAmplitude)
	c.in = 0
	return []float32{out}
}

func (c *Clipper) Postponable() bool { return false }

func (c *Clipper) Params() []ParamSpec {
	return []ParamSpec{{Name: "max_amplitude", Min: 0.0, Max: 1.0, Default: 1.0}}
}

func (c *Clipper) SetParameter(name string, value float32) error {
	spec := findParam(c.Params(), name)
	if spec == nil {
		return &UnknownParameterError{Kernel: "clipper", Name: name}
	}
	c.maxAmplitude = clamp(value, spec.Min, spec.Max)
	return nil
}
