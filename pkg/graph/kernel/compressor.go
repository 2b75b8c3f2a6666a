package kernel

import "math"

// Compressor implements a single-sample envelope-follower compressor:
// env = max(|x|, a_r*env_prev), switching between a_a and a_r depending on
// whether |x| is rising or falling relative to env_prev. Static gain is
// (threshold + (env-threshold)/ratio) / env when env exceeds threshold, 1
// otherwise.
type Compressor struct {
	sampleRate float64
	threshold  float64
	ratio      float64
	attackS    float64
	releaseS   float64

	alphaAttack  float64
	alphaRelease float64
	envelope     float64
	in           float32
}

// NewCompressor creates a compressor at the given sample rate.
func NewCompressor(sampleRate float64) *Compressor {
	c := &Compressor{
		sampleRate: sampleRate,
		threshold:  0.5,
		ratio:      4.0,
		attackS:    0.01,
		releaseS:   0.1,
	}
	c.recompute()
	return c
}

func (c *Compressor) recompute() {
	c.alphaAttack = math.Exp(-1.0 / (c.attackS * c.sampleRate))
	c.alphaRelease = math.Exp(-1.0 / (c.releaseS * c.sampleRate))
}

func (c *Compressor) NumInputs() int  { return 1 }
func (c *Compressor) NumOutputs() int { return 1 }

func (c *Compressor) Push(value float32, port int) {
	if port == 0 {
		c.in = value
	}
}

func (c *Compressor) Transform() []float32 {
	x := float64(c.in)
	absX := math.Abs(x)

	alpha := c.alphaRelease
	if absX > c.envelope {
		alpha = c.alphaAttack
	}
	c.envelope = math.Max(absX, alpha*c.envelope)

	gain := 1.0
	if c.envelope > c.threshold {
		gain = (c.threshold + (c.envelope-c.threshold)/c.ratio) / c.envelope
	}

	c.in = 0
	return []float32{float32(x * gain)}
}

func (c *Compressor) Postponable() bool { return false }

func (c *Compressor) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "threshold", Min: 0.001, Max: 1.0, Default: 0.5},
		{Name: "ratio", Min: 1.0, Max: 20.0, Default: 4.0},
		{Name: "attack_s", Min: 0.0001, Max: 1.0, Default: 0.01},
		{Name: "release_s", Min: 0.001, Max: 5.0, Default: 0.1},
	}
}

func (c *Compressor) SetParameter(name string, value float32) error {
	switch name {
	case "threshold":
		c.threshold = float64(clamp(value, 0.001, 1.0))
	case "ratio":
		c.ratio = float64(clamp(value, 1.0, 20.0))
	case "attack_s":
		c.attackS = float64(clamp(value, 0.0001, 1.0))
		c.recompute()
	case "release_s":
		c.releaseS = float64(clamp(value, 0.001, 5.0))
		c.recompute()
	default:
		return &UnknownParameterError{Kernel: "compressor", Name: name}
	}
	return nil
}
