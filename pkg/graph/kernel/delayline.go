package kernel

import "math"

// DelayLine is a ring-buffer delay of a fixed integer sample count. It
// reads the buffer before overwriting, so it returns the N-sample-delayed
// input. A delay line naturally provides the one-sample (or greater) lag
// required to break a feedback cycle: it is postponable.
type DelayLine struct {
	sampleRate    float64
	delaySeconds  float64
	buf           []float32
	idx           int
	in            float32
}

// NewDelayLine creates a delay line sized for delaySeconds at sampleRate.
func NewDelayLine(sampleRate float64) *DelayLine {
	d := &DelayLine{sampleRate: sampleRate, delaySeconds: 0.1}
	d.resize()
	return d
}

func (d *DelayLine) resize() {
	n := int(math.Ceil(d.delaySeconds * d.sampleRate))
	if n < 1 {
		n = 1
	}
	if len(d.buf) != n {
		d.buf = make([]float32, n)
		d.idx = 0
	}
}

func (d *DelayLine) NumInputs() int  { return 1 }
func (d *DelayLine) NumOutputs() int { return 1 }

func (d *DelayLine) Push(value float32, port int) {
	if port == 0 {
		d.in = value
	}
}

func (d *DelayLine) Transform() []float32 {
	y := d.buf[d.idx]
	d.buf[d.idx] = d.in
	d.idx = (d.idx + 1) % len(d.buf)
	d.in = 0
	return []float32{y}
}

func (d *DelayLine) Postponable() bool { return true }

func (d *DelayLine) Params() []ParamSpec {
	return []ParamSpec{{Name: "delay_seconds", Min: 0.001, Max: 5.0, Default: 0.1}}
}

// SetParameter resizes the ring buffer. Growing or shrinking the buffer
// necessarily discards the previously buffered history.
func (d *DelayLine) SetParameter(name string, value float32) error {
	if name != "delay_seconds" {
		return &UnknownParameterError{Kernel: "delay_line", Name: name}
	}
	d.delaySeconds = float64(clamp(value, 0.001, 5.0))
	d.resize()
	return nil
}
