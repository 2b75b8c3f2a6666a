package kernel

// MovingAverage is a constant-time FIR moving-average filter backed by a
// ring buffer and a running sum.
type MovingAverage struct {
	buf        []float32
	idx        int
	sum        float32
	windowSize int
	in         float32
}

// NewMovingAverage creates a moving-average kernel with the given window.
func NewMovingAverage(windowSize int) *MovingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &MovingAverage{
		buf:        make([]float32, windowSize),
		windowSize: windowSize,
	}
}

func (m *MovingAverage) NumInputs() int  { return 1 }
func (m *MovingAverage) NumOutputs() int { return 1 }

func (m *MovingAverage) Push(value float32, port int) {
	if port == 0 {
		m.in = value
	}
}

func (m *MovingAverage) Transform() []float32 {
	m.sum -= m.buf[m.idx]
	m.buf[m.idx] = m.in
	m.sum += m.in
	m.idx = (m.idx + 1) % m.windowSize
	out := m.sum / float32(m.windowSize)
	m.in = 0
	return []float32{out}
}

func (m *MovingAverage) Postponable() bool { return false }

func (m *MovingAverage) Params() []ParamSpec {
	return []ParamSpec{{Name: "window_size", Min: 1.0, Max: 48000.0, Default: float32(m.windowSize)}}
}

// SetParameter resizes the window, resetting history (a window-size change
// redefines the filter's time constant, so there is no meaningful history
// to carry across a different buffer length).
func (m *MovingAverage) SetParameter(name string, value float32) error {
	if name != "window_size" {
		return &UnknownParameterError{Kernel: "moving_average", Name: name}
	}
	size := int(clamp(value, 1.0, 48000.0))
	if size != m.windowSize {
		m.windowSize = size
		m.buf = make([]float32, size)
		m.idx = 0
		m.sum = 0
	}
	return nil
}
