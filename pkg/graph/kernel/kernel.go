// Package kernel defines the common capability set shared by every
// processing node in the audio graph, and implements the built-in
// filter/source/sink kernels.
package kernel

import "fmt"

// ParamSpec declares a kernel parameter's name, numeric range and default,
// so a UI can present a control without knowing the kernel's concrete type.
type ParamSpec struct {
	Name    string
	Min     float32
	Max     float32
	Default float32
}

// Kernel is implemented by every node the graph can host: oscillators,
// biquads, delay lines, mixers, splitters and sinks are all kernels.
type Kernel interface {
	NumInputs() int
	NumOutputs() int

	// Push delivers one input value for the current step on the given
	// port. The compiled graph calls it once per input port before
	// Transform, with the sum of the values on that port's incoming edges.
	Push(value float32, port int)

	// Transform computes this step's output vector from the pushed inputs
	// and the kernel's internal state, then clears the pushed inputs for
	// the next step.
	Transform() []float32

	// Postponable reports whether this kernel provides a natural one-sample
	// (or greater) delay, letting it participate in a graph cycle.
	Postponable() bool

	// SetParameter updates a named parameter, clamping out-of-range values
	// to the declared range. Coefficient-driven kernels recompute their
	// coefficients without resetting history.
	SetParameter(name string, value float32) error

	// Params returns the kernel's declared parameter set.
	Params() []ParamSpec
}

// Sink is a Kernel with zero output ports that buffers finished samples.
type Sink interface {
	Kernel
	// ConsumeOne drains the single oldest buffered sample without
	// allocating, for the render stage's one-sample-per-tick hot path.
	ConsumeOne() (float32, bool)
	// Consume drains up to n of the oldest buffered samples.
	Consume(n int) []float32
}

// UnknownParameterError is returned by SetParameter for an unrecognized name.
type UnknownParameterError struct {
	Kernel string
	Name   string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: unknown parameter %q", e.Kernel, e.Name)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// findParam returns the spec for name, or nil.
func findParam(specs []ParamSpec, name string) *ParamSpec {
	for i := range specs {
		if specs[i].Name == name {
			return &specs[i]
		}
	}
	return nil
}
