package graph

import "github.com/dspforge/synthcore/pkg/graph/kernel"

// Factory instantiates a fresh kernel for a node type at the given sample
// rate. Port counts for variable-arity kernels (combinator, duplicator)
// are fixed at registration time; the command surface does not carry port
// counts, so AddNode always gets the registered default shape for a type.
type Factory func(sampleRate float64) kernel.Kernel

// Registry maps node type names to kernel factories.
type Registry struct {
	factories map[string]Factory
	kinds     map[string]NodeKind
}

// DefaultRegistry returns a registry populated with every built-in kernel.
func DefaultRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory), kinds: make(map[string]NodeKind)}

	r.register("sine_source", KindGenerator, func(sr float64) kernel.Kernel {
		s := kernel.NewSource(sr)
		s.SetParameter("waveform", float32(kernel.WaveformSine))
		return s
	})
	r.register("square_source", KindGenerator, func(sr float64) kernel.Kernel {
		s := kernel.NewSource(sr)
		s.SetParameter("waveform", float32(kernel.WaveformSquare))
		return s
	})
	r.register("sawtooth_source", KindGenerator, func(sr float64) kernel.Kernel {
		s := kernel.NewSource(sr)
		s.SetParameter("waveform", float32(kernel.WaveformSawtooth))
		return s
	})
	r.register("triangle_source", KindGenerator, func(sr float64) kernel.Kernel {
		s := kernel.NewSource(sr)
		s.SetParameter("waveform", float32(kernel.WaveformTriangle))
		return s
	})
	r.register("noise_source", KindGenerator, func(sr float64) kernel.Kernel {
		s := kernel.NewSource(sr)
		s.SetParameter("waveform", float32(kernel.WaveformNoise))
		return s
	})

	r.register("gain", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewGain() })
	r.register("clipper", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewClipper() })
	r.register("one_pole_lowpass", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewOnePoleLowPass(sr) })
	r.register("one_pole_highpass", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewOnePoleHighPass(sr) })
	r.register("bandpass_cascade", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewBandPassCascade(sr) })
	r.register("resonant_bandpass", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewResonantBandPass(sr) })
	r.register("moving_average", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewMovingAverage(8) })
	r.register("delay_line", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewDelayLine(sr) })
	r.register("combinator", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewCombinator(2, 1) })
	r.register("duplicator", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewDuplicator(2) })
	r.register("tremolo", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewTremolo(sr) })
	r.register("compressor", KindFilter, func(sr float64) kernel.Kernel { return kernel.NewCompressor(sr) })

	r.register("output_sink", KindSink, func(sr float64) kernel.Kernel { return kernel.NewOutputSink() })

	return r
}

func (r *Registry) register(typeName string, kind NodeKind, f Factory) {
	r.factories[typeName] = f
	r.kinds[typeName] = kind
}

// New instantiates the kernel registered for typeName, or reports
// UnknownNodeTypeError.
func (r *Registry) New(typeName string, sampleRate float64) (kernel.Kernel, error) {
	f, ok := r.factories[typeName]
	if !ok {
		return nil, &UnknownNodeTypeError{TypeName: typeName}
	}
	return f(sampleRate), nil
}

// KindOf returns the registered kind for typeName.
func (r *Registry) KindOf(typeName string) (NodeKind, bool) {
	k, ok := r.kinds[typeName]
	return k, ok
}
