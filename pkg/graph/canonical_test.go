package graph

import "testing"

func TestAddNodeAssignsStrictlyIncreasingIDs(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	first, _ := g.AddNode("gain", KindFilter, Position{})
	second, _ := g.AddNode("gain", KindFilter, Position{})
	if second != first+1 {
		t.Errorf("expected monotonically increasing IDs, got %d then %d", first, second)
	}
}

func TestRemoveNodeTransitivelyRemovesConnections(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	a, _ := g.AddNode("sine_source", KindGenerator, Position{})
	b, _ := g.AddNode("output_sink", KindSink, Position{})
	g.Connect(a, 0, b, 0)

	g.RemoveNode(a)
	if len(g.Connections()) != 0 {
		t.Errorf("expected removing a node to remove its connections, got %d left", len(g.Connections()))
	}
}

func TestConnectRejectsDuplicate(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	a, _ := g.AddNode("sine_source", KindGenerator, Position{})
	b, _ := g.AddNode("output_sink", KindSink, Position{})
	g.Connect(a, 0, b, 0)
	if err := g.Connect(a, 0, b, 0); err == nil {
		t.Error("expected DuplicateConnectionError on a repeated connection")
	}
}

func TestConnectRejectsUnknownNode(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	a, _ := g.AddNode("sine_source", KindGenerator, Position{})
	if err := g.Connect(a, 0, 999, 0); err == nil {
		t.Error("expected InvalidNodeError for a nonexistent target node")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	id, _ := g.AddNode("gain", KindFilter, Position{})
	g.SetParameter(id, "factor", 2.0)

	clone := g.Clone()
	clone.SetParameter(id, "factor", 3.0)

	orig, _ := g.Node(id)
	cloned, _ := clone.Node(id)
	if orig.ParameterValues["factor"] == cloned.ParameterValues["factor"] {
		t.Error("expected clone's parameter map to be independent of the original")
	}
}

func TestRegistryDefaultRegistryCoversEveryKernelType(t *testing.T) {
	r := DefaultRegistry()
	types := []string{
		"sine_source", "square_source", "sawtooth_source", "triangle_source", "noise_source",
		"gain", "clipper", "one_pole_lowpass", "one_pole_highpass", "bandpass_cascade",
		"resonant_bandpass", "moving_average", "delay_line", "combinator", "duplicator",
		"tremolo", "compressor", "output_sink",
	}
	for _, typeName := range types {
		if _, ok := r.KindOf(typeName); !ok {
			t.Errorf("expected %q to be registered", typeName)
		}
		if _, err := r.New(typeName, 48000); err != nil {
			t.Errorf("expected %q to instantiate, got %v", typeName, err)
		}
	}
}
