package graph

import "testing"

func TestCompileEmptyGraphFails(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	if _, err := Compile(g, 48000); err == nil {
		t.Error("expected EmptyGraphError")
	}
}

func TestCompileUnknownNodeType(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	if _, err := g.AddNode("not_a_real_kernel", KindFilter, Position{}); err == nil {
		t.Error("expected UnknownNodeTypeError from AddNode")
	}
}

func TestCompileSimpleChainLayersInOrder(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	src, _ := g.AddNode("sine_source", KindGenerator, Position{})
	gain, _ := g.AddNode("gain", KindFilter, Position{})
	sink, _ := g.AddNode("output_sink", KindSink, Position{})
	g.Connect(src, 0, gain, 0)
	g.Connect(gain, 0, sink, 0)

	compiled, err := Compile(g, 48000)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(compiled.layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(compiled.layers))
	}
}

func TestCompileCycleWithoutPostponableFails(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	a, _ := g.AddNode("one_pole_lowpass", KindFilter, Position{})
	b, _ := g.AddNode("one_pole_lowpass", KindFilter, Position{})
	g.Connect(a, 0, b, 0)
	g.Connect(b, 0, a, 0)

	if _, err := Compile(g, 48000); err == nil {
		t.Error("expected CycleWithoutPostponableError")
	}
}

func TestCompileCycleClosedByDelayLineSucceeds(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	src, _ := g.AddNode("sine_source", KindGenerator, Position{})
	gain, _ := g.AddNode("gain", KindFilter, Position{})
	delay, _ := g.AddNode("delay_line", KindFilter, Position{})
	sink, _ := g.AddNode("output_sink", KindSink, Position{})
	g.Connect(src, 0, gain, 0)
	g.Connect(gain, 0, sink, 0)
	g.Connect(gain, 0, delay, 0)
	g.Connect(delay, 0, gain, 0) // feedback closes on the postponable delay line

	compiled, err := Compile(g, 48000)
	if err != nil {
		t.Fatalf("expected a cycle closed by a postponable node to compile, got %v", err)
	}
	if compiled == nil {
		t.Fatal("expected a non-nil compiled graph")
	}
}

func TestStepProducesSamplesThroughSink(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	src, _ := g.AddNode("sine_source", KindGenerator, Position{})
	sink, _ := g.AddNode("output_sink", KindSink, Position{})
	g.Connect(src, 0, sink, 0)

	compiled, err := Compile(g, 48000)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for i := 0; i < 10; i++ {
		compiled.Step()
	}
	sinkKernel, ok := compiled.PrimarySink()
	if !ok {
		t.Fatal("expected a primary sink")
	}
	samples := sinkKernel.Consume(10)
	if len(samples) != 10 {
		t.Errorf("expected 10 buffered samples, got %d", len(samples))
	}
}

func TestSetParameterOnVanishedIndexIsSilentlyDropped(t *testing.T) {
	g := NewCanonicalGraph(DefaultRegistry())
	g.AddNode("output_sink", KindSink, Position{})
	compiled, err := Compile(g, 48000)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	compiled.SetParameter(99, "whatever", 1.0) // must not panic
}
