package kernel

import "testing"

func TestGainUnityPassesInputThrough(t *testing.T) {
	g := NewGain()
	g.Push(0.5, 0)
	out := g.Transform()
	if out[0] != 0.5 {
		t.Errorf("expected unity gain to pass input through, got %v", out[0])
	}
}

func TestGainScalesByFactor(t *testing.T) {
	g := NewGain()
	g.SetParameter("factor", 2.0)
	g.Push(0.25, 0)
	out := g.Transform()
	if out[0] != 0.5 {
		t.Errorf("expected 0.5, got %v", out[0])
	}
}

func TestGainSetParameterClampsRange(t *testing.T) {
	g := NewGain()
	if err := g.SetParameter("factor", 100.0); err != nil {
		t.Fatalf("SetParameter: %v", err)
	}
	g.Push(1.0, 0)
	out := g.Transform()
	if out[0] != 4.0 {
		t.Errorf("expected factor clamped to 4.0, got %v", out[0])
	}
}

func TestGainSetParameterUnknownName(t *testing.T) {
	g := NewGain()
	if err := g.SetParameter("nope", 1.0); err == nil {
		t.Error("expected UnknownParameterError")
	}
}
