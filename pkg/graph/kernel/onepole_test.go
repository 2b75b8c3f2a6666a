package kernel

import (
	"math"
	"testing"
)

func TestOnePoleLowPassFirstSampleMatchesAlphaTimesInput(t *testing.T) {
	lp := NewOnePoleLowPass(48000)
	lp.Push(1.0, 0)
	out := lp.Transform()[0]

	alpha := 1.0 - math.Exp(-2.0*math.Pi*1000.0/48000.0)
	want := float32(alpha * 1.0)
	if math.Abs(float64(out-want)) > 1e-6 {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestOnePoleLowPassSettlesTowardConstantInput(t *testing.T) {
	lp := NewOnePoleLowPass(48000)
	var out float32
	for i := 0; i < 10000; i++ {
		lp.Push(1.0, 0)
		out = lp.Transform()[0]
	}
	if math.Abs(float64(out-1.0)) > 1e-3 {
		t.Errorf("expected low-pass to settle near 1.0, got %v", out)
	}
}

func TestOnePoleLowPassRecomputesOnCutoffChange(t *testing.T) {
	lp := NewOnePoleLowPass(48000)
	if err := lp.SetParameter("cutoff_hz", 200.0); err != nil {
		t.Fatalf("SetParameter: %v", err)
	}
	lp.Push(1.0, 0)
	out := lp.Transform()[0]

	alpha := 1.0 - math.Exp(-2.0*math.Pi*200.0/48000.0)
	want := float32(alpha)
	if math.Abs(float64(out-want)) > 1e-6 {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestOnePoleHighPassBlocksDC(t *testing.T) {
	hp := NewOnePoleHighPass(48000)
	var out float32
	for i := 0; i < 10000; i++ {
		hp.Push(1.0, 0)
		out = hp.Transform()[0]
	}
	if math.Abs(float64(out)) > 1e-3 {
		t.Errorf("expected high-pass to block DC toward 0, got %v", out)
	}
}

func TestOnePoleHighPassPassesFirstStepEdge(t *testing.T) {
	hp := NewOnePoleHighPass(48000)
	hp.Push(1.0, 0)
	out := hp.Transform()[0]
	if out <= 0 {
		t.Errorf("expected a positive edge response on the first sample, got %v", out)
	}
}

func TestOnePoleSetParameterUnknownName(t *testing.T) {
	lp := NewOnePoleLowPass(48000)
	if err := lp.SetParameter("nope", 1.0); err == nil {
		t.Error("expected UnknownParameterError")
	}
	hp := NewOnePoleHighPass(48000)
	if err := hp.SetParameter("nope", 1.0); err == nil {
		t.Error("expected UnknownParameterError")
	}
}
