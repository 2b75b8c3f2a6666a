package analyze

import (
	"math"
	"testing"
)

func TestAnalyzeClean(t *testing.T) {
	a := New()
	buf := make([]float32, 100)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 0.5
		} else {
			buf[i] = -0.5
		}
	}

	r := a.Analyze(buf)
	if r.HasNaN || r.Clipping {
		t.Errorf("unexpected flags: %+v", r)
	}
	if r.Peak != 0.5 {
		t.Errorf("expected peak 0.5, got %f", r.Peak)
	}
	if issues := a.Check(buf, "test"); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestAnalyzeDetectsNaN(t *testing.T) {
	a := New()
	buf := []float32{0, float32(math.NaN()), 0.1}

	r := a.Analyze(buf)
	if !r.HasNaN || r.NaNCount != 1 {
		t.Errorf("expected one NaN detected, got %+v", r)
	}
}

func TestAnalyzeDetectsClipping(t *testing.T) {
	a := New()
	buf := []float32{1.0, 1.0, 1.0}

	r := a.Analyze(buf)
	if !r.Clipping || r.ClippedSamples != 3 {
		t.Errorf("expected clipping on all samples, got %+v", r)
	}
	issues := a.Check(buf, "test")
	if len(issues) == 0 {
		t.Error("expected clipping issue reported")
	}
}

func TestAnalyzeSilence(t *testing.T) {
	a := New()
	buf := make([]float32, 64)

	r := a.Analyze(buf)
	if !r.Silent {
		t.Error("expected silent buffer to be flagged")
	}
}
