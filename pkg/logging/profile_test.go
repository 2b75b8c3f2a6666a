package logging

import (
	"testing"
	"time"
)

func TestProfilerRecordsMeasurement(t *testing.T) {
	p := NewProfiler(10)

	stop := p.Start("tick")
	time.Sleep(time.Millisecond)
	stop()

	m, ok := p.GetMeasurement("tick")
	if !ok {
		t.Fatal("expected measurement to exist")
	}
	if m.count != 1 {
		t.Errorf("expected count 1, got %d", m.count)
	}
	if m.lastTime < time.Millisecond {
		t.Error("recorded duration too short")
	}
}

func TestProfilerDisabledIsNoop(t *testing.T) {
	p := NewProfiler(10)
	p.SetEnabled(false)

	stop := p.Start("tick")
	stop()

	if _, ok := p.GetMeasurement("tick"); ok {
		t.Error("expected no measurement while disabled")
	}
}

func TestRenderProfilerLoadFraction(t *testing.T) {
	r := NewRenderProfiler(48000, 256)
	budget := r.ChunkBudget()
	if budget <= 0 {
		t.Fatal("expected positive chunk budget")
	}

	stop := r.Start("render")
	stop()

	frac := r.LoadFraction()
	if frac < 0 {
		t.Errorf("load fraction should be non-negative, got %f", frac)
	}
}
