package kernel

import "testing"

func TestMovingAverageOfConstantInputEqualsInputAfterFillingWindow(t *testing.T) {
	m := NewMovingAverage(4)
	var out float32
	for i := 0; i < 4; i++ {
		m.Push(2.0, 0)
		out = m.Transform()[0]
	}
	if out != 2.0 {
		t.Errorf("expected the average of a constant input to equal that constant, got %v", out)
	}
}

func TestMovingAverageRampsUpFromZeroHistory(t *testing.T) {
	m := NewMovingAverage(2)
	m.Push(4.0, 0)
	out := m.Transform()[0]
	if out != 2.0 {
		t.Errorf("expected 4.0 averaged with one zero-history slot to be 2.0, got %v", out)
	}
}

func TestMovingAverageWindowSizeOneIsPassThrough(t *testing.T) {
	m := NewMovingAverage(1)
	m.Push(0.7, 0)
	if out := m.Transform()[0]; out != 0.7 {
		t.Errorf("expected a window of 1 to pass input through, got %v", out)
	}
}

func TestMovingAverageSetParameterResetsHistory(t *testing.T) {
	m := NewMovingAverage(4)
	for i := 0; i < 4; i++ {
		m.Push(2.0, 0)
		m.Transform()
	}
	if err := m.SetParameter("window_size", 8.0); err != nil {
		t.Fatalf("SetParameter: %v", err)
	}
	m.Push(8.0, 0)
	out := m.Transform()[0]
	if out != 1.0 {
		t.Errorf("expected history to reset on resize, got %v", out)
	}
}

func TestMovingAverageSetParameterUnknownName(t *testing.T) {
	m := NewMovingAverage(4)
	if err := m.SetParameter("nope", 1.0); err == nil {
		t.Error("expected UnknownParameterError")
	}
}
