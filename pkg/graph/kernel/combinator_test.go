package kernel

import "testing"

func TestCombinatorSumsWeightedInputsToEveryOutput(t *testing.T) {
	c := NewCombinator(2, 2)
	c.Push(1.0, 0)
	c.Push(1.0, 1)
	out := c.Transform()
	if len(out) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(out))
	}
	for i, v := range out {
		if v != 2.0 {
			t.Errorf("output %d: expected 2.0, got %v", i, v)
		}
	}
}

func TestCombinatorMissingInputDefaultsToZero(t *testing.T) {
	c := NewCombinator(3, 1)
	c.Push(1.0, 0)
	// ports 1 and 2 never pushed this step
	out := c.Transform()
	if out[0] != 1.0 {
		t.Errorf("expected 1.0, got %v", out[0])
	}
}

func TestCombinatorSetWeightScalesThatInputOnly(t *testing.T) {
	c := NewCombinator(2, 1)
	c.SetParameter("weight_0", 0.5)
	c.Push(2.0, 0)
	c.Push(2.0, 1)
	out := c.Transform()
	if out[0] != 3.0 { // 2*0.5 + 2*1.0
		t.Errorf("expected 3.0, got %v", out[0])
	}
}

func TestCombinatorSetParameterUnknownWeightIndex(t *testing.T) {
	c := NewCombinator(2, 1)
	if err := c.SetParameter("weight_5", 1.0); err == nil {
		t.Error("expected UnknownParameterError for an out-of-range weight index")
	}
}

func TestCombinatorSetParameterMalformedName(t *testing.T) {
	c := NewCombinator(2, 1)
	if err := c.SetParameter("weight_nope", 1.0); err == nil {
		t.Error("expected UnknownParameterError for a malformed weight name")
	}
}
