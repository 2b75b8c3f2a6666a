package instrument

import (
	"math"
	"testing"
)

func TestOscillatorIdleProducesSilence(t *testing.T) {
	o := NewOscillator(48000)
	if o.Tick() != 0 {
		t.Error("expected silence before Start")
	}
}

func TestOscillatorSineMatchesExpectedFrequency(t *testing.T) {
	o := NewOscillator(48000)
	o.SetFrequency(1000)
	o.Start()

	// Phase should advance by 2*pi*f/fs each sample.
	first := o.Tick()
	if first != 0 {
		t.Errorf("expected first sample at phase 0 to be 0, got %f", first)
	}
	expectedPhase := 2.0 * math.Pi * 1000.0 / 48000.0
	if math.Abs(o.phase-expectedPhase) > 1e-9 {
		t.Errorf("expected phase %f, got %f", expectedPhase, o.phase)
	}
}

func TestOscillatorStopReleasesThenCompletes(t *testing.T) {
	o := NewOscillator(48000)
	o.SetAmplitudeEnvelope(LinearRamp(1, 0, 0.0001))
	o.Start()
	o.Stop()

	completed := false
	for i := 0; i < 100; i++ {
		o.Tick()
		if o.IsCompleted() {
			completed = true
			break
		}
	}
	if !completed {
		t.Error("expected oscillator to complete after release ramp reaches zero")
	}
}

func TestOscillatorNoiseStaysInRange(t *testing.T) {
	o := NewOscillator(48000)
	o.SetWaveform(WaveformNoise)
	o.Start()
	for i := 0; i < 1000; i++ {
		s := o.Tick()
		if s < -1.01 || s > 1.01 {
			t.Errorf("noise sample out of range: %f", s)
		}
	}
}

func TestLinearRampHoldsAfterDuration(t *testing.T) {
	f := LinearRamp(0, 1, 1.0)
	if v := f(2.0); v != 1.0 {
		t.Errorf("expected ramp to hold at end value, got %f", v)
	}
}
