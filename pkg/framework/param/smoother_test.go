package param

import (
	"math"
	"testing"
)

func TestSmoother(t *testing.T) {
	t.Run("LinearSmoothing", func(t *testing.T) {
		smoother := NewSmoother(LinearSmoothing, 10) // 10 samples
		smoother.Reset(0.0)
		smoother.SetTarget(1.0)

		// Should take 10 samples to reach target
		for i := 0; i < 10; i++ {
			value := smoother.Next()
			expected := float64(i+1) * 0.1
			if math.Abs(value-expected) > 0.001 {
				t.Errorf("Sample %d: expected %f, got %f", i, expected, value)
			}
		}

		// Should stay at target
		if smoother.Next() != 1.0 {
			t.Error("Should stay at target after reaching it")
		}
		if smoother.IsSmoothing() {
			t.Error("Should not be smoothing after reaching target")
		}
	})

	t.Run("ExponentialSmoothing", func(t *testing.T) {
		smoother := NewSmoother(ExponentialSmoothing, 0.9) // High = slow
		smoother.Reset(0.0)
		smoother.SetTarget(1.0)

		// Should approach target exponentially
		prev := 0.0
		for i := 0; i < 50; i++ {
			value := smoother.Next()
			if value <= prev {
				t.Error("Value should be increasing")
			}
			if value >= 1.0 {
				t.Error("Should not exceed target")
			}
			prev = value
		}

		// Should eventually reach target (within threshold)
		for i := 0; i < 200; i++ {
			smoother.Next()
		}
		if smoother.IsSmoothing() {
			t.Error("Should have reached target by now")
		}
	})

	t.Run("LogarithmicSmoothing", func(t *testing.T) {
		smoother := NewSmoother(LogarithmicSmoothing, 10)
		smoother.Reset(100.0) // Start at 100 Hz
		smoother.SetTarget(1000.0) // Target 1000 Hz

		// Should interpolate in log space
		values := []float64{}
		for i := 0; i < 10; i++ {
			values = append(values, smoother.Next())
		}

		// Check that we're interpolating logarithmically
		// The ratio between consecutive values should be constant
		ratio := values[1] / values[0]
		for i := 2; i < len(values); i++ {
			currentRatio := values[i] / values[i-1]
			if math.Abs(currentRatio-ratio) > 0.01 {
				t.Error("Logarithmic interpolation not maintaining constant ratio")
			}
		}
	})

	t.Run("Threshold", func(t *testing.T) {
		smoother := NewSmoother(ExponentialSmoothing, 0.9)
		smoother.SetThreshold(0.1)
		smoother.Reset(0.0)
		smoother.SetTarget(0.05) // Less than threshold

		// Should not start smoothing
		if smoother.IsSmoothing() {
			t.Error("Should not smooth when change is below threshold")
		}
	})

	t.Run("Process", func(t *testing.T) {
		smoother := NewSmoother(LinearSmoothing, 5)
		smoother.Reset(0.0)
		smoother.SetTarget(1.0)

		buffer := []float32{1.0, 1.0, 1.0, 1.0, 1.0}
		smoother.Process(buffer, func(value float64, sample float32) float32 {
			return sample * float32(value)
		})

		// Check that smoothing was applied
		expected := []float32{0.2, 0.4, 0.6, 0.8, 1.0}
		for i, v := range buffer {
			if math.Abs(float64(v-expected[i])) > 0.001 {
				t.Errorf("Sample %d: expected %f, got %f", i, expected[i], v)
			}
		}
	})
}

func BenchmarkSmoother(b *testing.B) {
	b.Run("LinearNext", func(b *testing.B) {
		smoother := NewSmoother(LinearSmoothing, 100)
		smoother.SetTarget(1.0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = smoother.Next()
		}
	})

	b.Run("ExponentialNext", func(b *testing.B) {
		smoother := NewSmoother(ExponentialSmoothing, 0.99)
		smoother.SetTarget(1.0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = smoother.Next()
		}
	})

	b.Run("LogarithmicNext", func(b *testing.B) {
		smoother := NewSmoother(LogarithmicSmoothing, 100)
		smoother.SetTarget(1000.0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = smoother.Next()
		}
	})

	b.Run("ProcessBuffer", func(b *testing.B) {
		smoother := NewSmoother(ExponentialSmoothing, 0.99)
		smoother.SetTarget(1.0)
		buffer := make([]float32, 512)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			smoother.Process(buffer, func(value float64, sample float32) float32 {
				return sample * float32(value)
			})
		}
	})
}