// Package analyze provides buffer-sanity checks used by tests and
// diagnostics to assert the render path's invariants: no NaNs, no runaway
// clipping, bounded peak.
package analyze

import (
	"fmt"
	"math"
)

// Analyzer inspects rendered sample blocks for out-of-range conditions.
type Analyzer struct {
	ClippingThreshold float32
	DCThreshold       float32
	SilenceThreshold  float32
}

// New returns an Analyzer with thresholds suited to a [-1, 1]-normalized
// mono stream.
func New() *Analyzer {
	return &Analyzer{
		ClippingThreshold: 0.99,
		DCThreshold:       0.01,
		SilenceThreshold:  0.0001,
	}
}

// Result holds the outcome of analyzing one buffer.
type Result struct {
	Peak           float32
	RMS            float32
	DC             float32
	Clipping       bool
	ClippedSamples int
	Silent         bool
	HasNaN         bool
	NaNCount       int
}

// Analyze computes peak, RMS, DC offset, and clipping/NaN/silence flags for
// a buffer of samples.
func (a *Analyzer) Analyze(buffer []float32) Result {
	var result Result
	if len(buffer) == 0 {
		return result
	}

	var sum, sumSquares float64
	for _, s := range buffer {
		if math.IsNaN(float64(s)) {
			result.HasNaN = true
			result.NaNCount++
			continue
		}

		abs := s
		if abs < 0 {
			abs = -abs
		}
		if abs > result.Peak {
			result.Peak = abs
		}
		if abs >= a.ClippingThreshold {
			result.Clipping = true
			result.ClippedSamples++
		}

		sum += float64(s)
		sumSquares += float64(s) * float64(s)
	}

	n := float64(len(buffer))
	result.RMS = float32(math.Sqrt(sumSquares / n))
	result.DC = float32(sum / n)
	result.Silent = result.RMS < a.SilenceThreshold
	return result
}

// Check returns a list of human-readable invariant violations found in
// buffer, or nil if none.
func (a *Analyzer) Check(buffer []float32, name string) []string {
	result := a.Analyze(buffer)
	var issues []string

	if result.HasNaN {
		issues = append(issues, fmt.Sprintf("%s: %d NaN samples", name, result.NaNCount))
	}
	if result.Clipping {
		issues = append(issues, fmt.Sprintf("%s: clipping on %d samples", name, result.ClippedSamples))
	}
	if math.Abs(float64(result.DC)) > float64(a.DCThreshold) {
		issues = append(issues, fmt.Sprintf("%s: DC offset %.4f", name, result.DC))
	}
	if result.Peak > 1.0 {
		issues = append(issues, fmt.Sprintf("%s: peak %.4f exceeds unity", name, result.Peak))
	}
	return issues
}
