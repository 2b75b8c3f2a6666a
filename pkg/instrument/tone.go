package instrument

import "math"

// MixMode combines a multi-tone generator's oscillator outputs.
type MixMode int

const (
	MixSum MixMode = iota
	MixMultiply
	MixMaximum
	MixMean
)

// ToneRelationKind selects how a tone's frequency relates to the base
// frequency of its multi-tone generator.
type ToneRelationKind int

const (
	RelationIdentity ToneRelationKind = iota
	RelationConstantHz
	RelationHarmonicIndex
	RelationRatio
	RelationAdditiveOffset
	RelationSemitoneOffset
)

// ToneRelation derives a tone's frequency from a base frequency.
type ToneRelation struct {
	Kind  ToneRelationKind
	Value float64
}

// Frequency computes the tone frequency for the given base.
func (r ToneRelation) Frequency(base float64) float64 {
	switch r.Kind {
	case RelationIdentity:
		return base
	case RelationConstantHz:
		return r.Value
	case RelationHarmonicIndex:
		return base * r.Value
	case RelationRatio:
		return base * r.Value
	case RelationAdditiveOffset:
		return base + r.Value
	case RelationSemitoneOffset:
		return base * math.Pow(2.0, r.Value/12.0)
	default:
		return base
	}
}

// Tone is one oscillator inside a MultiToneGenerator, tuned relative to the
// generator's shared base frequency.
type Tone struct {
	Relation   ToneRelation
	Oscillator *Oscillator
}

// MultiToneGenerator is a set of oscillators sharing a base frequency,
// combined by a mix mode, with an optional global amplitude envelope applied
// to the combined output. A global pitch envelope can be set but is not
// applied by Tick.
type MultiToneGenerator struct {
	sampleRate    float64
	baseFrequency float64
	mixMode       MixMode
	tones         []*Tone

	globalPitchEnvelope EnvelopeFunc
	globalAmpEnvelope   EnvelopeFunc
	normalizedTime      float64
}

// NewMultiToneGenerator creates a generator with no tones yet; AddTone adds
// oscillators tuned relative to the shared base frequency.
func NewMultiToneGenerator(sampleRate float64) *MultiToneGenerator {
	return &MultiToneGenerator{
		sampleRate:          sampleRate,
		baseFrequency:       440.0,
		mixMode:             MixSum,
		globalPitchEnvelope: Constant(1.0),
		globalAmpEnvelope:   Constant(1.0),
	}
}

// AddTone appends a tone with the given waveform and frequency relation.
func (g *MultiToneGenerator) AddTone(waveform Waveform, relation ToneRelation) {
	osc := NewOscillator(g.sampleRate)
	osc.SetWaveform(waveform)
	g.tones = append(g.tones, &Tone{Relation: relation, Oscillator: osc})
}

func (g *MultiToneGenerator) SetMixMode(m MixMode)                { g.mixMode = m }
func (g *MultiToneGenerator) SetBaseFrequency(hz float64)         { g.baseFrequency = hz }
func (g *MultiToneGenerator) SetPitchEnvelope(f EnvelopeFunc)     { g.globalPitchEnvelope = f }
func (g *MultiToneGenerator) SetAmplitudeEnvelope(f EnvelopeFunc) { g.globalAmpEnvelope = f }

// Start resets every tone's oscillator and the shared normalized time.
func (g *MultiToneGenerator) Start() {
	g.normalizedTime = 0
	for _, t := range g.tones {
		t.Oscillator.SetFrequency(t.Relation.Frequency(g.baseFrequency))
		t.Oscillator.Start()
	}
}

// Stop releases every tone's oscillator.
func (g *MultiToneGenerator) Stop() {
	for _, t := range g.tones {
		t.Oscillator.Stop()
	}
}

// IsActive reports whether any tone is still producing.
func (g *MultiToneGenerator) IsActive() bool {
	for _, t := range g.tones {
		if t.Oscillator.IsActive() {
			return true
		}
	}
	return false
}

// Tick advances every tone by one sample, combines them per the mix mode,
// and applies the generator-level amplitude envelope. The generator-level
// pitch envelope set by SetPitchEnvelope is stored but not applied.
func (g *MultiToneGenerator) Tick() float32 {
	if len(g.tones) == 0 {
		return 0
	}

	var combined float64
	switch g.mixMode {
	case MixMultiply:
		combined = 1.0
		for _, t := range g.tones {
			combined *= float64(t.Oscillator.Tick())
		}
	case MixMaximum:
		first := true
		for _, t := range g.tones {
			v := float64(t.Oscillator.Tick())
			if first || v > combined {
				combined = v
				first = false
			}
		}
	case MixMean:
		for _, t := range g.tones {
			combined += float64(t.Oscillator.Tick())
		}
		combined /= float64(len(g.tones))
	default: // MixSum
		for _, t := range g.tones {
			combined += float64(t.Oscillator.Tick())
		}
	}

	ampFactor := g.globalAmpEnvelope(g.normalizedTime)
	g.normalizedTime += 1.0 / g.sampleRate

	return float32(combined * ampFactor)
}
