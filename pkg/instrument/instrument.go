package instrument

// Instrument is the render stage's polyphonic sound source: a fixed-size
// voice allocator plus a global octave offset applied to incoming notes.
type Instrument struct {
	allocator *Allocator
	octave    int
}

// NewInstrument creates an instrument with voiceCount voices at
// sampleRate.
func NewInstrument(voiceCount int, sampleRate float64) *Instrument {
	return &Instrument{allocator: NewAllocator(voiceCount, sampleRate)}
}

// SetOctave sets the octave offset (in octaves, positive or negative)
// applied to every note passed to StartNote.
func (i *Instrument) SetOctave(octave int) { i.octave = octave }

// Voices exposes the voice pool for per-voice generator configuration
// (waveform, tone relations, attack/release).
func (i *Instrument) Voices() []*Voice { return i.allocator.Voices() }

// StartNote begins sounding note at velocity (0..1), after applying the
// instrument's octave offset.
func (i *Instrument) StartNote(note int, velocity float32) {
	i.allocator.StartNote(note+12*i.octave, velocity)
}

// StopNote releases note, after applying the instrument's octave offset.
func (i *Instrument) StopNote(note int) {
	i.allocator.StopNote(note + 12*i.octave)
}

// Tick advances every voice by one sample and returns the summed output.
func (i *Instrument) Tick() float32 {
	return i.allocator.Tick()
}

// GetOutput is an alias for Tick kept for symmetry with the render
// stage's generic node interface (tick-and-read in one call).
func (i *Instrument) GetOutput() float32 {
	return i.Tick()
}
