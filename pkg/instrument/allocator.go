package instrument

// Allocator assigns incoming notes to a fixed pool of voices. When every
// voice is busy, the note that started longest ago is stolen; there is no
// other stealing policy.
type Allocator struct {
	voices      []*Voice
	noteToVoice map[int]int
	nextAge     uint64
}

// NewAllocator creates an allocator with voiceCount voices at sampleRate.
func NewAllocator(voiceCount int, sampleRate float64) *Allocator {
	voices := make([]*Voice, voiceCount)
	for i := range voices {
		voices[i] = NewVoice(sampleRate)
	}
	return &Allocator{
		voices:      voices,
		noteToVoice: make(map[int]int),
	}
}

// Voices exposes the underlying voice pool for generator configuration.
func (a *Allocator) Voices() []*Voice { return a.voices }

// StartNote assigns note to a free voice, or steals the least-recently-
// started voice if every voice is busy. Retriggering an already-sounding
// note restarts that same voice.
func (a *Allocator) StartNote(note int, velocity float32) {
	if idx, ok := a.noteToVoice[note]; ok {
		a.trigger(idx, note, velocity)
		return
	}

	if idx, ok := a.findFreeVoice(); ok {
		a.trigger(idx, note, velocity)
		return
	}

	idx := a.findOldestVoice()
	a.evictVoice(idx)
	a.trigger(idx, note, velocity)
}

// StopNote releases the voice holding note, if any. Idempotent.
func (a *Allocator) StopNote(note int) {
	idx, ok := a.noteToVoice[note]
	if !ok {
		return
	}
	a.voices[idx].ReleaseNote()
	delete(a.noteToVoice, note)
}

// Tick advances every voice by one sample and sums their output.
func (a *Allocator) Tick() float32 {
	var sum float32
	for _, v := range a.voices {
		sum += v.Tick()
	}
	return sum
}

func (a *Allocator) trigger(idx, note int, velocity float32) {
	a.noteToVoice[note] = idx
	a.voices[idx].TriggerNote(note, velocity, a.nextAge)
	a.nextAge++
}

// findFreeVoice returns the first voice that is not currently active.
func (a *Allocator) findFreeVoice() (int, bool) {
	for i, v := range a.voices {
		if !v.IsActive() {
			return i, true
		}
	}
	return 0, false
}

// findOldestVoice returns the index of the voice with the smallest age,
// i.e. the one that started longest ago.
func (a *Allocator) findOldestVoice() int {
	oldest := 0
	for i := 1; i < len(a.voices); i++ {
		if a.voices[i].Age() < a.voices[oldest].Age() {
			oldest = i
		}
	}
	return oldest
}

// evictVoice forcibly silences idx and removes any note mapping pointing
// to it before it is reassigned.
func (a *Allocator) evictVoice(idx int) {
	a.voices[idx].Stop()
	for note, v := range a.noteToVoice {
		if v == idx {
			delete(a.noteToVoice, note)
		}
	}
}
