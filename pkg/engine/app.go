package engine

// Row is a logical input grouping: an octave and an instrument selection,
// independently settable per row but optionally linked across both rows.
// Two rows exist, indexed 0 and 1.
type Row struct {
	Octave          uint8
	InstrumentIndex int
	Volume          float32
	Muted           bool
}

// AppState is the command stage's authoritative record of row/octave/
// instrument assignments, mutated only by App commands.
type AppState struct {
	rows            [2]Row
	linkOctaves     bool
	linkInstruments bool
	instrumentCount int
}

// NewAppState creates app state with instrumentCount available
// instruments (indices 0..instrumentCount-1), both rows defaulted to
// octave 4, instrument 0, full volume.
func NewAppState(instrumentCount int) *AppState {
	s := &AppState{instrumentCount: instrumentCount}
	for i := range s.rows {
		s.rows[i] = Row{Octave: 4, InstrumentIndex: 0, Volume: 1.0}
	}
	return s
}

// Row returns a copy of the row's current state.
func (s *AppState) Row(row uint8) (Row, error) {
	if int(row) >= len(s.rows) {
		return Row{}, &RowOutOfBoundsError{Row: row}
	}
	return s.rows[row], nil
}

// SetOctave sets row's octave, and the other row's too if octaves are
// linked.
func (s *AppState) SetOctave(row uint8, octave uint8) error {
	if int(row) >= len(s.rows) {
		return &RowOutOfBoundsError{Row: row}
	}
	if octave > 8 {
		return &InvalidOctaveError{Octave: octave}
	}
	s.rows[row].Octave = octave
	if s.linkOctaves {
		for i := range s.rows {
			s.rows[i].Octave = octave
		}
	}
	return nil
}

// OctaveUp/OctaveDown clamp at the 0..=8 boundary rather than erroring.
func (s *AppState) OctaveUp(row uint8) error {
	r, err := s.Row(row)
	if err != nil {
		return err
	}
	if r.Octave >= 8 {
		return nil
	}
	return s.SetOctave(row, r.Octave+1)
}

func (s *AppState) OctaveDown(row uint8) error {
	r, err := s.Row(row)
	if err != nil {
		return err
	}
	if r.Octave == 0 {
		return nil
	}
	return s.SetOctave(row, r.Octave-1)
}

func (s *AppState) LinkOctaves()   { s.linkOctaves = true }
func (s *AppState) UnlinkOctaves() { s.linkOctaves = false }

// SelectInstrument sets row's instrument index, and the other row's too
// if instruments are linked.
func (s *AppState) SelectInstrument(row uint8, index int) error {
	if int(row) >= len(s.rows) {
		return &RowOutOfBoundsError{Row: row}
	}
	if index < 0 || index >= s.instrumentCount {
		return &UnknownInstrumentError{Index: index}
	}
	s.rows[row].InstrumentIndex = index
	if s.linkInstruments {
		for i := range s.rows {
			s.rows[i].InstrumentIndex = index
		}
	}
	return nil
}

func (s *AppState) NextInstrument(row uint8) error {
	r, err := s.Row(row)
	if err != nil {
		return err
	}
	return s.SelectInstrument(row, (r.InstrumentIndex+1)%s.instrumentCount)
}

func (s *AppState) PreviousInstrument(row uint8) error {
	r, err := s.Row(row)
	if err != nil {
		return err
	}
	return s.SelectInstrument(row, (r.InstrumentIndex-1+s.instrumentCount)%s.instrumentCount)
}

func (s *AppState) LinkInstruments()   { s.linkInstruments = true }
func (s *AppState) UnlinkInstruments() { s.linkInstruments = false }

// SetVolume, VolumeUp, VolumeDown and Mute are supplemented per-row
// commands; they reuse the same row-indexing validation as the octave
// and instrument commands above.
func (s *AppState) SetVolume(row uint8, volume float32) error {
	if int(row) >= len(s.rows) {
		return &RowOutOfBoundsError{Row: row}
	}
	if volume < 0 || volume > 1 {
		return &InvalidVolumeError{Volume: volume}
	}
	s.rows[row].Volume = volume
	return nil
}

func (s *AppState) VolumeUp(row uint8) error {
	r, err := s.Row(row)
	if err != nil {
		return err
	}
	v := r.Volume + 0.1
	if v > 1 {
		v = 1
	}
	return s.SetVolume(row, v)
}

func (s *AppState) VolumeDown(row uint8) error {
	r, err := s.Row(row)
	if err != nil {
		return err
	}
	v := r.Volume - 0.1
	if v < 0 {
		v = 0
	}
	return s.SetVolume(row, v)
}

func (s *AppState) Mute(row uint8) error {
	if int(row) >= len(s.rows) {
		return &RowOutOfBoundsError{Row: row}
	}
	s.rows[row].Muted = !s.rows[row].Muted
	return nil
}
