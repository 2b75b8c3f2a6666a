// Package midiinput is an optional external collaborator that turns MIDI
// note on/off messages into NoteStart/NoteStop commands. It talks to the
// core only through the command channel, the same boundary the GUI
// crosses — it has no special access to engine internals.
package midiinput

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/dspforge/synthcore/pkg/engine"
)

// Listener translates MIDI channel messages arriving on an open input
// port into engine commands, all addressed to one row.
type Listener struct {
	row      uint8
	commands chan<- engine.Command
	stop     func()
}

// Listen opens listening on in and forwards translated commands to
// commands, addressing every note to row. Returns a Listener whose Close
// stops the underlying MIDI driver callback.
func Listen(in drivers.In, row uint8, commands chan<- engine.Command) (*Listener, error) {
	l := &Listener{row: row, commands: commands}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		l.handle(msg)
	})
	if err != nil {
		return nil, err
	}
	l.stop = stop
	return l, nil
}

// Close stops the listener.
func (l *Listener) Close() {
	if l.stop != nil {
		l.stop()
	}
}

func (l *Listener) handle(msg midi.Message) {
	var channel, key, velocity uint8
	if msg.GetNoteOn(&channel, &key, &velocity) {
		l.commands <- engine.NoteStart{
			Note:     key,
			Row:      l.row,
			Velocity: float32(velocity) / 127.0,
		}
		return
	}
	if msg.GetNoteOff(&channel, &key, &velocity) {
		l.commands <- engine.NoteStop{Note: key, Row: l.row}
		return
	}
}
