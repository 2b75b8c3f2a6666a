package wire

import (
	"encoding/json"
	"fmt"

	"github.com/dspforge/synthcore/pkg/engine"
)

var commandNames = map[string]string{
	"engine.NoteStart":          "NoteStart",
	"engine.NoteStop":           "NoteStop",
	"engine.SetRenderMode":      "SetRenderMode",
	"engine.Shutdown":           "Shutdown",
	"engine.AddNode":            "AddNode",
	"engine.RemoveNode":         "RemoveNode",
	"engine.Connect":            "Connect",
	"engine.Disconnect":         "Disconnect",
	"engine.SetParameter":       "SetParameter",
	"engine.Play":               "Play",
	"engine.Pause":              "Pause",
	"engine.Stop":               "Stop",
	"engine.StartNode":          "StartNode",
	"engine.StopNode":           "StopNode",
	"engine.OctaveUp":           "OctaveUp",
	"engine.OctaveDown":         "OctaveDown",
	"engine.SetOctave":          "SetOctave",
	"engine.LinkOctaves":        "LinkOctaves",
	"engine.UnlinkOctaves":      "UnlinkOctaves",
	"engine.SelectInstrument":   "SelectInstrument",
	"engine.NextInstrument":     "NextInstrument",
	"engine.PreviousInstrument": "PreviousInstrument",
	"engine.LinkInstruments":    "LinkInstruments",
	"engine.UnlinkInstruments":  "UnlinkInstruments",
	"engine.SetVolume":          "SetVolume",
	"engine.VolumeUp":           "VolumeUp",
	"engine.VolumeDown":         "VolumeDown",
	"engine.Mute":               "Mute",
}

type commandFactory func(body json.RawMessage) (engine.Command, error)

// decodeCommand unmarshals body into a fresh T and boxes it as an
// engine.Command, so every variant's factory entry below is one line.
func decodeCommand[T any](body json.RawMessage) (engine.Command, error) {
	var v T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("wire: decode %T: %w", v, err)
		}
	}
	return v, nil
}

var commandFactories = map[string]commandFactory{
	"NoteStart":          decodeCommand[engine.NoteStart],
	"NoteStop":           decodeCommand[engine.NoteStop],
	"SetRenderMode":      decodeCommand[engine.SetRenderMode],
	"Shutdown":           decodeCommand[engine.Shutdown],
	"AddNode":            decodeCommand[engine.AddNode],
	"RemoveNode":         decodeCommand[engine.RemoveNode],
	"Connect":            decodeCommand[engine.Connect],
	"Disconnect":         decodeCommand[engine.Disconnect],
	"SetParameter":       decodeCommand[engine.SetParameter],
	"Play":               decodeCommand[engine.Play],
	"Pause":              decodeCommand[engine.Pause],
	"Stop":               decodeCommand[engine.Stop],
	"StartNode":          decodeCommand[engine.StartNode],
	"StopNode":           decodeCommand[engine.StopNode],
	"OctaveUp":           decodeCommand[engine.OctaveUp],
	"OctaveDown":         decodeCommand[engine.OctaveDown],
	"SetOctave":          decodeCommand[engine.SetOctave],
	"LinkOctaves":        decodeCommand[engine.LinkOctaves],
	"UnlinkOctaves":      decodeCommand[engine.UnlinkOctaves],
	"SelectInstrument":   decodeCommand[engine.SelectInstrument],
	"NextInstrument":     decodeCommand[engine.NextInstrument],
	"PreviousInstrument": decodeCommand[engine.PreviousInstrument],
	"LinkInstruments":    decodeCommand[engine.LinkInstruments],
	"UnlinkInstruments":  decodeCommand[engine.UnlinkInstruments],
	"SetVolume":          decodeCommand[engine.SetVolume],
	"VolumeUp":           decodeCommand[engine.VolumeUp],
	"VolumeDown":         decodeCommand[engine.VolumeDown],
	"Mute":               decodeCommand[engine.Mute],
}

var eventNames = map[string]string{
	"engine.AudioStarted":        "AudioStarted",
	"engine.AudioStopped":        "AudioStopped",
	"engine.CommandError":        "CommandError",
	"engine.GraphError":          "GraphError",
	"engine.UnderrunReported":    "UnderrunReport",
	"engine.OutputDeviceList":    "OutputDeviceList",
	"engine.OutputDeviceChanged": "OutputDeviceChanged",
	"engine.NodeAdded":           "NodeAdded",
}

type eventFactory func(body json.RawMessage) (engine.Event, error)

func decodeEvent[T any](body json.RawMessage) (engine.Event, error) {
	var v T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("wire: decode %T: %w", v, err)
		}
	}
	return v, nil
}

var eventFactories = map[string]eventFactory{
	"AudioStarted":        decodeEvent[engine.AudioStarted],
	"AudioStopped":        decodeEvent[engine.AudioStopped],
	"CommandError":        decodeEvent[engine.CommandError],
	"GraphError":          decodeEvent[engine.GraphError],
	"UnderrunReport":      decodeEvent[engine.UnderrunReported],
	"OutputDeviceList":    decodeEvent[engine.OutputDeviceList],
	"OutputDeviceChanged": decodeEvent[engine.OutputDeviceChanged],
	"NodeAdded":           decodeEvent[engine.NodeAdded],
}
