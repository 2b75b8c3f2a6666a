package engine

import "github.com/dspforge/synthcore/pkg/graph"

// Command is any value the command stage accepts from an external UI.
// The concrete types below are its closed variant set; Dispatch switches
// on the concrete type.
type Command interface{}

// RenderMode selects what the render stage produces samples from.
type RenderMode int

const (
	RenderInstruments RenderMode = iota
	RenderGraph
)

// --- Audio commands ---

type NoteStart struct {
	Note     uint8
	Row      uint8
	Velocity float32
}

type NoteStop struct {
	Note uint8
	Row  uint8
}

type SetRenderMode struct {
	Mode RenderMode
}

type Shutdown struct{}

// --- Graph commands ---

type AddNode struct {
	NodeType string
	Kind     graph.NodeKind
	X, Y     float32
}

type RemoveNode struct {
	ID uint64
}

type Connect struct {
	From     uint64
	FromPort int
	To       uint64
	ToPort   int
}

type Disconnect struct {
	From uint64
	To   uint64
}

type SetParameter struct {
	NodeID    uint64
	ParamName string
	Value     float32
}

type Play struct{}
type Pause struct{}
type Stop struct{}

type StartNode struct {
	ID uint64
}

type StopNode struct {
	ID uint64
}

// --- App commands (row/octave/instrument) ---

type OctaveUp struct{ Row uint8 }
type OctaveDown struct{ Row uint8 }

type SetOctave struct {
	Row    uint8
	Octave uint8
}

type LinkOctaves struct{}
type UnlinkOctaves struct{}

type SelectInstrument struct {
	Row   uint8
	Index int
}

type NextInstrument struct{ Row uint8 }
type PreviousInstrument struct{ Row uint8 }

type LinkInstruments struct{}
type UnlinkInstruments struct{}

// Supplemented from the row-management command surface that already
// carries the link/unlink machinery (per-row volume, not present in
// spec.md's minimal command set but adjacent to the row commands above).
type SetVolume struct {
	Row    uint8
	Volume float32
}

type VolumeUp struct{ Row uint8 }
type VolumeDown struct{ Row uint8 }
type Mute struct{ Row uint8 }
