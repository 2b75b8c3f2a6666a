package engine

import "github.com/dspforge/synthcore/pkg/graph"

// Message is an audio-message sent from the command stage to the render
// stage over the message queue. Unlike Command, every variant here has
// already been validated; the render stage applies them without
// allocating.
type Message interface{}

type InstrumentNoteStart struct {
	InstrumentIndex int
	Note            uint8
	Velocity        float32
}

type InstrumentNoteStop struct {
	InstrumentIndex int
	Note            uint8
}

// SwapGraph transfers ownership of a newly compiled graph to the render
// stage. A SwapGraph for a given Play request is always pushed strictly
// before the SetRenderMode(Graph) message for that same request.
type SwapGraph struct {
	Graph *graph.CompiledGraph
}

// ClearGraph tells the render stage to drop its graph reference and fall
// back to silence (or to the instrument bank, depending on render mode).
type ClearGraph struct{}

type MessageSetRenderMode struct {
	Mode RenderMode
}

// GraphSetParameter is the render-stage-facing form of SetParameter: the
// node has already been translated from its canonical ID to a compiled
// index by the command stage.
type GraphSetParameter struct {
	NodeIndex int
	ParamName string
	Value     float32
}

type MessageShutdown struct{}
