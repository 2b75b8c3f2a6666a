package engine

import (
	"github.com/dspforge/synthcore/pkg/dsp/gain"
	"github.com/dspforge/synthcore/pkg/engine/queue"
	"github.com/dspforge/synthcore/pkg/graph"
	"github.com/dspforge/synthcore/pkg/logging"
)

// CommandStage receives commands from external UIs, validates them,
// mutates canonical application state and emits audio-messages to the
// render stage. It is the sole owner of the canonical graph and the app
// state.
type CommandStage struct {
	log      *logging.Logger
	state    *SharedState
	commands <-chan Command
	messages *queue.MessageQueue
	events   *queue.EventQueue

	registry  *graph.Registry
	canonical *graph.CanonicalGraph
	app       *AppState

	compiledIndexByNodeID map[uint64]int
	live                  bool
}

// NewCommandStage creates a command stage reading from commands and
// writing audio-messages into messages.
func NewCommandStage(log *logging.Logger, state *SharedState, commands <-chan Command, messages *queue.MessageQueue, events *queue.EventQueue, instrumentCount int) *CommandStage {
	registry := graph.DefaultRegistry()
	return &CommandStage{
		log:                   log,
		state:                 state,
		commands:              commands,
		messages:              messages,
		events:                events,
		registry:              registry,
		canonical:             graph.NewCanonicalGraph(registry),
		app:                   NewAppState(instrumentCount),
		compiledIndexByNodeID: make(map[uint64]int),
	}
}

// Run drains commands until shutdown is requested, applying each in the
// order received. It blocks on the inbound command channel, which is the
// documented suspension point for this stage.
func (c *CommandStage) Run() {
	for cmd := range c.commands {
		if c.state.ShuttingDown() {
			return
		}
		c.Dispatch(cmd)
	}
}

// Dispatch routes one command to its handler and reports validation
// failures as CommandError events rather than propagating them.
func (c *CommandStage) Dispatch(cmd Command) {
	var err error
	switch v := cmd.(type) {
	case NoteStart:
		err = c.handleNoteStart(v)
	case NoteStop:
		err = c.handleNoteStop(v)
	case SetRenderMode:
		c.pushMessage(MessageSetRenderMode{Mode: v.Mode})
	case Shutdown:
		c.state.RequestShutdown()
		c.pushMessage(MessageShutdown{})

	case AddNode:
		err = c.handleAddNode(v)
	case RemoveNode:
		err = c.handleRemoveNode(v)
	case Connect:
		err = c.canonical.Connect(v.From, v.FromPort, v.To, v.ToPort)
	case Disconnect:
		c.canonical.Disconnect(v.From, v.To)
	case SetParameter:
		err = c.handleSetParameter(v)
	case Play:
		err = c.handlePlay()
	case Pause:
		c.pushMessage(MessageSetRenderMode{Mode: RenderInstruments})
	case Stop:
		c.live = false
		c.pushMessage(ClearGraph{})
		c.pushMessage(MessageSetRenderMode{Mode: RenderInstruments})

	case OctaveUp:
		err = c.app.OctaveUp(v.Row)
	case OctaveDown:
		err = c.app.OctaveDown(v.Row)
	case SetOctave:
		err = c.app.SetOctave(v.Row, v.Octave)
	case LinkOctaves:
		c.app.LinkOctaves()
	case UnlinkOctaves:
		c.app.UnlinkOctaves()
	case SelectInstrument:
		err = c.app.SelectInstrument(v.Row, v.Index)
	case NextInstrument:
		err = c.app.NextInstrument(v.Row)
	case PreviousInstrument:
		err = c.app.PreviousInstrument(v.Row)
	case LinkInstruments:
		c.app.LinkInstruments()
	case UnlinkInstruments:
		c.app.UnlinkInstruments()
	case SetVolume:
		err = c.app.SetVolume(v.Row, v.Volume)
		c.logVolume(v.Row)
	case VolumeUp:
		err = c.app.VolumeUp(v.Row)
		c.logVolume(v.Row)
	case VolumeDown:
		err = c.app.VolumeDown(v.Row)
		c.logVolume(v.Row)
	case Mute:
		err = c.app.Mute(v.Row)

	default:
		c.log.Warn("command: unrecognized command type %T", cmd)
		return
	}

	if err != nil {
		c.log.Debug("command: rejected %T: %v", cmd, err)
		c.events.Push(CommandError{Reason: err.Error()})
	}
}

func (c *CommandStage) handleNoteStart(v NoteStart) error {
	if v.Velocity < 0 || v.Velocity > 1 {
		return &InvalidVelocityError{Velocity: v.Velocity}
	}
	row, err := c.app.Row(v.Row)
	if err != nil {
		return err
	}
	note := int(v.Note) + 12*(int(row.Octave)-4)
	c.pushMessage(InstrumentNoteStart{InstrumentIndex: row.InstrumentIndex, Note: uint8(note), Velocity: v.Velocity})
	return nil
}

func (c *CommandStage) handleNoteStop(v NoteStop) error {
	row, err := c.app.Row(v.Row)
	if err != nil {
		return err
	}
	note := int(v.Note) + 12*(int(row.Octave)-4)
	c.pushMessage(InstrumentNoteStop{InstrumentIndex: row.InstrumentIndex, Note: uint8(note)})
	return nil
}

func (c *CommandStage) handleAddNode(v AddNode) error {
	id, err := c.canonical.AddNode(v.NodeType, v.Kind, graph.Position{X: v.X, Y: v.Y})
	if err != nil {
		return err
	}
	c.events.Push(NodeAdded{ID: id})
	return nil
}

func (c *CommandStage) handleRemoveNode(v RemoveNode) error {
	return c.canonical.RemoveNode(v.ID)
}

func (c *CommandStage) handleSetParameter(v SetParameter) error {
	if err := c.canonical.SetParameter(v.NodeID, v.ParamName, v.Value); err != nil {
		return err
	}
	if c.live {
		if idx, ok := c.compiledIndexByNodeID[v.NodeID]; ok {
			c.pushMessage(GraphSetParameter{NodeIndex: idx, ParamName: v.ParamName, Value: v.Value})
		}
	}
	return nil
}

func (c *CommandStage) handlePlay() error {
	compiled, err := graph.Compile(c.canonical, float64(c.state.SampleRate()))
	if err != nil {
		c.events.Push(GraphError{Reason: err.Error()})
		return nil
	}
	c.compiledIndexByNodeID = make(map[uint64]int)
	for _, rec := range c.canonical.Nodes() {
		if idx, ok := compiled.NodeIndexByID(rec.ID); ok {
			c.compiledIndexByNodeID[rec.ID] = idx
		}
	}
	c.live = true
	// SwapGraph must precede SetRenderMode(Graph) for this Play request;
	// pushMessage preserves push order onto the single-producer queue.
	c.pushMessage(SwapGraph{Graph: compiled})
	c.pushMessage(MessageSetRenderMode{Mode: RenderGraph})
	return nil
}

// logVolume reports a row's new volume in both linear and dB form, the
// unit a UI's level meter actually displays.
func (c *CommandStage) logVolume(row uint8) {
	r, err := c.app.Row(row)
	if err != nil {
		return
	}
	c.log.Debug("command: row %d volume now %.3f (%.1f dB)", row, r.Volume, gain.LinearToDb32(r.Volume))
}

// pushMessage enqueues an audio-message, logging and dropping it if the
// render stage has fallen behind and the bounded queue is full.
func (c *CommandStage) pushMessage(msg Message) {
	if !c.messages.Push(msg) {
		c.log.Warn("command: message queue full, dropping %T", msg)
	}
}
