package engine

import (
	"math"
	"time"

	"github.com/dspforge/synthcore/pkg/engine/queue"
	"github.com/dspforge/synthcore/pkg/framework/param"
	"github.com/dspforge/synthcore/pkg/graph"
	"github.com/dspforge/synthcore/pkg/instrument"
	"github.com/dspforge/synthcore/pkg/logging"
)

// RenderStage owns the live DSP objects: the instrument bank and, when in
// Graph mode, the currently swapped-in compiled graph. Queues, instruments
// and compiled-graph vertices are reused across chunks; in Graph mode each
// kernel's Transform returns a newly allocated output slice, so a graph
// step allocates.
type RenderStage struct {
	log       *logging.Logger
	state     *SharedState
	messages  *queue.MessageQueue
	samples   *queue.SampleQueue
	events    *queue.EventQueue
	chunkSize int

	mode        RenderMode
	instruments []*instrument.Instrument
	activeGraph *graph.CompiledGraph

	// volumeSmoother glides master-volume changes over ~10ms instead of
	// stepping the gain instantly, so a master-volume change never clicks.
	volumeSmoother *param.Smoother
}

// NewRenderStage creates a render stage with instrumentCount instruments,
// each with voiceCount voices at the configured sample rate.
func NewRenderStage(log *logging.Logger, state *SharedState, messages *queue.MessageQueue, samples *queue.SampleQueue, events *queue.EventQueue, instrumentCount, voiceCount, chunkSize int) *RenderStage {
	instruments := make([]*instrument.Instrument, instrumentCount)
	for i := range instruments {
		instruments[i] = instrument.NewInstrument(voiceCount, float64(state.SampleRate()))
	}

	sampleRate := float64(state.SampleRate())
	smoothingCoef := math.Exp(-1.0 / (0.01 * sampleRate)) // ~10ms glide
	smoother := param.NewSmoother(param.ExponentialSmoothing, smoothingCoef)
	smoother.Reset(float64(state.MasterVolume()))

	return &RenderStage{
		log:            log,
		state:          state,
		messages:       messages,
		samples:        samples,
		events:         events,
		chunkSize:      chunkSize,
		mode:           RenderInstruments,
		instruments:    instruments,
		volumeSmoother: smoother,
	}
}

// Run produces render_chunk_size samples per loop iteration until
// shutdown is observed. It never blocks on a lock; when the output queue
// is full it sleeps for a bounded short interval before retrying.
func (r *RenderStage) Run() {
	var lastReported uint64
	for !r.state.ShuttingDown() {
		r.drainMessages()
		r.volumeSmoother.SetTarget(float64(r.state.MasterVolume()))
		for i := 0; i < r.chunkSize; i++ {
			sample := r.renderOneSample() * float32(r.volumeSmoother.Next())
			for !r.samples.Push(sample) {
				if r.state.ShuttingDown() {
					return
				}
				time.Sleep(time.Millisecond)
			}
		}
		if count := r.state.UnderrunCount(); count != lastReported {
			r.events.Push(UnderrunReported{Count: count})
			lastReported = count
		}
	}
}

func (r *RenderStage) drainMessages() {
	for {
		msg, ok := r.messages.Pop()
		if !ok {
			return
		}
		r.applyMessage(msg)
	}
}

func (r *RenderStage) applyMessage(msg interface{}) {
	switch v := msg.(type) {
	case InstrumentNoteStart:
		if v.InstrumentIndex >= 0 && v.InstrumentIndex < len(r.instruments) {
			r.instruments[v.InstrumentIndex].StartNote(int(v.Note), v.Velocity)
		}
	case InstrumentNoteStop:
		if v.InstrumentIndex >= 0 && v.InstrumentIndex < len(r.instruments) {
			r.instruments[v.InstrumentIndex].StopNote(int(v.Note))
		}
	case SwapGraph:
		r.activeGraph = v.Graph
	case ClearGraph:
		r.activeGraph = nil
	case MessageSetRenderMode:
		r.mode = v.Mode
	case GraphSetParameter:
		if r.activeGraph != nil {
			r.activeGraph.SetParameter(v.NodeIndex, v.ParamName, v.Value)
		}
	case MessageShutdown:
		r.state.RequestShutdown()
	default:
		r.log.Warn("render: unrecognized message type %T", msg)
	}
}

// renderOneSample produces exactly one output sample for the current
// render mode.
func (r *RenderStage) renderOneSample() float32 {
	switch r.mode {
	case RenderGraph:
		if r.activeGraph == nil {
			return 0
		}
		r.activeGraph.Step()
		sink, ok := r.activeGraph.PrimarySink()
		if !ok {
			return 0
		}
		v, ok := sink.ConsumeOne()
		if !ok {
			return 0
		}
		return v
	default: // RenderInstruments
		var sum float32
		for _, inst := range r.instruments {
			sum += inst.Tick()
		}
		return sum
	}
}
