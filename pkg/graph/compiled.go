package graph

import (
	"sort"

	"github.com/dspforge/synthcore/pkg/graph/kernel"
)

// compiledEdge is a directed edge in the executable graph, carrying the
// port pair and which node index it originates from.
type compiledEdge struct {
	fromIndex int
	fromPort  int
	toPort    int
}

// compiledNode is one instantiated kernel plus its incoming edges and the
// output vectors from this step and the previous one.
type compiledNode struct {
	id          uint64
	kernel      kernel.Kernel
	postponable bool
	incoming    []compiledEdge
	scratch     []float32 // per-port accumulated input, reused every step
	thisOutputs []float32
	lastOutputs []float32
}

// CompiledGraph is the executable adjacency-list form of a CanonicalGraph:
// instantiated kernels, installed edges and a layering that the render
// stage walks once per tick.
type CompiledGraph struct {
	nodes        []*compiledNode
	layers       [][]int
	sourceByID   map[uint64]int
	sinkByID     map[uint64]int
	primarySink  int
	hasPrimary   bool
}

// Compile builds a CompiledGraph from canonical in three phases:
// instantiation, edge installation and layering.
func Compile(canonical *CanonicalGraph, sampleRate float64) (*CompiledGraph, error) {
	records := canonical.Nodes()
	if len(records) == 0 {
		return nil, &EmptyGraphError{}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	cg := &CompiledGraph{
		sourceByID: make(map[uint64]int),
		sinkByID:   make(map[uint64]int),
	}
	indexByID := make(map[uint64]int, len(records))

	// Phase 1: instantiation.
	for _, rec := range records {
		k, err := canonical.registry.New(rec.TypeName, sampleRate)
		if err != nil {
			return nil, err
		}
		for name, value := range rec.ParameterValues {
			_ = k.SetParameter(name, value) // unknown params are ignored at compile time
		}
		idx := len(cg.nodes)
		cg.nodes = append(cg.nodes, &compiledNode{
			id:          rec.ID,
			kernel:      k,
			postponable: k.Postponable(),
			scratch:     make([]float32, k.NumInputs()),
			thisOutputs: make([]float32, k.NumOutputs()),
			lastOutputs: make([]float32, k.NumOutputs()),
		})
		indexByID[rec.ID] = idx
		if k.NumInputs() == 0 {
			cg.sourceByID[rec.ID] = idx
		}
		if k.NumOutputs() == 0 {
			cg.sinkByID[rec.ID] = idx
			if !cg.hasPrimary {
				cg.primarySink = idx
				cg.hasPrimary = true
			}
		}
	}

	// Phase 2: edge installation.
	seen := make(map[[4]int]bool)
	for _, c := range canonical.Connections() {
		fromIdx, ok := indexByID[c.FromID]
		if !ok {
			return nil, &InvalidNodeError{ID: c.FromID}
		}
		toIdx, ok := indexByID[c.ToID]
		if !ok {
			return nil, &InvalidNodeError{ID: c.ToID}
		}
		fromNode := cg.nodes[fromIdx]
		toNode := cg.nodes[toIdx]
		if c.FromPort < 0 || c.FromPort >= fromNode.kernel.NumOutputs() {
			return nil, &InvalidPortError{NodeID: c.FromID, Port: c.FromPort}
		}
		if c.ToPort < 0 || c.ToPort >= toNode.kernel.NumInputs() {
			return nil, &InvalidPortError{NodeID: c.ToID, Port: c.ToPort}
		}
		key := [4]int{fromIdx, c.FromPort, toIdx, c.ToPort}
		if seen[key] {
			return nil, &DuplicateConnectionError{From: c.FromID, To: c.ToID}
		}
		seen[key] = true
		toNode.incoming = append(toNode.incoming, compiledEdge{fromIndex: fromIdx, fromPort: c.FromPort, toPort: c.ToPort})
	}

	// Phase 3: layering.
	layers, err := layer(cg.nodes)
	if err != nil {
		return nil, err
	}
	cg.layers = layers

	return cg, nil
}

// layer computes the scheduling layers by repeated scanning: a node's
// incoming edge blocks its layering only when the edge's source node is
// non-postponable (a postponable predecessor's value for this step is
// always already available, since its transform does not depend on the
// value pushed to it this step).
func layer(nodes []*compiledNode) ([][]int, error) {
	n := len(nodes)
	inDegree := make([]int, n)
	blockedBy := make([][]int, n) // reverse adjacency restricted to blocking edges

	for v, node := range nodes {
		for _, e := range node.incoming {
			if nodes[e.fromIndex].postponable {
				continue
			}
			inDegree[v]++
			blockedBy[e.fromIndex] = append(blockedBy[e.fromIndex], v)
		}
	}

	layered := make([]bool, n)
	var layers [][]int
	remaining := n

	for remaining > 0 {
		var current []int
		for v := 0; v < n; v++ {
			if !layered[v] && inDegree[v] == 0 {
				current = append(current, v)
			}
		}
		if len(current) == 0 {
			var stuck []uint64
			for v := 0; v < n; v++ {
				if !layered[v] {
					stuck = append(stuck, nodes[v].id)
				}
			}
			return nil, &CycleWithoutPostponableError{RemainingNodes: stuck}
		}
		for _, v := range current {
			layered[v] = true
			remaining--
		}
		for _, v := range current {
			for _, w := range blockedBy[v] {
				inDegree[w]--
			}
		}
		layers = append(layers, current)
	}

	return layers, nil
}

// Step executes one tick: every layer runs in order, pushing each node's
// accumulated inputs (using the previous step's output for edges whose
// source is postponable) and caching its transform output.
func (cg *CompiledGraph) Step() {
	for _, layer := range cg.layers {
		for _, idx := range layer {
			node := cg.nodes[idx]
			for i := range node.scratch {
				node.scratch[i] = 0
			}
			for _, e := range node.incoming {
				src := cg.nodes[e.fromIndex]
				var v float32
				if src.postponable {
					v = src.lastOutputs[e.fromPort]
				} else {
					v = src.thisOutputs[e.fromPort]
				}
				node.scratch[e.toPort] += v
			}
			for port, v := range node.scratch {
				node.kernel.Push(v, port)
			}
			out := node.kernel.Transform()
			copy(node.thisOutputs, out)
		}
	}
	for _, node := range cg.nodes {
		copy(node.lastOutputs, node.thisOutputs)
	}
}

// SetParameter looks up the node by compiled index and forwards the
// update; an out-of-range index is dropped silently (the node vanished
// from a subsequent recompile).
func (cg *CompiledGraph) SetParameter(nodeIndex int, name string, value float32) {
	if nodeIndex < 0 || nodeIndex >= len(cg.nodes) {
		return
	}
	_ = cg.nodes[nodeIndex].kernel.SetParameter(name, value)
}

// PrimarySink returns the designated sink to drain each tick: the first
// sink encountered in ascending node-ID order, per the instantiation pass.
func (cg *CompiledGraph) PrimarySink() (kernel.Sink, bool) {
	if !cg.hasPrimary {
		return nil, false
	}
	sink, ok := cg.nodes[cg.primarySink].kernel.(kernel.Sink)
	return sink, ok
}

// NodeIndexByID returns the compiled index for a canonical node ID, used
// by the command stage to translate outgoing GraphSetParameter messages.
func (cg *CompiledGraph) NodeIndexByID(id uint64) (int, bool) {
	for idx, n := range cg.nodes {
		if n.id == id {
			return idx, true
		}
	}
	return 0, false
}
