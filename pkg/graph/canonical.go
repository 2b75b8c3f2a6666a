// Package graph implements the directed audio-processing graph: its
// canonical (command-stage-owned) form, compilation into an executable
// layered form, and one-step execution.
package graph

// NodeKind classifies a canonical node by its role in the graph.
type NodeKind int

const (
	KindGenerator NodeKind = iota
	KindFilter
	KindSink
)

// Position is a UI-only 2D coordinate carried alongside a node record.
type Position struct {
	X, Y float32
}

// NodeRecord is one node in the canonical graph.
type NodeRecord struct {
	ID              uint64
	TypeName        string
	Kind            NodeKind
	ParameterValues map[string]float32
	Position        Position
}

// Connection is a directed edge between two node ports in the canonical
// graph.
type Connection struct {
	FromID   uint64
	FromPort int
	ToID     uint64
	ToPort   int
}

// CanonicalGraph is the command stage's authoritative graph model: a
// mapping from stable node IDs to node records plus a set of connections
// and a monotonically increasing ID counter.
type CanonicalGraph struct {
	registry    *Registry
	nodes       map[uint64]*NodeRecord
	connections []Connection
	nextID      uint64
}

// NewCanonicalGraph creates an empty canonical graph backed by registry.
func NewCanonicalGraph(registry *Registry) *CanonicalGraph {
	return &CanonicalGraph{
		registry: registry,
		nodes:    make(map[uint64]*NodeRecord),
		nextID:   1,
	}
}

// AddNode materializes a new node record and returns its assigned ID.
func (g *CanonicalGraph) AddNode(typeName string, kind NodeKind, pos Position) (uint64, error) {
	if _, ok := g.registry.KindOf(typeName); !ok {
		return 0, &UnknownNodeTypeError{TypeName: typeName}
	}
	id := g.nextID
	g.nextID++
	g.nodes[id] = &NodeRecord{
		ID:              id,
		TypeName:        typeName,
		Kind:            kind,
		ParameterValues: make(map[string]float32),
		Position:        pos,
	}
	return id, nil
}

// RemoveNode deletes a node and transitively removes every connection
// touching it.
func (g *CanonicalGraph) RemoveNode(id uint64) error {
	if _, ok := g.nodes[id]; !ok {
		return &InvalidNodeError{ID: id}
	}
	delete(g.nodes, id)
	kept := g.connections[:0]
	for _, c := range g.connections {
		if c.FromID != id && c.ToID != id {
			kept = append(kept, c)
		}
	}
	g.connections = kept
	return nil
}

// Connect adds a connection between existing nodes, rejecting duplicates.
// Port indices are not checked here; an out-of-range port is reported by
// Compile.
func (g *CanonicalGraph) Connect(fromID uint64, fromPort int, toID uint64, toPort int) error {
	if _, ok := g.nodes[fromID]; !ok {
		return &InvalidNodeError{ID: fromID}
	}
	if _, ok := g.nodes[toID]; !ok {
		return &InvalidNodeError{ID: toID}
	}
	for _, c := range g.connections {
		if c.FromID == fromID && c.FromPort == fromPort && c.ToID == toID && c.ToPort == toPort {
			return &DuplicateConnectionError{From: fromID, To: toID}
		}
	}
	g.connections = append(g.connections, Connection{FromID: fromID, FromPort: fromPort, ToID: toID, ToPort: toPort})
	return nil
}

// Disconnect removes every connection between from and to.
func (g *CanonicalGraph) Disconnect(fromID, toID uint64) {
	kept := g.connections[:0]
	for _, c := range g.connections {
		if !(c.FromID == fromID && c.ToID == toID) {
			kept = append(kept, c)
		}
	}
	g.connections = kept
}

// SetParameter stores a parameter value on a node record. Range clamping
// happens at compile/runtime against the kernel's declared ranges; the
// canonical record itself just remembers what was asked for.
func (g *CanonicalGraph) SetParameter(id uint64, name string, value float32) error {
	n, ok := g.nodes[id]
	if !ok {
		return &InvalidNodeError{ID: id}
	}
	n.ParameterValues[name] = value
	return nil
}

// Node returns the record for id.
func (g *CanonicalGraph) Node(id uint64) (*NodeRecord, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns every node record, in no particular order.
func (g *CanonicalGraph) Nodes() []*NodeRecord {
	out := make([]*NodeRecord, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Connections returns the connection set.
func (g *CanonicalGraph) Connections() []Connection {
	return g.connections
}

// Clone returns a deep copy sharing the same registry.
func (g *CanonicalGraph) Clone() *CanonicalGraph {
	clone := NewCanonicalGraph(g.registry)
	clone.nextID = g.nextID
	for id, n := range g.nodes {
		params := make(map[string]float32, len(n.ParameterValues))
		for k, v := range n.ParameterValues {
			params[k] = v
		}
		clone.nodes[id] = &NodeRecord{
			ID:              n.ID,
			TypeName:        n.TypeName,
			Kind:            n.Kind,
			ParameterValues: params,
			Position:        n.Position,
		}
	}
	clone.connections = append([]Connection(nil), g.connections...)
	return clone
}
