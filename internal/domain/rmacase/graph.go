package rmacase

import "time"

// Field names a case attribute a stage can require before it is entered.
type Field string

const (
	FieldOutboundCarrier        Field = "outbound_carrier"
	FieldOutboundTrackingNumber Field = "outbound_tracking_number"
	FieldInboundTrackingNumber  Field = "inbound_tracking_number"
	FieldSerialNumber           Field = "serial_number"
	FieldTechnicianEmail        Field = "technician_email"
)

// StageNode declares a stage's position, the fields that must be present before it can
// be entered, and which stage-entry timestamp it stamps.
type StageNode struct {
	Stage    Stage
	Index    int
	Requires []Field
	Stamp    func(c *Case) **time.Time
}

// Graph is a directed acyclic transition graph. Edges run from every stage to every
// strictly later stage.
type Graph struct {
	order []Stage
	nodes map[Stage]StageNode
}

func NewGraph(nodes ...StageNode) *Graph {
	g := &Graph{nodes: make(map[Stage]StageNode, len(nodes))}
	for i, n := range nodes {
		n.Index = i
		g.order = append(g.order, n.Stage)
		g.nodes[n.Stage] = n
	}
	return g
}

var DefaultGraph = NewGraph(
	StageNode{Stage: StageReceived, Stamp: func(c *Case) **time.Time { return &c.ReceivedAt }},
	StageNode{Stage: StageTesting, Stamp: func(c *Case) **time.Time { return &c.InspectedAt }},
	StageNode{Stage: StageSentToManufacturer},
	StageNode{Stage: StageRepairedReplaced},
	StageNode{
		Stage:    StageBackToCustomer,
		Requires: []Field{FieldOutboundCarrier, FieldOutboundTrackingNumber},
		Stamp:    func(c *Case) **time.Time { return &c.ShippedBackAt },
	},
)

func (g *Graph) Stages() []Stage {
	out := make([]Stage, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Graph) Node(s Stage) (StageNode, bool) {
	n, ok := g.nodes[s]
	return n, ok
}

func (g *Graph) Index(s Stage) int {
	if n, ok := g.nodes[s]; ok {
		return n.Index
	}
	return -1
}

func (g *Graph) CanTransition(from, to Stage) bool {
	f, okFrom := g.nodes[from]
	t, okTo := g.nodes[to]
	return okFrom && okTo && t.Index > f.Index
}

// MissingFields lists the target's required fields that are absent on the case, in declaration order.
func (g *Graph) MissingFields(c *Case, to Stage) []Field {
	n, ok := g.nodes[to]
	if !ok {
		return nil
	}
	var missing []Field
	for _, f := range n.Requires {
		if !c.HasField(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Check validates a transition without applying it.
func (g *Graph) Check(c *Case, to Stage) error {
	if !g.CanTransition(c.Status, to) {
		return &TransitionError{From: c.Status, To: to}
	}
	if missing := g.MissingFields(c, to); len(missing) > 0 {
		return &TransitionError{From: c.Status, To: to, Missing: missing}
	}
	return nil
}
