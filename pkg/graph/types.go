package graph

import (
	"errors"
	"fmt"

	"github.com/matzehuels/catgraph/pkg/force"
)

// Sentinel errors returned by [Layout.Validate].
var (
	ErrDuplicateNode = errors.New("duplicate node ID")
	ErrDanglingEdge  = errors.New("edge references unknown node")
	ErrSelfLoop      = errors.New("edge endpoints must be distinct")
)

// Layout is the serialized result of one layout run.
type Layout struct {
	ID         string       `json:"id,omitempty"`
	Config     force.Config `json:"config"`
	Seed       uint64       `json:"seed"`
	Categories []string     `json:"categories,omitempty"`
	Nodes      []Node       `json:"nodes"`
	Edges      []Edge       `json:"edges"`
}

// Node is a positioned item.
type Node struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Category  string  `json:"category,omitempty"`
	Weight    float64 `json:"weight"`
	Magnitude float64 `json:"magnitude"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Radius    float64 `json:"radius"`
}

// Edge connects two nodes by ID.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// FromResult converts a settled run into its serialized form.
func FromResult(res *force.Result) Layout {
	l := Layout{
		Config:     res.Config,
		Seed:       res.Seed,
		Categories: append([]string(nil), res.Categories...),
		Nodes:      make([]Node, len(res.Nodes)),
		Edges:      make([]Edge, len(res.Edges)),
	}
	for i, n := range res.Nodes {
		l.Nodes[i] = Node{
			ID:        n.ID,
			Name:      n.Name,
			Category:  n.Category,
			Weight:    n.Weight,
			Magnitude: n.Magnitude,
			X:         n.X,
			Y:         n.Y,
			Radius:    n.Radius(),
		}
	}
	for i, e := range res.Edges {
		l.Edges[i] = Edge{Source: e.Source.ID, Target: e.Target.ID}
	}
	return l
}

// Node returns the node with the given ID.
func (l *Layout) Node(id string) (*Node, bool) {
	for i := range l.Nodes {
		if l.Nodes[i].ID == id {
			return &l.Nodes[i], true
		}
	}
	return nil, false
}

// SetNodePosition moves a node to an absolute position without re-running
// the simulation.
func (l *Layout) SetNodePosition(id string, x, y float64) error {
	n, ok := l.Node(id)
	if !ok {
		return fmt.Errorf("%w: %s", force.ErrUnknownNode, id)
	}
	n.X, n.Y = x, y
	return nil
}

// Endpoints resolves an edge to its nodes.
func (l *Layout) Endpoints(e Edge) (src, dst *Node, ok bool) {
	src, ok1 := l.Node(e.Source)
	dst, ok2 := l.Node(e.Target)
	return src, dst, ok1 && ok2
}

// Validate checks that node IDs are unique and that every edge joins two
// distinct existing nodes.
func (l *Layout) Validate() error {
	ids := make(map[string]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		ids[n.ID] = true
	}
	for _, e := range l.Edges {
		if !ids[e.Source] {
			return fmt.Errorf("%w: %s", ErrDanglingEdge, e.Source)
		}
		if !ids[e.Target] {
			return fmt.Errorf("%w: %s", ErrDanglingEdge, e.Target)
		}
		if e.Source == e.Target {
			return fmt.Errorf("%w: %s", ErrSelfLoop, e.Source)
		}
	}
	return nil
}
