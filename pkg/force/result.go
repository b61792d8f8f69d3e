package force

import "fmt"

// Result is the settled output of one run. Nodes keep input order; edges keep
// construction order and point into Nodes.
type Result struct {
	Nodes      []*Node
	Edges      []Edge
	Categories []string // group keys in first-occurrence order
	Config     Config
	Seed       uint64

	index map[string]*Node
}

func newResult(e *Engine) *Result {
	r := &Result{
		Nodes:      e.nodes,
		Edges:      e.edges,
		Categories: e.categories,
		Config:     e.cfg,
		Seed:       e.seed,
		index:      make(map[string]*Node, len(e.nodes)),
	}
	for _, n := range e.nodes {
		r.index[n.ID] = n
	}
	return r
}

// Node looks up a node by ID.
func (r *Result) Node(id string) (*Node, bool) {
	n, ok := r.index[id]
	return n, ok
}

// SetNodePosition moves a node to an absolute position. The layout is not
// re-simulated and the position is not clamped.
func (r *Result) SetNodePosition(id string, x, y float64) error {
	n, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	n.X, n.Y = x, y
	return nil
}
