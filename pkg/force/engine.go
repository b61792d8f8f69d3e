package force

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	// ErrInvalidID is returned by [Engine.Init] when an item has an empty ID.
	ErrInvalidID = errors.New("item ID must not be empty")

	// ErrDuplicateID is returned by [Engine.Init] when two items share an ID.
	ErrDuplicateID = errors.New("duplicate item ID")

	// ErrNotInitialized is returned by [Engine.Run] before Init succeeded.
	ErrNotInitialized = errors.New("layout not initialized")

	// ErrAlreadySettled is returned by [Engine.Run] when the run already
	// finished. Call Init to start a new run.
	ErrAlreadySettled = errors.New("layout already settled")

	// ErrUnknownNode is returned by [Result.SetNodePosition] for an ID that is
	// not part of the layout.
	ErrUnknownNode = errors.New("unknown node")
)

// State is the lifecycle stage of an Engine.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateSettled:
		return "settled"
	default:
		return "uninitialized"
	}
}

// PlaceFunc picks the initial position of a node on a width x height canvas.
type PlaceFunc func(rng *rand.Rand, width, height float64) (x, y float64)

// UniformPlacement places nodes uniformly at random inside the whole canvas,
// margin included.
func UniformPlacement(rng *rand.Rand, width, height float64) (float64, float64) {
	return rng.Float64() * width, rng.Float64() * height
}

// SnapshotFunc observes intermediate positions. iteration is the zero-based
// index of the iteration that just completed. The nodes are live: callers must
// copy what they need and must not modify them.
type SnapshotFunc func(iteration int, nodes []*Node)

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes initial placement reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithGroupFunc replaces the default ByCategory grouping.
func WithGroupFunc(fn GroupFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.group = fn
		}
	}
}

// WithPlacement replaces UniformPlacement.
func WithPlacement(fn PlaceFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.place = fn
		}
	}
}

// WithSnapshot registers fn to be called every Config.SnapshotEvery iterations.
func WithSnapshot(fn SnapshotFunc) Option {
	return func(e *Engine) { e.snapshot = fn }
}

// Engine owns the simulation state of one layout run at a time.
type Engine struct {
	cfg      Config
	seed     uint64
	rng      *rand.Rand
	group    GroupFunc
	place    PlaceFunc
	snapshot SnapshotFunc

	state      State
	nodes      []*Node
	edges      []Edge
	neighbors  [][]*Node // per node, the other endpoint of each incident edge in edge order
	categories []string
}

// New validates cfg and returns an uninitialized engine. Without WithSeed the
// placement seed is random; it is reported by [Engine.Seed].
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:   cfg,
		seed:  rand.Uint64(),
		group: ByCategory,
		place: UniformPlacement,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = rand.New(rand.NewPCG(e.seed, e.seed^0xdeadbeef))
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Seed returns the placement seed.
func (e *Engine) Seed() uint64 { return e.seed }

// State returns the lifecycle stage.
func (e *Engine) State() State { return e.state }

// Nodes returns the nodes of the current run in input order.
func (e *Engine) Nodes() []*Node { return e.nodes }

// Edges returns the edges of the current run.
func (e *Engine) Edges() []Edge { return e.edges }

// Init builds one node per item at a random position and links same-group
// nodes. Any previous run is discarded. On error the engine is left
// uninitialized.
func (e *Engine) Init(items []Item) error {
	e.reset()

	seen := make(map[string]struct{}, len(items))
	nodes := make([]*Node, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("item %d: %w", i, ErrInvalidID)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("item %q: %w", it.ID, ErrDuplicateID)
		}
		seen[it.ID] = struct{}{}

		x, y := e.place(e.rng, e.cfg.Width, e.cfg.Height)
		nodes[i] = &Node{
			ID:        it.ID,
			Name:      it.Name,
			Category:  it.Category,
			Weight:    it.Weight,
			Magnitude: it.Magnitude,
			X:         x,
			Y:         y,
		}
	}

	groups := groupNodes(items, nodes, e.group)
	edges := linkGroups(groups, e.cfg.LinkSpan)

	pos := make(map[*Node]int, len(nodes))
	for i, n := range nodes {
		pos[n] = i
	}
	neighbors := make([][]*Node, len(nodes))
	for _, edge := range edges {
		s, t := pos[edge.Source], pos[edge.Target]
		neighbors[s] = append(neighbors[s], edge.Target)
		neighbors[t] = append(neighbors[t], edge.Source)
	}

	e.nodes = nodes
	e.edges = edges
	e.neighbors = neighbors
	e.categories = make([]string, len(groups))
	for i, g := range groups {
		e.categories[i] = g.key
	}
	e.state = StateInitialized
	return nil
}

func (e *Engine) reset() {
	e.state = StateUninitialized
	e.nodes = nil
	e.edges = nil
	e.neighbors = nil
	e.categories = nil
}

// Run executes exactly Config.Iterations relaxation steps and returns the
// settled result. ctx is checked between iterations; on cancellation the
// context error is returned and the engine stays initialized mid-run.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	switch e.state {
	case StateUninitialized:
		return nil, ErrNotInitialized
	case StateSettled:
		return nil, ErrAlreadySettled
	}

	for i := range e.cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.step()
		if e.snapshot != nil && e.cfg.SnapshotEvery > 0 && i%e.cfg.SnapshotEvery == 0 {
			e.snapshot(i, e.nodes)
		}
	}

	e.state = StateSettled
	return newResult(e), nil
}

// step runs one iteration. Nodes are updated one after another, so later
// nodes see the new positions of earlier ones.
func (e *Engine) step() {
	cx, cy := e.cfg.Center()
	minX, minY, maxX, maxY := e.cfg.Bounds()

	for i, n := range e.nodes {
		n.VX += (cx - n.X) * e.cfg.CenterStrength
		n.VY += (cy - n.Y) * e.cfg.CenterStrength

		for _, other := range e.nodes {
			if other == n {
				continue
			}
			dx, dy := other.X-n.X, other.Y-n.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < e.cfg.CollisionDistance && dist > 0 {
				f := (e.cfg.CollisionDistance - dist) / dist * e.cfg.CollisionStrength
				n.VX -= dx * f
				n.VY -= dy * f
			}
		}

		for _, other := range e.neighbors[i] {
			dx, dy := other.X-n.X, other.Y-n.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > 0 {
				f := (dist - e.cfg.LinkDistance) / dist * e.cfg.LinkStrength
				n.VX += dx * f
				n.VY += dy * f
			}
		}

		n.X += n.VX * e.cfg.Step
		n.Y += n.VY * e.cfg.Step

		n.VX *= e.cfg.Damping
		n.VY *= e.cfg.Damping

		n.X = max(minX, min(maxX, n.X))
		n.Y = max(minY, min(maxY, n.Y))
	}
}

// Layout builds an engine from cfg and opts, initializes it with items and
// runs it to completion.
func Layout(ctx context.Context, items []Item, cfg Config, opts ...Option) (*Result, error) {
	e, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := e.Init(items); err != nil {
		return nil, err
	}
	return e.Run(ctx)
}
