package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/catgraph/pkg/catalog"
	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/force"
	"github.com/matzehuels/catgraph/pkg/graph"
	"github.com/matzehuels/catgraph/pkg/observability"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout filters products by opts.Category and runs the force
// simulation over the remainder. An empty selection yields an empty layout.
func GenerateLayout(ctx context.Context, products []catalog.Product, opts Options) (graph.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, err
	}
	selected := catalog.Filter(products, opts.Category)
	if err := catalog.Validate(selected); err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid catalog")
	}

	hooks := observability.Layout()
	engineOpts := []force.Option{
		force.WithSeed(opts.Seed),
		force.WithSnapshot(func(iteration int, nodes []*force.Node) {
			hooks.OnLayoutSnapshot(ctx, iteration)
			if opts.Snapshot != nil {
				opts.Snapshot(iteration, nodes)
			}
		}),
	}

	e, err := force.New(opts.Config, engineOpts...)
	if err != nil {
		return graph.Layout{}, errors.FromLayoutError(err)
	}
	if err := e.Init(catalog.Items(selected)); err != nil {
		return graph.Layout{}, errors.FromLayoutError(err)
	}

	start := time.Now()
	hooks.OnLayoutStart(ctx, len(e.Nodes()), len(e.Edges()))
	res, err := e.Run(ctx)
	hooks.OnLayoutComplete(ctx, len(e.Nodes()), time.Since(start), err)
	if err != nil {
		return graph.Layout{}, errors.FromLayoutError(err)
	}

	opts.Logger.Debug("layout settled",
		"category", opts.Category,
		"nodes", len(res.Nodes),
		"edges", len(res.Edges),
		"iterations", opts.Config.Iterations,
		"seed", res.Seed)

	return graph.FromResult(res), nil
}
