package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/catgraph/pkg/cache"
	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/graph"
)

// =============================================================================
// Stored Runs
// =============================================================================

// Store saves a layout as a new run and returns it with its assigned ID.
func (r *Runner) Store(ctx context.Context, layout graph.Layout) (graph.Layout, error) {
	layout.ID = uuid.NewString()
	if err := r.save(ctx, layout); err != nil {
		return graph.Layout{}, err
	}
	return layout, nil
}

// Load returns a stored run.
func (r *Runner) Load(ctx context.Context, id string) (graph.Layout, error) {
	if err := uuid.Validate(id); err != nil {
		return graph.Layout{}, errors.New(errors.ErrCodeLayoutNotFound, "layout not found: %s", id)
	}
	data, hit, err := r.Cache.Get(ctx, r.Keyer.RunKey(id))
	if err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "load layout %s", id)
	}
	if !hit {
		return graph.Layout{}, errors.New(errors.ErrCodeLayoutNotFound, "layout not found: %s", id)
	}
	layout, err := graph.UnmarshalLayout(data)
	if err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "decode layout %s", id)
	}
	return layout, nil
}

// Move repositions one node of a stored run without re-running the
// simulation and saves the result under the same ID.
func (r *Runner) Move(ctx context.Context, id, nodeID string, x, y float64) (graph.Layout, error) {
	layout, err := r.Load(ctx, id)
	if err != nil {
		return graph.Layout{}, err
	}
	if err := layout.SetNodePosition(nodeID, x, y); err != nil {
		return graph.Layout{}, errors.FromLayoutError(err)
	}
	if err := r.save(ctx, layout); err != nil {
		return graph.Layout{}, err
	}
	r.Logger.Debug("moved node", "layout", id, "node", nodeID, "x", x, "y", y)
	return layout, nil
}

// Delete removes a stored run.
func (r *Runner) Delete(ctx context.Context, id string) error {
	return r.Cache.Delete(ctx, r.Keyer.RunKey(id))
}

func (r *Runner) save(ctx context.Context, layout graph.Layout) error {
	data, err := graph.MarshalLayout(layout)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	key := r.Keyer.RunKey(layout.ID)
	err = cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, cache.TTLRun)
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store layout %s", layout.ID)
	}
	return nil
}
