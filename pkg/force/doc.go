// Package force computes force-directed layouts for categorized items.
//
// # Overview
//
// The engine turns a list of [Item] values into positioned [Node] values and
// a sparse set of [Edge] values linking items that share a group key (by
// default the item category). Positions are found by a fixed-budget physics
// relaxation: every iteration pulls nodes toward the canvas center, pushes
// close nodes apart, pulls linked nodes toward a rest length, integrates
// velocity, damps it and clamps positions into the canvas margin.
//
// # Usage
//
//	eng, err := force.New(force.DefaultConfig(), force.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := eng.Init(items); err != nil {
//	    return err
//	}
//	res, err := eng.Run(ctx)
//
// [Layout] wraps the three calls for the common case.
//
// # Lifecycle
//
// An [Engine] moves from [StateUninitialized] to [StateInitialized] when
// [Engine.Init] builds nodes and edges, and to [StateSettled] once
// [Engine.Run] has executed every iteration. Calling Init again starts a new
// run with fresh random positions.
//
// # Edges
//
// Within each group, the node at position i is linked to the next
// [Config.LinkSpan] nodes of the same group. With the default span of 2 a
// group of g nodes yields at most 2g edges instead of g²/2.
//
// # Concurrency
//
// An Engine and the [Result] it returns are not safe for concurrent use.
// Separate engines share no state and may run in parallel.
package force
