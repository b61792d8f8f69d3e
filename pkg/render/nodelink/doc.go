// Package nodelink renders settled layouts as node-link diagrams.
//
// # Overview
//
// [ToDOT] emits an undirected Graphviz graph in which every node is pinned at
// the position computed by the force layout, so Graphviz only draws. Nodes
// are circles sized by weight and filled by category; edges are straight
// grey lines.
//
// # Usage
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Coordinates
//
// Layout coordinates have the origin at the top left with y growing
// downwards. Graphviz puts the origin at the bottom left, so y is flipped
// against the canvas height. The graph sets inputscale=72 so one layout unit
// is one point.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering with the neato engine.
package nodelink
