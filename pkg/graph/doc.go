// Package graph provides the serialization format for computed layouts.
//
// This package defines the canonical wire format for catgraph layouts, used
// for JSON files, API responses, caching and renderers.
//
// # Architecture
//
// The package sits at the serialization boundary:
//
//   - [force.Result]: Live simulation output (node pointers, velocities)
//   - [Layout]: Plain data with string references (this package)
//
// Use [FromResult] to convert a settled run.
//
// # Layout Serialization
//
// Layouts use a node-link JSON format. Edges reference nodes by ID, so a
// consumer resolves endpoint positions by looking the node up:
//
//	{
//	  "config": {"width": 800, "height": 600, ...},
//	  "seed": 42,
//	  "categories": ["Audio"],
//	  "nodes": [{"id": "9", "category": "Audio", "x": 310.5, "y": 220.1, ...}],
//	  "edges": [{"source": "9", "target": "10"}]
//	}
//
// Common operations:
//
//	l, _ := graph.ReadLayoutFile("layout.json")
//	_ = l.SetNodePosition("9", 100, 100)
//	_ = graph.WriteLayoutFile(l, "layout.json")
//
// # Concurrency
//
// Layout values are plain data; they are safe for concurrent reads but not
// concurrent writes.
package graph
