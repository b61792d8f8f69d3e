// Package pkg provides the core libraries for catgraph product layouts.
//
// # Overview
//
// catgraph places the products of a catalog on a 2D canvas with a
// force-directed simulation. Products of the same category are linked, so
// categories settle into visible clusters. The pkg directory is organized as:
//
//  1. [force] - The simulation engine (placement, forces, integration)
//  2. [catalog] - Product records and their sources (files, MongoDB, sample)
//  3. [graph] - Serialized layouts and their JSON I/O
//  4. [pipeline] - Orchestration (filter → layout → render) with caching
//  5. [render] - DOT and SVG through Graphviz, PNG and PDF through rsvg-convert
//  6. [cache], [config], [errors], [observability], [server] - Infrastructure
//
// # Architecture
//
//	Product catalog (JSON, TOML, MongoDB)
//	         ↓
//	    [catalog] package (validate, filter by category)
//	         ↓
//	    [force] package (simulate)
//	         ↓
//	    [graph] package (layout.json)
//	         ↓
//	    [render/nodelink] package (DOT, SVG, PNG, PDF)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, catalog.Sample(), pipeline.Options{
//	    Category: "Audio",
//	    Formats:  []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("audio.svg", result.Artifacts[pipeline.FormatSVG], 0o644)
package pkg
