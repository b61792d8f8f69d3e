// Package render turns settled layouts into artifacts.
//
// The [nodelink] subpackage produces Graphviz DOT with every node pinned at
// its computed position and renders it to SVG. This package converts SVG to
// raster and print formats:
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// PDF and PNG output shell out to rsvg-convert from librsvg.
package render
