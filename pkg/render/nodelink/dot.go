package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/catgraph/pkg/graph"
)

// MaxLabel is the number of characters of a name shown in a node label.
const MaxLabel = 15

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds category, price and quantity lines to node labels.
	// When false, only the (truncated) name is shown.
	Detailed bool

	// Labels places the name next to each circle instead of inside it.
	Labels bool
}

// ToDOT converts a layout to Graphviz DOT with pinned node positions.
func ToDOT(l graph.Layout, opts Options) string {
	height := l.Config.Height

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  bgcolor=\"#fafafa\";\n")
	fmt.Fprintf(&buf, "  bb=\"0,0,%s,%s\";\n", num(l.Config.Width), num(height))
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, color=white, penwidth=2, fontsize=10, fontcolor=\"#333333\"];\n")
	buf.WriteString("  edge [color=\"#99999999\", penwidth=1.5];\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, height, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n graph.Node, height float64, opts Options) []string {
	diameter := 2 * n.Radius / 72
	attrs := []string{
		fmt.Sprintf("pos=\"%s,%s!\"", num(n.X), num(height-n.Y)),
		fmt.Sprintf("width=%s", num(diameter)),
		fmt.Sprintf("fillcolor=%q", CategoryColor(n.Category)),
		fmt.Sprintf("tooltip=%q", Tooltip(n)),
	}
	label := fmtLabel(n, opts.Detailed)
	if opts.Labels {
		attrs = append(attrs, "label=\"\"", fmt.Sprintf("xlabel=%q", label))
	} else {
		attrs = append(attrs, fmt.Sprintf("label=%q", label))
	}
	return attrs
}

func fmtLabel(n graph.Node, detailed bool) string {
	label := Truncate(displayName(n), MaxLabel)
	if !detailed {
		return label
	}
	return fmt.Sprintf("%s\n%s\n€%.2f x %g", label, n.Category, n.Magnitude, n.Weight)
}

// Tooltip describes a node for hover text.
func Tooltip(n graph.Node) string {
	return fmt.Sprintf("%s\nCategory: %s\nPrice: €%.2f\nQuantity: %g",
		displayName(n), n.Category, n.Magnitude, n.Weight)
}

// Truncate shortens s to limit runes followed by "..." when it is longer.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

func displayName(n graph.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// RenderSVG renders DOT produced by [ToDOT] to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag with one carrying only the
// viewBox and pixel size, so the drawing scales when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
