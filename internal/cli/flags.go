package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/force"
	"github.com/matzehuels/catgraph/pkg/pipeline"
)

// Flags only override the config file when set explicitly, so their
// defaults are for display.

// layoutFlags are the simulation flags shared by layout and watch.
type layoutFlags struct {
	category   string
	width      float64
	height     float64
	iterations int
	seed       uint64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "lay out a single category (\"all\" or \"Tutte\" for every product)")
	cmd.Flags().Float64Var(&f.width, "width", force.DefaultWidth, "canvas width")
	cmd.Flags().Float64Var(&f.height, "height", force.DefaultHeight, "canvas height")
	cmd.Flags().IntVar(&f.iterations, "iterations", force.DefaultIterations, "simulation steps")
	cmd.Flags().Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed for initial placement")
}

func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("category") {
		opts.Category = f.category
	}
	if flags.Changed("width") {
		opts.Config.Width = f.width
	}
	if flags.Changed("height") {
		opts.Config.Height = f.height
	}
	if flags.Changed("iterations") {
		opts.Config.Iterations = f.iterations
	}
	if flags.Changed("seed") {
		opts.Seed = f.seed
	}
}

// renderFlags are the output flags shared by layout and render.
type renderFlags struct {
	formats  string
	detailed bool
	labels   bool
	scale    float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output formats, comma-separated: json, dot, svg, png, pdf")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show category, price and quantity in node labels")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "place labels beside nodes instead of inside")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = pipeline.ParseFormats(f.formats)
	}
	if flags.Changed("detailed") {
		opts.Detailed = f.detailed
	}
	if flags.Changed("labels") {
		opts.Labels = f.labels
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}
}
