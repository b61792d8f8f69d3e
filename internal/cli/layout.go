package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/graph"
	"github.com/matzehuels/catgraph/pkg/pipeline"
)

// layoutCommand creates the layout command for computing product layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		src     sourceFlags
		lf      layoutFlags
		rf      renderFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [products.json|products.toml]",
		Short: "Compute a force-directed layout of a product catalog",
		Long: `Compute a force-directed layout of a product catalog.

Products are read from the given file, from MongoDB (--mongo), or from the
built-in sample catalog (--sample). Without any of these the catalog named in
the config file is used, falling back to the sample catalog.

The result is a layout.json file with positioned nodes and category edges.
Pass -f to render additional formats next to it. Layouts are cached by
catalog content, category, parameters and seed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			opts := cfg.Options()
			opts.Formats = nil
			lf.apply(cmd, &opts)
			rf.apply(cmd, &opts)
			opts.Refresh = refresh

			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return c.runLayout(cmd.Context(), input, src, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json or layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached layout exists")
	src.register(cmd)
	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

// runLayout loads the catalog, computes the layout and writes the outputs.
func (c *CLI) runLayout(ctx context.Context, input string, src sourceFlags, opts pipeline.Options, output string, noCache bool) error {
	products, name, err := c.loadProducts(ctx, input, src)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %d products from %s...", len(products), name))
	spinner.Start()

	var (
		layout    graph.Layout
		artifacts map[string][]byte
		cacheHit  bool
	)
	if len(opts.Formats) > 0 {
		var res *pipeline.Result
		res, err = runner.Execute(ctx, products, opts)
		if err == nil {
			layout, artifacts, cacheHit = res.Layout, res.Artifacts, res.CacheInfo.LayoutHit
		}
	} else {
		layout, cacheHit, err = runner.GenerateLayoutWithCacheInfo(ctx, products, opts)
	}
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultLayoutPath(input)
	}
	if err := graph.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done(fmt.Sprintf("Laid out %d products", len(layout.Nodes)))

	printSuccess("Layout complete")
	printFile(outputPath)
	delete(artifacts, pipeline.FormatJSON)
	paths, err := writeArtifacts(strings.TrimSuffix(outputPath, ".json"), artifacts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(layout.Nodes), len(layout.Edges), len(layout.Categories), cacheHit)
	printNewline()
	if len(paths) == 0 {
		printNextStep("Render", appName+" render "+outputPath)
	}
	return nil
}

// defaultLayoutPath derives the layout file name from the catalog file.
func defaultLayoutPath(input string) string {
	if input == "" {
		return "layout.json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}

// writeArtifacts writes each artifact to base.<format> and returns the
// paths in a stable order.
func writeArtifacts(base string, artifacts map[string][]byte) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + "." + f
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
