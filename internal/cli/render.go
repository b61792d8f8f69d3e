package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/graph"
	"github.com/matzehuels/catgraph/pkg/pipeline"
)

// renderCommand creates the render command for turning a layout into images.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		rf      renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render <layout.json>",
		Short: "Render a layout to DOT, SVG, PNG or PDF",
		Long: `Render a layout produced by 'layout' or edited with 'move'.

Nodes are drawn at their stored positions, colored by category, with edges
as straight lines. SVG is rendered through Graphviz; PNG and PDF additionally
require rsvg-convert on PATH.

Outputs are written next to the layout as <base>.<format>, where base is the
layout path without ".json" unless -o is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			opts := cfg.Options()
			rf.apply(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: layout path without .json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	rf.register(cmd)

	return cmd
}

// runRender loads the layout, renders every requested format and writes the files.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if err := checkInput(input); err != nil {
		return err
	}
	layout, err := graph.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, ".json")
	}
	paths, err := writeArtifacts(base, artifacts)
	if err != nil {
		return err
	}

	printSuccess("Rendered %d format(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(layout.Nodes), len(layout.Edges), len(layout.Categories), cacheHit)
	return nil
}
