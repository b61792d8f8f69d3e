package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/graph"
)

// moveCommand creates the move command for repositioning a single node.
func (c *CLI) moveCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "move <layout.json> <node-id> <x> <y>",
		Short: "Move one node of a layout to a new position",
		Long: `Move one node of a layout to a new position.

The node keeps its category and edges; only its coordinates change. The
simulation is not re-run. The layout file is rewritten in place unless -o
is given.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[2], err)
			}
			y, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[3], err)
			}
			if output == "" {
				output = args[0]
			}
			return c.runMove(args[0], args[1], x, y, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite the input)")
	return cmd
}

func (c *CLI) runMove(input, nodeID string, x, y float64, output string) error {
	if err := checkInput(input); err != nil {
		return err
	}
	if err := errors.ValidatePath(output); err != nil {
		return err
	}
	layout, err := graph.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	if err := layout.SetNodePosition(nodeID, x, y); err != nil {
		return err
	}
	if err := graph.WriteLayoutFile(layout, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	c.Logger.Debug("moved node", "id", nodeID, "x", x, "y", y)
	printSuccess("Moved %s to (%s, %s)", StyleHighlight.Render(nodeID), formatCoord(x), formatCoord(y))
	printFile(output)
	return nil
}

func formatCoord(v float64) string {
	return StyleNumber.Render(strconv.FormatFloat(v, 'f', -1, 64))
}
