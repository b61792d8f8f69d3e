package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// categoriesCommand creates the categories command.
func (c *CLI) categoriesCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "categories [products.json|products.toml]",
		Short: "List the categories of a catalog with their colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			products, name, err := c.loadProducts(cmd.Context(), input, src)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				printWarning("No products in %s", name)
				return nil
			}
			fmt.Println(categoryTable(products))
			printDetail("%d products from %s", len(products), name)
			return nil
		},
	}

	src.register(cmd)
	return cmd
}
