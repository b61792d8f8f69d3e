package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/catalog"
)

// catalogCommand groups catalog maintenance subcommands.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage product catalogs",
	}

	cmd.AddCommand(c.catalogSampleCommand())
	cmd.AddCommand(c.catalogPushCommand())

	return cmd
}

// catalogSampleCommand writes the built-in sample catalog to a file.
func (c *CLI) catalogSampleCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the built-in sample catalog to a file",
		Long: `Write the built-in sample catalog to a file.

The format follows the file extension: .json or .toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products := catalog.Sample()
			if err := catalog.WriteFile(output, products); err != nil {
				return err
			}
			printSuccess("Wrote %d products", len(products))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "products.json", "output file (.json or .toml)")
	return cmd
}

// catalogPushCommand replaces the MongoDB collection with a catalog file.
func (c *CLI) catalogPushCommand() *cobra.Command {
	var (
		mongoURI string
		sample   bool
	)

	cmd := &cobra.Command{
		Use:   "push [products.json|products.toml]",
		Short: "Replace the MongoDB product collection",
		Long: `Replace the configured MongoDB collection with the products of a
catalog file, or with the sample catalog when --sample is set.

The URI comes from --mongo, CATGRAPH_MONGO_URI or catalog.mongo_uri in the
config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if mongoURI == "" {
				mongoURI = cfg.Catalog.MongoURI
			}
			if mongoURI == "" {
				return fmt.Errorf("no MongoDB URI: pass --mongo or set catalog.mongo_uri")
			}
			if len(args) == 0 && !sample {
				return fmt.Errorf("pass a catalog file or --sample")
			}

			products := catalog.Sample()
			if len(args) > 0 {
				if err := checkInput(args[0]); err != nil {
					return err
				}
				if products, err = catalog.ReadFile(args[0]); err != nil {
					return err
				}
			}

			src, err := c.mongoSource(ctx, mongoURI)
			if err != nil {
				return err
			}
			defer src.Close(ctx)

			if err := src.Replace(ctx, products); err != nil {
				return fmt.Errorf("replace products: %w", err)
			}
			printSuccess("Pushed %d products to %s.%s", len(products), cfg.Catalog.Database, cfg.Catalog.Collection)
			return nil
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI")
	cmd.Flags().BoolVar(&sample, "sample", false, "push the built-in sample catalog")
	return cmd
}
