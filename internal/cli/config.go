package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the catgraph config file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPath returns --config or the default location.
func (c *CLI) configPath() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return config.Path()
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			printSuccess("Wrote default config")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(c.configPath())
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Long:  `Print the settings after merging defaults, the config file and CATGRAPH_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			f := cfg.Layout.Force()

			printKeyValue("Config", c.configPath())
			printKeyValue("Canvas", fmt.Sprintf("%gx%g, margin %g", f.Width, f.Height, f.Margin))
			printKeyValue("Iterations", fmt.Sprint(f.Iterations))
			printKeyValue("Seed", fmt.Sprint(cfg.Layout.Seed))
			printKeyValue("Category", orDash(cfg.Layout.Category))
			printKeyValue("Formats", strings.Join(cfg.Render.Formats, ", "))
			printKeyValue("Cache", cacheSummary(cfg.Cache))
			printKeyValue("Catalog", catalogSummary(cfg.Catalog))
			printKeyValue("Server", cfg.Server.Addr)
			return nil
		},
	}
}

func cacheSummary(cc config.CacheConfig) string {
	switch cc.Backend {
	case config.CacheRedis:
		return "redis " + cc.RedisAddr
	case config.CacheNone:
		return "disabled"
	default:
		return "file " + cacheDir(cc)
	}
}

func catalogSummary(cc config.CatalogConfig) string {
	switch {
	case cc.File != "":
		return cc.File
	case cc.MongoURI != "":
		return "mongodb " + cc.Database + "." + cc.Collection
	default:
		return "sample"
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
