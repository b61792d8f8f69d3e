// Package cli implements the catgraph command-line interface.
//
// # Commands
//
//   - layout: Lay out a product catalog and write layout.json
//   - render: Render a layout to DOT, SVG, PNG or PDF
//   - move: Reposition one node of a layout
//   - watch: Preview the simulation in the terminal
//   - categories: List the categories of a catalog
//   - catalog push: Load a catalog file into MongoDB
//   - serve: Run the HTTP API
//   - cache, config, completion: housekeeping
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log. Human-facing results are printed with lipgloss styles.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/buildinfo"
	"github.com/matzehuels/catgraph/pkg/cache"
	"github.com/matzehuels/catgraph/pkg/catalog"
	"github.com/matzehuels/catgraph/pkg/config"
	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = config.AppName

	// connectTimeout bounds Redis and MongoDB connection attempts.
	connectTimeout = 10 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the config file location.
	ConfigPath string

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "catgraph lays out product catalogs as force-directed graphs",
		Long: `catgraph places every product of a catalog on a 2D canvas with a
force-directed simulation. Products of the same category are linked, so
categories settle into clusters. Layouts can be rendered to DOT, SVG, PNG
and PDF, edited node by node, or served over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: "+config.Path()+")")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.categoriesCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// config loads the config file once. Environment overrides are applied on top.
func (c *CLI) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := c.ConfigPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	c.Logger.Debug("loaded config", "path", path, "cache", cfg.Cache.Backend)
	c.cfg = cfg
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	ch, err := c.newCache(ctx, cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Prefix)
	}
	r := pipeline.NewRunner(ch, keyer, c.Logger)
	r.TTL, _ = cfg.Cache.TTLDuration() // checked by config.Validate
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, cc config.CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cc.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cc.RedisAddr,
			Password: cc.RedisPassword,
			DB:       cc.RedisDB,
		})
	default:
		fc, err := cache.NewFileCache(cacheDir(cc))
		if err != nil {
			c.Logger.Warn("file cache unavailable, continuing without cache", "error", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	}
}

// =============================================================================
// Catalog Sources
// =============================================================================

// sourceFlags selects where products come from.
type sourceFlags struct {
	sample bool
	mongo  string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.sample, "sample", false, "use the built-in sample catalog")
	cmd.Flags().StringVar(&f.mongo, "mongo", "", "read products from MongoDB at this URI")
}

// openSource resolves the product source: an explicit file, --sample,
// --mongo, then the config file's catalog, then the sample catalog. The
// returned close func releases database connections.
func (c *CLI) openSource(ctx context.Context, file string, f sourceFlags) (catalog.Source, string, func(), error) {
	cfg, err := c.config()
	if err != nil {
		return nil, "", nil, err
	}
	if file == "" && !f.sample && f.mongo == "" {
		file = cfg.Catalog.File
		f.mongo = cfg.Catalog.MongoURI
	}
	noop := func() {}

	switch {
	case file != "":
		if err := checkInput(file); err != nil {
			return nil, "", nil, err
		}
		return catalog.FileSource{Path: file}, file, noop, nil
	case f.mongo != "" && !f.sample:
		src, err := c.mongoSource(ctx, f.mongo)
		if err != nil {
			return nil, "", nil, err
		}
		closeFn := func() {
			if err := src.Close(context.WithoutCancel(ctx)); err != nil {
				c.Logger.Warn("close mongodb", "error", err)
			}
		}
		return src, "mongodb " + cfg.Catalog.Database + "." + cfg.Catalog.Collection, closeFn, nil
	default:
		return catalog.StaticSource(catalog.Sample()), "sample catalog", noop, nil
	}
}

// loadProducts reads all products from the resolved source.
func (c *CLI) loadProducts(ctx context.Context, file string, f sourceFlags) ([]catalog.Product, string, error) {
	src, name, closeFn, err := c.openSource(ctx, file, f)
	if err != nil {
		return nil, "", err
	}
	defer closeFn()

	products, err := src.Products(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load catalog from %s: %w", name, err)
	}
	c.Logger.Debug("loaded catalog", "source", name, "products", len(products))
	return products, name, nil
}

func (c *CLI) mongoSource(ctx context.Context, uri string) (*catalog.MongoSource, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	src, err := catalog.NewMongoSource(ctx, catalog.MongoConfig{
		URI:        uri,
		Database:   cfg.Catalog.Database,
		Collection: cfg.Catalog.Collection,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	return src, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory or the user cache dir.
func cacheDir(cc config.CacheConfig) string {
	if cc.Dir != "" {
		return cc.Dir
	}
	return config.CacheDir()
}

// checkInput validates a path argument and reports a missing file as
// FILE_NOT_FOUND.
func checkInput(path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.New(errors.ErrCodeFileNotFound, "%s does not exist", path)
	}
	return nil
}
