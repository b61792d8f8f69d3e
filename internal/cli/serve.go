package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/server"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 15 * time.Second

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		origins []string
		src     sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "serve [products.json|products.toml]",
		Short: "Serve layouts over HTTP",
		Long: `Serve the layout API over HTTP.

Requests without products use the catalog resolved like in 'layout'. Created
layouts are kept in the configured cache, so use the redis backend when
several instances share traffic.

Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return c.runServe(cmd.Context(), input, src, addr, origins)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config)")
	cmd.Flags().StringSliceVar(&origins, "cors", nil, "allowed CORS origins")
	src.register(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input string, sf sourceFlags, addr string, origins []string) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}
	timeout, err := cfg.Server.TimeoutDuration()
	if err != nil {
		return err
	}

	src, name, closeSrc, err := c.openSource(ctx, input, sf)
	if err != nil {
		return err
	}
	defer closeSrc()

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	handler := server.New(runner,
		server.WithLogger(c.Logger),
		server.WithSource(src),
		server.WithDefaults(cfg.Options()),
		server.WithTimeout(timeout),
		server.WithAllowedOrigins(origins...),
	)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	printSuccess("Serving %s", StyleDim.Render(name))
	printKeyValue("Listening", StyleLink.Render("http://"+ln.Addr().String()))
	printKeyValue("Cache", cfg.Cache.Backend)

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
