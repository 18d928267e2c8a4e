package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdankbar/jaqumal-graph/internal/server"
	"github.com/sdankbar/jaqumal-graph/pkg/store"
)

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the layout pipeline as an HTTP API",
		Long: `Serve the layout pipeline over HTTP.

The API accepts graph descriptions on POST /api/v1/layout, renders
previews on POST /api/v1/render, and persists named layouts under
/api/v1/layouts when a Mongo store is configured. Metrics are exposed
on /metrics.

The Redis cache backend and the Mongo layout store are enabled through
the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			engineCache, err := newCache(cfg.Cache, false)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			defer engineCache.Close()

			var layoutStore store.Store
			if cfg.Server.MongoURI != "" {
				layoutStore, err = store.NewMongo(cmd.Context(), store.MongoOptions{
					URI:      cfg.Server.MongoURI,
					Database: cfg.Server.MongoDatabase,
				})
				if err != nil {
					return fmt.Errorf("connect layout store: %w", err)
				}
				defer layoutStore.Close(context.Background())
				c.Logger.Info("layout store connected", "database", cfg.Server.MongoDatabase)
			}

			srv := server.New(server.Options{
				Config: cfg,
				Logger: c.Logger,
				Cache:  engineCache,
				Store:  layoutStore,
			})
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (TOML)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config, :8080)")

	return cmd
}
