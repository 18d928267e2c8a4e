// Package cli implements the jaqumal-graph command-line interface.
//
// This package provides commands for laying out graph descriptions through
// the external engine, rendering previews, browsing results interactively,
// and serving the pipeline over HTTP. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute vertex placements and edge polylines for a description
//   - render: Produce an svg, png, or dot preview of a description
//   - inspect: Browse a laid-out graph's vertex and edge rows in a TUI
//   - demo: Lay out a built-in example graph
//   - serve: Expose the pipeline as an HTTP API
//   - cache: Manage the engine output cache
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sdankbar/jaqumal-graph/pkg/buildinfo"
	"github.com/sdankbar/jaqumal-graph/pkg/cache"
	"github.com/sdankbar/jaqumal-graph/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "jaqumal-graph"

	// backendConnectTimeout bounds cache backend connection attempts.
	backendConnectTimeout = 5 * time.Second
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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "jaqumal-graph",
		Short:        "jaqumal-graph lays out directed graphs with Graphviz",
		Long:         `jaqumal-graph is a CLI tool for computing directed-graph layouts. It hands graph descriptions to the external Graphviz dot engine and publishes the resulting vertex placements, edge polylines, and arrowheads.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the file at path, or returns the defaults when no path
// is given.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the engine output cache selected by cfg. A missing cache
// directory degrades to the null cache rather than failing the command.
func newCache(cfg config.CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Backend == config.CacheBackendNone {
		return cache.NewNullCache(), nil
	}

	if cfg.Backend == config.CacheBackendRedis {
		ctx, cancel := context.WithTimeout(context.Background(), backendConnectTimeout)
		defer cancel()
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// newKeyer builds cache keys, namespaced when a prefix is configured.
func newKeyer(prefix string) cache.Keyer {
	keyer := cache.NewDefaultKeyer()
	if prefix != "" {
		return cache.NewScopedKeyer(keyer, prefix)
	}
	return keyer
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard
// (~/.cache/jaqumal-graph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
