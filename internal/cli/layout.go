package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/sdankbar/jaqumal-graph/pkg/config"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	gio "github.com/sdankbar/jaqumal-graph/pkg/io"
	"github.com/sdankbar/jaqumal-graph/pkg/layout"
	"github.com/sdankbar/jaqumal-graph/pkg/observability"
)

// layoutFlags are the knobs shared by layout and inspect.
type layoutFlags struct {
	configPath string
	engine     string
	dpi        float64
	noCache    bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (TOML)")
	cmd.Flags().StringVar(&f.engine, "engine", "", "layout engine binary (default: dot)")
	cmd.Flags().Float64Var(&f.dpi, "dpi", 0, "device scale in dots per inch (default: from description, or 96)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable engine output caching")
}

// resolveDPI picks the device scale: an explicit flag wins, then an
// explicit config file, then the description's own dpi field.
func (f *layoutFlags) resolveDPI(cmd *cobra.Command, cfg config.Config) float64 {
	if cmd.Flags().Changed("dpi") {
		return f.dpi
	}
	if f.configPath != "" {
		return cfg.Engine.DPI
	}
	return 0
}

// resolveEngine picks the engine binary: an explicit flag wins over the
// config file; empty selects the platform default.
func (f *layoutFlags) resolveEngine(cfg config.Config) string {
	if f.engine != "" {
		return f.engine
	}
	return cfg.Engine.Binary
}

// layoutCommand creates the layout command for computing graph geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
		async  bool
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute vertex placements and edge polylines for a description",
		Long: `Compute vertex placements and edge polylines for a graph description.

The layout command reads a graph description (vertices with sizes in
inches, edges by id or index), hands it to the external engine, and
writes the resulting geometry in device units as a layout.json file.

Engine output is cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}

			g, err := gio.ImportGraph(args[0], graph.Options{DPI: flags.resolveDPI(cmd, cfg)})
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			cached, err := c.runLayout(cmd.Context(), g, cfg, flags, async)
			if err != nil {
				return err
			}

			outputPath := output
			if outputPath == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				outputPath = base + ".layout.json"
			}
			if err := gio.ExportLayout(g, outputPath); err != nil {
				return fmt.Errorf("write output %s: %w", outputPath, err)
			}

			printSuccess("Layout complete")
			printFile(outputPath)
			printStats(g.VertexCount(), edgeCount(g), cached)
			printNewline()
			printNextStep("Render", "jaqumal-graph render "+args[0])

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&async, "async", false, "run the engine on the background worker")

	return cmd
}

// runLayout drives the engine round trip and reports whether the engine
// output came from the cache.
func (c *CLI) runLayout(ctx context.Context, g *graph.Graph, cfg config.Config, flags layoutFlags, async bool) (bool, error) {
	engineCache, err := newCache(cfg.Cache, flags.noCache)
	if err != nil {
		return false, fmt.Errorf("initialize cache: %w", err)
	}
	defer engineCache.Close()

	runner, err := layout.NewRunner(g, layout.Options{
		Engine:   layout.EngineOptions{Binary: flags.resolveEngine(cfg)},
		Cache:    engineCache,
		Keyer:    newKeyer(cfg.Cache.Prefix),
		CacheTTL: cfg.Cache.TTL.Duration,
		Logger:   c.Logger,
	})
	if err != nil {
		return false, err
	}
	defer runner.Close()

	probe := &cacheProbe{}
	observability.SetCacheHooks(probe)
	defer observability.SetCacheHooks(observability.NoopCacheHooks{})

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	if async {
		err = layoutOnExecutor(ctx, runner)
	} else {
		err = runner.Layout(ctx)
	}
	if err != nil {
		spinner.StopWithError("Layout failed")
		return false, fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return probe.hits.Load() > 0, nil
}

// layoutOnExecutor runs the engine round trip on the runner's worker and
// pumps the apply phase back onto this goroutine.
func layoutOnExecutor(ctx context.Context, runner *layout.Runner) error {
	applyQueue := make(chan func(), 1)
	done := runner.LayoutAsync(ctx, layout.ExecutorFunc(func(fn func()) {
		applyQueue <- fn
	}))
	for {
		select {
		case fn := <-applyQueue:
			fn()
		case err := <-done:
			return err
		}
	}
}

// cacheProbe records cache hits so the CLI can report cached results.
type cacheProbe struct {
	observability.NoopCacheHooks
	hits atomic.Int64
}

func (p *cacheProbe) OnCacheHit(_ context.Context, _ string) {
	p.hits.Add(1)
}

// edgeCount sums the adjacency fan-out over all vertices.
func edgeCount(g *graph.Graph) int {
	count := 0
	for _, v := range g.Vertices() {
		count += len(v.Children())
	}
	return count
}
