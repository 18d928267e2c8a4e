package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/sdankbar/jaqumal-graph/pkg/config"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
)

func newFlagCommand(t *testing.T) (*layoutFlags, *cobra.Command) {
	t.Helper()
	flags := &layoutFlags{}
	cmd := &cobra.Command{}
	flags.register(cmd)
	return flags, cmd
}

func TestResolveDPI(t *testing.T) {
	cfg := config.Default()

	t.Run("defers to description when nothing is set", func(t *testing.T) {
		flags, cmd := newFlagCommand(t)
		if got := flags.resolveDPI(cmd, cfg); got != 0 {
			t.Errorf("resolveDPI() = %g, want 0", got)
		}
	})

	t.Run("flag wins", func(t *testing.T) {
		flags, cmd := newFlagCommand(t)
		if err := cmd.Flags().Set("dpi", "72"); err != nil {
			t.Fatalf("set dpi flag: %v", err)
		}
		if got := flags.resolveDPI(cmd, cfg); got != 72 {
			t.Errorf("resolveDPI() = %g, want 72", got)
		}
	})

	t.Run("explicit config file wins over description", func(t *testing.T) {
		flags, cmd := newFlagCommand(t)
		flags.configPath = "jaqumal.toml"
		if got := flags.resolveDPI(cmd, cfg); got != graph.DefaultDPI {
			t.Errorf("resolveDPI() = %g, want %g", got, float64(graph.DefaultDPI))
		}
	})

	t.Run("flag wins over config file", func(t *testing.T) {
		flags, cmd := newFlagCommand(t)
		flags.configPath = "jaqumal.toml"
		if err := cmd.Flags().Set("dpi", "50"); err != nil {
			t.Fatalf("set dpi flag: %v", err)
		}
		if got := flags.resolveDPI(cmd, cfg); got != 50 {
			t.Errorf("resolveDPI() = %g, want 50", got)
		}
	})
}

func TestResolveEngine(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.Binary = "/opt/graphviz/bin/dot"

	flags := layoutFlags{}
	if got := flags.resolveEngine(cfg); got != "/opt/graphviz/bin/dot" {
		t.Errorf("resolveEngine() = %q, want config binary", got)
	}

	flags.engine = "/usr/local/bin/dot"
	if got := flags.resolveEngine(cfg); got != "/usr/local/bin/dot" {
		t.Errorf("resolveEngine() = %q, want flag binary", got)
	}
}

func TestEdgeCount(t *testing.T) {
	g, err := graph.New(graph.Options{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	a, _ := g.CreateVertex(1, 1, nil)
	b, _ := g.CreateVertex(1, 1, nil)
	c, _ := g.CreateVertex(1, 1, nil)

	if got := edgeCount(g); got != 0 {
		t.Errorf("edgeCount() = %d, want 0", got)
	}

	if err := a.AddChild(b); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := b.AddChild(c); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := c.AddChild(b); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	if got := edgeCount(g); got != 3 {
		t.Errorf("edgeCount() = %d, want 3", got)
	}
}
