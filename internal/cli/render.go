package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdankbar/jaqumal-graph/pkg/dot"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	gio "github.com/sdankbar/jaqumal-graph/pkg/io"
	"github.com/sdankbar/jaqumal-graph/pkg/render"
)

// renderCommand creates the render command for producing preview artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath string
		format     string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json|graph.dot]",
		Short: "Produce an svg, png, or dot preview of a description",
		Long: `Produce a preview artifact from a graph description.

JSON descriptions are encoded into the engine's text grammar first; .dot
and .gv files pass through as is. The svg and png formats rasterize the
document in-process, the dot format emits the text document itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Render.Format
			}

			document, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			out, err := render.Preview(cmd.Context(), document, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			outputPath := output
			if outputPath == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				outputPath = base + "." + format
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", outputPath, err)
			}

			printSuccess("Render complete")
			printFile(outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (TOML)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")

	return cmd
}

// loadDocument turns the input file into the engine's text grammar. DOT
// files pass through untouched; anything else is read as a description.
func loadDocument(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(raw), nil
	default:
		g, err := gio.ImportGraph(path, graph.Options{})
		if err != nil {
			return "", fmt.Errorf("load graph %s: %w", path, err)
		}
		return dot.Encode(g), nil
	}
}
