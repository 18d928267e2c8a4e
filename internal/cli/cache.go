package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdankbar/jaqumal-graph/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the engine output cache",
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show cache directory, entry count, and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveCacheDir(configPath)
			if err != nil {
				return err
			}

			entries, size, err := cacheUsage(dir)
			if err != nil {
				return err
			}
			if entries == 0 {
				printInfo("Cache is empty")
				printDetail("Directory: %s", dir)
				return nil
			}

			printInfo("Cache holds %d entries", entries)
			printDetail("Directory: %s", dir)
			printDetail("Size: %s", humanBytes(size))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (TOML)")

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached engine output",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveCacheDir(configPath)
			if err != nil {
				return err
			}

			entries, _, err := cacheUsage(dir)
			if err != nil {
				return err
			}
			if entries == 0 {
				printInfo("Cache is empty")
				return nil
			}

			fileCache, err := cache.NewFileCache(dir)
			if err != nil {
				return fmt.Errorf("open cache %s: %w", dir, err)
			}
			defer fileCache.Close()
			if err := fileCache.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache %s: %w", dir, err)
			}

			printSuccess("Cleared %d cached entries", entries)
			printDetail("Directory: %s", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (TOML)")

	return cmd
}

// resolveCacheDir picks the cache directory from the config file when one
// names it, falling back to the XDG default.
func resolveCacheDir(configPath string) (string, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", err
	}
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return dir, nil
}

// cacheUsage walks dir and reports the file count and combined size. A
// missing directory counts as empty.
func cacheUsage(dir string) (int, int64, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	entries := 0
	var size int64
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors, continue walking
		}
		if !info.IsDir() {
			entries++
			size += info.Size()
		}
		return nil
	})
	return entries, size, err
}

// humanBytes renders a byte count with a binary unit suffix.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
