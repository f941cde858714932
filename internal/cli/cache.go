package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/pkg/config"
)

// newCacheCmd creates the cache management command group.
func newCacheCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the analysis cache",
	}

	cmd.AddCommand(newCacheClearCmd(root))
	cmd.AddCommand(newCachePathCmd(root))
	return cmd
}

// cacheDir resolves the file cache directory from configuration.
func cacheDir(root *rootOpts) (string, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return "", err
	}
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pagenav"), nil
}

// newCacheClearCmd creates the "cache clear" subcommand. It only
// touches the file backend; redis and mongo entries expire on their own
// TTLs.
func newCacheClearCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached analysis results",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir(root)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			count := 0
			err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return nil // Skip errors, continue walking
				}
				if path == dir {
					return nil
				}
				if !info.IsDir() {
					if err := os.Remove(path); err == nil {
						count++
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			// Clean up empty subdirectories
			_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil || path == dir {
					return nil
				}
				if info.IsDir() {
					os.Remove(path)
				}
				return nil
			})

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// newCachePathCmd creates the "cache path" subcommand.
func newCachePathCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir(root)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
