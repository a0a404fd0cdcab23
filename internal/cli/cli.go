// Package cli implements the pride command-line interface.
//
// This package provides commands for fetching, listing, searching, and
// counting PRIDE Archive projects, browsing search results interactively,
// and managing the HTTP response cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - project: Fetch one dataset record by accession
//   - list: List the first N projects in the archive
//   - search: Search projects with pagination
//   - count: Print the total number of public projects
//   - browse: Interactively page through search results
//   - cache: Manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/openproteomics/pride/pkg/buildinfo"
	"github.com/openproteomics/pride/pkg/cache"
	"github.com/openproteomics/pride/pkg/integrations/pride"
)

// appName is the application name used for directories and display.
const appName = "pride"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	dev        bool
	noCache    bool
	cfg        *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "pride queries the PRIDE Archive proteomics repository",
		Long:         `pride is a client for the PRIDE Archive web service. It fetches dataset metadata by accession, lists and searches public projects, and exports results as CSV or JSON tables.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/pride/config.toml)")
	root.PersistentFlags().BoolVar(&c.dev, "dev", false, "use the development web service")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable response caching")

	// Register all subcommands
	root.AddCommand(c.projectCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newArchiveClient creates a PRIDE client from the loaded config and flags.
// The returned cleanup function closes the cache backend.
func (c *CLI) newArchiveClient() (*pride.Client, func()) {
	backend, err := c.newCache()
	if err != nil {
		c.Logger.Warnf("cache unavailable, continuing without: %v", err)
		backend = cache.NewNullCache()
	}

	baseURL := c.cfg.BaseURL
	if c.dev {
		baseURL = pride.DevBaseURL
	}

	ttl := time.Duration(c.cfg.CacheTTLHours) * time.Hour
	client := pride.NewClient(baseURL, backend, ttl)
	cleanup := func() { _ = backend.Close() }
	return client, cleanup
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache || c.cfg.NoCache {
		return cache.NewNullCache(), nil
	}
	if c.cfg.RedisAddr != "" {
		return cache.NewRedisCache(context.Background(), cache.RedisConfig{
			Addr:   c.cfg.RedisAddr,
			DB:     c.cfg.RedisDB,
			Prefix: appName + ":",
		})
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pride/).
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
