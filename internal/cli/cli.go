// Package cli implements the scifig command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scifig/pkg/buildinfo"
	"github.com/matzehuels/scifig/pkg/cache"
	"github.com/matzehuels/scifig/pkg/journal"
	"github.com/matzehuels/scifig/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "scifig"

	// defaultJournal is audited against when neither --journal nor
	// SCIFIG_JOURNAL is given.
	defaultJournal = "nature"
)

// Environment variables read by the CLI.
const (
	envJournal  = "SCIFIG_JOURNAL"
	envJournals = "SCIFIG_JOURNALS"
	envRedisURL = "SCIFIG_REDIS_URL"
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

	journalsFile string
	verbose      bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. Debug level also turns on
// suggestion output in audit listings.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.verbose = level <= log.DebugLevel
}

// ExitError ends the process with Code after the command already reported
// its outcome. main prints nothing for it.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "scifig checks scientific figures against journal guidelines",
		Long: `scifig audits plotting scripts and figure descriptions against per-journal
figure specifications (widths, fonts, resolution) and reports publication
defects such as redundant legends, non-standard sizes and inconsistent fonts.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetAuditHooks(&logAuditHooks{logger: c.Logger})
			return c.loadJournals()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.journalsFile, "journals-file", os.Getenv(envJournals),
		"TOML file with custom journal specifications (env "+envJournals+")")

	root.AddCommand(c.auditCommand())
	root.AddCommand(c.figureCommand())
	root.AddCommand(c.journalsCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadJournals registers custom journals from --journals-file, or from the
// default config file when it exists.
func (c *CLI) loadJournals() error {
	path := c.journalsFile
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, "journals.toml")
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	specs, err := journal.LoadFile(journal.Default, path)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded custom journals", "file", path, "count", len(specs))
	return nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache returns the audit cache: none with noCache, Redis when
// SCIFIG_REDIS_URL is set, otherwise files under the cache directory.
// A Redis server that cannot be reached falls back to the file cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	if url := os.Getenv(envRedisURL); url != "" {
		rc, err := cache.NewRedisCache(ctx, url)
		if err == nil {
			return cache.Instrument(rc, "redis")
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "err", err)
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("file cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return cache.Instrument(fc, "file")
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/scifig/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// envOr returns the value of key, or fallback when it is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
