// Root command for the swatch CLI.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dukaforge/swatch/internal/demo"
	"github.com/dukaforge/swatch/internal/logging"
	"github.com/dukaforge/swatch/internal/memory"
	"github.com/dukaforge/swatch/internal/sqlite"
	"github.com/dukaforge/swatch/pkg/swatch"
	"github.com/dukaforge/swatch/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagBackend   string
	flagJSON      bool
	flagDebug     bool
)

// registry is the process-wide prototype registry, opened and seeded by
// PersistentPreRunE so every subcommand works against the same palette.
var registry types.Registry

var rootCmd = &cobra.Command{
	Use:     "swatch",
	Short:   "Swatch clones named color prototypes",
	Version: swatch.Version,
	Long: `Swatch keeps a registry of named color prototypes and produces new
colors by copying them. Running swatch with no arguments walks through
both copy strategies against the built-in palette.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAppConfig()
		if err != nil {
			return err
		}

		level := cfg.logLevel
		if flagDebug {
			level = slog.LevelDebug
		}
		logging.Setup(cmd.ErrOrStderr(), level)

		reg, err := openRegistry(cfg.registry)
		if err != nil {
			return err
		}
		if err := demo.Seed(reg); err != nil {
			reg.Close()
			return err
		}
		registry = reg
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if registry == nil {
			return nil
		}
		return registry.Close()
	},
	// No subcommand runs the demo.
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "registry backend: memory or sqlite (default: memory)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(versionCmd)
}

// openRegistry constructs the registry selected by config.
func openRegistry(cfg types.Config) (types.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, err)
	}
	slog.Debug("opening registry", "backend", cfg.Backend)

	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.NewRegistry()
	default:
		return memory.NewRegistry(), nil
	}
}
