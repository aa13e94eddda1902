// Package cli wires configuration, logging, the catalog and the TUI into
// the typeahead command.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/billie-coop/typeahead/internal/config"
	"github.com/billie-coop/typeahead/internal/logging"
	"github.com/billie-coop/typeahead/internal/tui/styles"
)

// app carries flag values and the loaded config between cobra hooks
type app struct {
	dir         string
	dbPath      string
	theme       string
	placeholder string
	delay       time.Duration
	debug       bool

	manager *config.Manager
	// cfg is the loaded config with flag overrides; never saved
	cfg *config.Config
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "typeahead",
		Short: "Debounced autocomplete search over a local catalog",
		Long: `typeahead opens a terminal search box over a SQLite catalog.
Options are fetched once typing pauses and shown in a dropdown that can be
navigated with the keyboard or the mouse.

Settings live in .typeahead/config.json and can be changed with
"typeahead config set <key> <value>".`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&a.dir, "dir", ".", "project directory holding .typeahead/")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "catalog database path (\":memory:\" for a throwaway catalog)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringVar(&a.theme, "theme", "", "color theme")
	rootCmd.Flags().StringVar(&a.placeholder, "placeholder", "", "search box placeholder")
	rootCmd.Flags().DurationVar(&a.delay, "delay", 0, "quiet period before searching")

	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newCatalogCommand(a))
	rootCmd.AddCommand(newThemesCommand())

	return rootCmd
}

// setup loads the config, applies flag overrides and starts logging
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.manager = config.NewManager(a.dir)
	if err := a.manager.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg := *a.manager.Get()
	a.cfg = &cfg
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}
	if flags.Changed("placeholder") {
		cfg.Placeholder = a.placeholder
	}
	if flags.Changed("delay") {
		cfg.DebounceMS = int(a.delay.Milliseconds())
	}
	if flags.Changed("db") {
		cfg.CatalogPath = a.dbPath
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}

	if err := styles.SetTheme(cfg.Theme); err != nil {
		return fmt.Errorf("theme %q: %w", cfg.Theme, err)
	}

	if err := logging.Init(logging.Options{Path: a.resolve(cfg.LogFile), Debug: cfg.Debug}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	logging.Debug("config loaded", "path", a.manager.Path(), "command", cmd.Name())
	return nil
}

// resolve makes config paths relative to the project directory
func (a *app) resolve(path string) string {
	if path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.dir, path)
}

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			current := styles.CurrentTheme().Name
			for _, name := range styles.DefaultManager().List() {
				marker := " "
				if name == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
		},
	}
}
