// Package cli implements the smartpack command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/smartpack/internal/app"
	"github.com/llehouerou/smartpack/internal/config"
	"github.com/llehouerou/smartpack/internal/logging"
	"github.com/llehouerou/smartpack/internal/state"
)

type options struct {
	configPath string
	dbPath     string
}

// NewRootCommand builds the command tree. Without a subcommand it starts
// the terminal UI.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "smartpack",
		Short: "Trip details, packing checklist and suggestions side by side",
		Long: `SmartPack shows a trip in three resizable columns.

Columns can be shown and hidden with 1, 2 and 3 or from the bar at the
bottom, resized by dragging the handles between them or with tab and the
arrow keys. The layout is remembered between runs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default: ~/.config/smartpack/config.toml, then ./config.toml)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "",
		"layout database (default: $XDG_DATA_HOME/smartpack/smartpack.db)")

	cmd.AddCommand(newLayoutCommand(opts))
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (o *options) openStorage(cfg *config.Config) (*state.Manager, error) {
	path := o.dbPath
	if path == "" {
		path = cfg.StoragePath
	}

	var (
		mgr *state.Manager
		err error
	)
	if path == "" {
		mgr, err = state.Open()
	} else {
		mgr, err = state.OpenPath(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open layout storage: %w", err)
	}
	return mgr, nil
}

func runUI(opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return fmt.Errorf("log path: %w", err)
		}
	}
	logger, err := logging.New(cfg.GetLogLevel(), logPath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	storage, err := opts.openStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	logger.Info("starting", zap.Strings("config", cfg.Sources()))
	return app.Run(cfg, storage, logger)
}
