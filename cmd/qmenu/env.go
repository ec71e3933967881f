package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lvim-tech/qmenu/internal/logging"
	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/desktop"
	"github.com/lvim-tech/qmenu/pkg/launch"
	"github.com/lvim-tech/qmenu/pkg/terminal"
	"github.com/lvim-tech/qmenu/pkg/ui"
	"github.com/spf13/afero"
)

// options are the persistent command line flags
type options struct {
	configPath string
	frontend   string
	dirs       []string
	logLevel   string
}

// env is everything a command needs, built from config plus flags
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	scanner  *desktop.Scanner
	dirs     []string
	resolver *terminal.Resolver
	launcher *launch.Launcher
	ui       ui.Config
}

func newEnv(opts *options, stderr io.Writer) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logCfg := cfg.Log
	if opts.logLevel != "" {
		logCfg.Level = opts.logLevel
	}
	logger, closeLog, err := logging.New(logCfg, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	scanCfg, err := desktop.ConfigFrom(cfg.Scanner)
	if err != nil {
		logger.Warn("invalid [scanner] config, using defaults", "error", err)
	}
	if len(opts.dirs) > 0 {
		scanCfg.Directories = opts.dirs
	}

	termCfg, err := terminal.ConfigFrom(cfg.Terminal)
	if err != nil {
		logger.Warn("invalid [terminal] config, using defaults", "error", err)
	}

	launchCfg, err := launch.ConfigFrom(cfg.Launcher)
	if err != nil {
		logger.Warn("invalid [launcher] config, using defaults", "error", err)
	}

	uiCfg, err := ui.ConfigFrom(cfg.UI)
	if err != nil {
		logger.Warn("invalid [ui] config, using defaults", "error", err)
	}

	resolver := terminal.NewResolver(termCfg)

	return &env{
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		scanner: desktop.NewScanner(afero.NewOsFs(),
			desktop.WithExclude(scanCfg.Exclude...),
			desktop.WithLogger(logger),
		),
		dirs:     scanCfg.Directories,
		resolver: resolver,
		launcher: launch.New(launchCfg, resolver,
			launch.WithLogger(logger),
			launch.WithNotifications(cfg.Notifications),
		),
		ui: uiCfg,
	}, nil
}

// applications scans the configured directories once
func (e *env) applications() ([]desktop.Application, error) {
	apps, err := e.scanner.ScanAll(e.dirs)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("scanned desktop entries", "dirs", e.dirs, "count", len(apps))
	return apps, nil
}

func (e *env) close() {
	if e.closeLog != nil {
		e.closeLog()
	}
}
