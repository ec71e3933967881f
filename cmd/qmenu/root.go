package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lvim-tech/qmenu/internal/logging"
	"github.com/lvim-tech/qmenu/pkg/desktop"
	"github.com/lvim-tech/qmenu/pkg/menu"
	"github.com/lvim-tech/qmenu/pkg/ui"
	"github.com/lvim-tech/qmenu/pkg/utils"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "qmenu",
		Short:         "Full-screen application launcher",
		Long:          "qmenu lists the applications found in desktop entry directories,\nfilters them as you type and launches the selected one.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/qmenu/config.toml)")
	flags.StringSliceVarP(&opts.dirs, "dir", "d", nil, "desktop entry directory, repeatable (overrides [scanner] directories)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().StringVarP(&opts.frontend, "frontend", "f", "", "tui, auto, "+fmt.Sprint(menu.Names()))

	cmd.AddCommand(
		newInitCmd(),
		newVersionCmd(),
		newListCmd(opts),
		newLaunchCmd(opts),
		newTerminalCmd(opts),
	)

	return cmd
}

func runMenu(ctx context.Context, opts *options) error {
	var deferred logging.Deferred

	e, err := newEnv(opts, &deferred)
	if err != nil {
		return err
	}
	defer e.close()
	defer deferred.Flush(os.Stderr)

	frontend := opts.frontend
	if frontend == "" {
		frontend = e.cfg.DefaultFrontend
	}

	apps, err := e.applications()
	if err != nil {
		return err
	}

	if frontend == "tui" || frontend == "" {
		return runTUI(ctx, e, apps)
	}

	// външните менюта не заемат терминала
	deferred.Flush(os.Stderr)

	var m menu.Menu
	if frontend == "auto" {
		m, err = menu.DetectAvailable(e.cfg.GetFrontendConfig)
	} else {
		fe, _ := e.cfg.GetFrontendConfig(frontend)
		m, err = menu.New(frontend, fe)
	}
	if err != nil {
		return err
	}

	app, err := menu.Pick(m, apps, e.ui.Heading)
	if err != nil {
		if menu.IsCancelled(err) {
			return nil
		}
		return err
	}

	return e.launcher.Launch(app)
}

func runTUI(ctx context.Context, e *env, apps []desktop.Application) error {
	if !utils.IsTerminal() {
		return errors.New("tui frontend requires a terminal, use --frontend to pick a menu program")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return ui.Run(ctx, screen, ui.NewModel(apps, e.ui), e.launcher, e.logger)
}
