package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/desktop"
	"github.com/lvim-tech/qmenu/pkg/launch"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to ~/.config/qmenu/config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if printOnly {
				fmt.Fprint(out, config.GetDefaultConfigContent())
				return nil
			}

			if err := config.InitUserConfig(); err != nil {
				return err
			}

			fmt.Fprintf(out, "Config initialized at: %s\n", config.GetUserConfigPath())
			fmt.Fprintln(out, "\nYou can now edit the config file to customize qmenu.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the default config instead of writing it")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qmenu version %s\n", version)
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "Print the discovered applications, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()

			apps, err := e.applications()
			if err != nil {
				return err
			}
			if len(args) == 1 && args[0] != "" {
				apps = desktop.Filter(apps, args[0])
			}

			name := color.New(color.Bold).SprintFunc()
			id := color.New(color.FgCyan).SprintFunc()
			dim := color.New(color.Faint).SprintFunc()

			out := cmd.OutOrStdout()
			for _, app := range apps {
				fmt.Fprintf(out, "%s (%s) %s\n", name(app.Name), id(app.ID()), dim(app.Exec))
			}
			return nil
		},
	}
}

func newLaunchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <name|id>",
		Short: "Launch an application by name or desktop file id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()

			apps, err := e.applications()
			if err != nil {
				return err
			}

			app, ok := findApplication(apps, args[0])
			if !ok {
				return fmt.Errorf("application not found: %s", args[0])
			}
			return e.launcher.Launch(app)
		},
	}
}

func newTerminalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "terminal",
		Short: "Print the resolved terminal command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()

			term, ok := e.resolver.Resolve()
			if !ok {
				return launch.ErrNoTerminal
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.String())
			return nil
		},
	}
}

// findApplication matches the desktop file id first, then the name ignoring case
func findApplication(apps []desktop.Application, query string) (desktop.Application, bool) {
	for _, app := range apps {
		if app.ID() == query {
			return app, true
		}
	}
	for _, app := range apps {
		if strings.EqualFold(app.Name, query) {
			return app, true
		}
	}
	return desktop.Application{}, false
}
