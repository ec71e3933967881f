// Package launch starts applications as independent processes through a
// desktop-entry launch helper.
package launch

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/desktop"
	"github.com/lvim-tech/qmenu/pkg/terminal"
	"github.com/lvim-tech/qmenu/pkg/utils"
)

// TerminalResolver picks the terminal emulator preference.
type TerminalResolver interface {
	Resolve() (terminal.Command, bool)
}

// Spawner starts a process without waiting for it.
type Spawner interface {
	Start(name string, args ...string) error
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(name string, args ...string) error

// Start calls f.
func (f SpawnerFunc) Start(name string, args ...string) error {
	return f(name, args...)
}

// Launcher starts applications.
type Launcher struct {
	helper   string
	resolver TerminalResolver
	spawner  Spawner
	logger   *slog.Logger
	notify   *config.NotificationConfig
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithSpawner replaces the detached process spawner.
func WithSpawner(s Spawner) Option {
	return func(l *Launcher) {
		l.spawner = s
	}
}

// WithLogger sets the logger that receives launch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithNotifications sends a desktop notification when a launch fails.
func WithNotifications(cfg config.NotificationConfig) Option {
	return func(l *Launcher) {
		l.notify = &cfg
	}
}

// New creates a launcher.
func New(cfg Config, resolver TerminalResolver, opts ...Option) *Launcher {
	helper := cfg.Helper
	if helper == "" {
		helper = DefaultHelper
	}
	l := &Launcher{
		helper:   helper,
		resolver: resolver,
		spawner:  SpawnerFunc(utils.StartDetachedProcess),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts app through the helper with its desktop file id and returns
// without waiting. A terminal preference must resolve first; its command
// line only gates the launch and is not handed to the child.
// Failures are logged before they are returned.
func (l *Launcher) Launch(app desktop.Application) error {
	term, ok := l.resolver.Resolve()
	if !ok {
		return l.fail(app, ErrNoTerminal)
	}
	l.logger.Debug("resolved terminal", "command", term.String())

	id := app.ID()
	if id == "" {
		return l.fail(app, ErrNoSourcePath)
	}

	if err := l.spawner.Start(l.helper, id); err != nil {
		return l.fail(app, fmt.Errorf("failed to start %s %s: %w", l.helper, id, err))
	}

	l.logger.Info("launched application", "name", app.Name, "id", id)
	return nil
}

func (l *Launcher) fail(app desktop.Application, err error) error {
	l.logger.Error("error launching application", "name", app.Name, "error", err)
	utils.ShowErrorNotificationWithConfig(l.notify, "qmenu", fmt.Sprintf("%s: %v", app.Name, err))
	return err
}
