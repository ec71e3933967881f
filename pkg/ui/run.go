package ui

import (
	"context"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lvim-tech/qmenu/pkg/desktop"
)

// Launcher starts an application.
type Launcher interface {
	Launch(app desktop.Application) error
}

// Run draws the model and feeds it screen events until the user quits, ctx
// is cancelled or the screen is finalised. The caller owns screen Init/Fini.
func Run(ctx context.Context, screen tcell.Screen, m *Model, l Launcher, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.cfg.Mouse {
		screen.EnableMouse()
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-done:
		}
	}()

	for {
		m.Draw(screen)
		screen.Show()

		ev := screen.PollEvent()
		switch ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			logger.Debug("ui interrupted")
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}

		action, app := m.Update(ev)
		switch action {
		case ActionQuit:
			return nil
		case ActionLaunch:
			if err := l.Launch(*app); err != nil {
				// already reported by the launcher
				continue
			}
			if m.cfg.ExitOnLaunch {
				return nil
			}
		}
	}
}
