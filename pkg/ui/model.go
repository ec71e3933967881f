// Package ui implements the full-screen application list on a tcell screen.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lvim-tech/qmenu/pkg/desktop"
)

// Action is what the run loop should do after an event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionLaunch
)

// First screen row of the application list: heading, input, separator.
const listTop = 3

// Model holds the UI state: the application list, the query and the
// selection. The application list is never modified.
type Model struct {
	cfg      Config
	apps     []desktop.Application
	query    []rune
	selected int
	offset   int
	rows     int
	buttons  tcell.ButtonMask
}

// NewModel creates the UI state for apps.
func NewModel(apps []desktop.Application, cfg Config) *Model {
	return &Model{cfg: cfg, apps: apps}
}

// Query returns the current search text.
func (m *Model) Query() string {
	return string(m.query)
}

// Selected returns the index of the highlighted entry in Visible.
func (m *Model) Selected() int {
	return m.selected
}

// Visible returns every application for an empty query, otherwise the
// filtered list.
func (m *Model) Visible() []desktop.Application {
	if len(m.query) == 0 {
		return m.apps
	}
	return desktop.Filter(m.apps, string(m.query))
}

// Update applies one event. For ActionLaunch the application to start is
// returned too.
func (m *Model) Update(ev tcell.Event) (Action, *desktop.Application) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.handleKey(ev)
	case *tcell.EventMouse:
		return m.handleMouse(ev)
	case *tcell.EventResize:
		_, h := ev.Size()
		m.setRows(h)
	}
	return ActionNone, nil
}

func (m *Model) handleKey(ev *tcell.EventKey) (Action, *desktop.Application) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, nil
	case tcell.KeyEnter:
		return m.launch(m.selected)
	case tcell.KeyUp, tcell.KeyCtrlP:
		m.move(-1)
	case tcell.KeyDown, tcell.KeyCtrlN:
		m.move(1)
	case tcell.KeyPgUp:
		m.move(-m.page())
	case tcell.KeyPgDn:
		m.move(m.page())
	case tcell.KeyHome:
		m.move(-len(m.apps))
	case tcell.KeyEnd:
		m.move(len(m.apps))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(m.query) > 0 {
			m.setQuery(m.query[:len(m.query)-1])
		}
	case tcell.KeyCtrlU:
		m.setQuery(nil)
	case tcell.KeyRune:
		m.setQuery(append(m.query, ev.Rune()))
	}
	return ActionNone, nil
}

func (m *Model) handleMouse(ev *tcell.EventMouse) (Action, *desktop.Application) {
	_, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0
	m.buttons = buttons

	switch {
	case buttons&tcell.WheelUp != 0:
		m.scroll(-1)
	case buttons&tcell.WheelDown != 0:
		m.scroll(1)
	case pressed && y >= listTop:
		idx := m.offset + y - listTop
		if idx < len(m.Visible()) {
			m.selected = idx
			return m.launch(idx)
		}
	}
	return ActionNone, nil
}

func (m *Model) launch(idx int) (Action, *desktop.Application) {
	items := m.Visible()
	if idx < 0 || idx >= len(items) {
		return ActionNone, nil
	}
	app := items[idx]
	return ActionLaunch, &app
}

func (m *Model) setQuery(q []rune) {
	m.query = q
	m.selected = 0
	m.offset = 0
}

func (m *Model) setRows(height int) {
	m.rows = max(height-listTop, 0)
	m.keepSelectionVisible()
}

func (m *Model) page() int {
	return max(m.rows, 1)
}

func (m *Model) move(delta int) {
	n := len(m.Visible())
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(m.selected+delta, 0), n-1)
	m.keepSelectionVisible()
}

// scroll moves the viewport and drags the selection along when it would
// leave the screen.
func (m *Model) scroll(delta int) {
	n := len(m.Visible())
	m.offset = min(max(m.offset+delta, 0), max(n-m.rows, 0))
	if m.rows > 0 {
		m.selected = min(max(m.selected, m.offset), m.offset+m.rows-1)
	}
	m.selected = min(m.selected, max(n-1, 0))
}

func (m *Model) keepSelectionVisible() {
	if m.rows <= 0 {
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.rows {
		m.offset = m.selected - m.rows + 1
	}
}
