package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	headingStyle  = tcell.StyleDefault.Bold(true)
	selectedStyle = tcell.StyleDefault.Reverse(true)
	dimStyle      = tcell.StyleDefault.Dim(true)
)

// Draw renders the heading, the input line and the visible part of the list.
func (m *Model) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	m.setRows(h)

	screen.Clear()
	putString(screen, 0, 0, w, headingStyle, m.cfg.Heading)

	input := m.cfg.Prompt + string(m.query)
	putString(screen, 0, 1, w, tcell.StyleDefault, input)
	screen.ShowCursor(min(runewidth.StringWidth(input), max(w-1, 0)), 1)

	for x := 0; x < w; x++ {
		screen.SetContent(x, 2, '─', nil, dimStyle)
	}

	items := m.Visible()
	if len(items) == 0 && len(m.query) > 0 {
		putString(screen, 1, listTop, w-1, dimStyle, "No matches")
		return
	}

	for row := 0; row < m.rows; row++ {
		idx := m.offset + row
		if idx >= len(items) {
			break
		}
		style := tcell.StyleDefault
		if idx == m.selected {
			style = selectedStyle
			for x := 0; x < w; x++ {
				screen.SetContent(x, listTop+row, ' ', nil, style)
			}
		}
		label := runewidth.Truncate(items[idx].Name, max(w-2, 0), "…")
		putString(screen, 1, listTop+row, w-1, style, label)
	}
}

// putString writes text from column x, stopping before column x+width.
func putString(screen tcell.Screen, x, y, width int, style tcell.Style, text string) {
	limit := x + width
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > limit {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x += rw
	}
}
