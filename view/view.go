// Package view shows a decoded grid in the terminal and lets the user pan
// around grids larger than the screen.
//
// Keys: arrows or h/j/k/l pan by one cell, PgUp/PgDn by a screen, Home
// returns to the top-left corner, q or Esc quits.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/tsawler/docgrid/model"
)

// Viewer draws a grid onto a tcell screen. The bottom line of the screen is
// a status bar.
type Viewer struct {
	screen tcell.Screen
	lines  []string
	width  int
	title  string

	// Top-left corner of the visible area, in rendering columns and rows.
	offX, offY int
}

// New creates a Viewer for g on an initialized screen.
func New(screen tcell.Screen, g *model.Grid, title string) *Viewer {
	return &Viewer{
		screen: screen,
		lines:  g.Lines(),
		width:  g.DisplayWidth(),
		title:  title,
	}
}

// Show opens the terminal, runs the viewer until the user quits and restores
// the terminal.
func Show(g *model.Grid, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	return New(screen, g, title).Run()
}

// Run processes events until the user quits.
func (v *Viewer) Run() error {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// Screen finalized elsewhere.
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// Offset returns the top-left corner of the visible area.
func (v *Viewer) Offset() (x, y int) {
	return v.offX, v.offY
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	_, h := v.viewport()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)
	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyPgUp:
		v.pan(0, -h)
	case tcell.KeyPgDn:
		v.pan(0, h)
	case tcell.KeyHome:
		v.offX, v.offY = 0, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h':
			v.pan(-1, 0)
		case 'l':
			v.pan(1, 0)
		case 'k':
			v.pan(0, -1)
		case 'j':
			v.pan(0, 1)
		}
	}
	return false
}

// pan moves the visible area, keeping it inside the grid.
func (v *Viewer) pan(dx, dy int) {
	w, h := v.viewport()
	v.offX = clamp(v.offX+dx, 0, max(v.width-w, 0))
	v.offY = clamp(v.offY+dy, 0, max(len(v.lines)-h, 0))
}

// viewport returns the size of the area available for the grid.
func (v *Viewer) viewport() (w, h int) {
	w, h = v.screen.Size()
	return w, max(h-1, 0)
}

// Draw renders the visible part of the grid and the status bar.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.viewport()
	style := tcell.StyleDefault

	for row := 0; row < h && v.offY+row < len(v.lines); row++ {
		col := 0
		for _, r := range v.lines[v.offY+row] {
			rw := runewidth.RuneWidth(r)
			x := col - v.offX
			if x >= w {
				break
			}
			if x >= 0 && rw > 0 {
				v.screen.SetContent(x, row, r, nil, style)
			}
			col += rw
		}
	}

	status := fmt.Sprintf(" %s  %dx%d  @%d,%d  q:quit", v.title, v.width, len(v.lines), v.offX, v.offY)
	bar := style.Reverse(true)
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		v.screen.SetContent(col, h, r, nil, bar)
		col += max(runewidth.RuneWidth(r), 1)
	}
	for ; col < w; col++ {
		v.screen.SetContent(col, h, ' ', nil, bar)
	}

	v.screen.Show()
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
