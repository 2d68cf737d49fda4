// Package tui draws a matching surface in a terminal and feeds tcell mouse
// events back into it as pixel coordinates.
package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordmatch/internal/match"
)

// Grid maps surface pixels to terminal cells.
type Grid struct {
	CellW float64 // pixels per column
	CellH float64 // pixels per row
}

// FitGrid scales layout so the surface fills cols columns and each word row
// spans rowsPerWord terminal rows.
func FitGrid(l match.Layout, cols, rowsPerWord int) Grid {
	if cols < 1 {
		cols = 1
	}
	if rowsPerWord < 1 {
		rowsPerWord = 1
	}
	return Grid{CellW: l.Width / float64(cols), CellH: l.RowHeight / float64(rowsPerWord)}
}

// Cell returns the cell containing pixel p.
func (g Grid) Cell(p match.Position) (int, int) {
	const eps = 1e-9
	return int(math.Floor(p.X/g.CellW + eps)), int(math.Floor(p.Y/g.CellH + eps))
}

// Pixel returns the pixel at the centre of cell (cx, cy).
func (g Grid) Pixel(cx, cy int) match.Position {
	return match.Position{X: (float64(cx) + 0.5) * g.CellW, Y: (float64(cy) + 0.5) * g.CellH}
}

// Canvas implements match.Canvas on a tcell screen.
type Canvas struct {
	screen tcell.Screen
	grid   Grid
	style  tcell.Style
	ink    tcell.Style
}

// NewCanvas draws onto screen using grid.
func NewCanvas(screen tcell.Screen, grid Grid) *Canvas {
	return &Canvas{
		screen: screen,
		grid:   grid,
		style:  tcell.StyleDefault,
		ink:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// Clear wipes the screen; the size comes from the terminal, not the surface.
func (c *Canvas) Clear(_, _ float64) { c.screen.Clear() }

// StrokeLine rasterises with Bresenham: vertical and horizontal segments
// use box drawing runes, anything else is dotted.
func (c *Canvas) StrokeLine(from, to match.Position) {
	x0, y0 := c.grid.Cell(from)
	// pull the far end back a hair so a segment ending exactly on a cell
	// boundary does not spill into the next cell
	x1, y1 := c.grid.Cell(match.Position{X: to.X - nudge(to.X-from.X), Y: to.Y - nudge(to.Y-from.Y)})

	r, st := '•', c.ink
	switch {
	case x0 == x1:
		r, st = '│', c.style
	case y0 == y1:
		r, st = '─', c.style
	}

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		c.screen.SetContent(x0, y0, r, nil, st)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillText centres s on at.
func (c *Canvas) FillText(s string, at match.Position) {
	cx, cy := c.grid.Cell(at)
	runes := []rune(s)
	x := cx - len(runes)/2
	for i, r := range runes {
		c.screen.SetContent(x+i, cy, r, nil, c.style.Bold(true))
	}
}

func nudge(d float64) float64 {
	switch {
	case d > 0:
		return 1e-6
	case d < 0:
		return -1e-6
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
