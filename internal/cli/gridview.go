package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridplan/pkg/editor"
	"github.com/matzehuels/gridplan/pkg/grid"
)

// =============================================================================
// Canvas - a rune buffer with per-rune styles
// =============================================================================

// canvas is a fixed-size rune buffer the grid view paints into. Styles are
// tracked per rune and emitted as grouped runs, so a 24×24 grid renders as a
// few dozen ANSI sequences per line rather than one per character.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]*lipgloss.Style // nil means unstyled
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.styles = make([][]*lipgloss.Style, h)
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.styles[y] = make([]*lipgloss.Style, w)
		for x := 0; x < w; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

// set paints one rune, clipped to the canvas.
func (c *canvas) set(x, y int, r rune, st *lipgloss.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = st
}

// fill paints a rectangle with one rune.
func (c *canvas) fill(x, y, w, h int, r rune, st *lipgloss.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.set(xx, yy, r, st)
		}
	}
}

// text paints a string starting at (x, y), truncated to max runes.
func (c *canvas) text(x, y int, s string, st *lipgloss.Style, max int) {
	for i, r := range []rune(s) {
		if i >= max {
			return
		}
		c.set(x+i, y, r, st)
	}
}

// String renders the canvas, grouping consecutive same-style runes.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			st := c.styles[y][x]
			end := x
			for end < c.w && c.styles[y][end] == st {
				end++
			}
			run := string(c.runes[y][x:end])
			if st != nil {
				run = st.Render(run)
			}
			b.WriteString(run)
			x = end
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// =============================================================================
// Grid View
// =============================================================================

// gridView renders a layout as colored terminal cells. CellW and CellH are
// terminal characters per grid cell. SelectedID gets handle markers; while a
// gesture is live the renderer hides the dragged box (HideID) and draws the
// proposal (Overlay) instead, red when it collides.
type gridView struct {
	CellW, CellH int
	SelectedID   string
	HideID       string
	Overlay      *editor.Gesture
}

// view styles, built once.
var (
	styleGridDot   = lipgloss.NewStyle().Foreground(colorDim)
	styleHandle    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	stylePreviewOK = lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(colorWhite)
	styleIllegal   = lipgloss.NewStyle().Background(lipgloss.Color("88")).Foreground(colorWhite)
)

// Render draws the layout. The result is CellH*24 lines of CellW*24 cells,
// without an outer frame; callers add their own chrome.
func (v gridView) Render(l grid.Layout) string {
	if v.CellW < 1 {
		v.CellW = 1
	}
	if v.CellH < 1 {
		v.CellH = 1
	}
	c := newCanvas(grid.Size*v.CellW, grid.Size*v.CellH)

	// Background texture: one dim dot per grid cell.
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			c.set(x*v.CellW, y*v.CellH, '·', &styleGridDot)
		}
	}

	for i, b := range l.Boxes {
		if b.ID == v.HideID {
			continue
		}
		v.paintBox(c, b, boxStyle(i), b.ID == v.SelectedID)
	}

	if v.Overlay != nil {
		v.paintOverlay(c, l, *v.Overlay)
	}

	return c.String()
}

// paintBox fills the box body, writes its title on the top row, and draws
// handle markers when selected.
func (v gridView) paintBox(c *canvas, b grid.Box, st *lipgloss.Style, selected bool) {
	x, y := b.X*v.CellW, b.Y*v.CellH
	w, h := b.W*v.CellW, b.H*v.CellH
	c.fill(x, y, w, h, ' ', st)
	c.text(x+1, y, b.Title, st, w-2)

	if selected {
		marker := *st
		marker = marker.Inherit(styleHandle)
		for _, hc := range handleCells(b) {
			c.set(hc.X*v.CellW+v.CellW/2, hc.Y*v.CellH+v.CellH/2, '■', &marker)
		}
	}
}

// paintOverlay draws the live gesture rectangle over the committed layout.
func (v gridView) paintOverlay(c *canvas, l grid.Layout, g editor.Gesture) {
	st := &stylePreviewOK
	switch {
	case g.Colliding:
		st = &styleIllegal
	case g.Kind != editor.GestureCreate:
		// Move/Resize keep the dragged box's own color.
		for i, b := range l.Boxes {
			if b.ID == g.Box.ID {
				st = boxStyle(i)
				break
			}
		}
	}

	x, y := g.Box.X*v.CellW, g.Box.Y*v.CellH
	w, h := g.Box.W*v.CellW, g.Box.H*v.CellH
	c.fill(x, y, w, h, ' ', st)
	c.text(x+1, y, g.Box.Title, st, w-2)

	if g.Kind == editor.GestureResize && !g.Colliding {
		for _, hc := range handleCells(g.Box) {
			marker := *st
			marker = marker.Inherit(styleHandle)
			c.set(hc.X*v.CellW+v.CellW/2, hc.Y*v.CellH+v.CellH/2, '■', &marker)
		}
	}
}

// boxStyle returns the fill style for the box at layout index i.
func boxStyle(i int) *lipgloss.Style {
	st := lipgloss.NewStyle().Background(boxColor(i)).Foreground(colorWhite)
	return &st
}

// handlePosition pairs a resize handle with the grid cell that shows (and
// hit-tests) it.
type handlePosition struct {
	Handle editor.Handle
	Cell   grid.Cell
}

// handlePositions returns the eight handle cells of a box: four corners and
// four edge midpoints.
func handlePositions(b grid.Box) []handlePosition {
	left, right := b.X, b.X+b.W-1
	top, bottom := b.Y, b.Y+b.H-1
	midX, midY := b.X+(b.W-1)/2, b.Y+(b.H-1)/2

	return []handlePosition{
		{editor.HandleNW, grid.Cell{X: left, Y: top}},
		{editor.HandleNE, grid.Cell{X: right, Y: top}},
		{editor.HandleSW, grid.Cell{X: left, Y: bottom}},
		{editor.HandleSE, grid.Cell{X: right, Y: bottom}},
		{editor.HandleN, grid.Cell{X: midX, Y: top}},
		{editor.HandleS, grid.Cell{X: midX, Y: bottom}},
		{editor.HandleW, grid.Cell{X: left, Y: midY}},
		{editor.HandleE, grid.Cell{X: right, Y: midY}},
	}
}

// handleCells returns just the cells of handlePositions.
func handleCells(b grid.Box) []grid.Cell {
	ps := handlePositions(b)
	cells := make([]grid.Cell, len(ps))
	for i, p := range ps {
		cells[i] = p.Cell
	}
	return cells
}
