package editor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/gridplan/pkg/errors"
	"github.com/matzehuels/gridplan/pkg/grid"
)

// DefaultDragThreshold is the pointer travel, in nominal screen pixels,
// that separates a click from a drag on a box body.
const DefaultDragThreshold = 5.0

// Editor holds the current layout, the selection, and at most one live
// gesture. It is the single owner of mutable state in the core; the grid
// engine it consults is pure.
//
// Editor is not safe for concurrent use. Deliver events from one goroutine,
// one at a time.
type Editor struct {
	layout    grid.Layout
	selected  string
	threshold float64
	sess      *session
}

// New returns an editor over the given layout with the default drag
// threshold. The layout is taken as-is; callers loading untrusted data
// should gate it through [grid.ValidateLayout] first.
func New(layout grid.Layout) *Editor {
	return &Editor{layout: layout, threshold: DefaultDragThreshold}
}

// SetDragThreshold overrides the click/drag discrimination distance in
// nominal screen pixels. Values below 1 are ignored.
func (e *Editor) SetDragThreshold(px float64) {
	if px >= 1 {
		e.threshold = px
	}
}

// Layout returns the current layout value. Gestures in flight are not
// reflected; the layout only changes on commit.
func (e *Editor) Layout() grid.Layout { return e.layout }

// SelectedID returns the ID of the selected box, or "" when nothing is
// selected.
func (e *Editor) SelectedID() string { return e.selected }

// Selected returns the selected box, if any.
func (e *Editor) Selected() (grid.Box, bool) {
	if e.selected == "" {
		return grid.Box{}, false
	}
	return e.layout.Box(e.selected)
}

// Select makes the box with the given ID the selection. Unknown IDs are
// ignored and reported as a no-op.
func (e *Editor) Select(id string) Result {
	b, ok := e.layout.Box(id)
	if !ok {
		return Result{Op: OpNone}
	}
	e.selected = id
	return Result{Op: OpSelect, Box: b}
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.selected = ""
}

// NewBoxAt inserts a w×h box at the first free position on the grid,
// scanning top to bottom then left to right. An empty title is replaced by
// an auto-generated unique one. The new box becomes the selection.
//
// It fails with ErrCodeInvalidTitle when the title is malformed or already
// taken, and with ErrCodeNoFreeSpace when no w×h region is free.
func (e *Editor) NewBoxAt(title string, w, h int) (Result, error) {
	w = grid.Clamp(w, grid.MinBoxSize, grid.Size)
	h = grid.Clamp(h, grid.MinBoxSize, grid.Size)

	title = strings.TrimSpace(title)
	if title == "" {
		title = e.autoTitle()
	} else {
		if err := errors.ValidateTitle(title); err != nil {
			return Result{Op: OpCreate}, err
		}
		if e.layout.TitleTaken(title, "") {
			return Result{Op: OpCreate}, errors.New(errors.ErrCodeInvalidTitle, "title %q is already taken", title)
		}
	}

	cell, ok := grid.FindFreePosition(w, h, e.layout.Boxes)
	if !ok {
		return Result{Op: OpCreate}, errors.New(errors.ErrCodeNoFreeSpace, "no free %d×%d region on the grid", w, h)
	}

	b := grid.Box{ID: uuid.NewString(), Title: title, X: cell.X, Y: cell.Y, W: w, H: h}
	e.layout = e.layout.WithBox(b)
	e.selected = b.ID
	return Result{Op: OpCreate, Box: b, Changed: true}, nil
}

// MoveSelected shifts the selected box by (dx, dy) cells, clamped to the
// grid. A step that would overlap another box is a flagged no-op.
func (e *Editor) MoveSelected(dx, dy int) Result {
	b, ok := e.Selected()
	if !ok {
		return Result{Op: OpMove}
	}

	candidate := b
	candidate.X = grid.Clamp(b.X+dx, 0, grid.Size-b.W)
	candidate.Y = grid.Clamp(b.Y+dy, 0, grid.Size-b.H)
	if candidate == b {
		return Result{Op: OpMove, Box: b}
	}
	if grid.WouldCollide(candidate, e.layout.Boxes, b.ID).HasCollisions() {
		return Result{Op: OpMove, Box: b, Colliding: true}
	}

	e.layout = e.layout.ReplaceBox(candidate)
	return Result{Op: OpMove, Box: candidate, Changed: true}
}

// ResizeSelected grows or shrinks the selected box by (dw, dh) cells,
// keeping its top-left corner fixed. Size stays within
// [MinBoxSize, Size-corner]. A step that would overlap another box is a
// flagged no-op.
func (e *Editor) ResizeSelected(dw, dh int) Result {
	b, ok := e.Selected()
	if !ok {
		return Result{Op: OpResize}
	}

	candidate := b
	candidate.W = grid.Clamp(b.W+dw, grid.MinBoxSize, grid.Size-b.X)
	candidate.H = grid.Clamp(b.H+dh, grid.MinBoxSize, grid.Size-b.Y)
	if candidate == b {
		return Result{Op: OpResize, Box: b}
	}
	if grid.WouldCollide(candidate, e.layout.Boxes, b.ID).HasCollisions() {
		return Result{Op: OpResize, Box: b, Colliding: true}
	}

	e.layout = e.layout.ReplaceBox(candidate)
	return Result{Op: OpResize, Box: candidate, Changed: true}
}

// DeleteSelected removes the selected box and clears the selection.
func (e *Editor) DeleteSelected() Result {
	b, ok := e.Selected()
	if !ok {
		return Result{Op: OpDelete}
	}
	e.layout = e.layout.WithoutBox(b.ID)
	e.selected = ""
	return Result{Op: OpDelete, Box: b, Changed: true}
}

// RenameSelected retitles the selected box. The title is trimmed and must
// be non-empty and unique within the layout under case-insensitive
// comparison.
func (e *Editor) RenameSelected(title string) (Result, error) {
	b, ok := e.Selected()
	if !ok {
		return Result{Op: OpRename}, errors.New(errors.ErrCodeBoxNotFound, "no box selected")
	}

	title = strings.TrimSpace(title)
	if err := errors.ValidateTitle(title); err != nil {
		return Result{Op: OpRename, Box: b}, err
	}
	if e.layout.TitleTaken(title, b.ID) {
		return Result{Op: OpRename, Box: b}, errors.New(errors.ErrCodeInvalidTitle, "title %q is already taken", title)
	}

	changed := b.Title != title
	b.Title = title
	e.layout = e.layout.ReplaceBox(b)
	return Result{Op: OpRename, Box: b, Changed: changed}, nil
}

// autoTitle returns the first "Box N" title not yet taken.
func (e *Editor) autoTitle() string {
	for n := 1; ; n++ {
		title := fmt.Sprintf("Box %d", n)
		if !e.layout.TitleTaken(title, "") {
			return title
		}
	}
}
