package editor

import (
	"github.com/google/uuid"

	"github.com/matzehuels/gridplan/pkg/grid"
)

// phase is the state of the gesture machine.
type phase int

const (
	phasePending phase = iota
	phaseMove
	phaseResize
	phaseCreate
)

// session holds one gesture's state, from pointer-down to pointer-up or
// Escape. It is created on pointer-down and discarded on commit or cancel;
// the layout is never mutated while a session is live.
type session struct {
	phase  phase
	origin grid.Box  // snapshot at pointer-down (Pending, Move, Resize)
	handle Handle    // active handle (Resize)
	down   Point     // screen position at pointer-down (Pending threshold)
	anchor grid.Cell // grid cell at pointer-down

	// lastValid is the most recent collision-free candidate, nil until the
	// first legal tick. Move and Resize commit exactly this value.
	lastValid *grid.Box

	preview   grid.Box // live rectangle (Create only)
	colliding bool     // current pointer position proposes an illegal rectangle
}

// Active reports whether a gesture session is live, including the Pending
// phase before the drag threshold is crossed.
func (e *Editor) Active() bool { return e.sess != nil }

// Gesture returns the live visual state of the active gesture. It reports
// false while idle or still Pending, when there is nothing to draw beyond
// the committed layout.
func (e *Editor) Gesture() (Gesture, bool) {
	if e.sess == nil {
		return Gesture{}, false
	}
	switch e.sess.phase {
	case phaseMove, phaseResize:
		kind := GestureMove
		if e.sess.phase == phaseResize {
			kind = GestureResize
		}
		box := e.sess.origin
		if e.sess.lastValid != nil {
			box = *e.sess.lastValid
		}
		return Gesture{Kind: kind, Box: box, Colliding: e.sess.colliding}, true
	case phaseCreate:
		return Gesture{Kind: GestureCreate, Box: e.sess.preview, Colliding: e.sess.colliding}, true
	}
	return Gesture{}, false
}

// PointerDown starts a gesture. A press on a box body enters Pending; a
// press on a resize handle starts a Resize immediately; a press on empty
// grid space starts a Create anchored at the cell. A pointer-down while a
// session is already live is not a defined input and is ignored.
func (e *Editor) PointerDown(t Target, screen Point, cell grid.Cell) Result {
	if e.sess != nil {
		return Result{Op: OpNone}
	}

	switch t.Kind {
	case TargetBody:
		b, ok := e.layout.Box(t.BoxID)
		if !ok {
			return Result{Op: OpNone}
		}
		e.sess = &session{phase: phasePending, origin: b, down: screen, anchor: cell}
		return Result{Op: OpNone, Box: b}

	case TargetHandle:
		b, ok := e.layout.Box(t.BoxID)
		if !ok {
			return Result{Op: OpNone}
		}
		e.selected = b.ID
		e.sess = &session{phase: phaseResize, origin: b, handle: t.Handle, down: screen, anchor: cell}
		return Result{Op: OpNone, Box: b}

	case TargetEmpty:
		anchor := clampCell(cell)
		preview := grid.Box{X: anchor.X, Y: anchor.Y, W: 1, H: 1}
		e.sess = &session{
			phase:     phaseCreate,
			down:      screen,
			anchor:    anchor,
			preview:   preview,
			colliding: createIllegal(preview, e.layout.Boxes),
		}
		return Result{Op: OpNone}
	}
	return Result{Op: OpNone}
}

// PointerMove processes one tick of the active gesture. While Pending it
// promotes to Move only once the pointer has traveled past the drag
// threshold; below it, nothing happens. Ticks while idle are ignored.
func (e *Editor) PointerMove(screen Point, cell grid.Cell) Result {
	s := e.sess
	if s == nil {
		return Result{Op: OpNone}
	}

	if s.phase == phasePending {
		if screen.DistanceTo(s.down) <= e.threshold {
			return Result{Op: OpNone}
		}
		s.phase = phaseMove
		e.selected = s.origin.ID // grabbing a box selects it
	}

	dx := cell.X - s.anchor.X
	dy := cell.Y - s.anchor.Y

	switch s.phase {
	case phaseMove:
		candidate := s.origin
		candidate.X = grid.Clamp(s.origin.X+dx, 0, grid.Size-s.origin.W)
		candidate.Y = grid.Clamp(s.origin.Y+dy, 0, grid.Size-s.origin.H)
		return e.tick(OpMove, candidate)

	case phaseResize:
		return e.tick(OpResize, resizeCandidate(s.origin, s.handle, dx, dy))

	case phaseCreate:
		s.preview = spanRect(s.anchor, clampCell(cell))
		s.colliding = createIllegal(s.preview, e.layout.Boxes)
		return Result{Op: OpCreate, Box: s.preview, Colliding: s.colliding}
	}
	return Result{Op: OpNone}
}

// tick applies the freeze-on-collision policy shared by Move and Resize:
// a colliding candidate leaves lastValid untouched, a legal one replaces
// it outright. The freeze is per-tick, so a later legal candidate jumps
// straight to its position.
func (e *Editor) tick(op Op, candidate grid.Box) Result {
	s := e.sess
	if grid.WouldCollide(candidate, e.layout.Boxes, s.origin.ID).HasCollisions() {
		s.colliding = true
		held := s.origin
		if s.lastValid != nil {
			held = *s.lastValid
		}
		return Result{Op: op, Box: held, Colliding: true}
	}
	s.colliding = false
	s.lastValid = &candidate
	return Result{Op: op, Box: candidate}
}

// PointerUp ends the gesture. A Pending release is a click and selects the
// box. Move and Resize commit the last valid configuration; if no tick was
// ever legal the gesture is a no-op. Create commits only a collision-free
// rectangle of at least MinBoxSize per side, and silently discards anything
// else.
func (e *Editor) PointerUp(screen Point, cell grid.Cell) Result {
	s := e.sess
	if s == nil {
		return Result{Op: OpNone}
	}
	e.sess = nil

	switch s.phase {
	case phasePending:
		e.selected = s.origin.ID
		return Result{Op: OpSelect, Box: s.origin}

	case phaseMove, phaseResize:
		op := OpMove
		if s.phase == phaseResize {
			op = OpResize
		}
		if s.lastValid == nil {
			return Result{Op: op, Box: s.origin}
		}
		final := *s.lastValid
		e.layout = e.layout.ReplaceBox(final)
		return Result{Op: op, Box: final, Changed: final != s.origin}

	case phaseCreate:
		if createIllegal(s.preview, e.layout.Boxes) {
			return Result{Op: OpCreate, Box: s.preview}
		}
		b := s.preview
		b.ID = uuid.NewString()
		b.Title = e.autoTitle()
		e.layout = e.layout.WithBox(b)
		e.selected = b.ID
		return Result{Op: OpCreate, Box: b, Changed: true}
	}
	return Result{Op: OpNone}
}

// Cancel discards the active gesture, leaving the layout exactly as it was
// at pointer-down. Canceling while idle is a no-op.
func (e *Editor) Cancel() Result {
	s := e.sess
	if s == nil {
		return Result{Op: OpCancel}
	}
	e.sess = nil
	return Result{Op: OpCancel, Box: s.origin}
}

// resizeCandidate applies a cumulative cell delta from the pointer-down
// anchor to the origin snapshot. Each handle moves its near edge(s) and
// pins the opposite edge(s): the moving edge is clamped so the box keeps at
// least MinBoxSize cells per moved axis and never leaves the grid.
func resizeCandidate(origin grid.Box, h Handle, dx, dy int) grid.Box {
	b := origin
	if h.movesRight() {
		b.W = grid.Clamp(origin.W+dx, grid.MinBoxSize, grid.Size-origin.X)
	}
	if h.movesLeft() {
		cdx := grid.Clamp(dx, -origin.X, origin.W-grid.MinBoxSize)
		b.X = origin.X + cdx
		b.W = origin.W - cdx
	}
	if h.movesBottom() {
		b.H = grid.Clamp(origin.H+dy, grid.MinBoxSize, grid.Size-origin.Y)
	}
	if h.movesTop() {
		cdy := grid.Clamp(dy, -origin.Y, origin.H-grid.MinBoxSize)
		b.Y = origin.Y + cdy
		b.H = origin.H - cdy
	}
	return b
}

// spanRect returns the rectangle spanning two cells inclusively.
func spanRect(a, b grid.Cell) grid.Box {
	return grid.Box{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		W: abs(b.X-a.X) + 1,
		H: abs(b.Y-a.Y) + 1,
	}
}

// createIllegal reports whether a create preview cannot be committed:
// below minimum size or overlapping any existing box.
func createIllegal(preview grid.Box, boxes []grid.Box) bool {
	if preview.W < grid.MinBoxSize || preview.H < grid.MinBoxSize {
		return true
	}
	return grid.WouldCollide(preview, boxes, "").HasCollisions()
}

// clampCell forces a cell into the grid.
func clampCell(c grid.Cell) grid.Cell {
	return grid.Cell{
		X: grid.Clamp(c.X, 0, grid.Size-1),
		Y: grid.Clamp(c.Y, 0, grid.Size-1),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
