package editor

import (
	"testing"

	"github.com/matzehuels/gridplan/pkg/grid"
)

// twoBoxLayout has a mover at the left edge and an obstacle in the middle
// of the same row.
func twoBoxLayout() grid.Layout {
	l := grid.NewLayout("test")
	l = l.WithBox(grid.Box{ID: "mover", Title: "Mover", X: 0, Y: 0, W: 4, H: 4})
	l = l.WithBox(grid.Box{ID: "wall", Title: "Wall", X: 6, Y: 0, W: 2, H: 4})
	return l
}

func TestClickSelectsWithoutMoving(t *testing.T) {
	e := New(twoBoxLayout())

	e.PointerDown(BodyTarget("mover"), Point{X: 10, Y: 10}, grid.Cell{X: 1, Y: 1})
	// 3px of travel is below the 5px threshold: still a click.
	e.PointerMove(Point{X: 13, Y: 10}, grid.Cell{X: 1, Y: 1})

	if _, ok := e.Gesture(); ok {
		t.Fatal("Gesture() reported an active gesture below the drag threshold")
	}

	res := e.PointerUp(Point{X: 13, Y: 10}, grid.Cell{X: 1, Y: 1})
	if res.Op != OpSelect {
		t.Errorf("Op = %v, want %v", res.Op, OpSelect)
	}
	if e.SelectedID() != "mover" {
		t.Errorf("SelectedID() = %q, want %q", e.SelectedID(), "mover")
	}
	if got, _ := e.Layout().Box("mover"); got.X != 0 || got.Y != 0 {
		t.Errorf("box moved on click: %+v", got)
	}
}

func TestDragPromotesPastThreshold(t *testing.T) {
	e := New(twoBoxLayout())

	e.PointerDown(BodyTarget("mover"), Point{X: 10, Y: 10}, grid.Cell{X: 1, Y: 1})
	res := e.PointerMove(Point{X: 30, Y: 10}, grid.Cell{X: 2, Y: 1})

	if res.Op != OpMove {
		t.Fatalf("Op = %v, want %v", res.Op, OpMove)
	}
	g, ok := e.Gesture()
	if !ok || g.Kind != GestureMove {
		t.Fatalf("Gesture() = %+v, %v, want an active move", g, ok)
	}
	if g.Box.X != 1 {
		t.Errorf("proposed X = %d, want 1", g.Box.X)
	}
}

func TestMoveFreezesOnCollisionAndUnsticks(t *testing.T) {
	e := New(twoBoxLayout())

	// Wall occupies x ∈ [6,8). The 4-wide mover collides for x ∈ [3,8).
	e.PointerDown(BodyTarget("mover"), Point{}, grid.Cell{X: 0, Y: 0})

	ticks := []struct {
		cell      grid.Cell
		wantX     int
		wantFroze bool
	}{
		{grid.Cell{X: 1, Y: 0}, 1, false},  // legal
		{grid.Cell{X: 2, Y: 0}, 2, false},  // legal
		{grid.Cell{X: 4, Y: 0}, 2, true},   // collides with the wall: hold x=2
		{grid.Cell{X: 9, Y: 0}, 9, false},  // past the obstacle: jump straight to 9
		{grid.Cell{X: 50, Y: 0}, 20, false}, // clamped to Size-W
	}
	for i, tk := range ticks {
		res := e.PointerMove(Point{X: float64(tk.cell.X * 10), Y: 0}, tk.cell)
		if res.Colliding != tk.wantFroze {
			t.Errorf("tick %d: Colliding = %v, want %v", i+1, res.Colliding, tk.wantFroze)
		}
		if res.Box.X != tk.wantX {
			t.Errorf("tick %d: proposed X = %d, want %d", i+1, res.Box.X, tk.wantX)
		}
	}

	res := e.PointerUp(Point{X: 500, Y: 0}, grid.Cell{X: 50, Y: 0})
	if res.Op != OpMove || !res.Changed {
		t.Fatalf("commit = %+v, want a changed move", res)
	}
	final, _ := e.Layout().Box("mover")
	if final.X != 20 || final.Y != 0 {
		t.Errorf("committed position = (%d,%d), want (20,0)", final.X, final.Y)
	}
}

func TestMoveWithNoLegalTickIsNoOp(t *testing.T) {
	e := New(twoBoxLayout())

	e.PointerDown(BodyTarget("mover"), Point{}, grid.Cell{X: 0, Y: 0})
	// The only tick collides; lastValid never gets set.
	res := e.PointerMove(Point{X: 40, Y: 0}, grid.Cell{X: 4, Y: 0})
	if !res.Colliding {
		t.Fatal("expected the tick to collide")
	}
	res = e.PointerUp(Point{X: 40, Y: 0}, grid.Cell{X: 4, Y: 0})
	if res.Changed {
		t.Error("no-op drag reported Changed = true")
	}
	if b, _ := e.Layout().Box("mover"); b.X != 0 {
		t.Errorf("box moved to x=%d, want 0", b.X)
	}
}

func TestCancelRestoresOrigin(t *testing.T) {
	e := New(twoBoxLayout())
	before, _ := e.Layout().Box("mover")

	e.PointerDown(HandleTarget("mover", HandleSE), Point{}, grid.Cell{X: 3, Y: 3})
	e.PointerMove(Point{X: 80, Y: 80}, grid.Cell{X: 8, Y: 8})
	res := e.Cancel()

	if res.Op != OpCancel {
		t.Errorf("Op = %v, want %v", res.Op, OpCancel)
	}
	if e.Active() {
		t.Error("session still active after Cancel")
	}
	after, _ := e.Layout().Box("mover")
	if after != before {
		t.Errorf("box = %+v, want the pre-gesture snapshot %+v", after, before)
	}
}

func TestResizeHandles(t *testing.T) {
	// Origin box in open space.
	origin := grid.Box{ID: "b", Title: "B", X: 5, Y: 5, W: 4, H: 4}

	tests := []struct {
		name   string
		handle Handle
		dx, dy int
		want   grid.Box
	}{
		{
			// The canonical clamp case: maxMove=5 toward the origin,
			// maxShrink=w-2=2, so the effective delta is -5.
			name:   "NWClampedGrowth",
			handle: HandleNW,
			dx:     -10, dy: -10,
			want: grid.Box{ID: "b", Title: "B", X: 0, Y: 0, W: 9, H: 9},
		},
		{
			name:   "NWShrinkClamp",
			handle: HandleNW,
			dx:     10, dy: 10,
			want: grid.Box{ID: "b", Title: "B", X: 7, Y: 7, W: 2, H: 2},
		},
		{
			name:   "SEGrow",
			handle: HandleSE,
			dx:     3, dy: 2,
			want: grid.Box{ID: "b", Title: "B", X: 5, Y: 5, W: 7, H: 6},
		},
		{
			name:   "SEOverflowClamp",
			handle: HandleSE,
			dx:     100, dy: 100,
			want: grid.Box{ID: "b", Title: "B", X: 5, Y: 5, W: 19, H: 19},
		},
		{
			name:   "SEShrinkFloor",
			handle: HandleSE,
			dx:     -10, dy: -10,
			want: grid.Box{ID: "b", Title: "B", X: 5, Y: 5, W: 2, H: 2},
		},
		{
			name:   "EastOnlyWidth",
			handle: HandleE,
			dx:     2, dy: 7,
			want: grid.Box{ID: "b", Title: "B", X: 5, Y: 5, W: 6, H: 4},
		},
		{
			name:   "NorthOnlyHeight",
			handle: HandleN,
			dx:     7, dy: -2,
			want: grid.Box{ID: "b", Title: "B", X: 5, Y: 3, W: 4, H: 6},
		},
		{
			name:   "SWBothAxes",
			handle: HandleSW,
			dx:     -2, dy: 3,
			want: grid.Box{ID: "b", Title: "B", X: 3, Y: 5, W: 6, H: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resizeCandidate(origin, tt.handle, tt.dx, tt.dy)
			if got != tt.want {
				t.Errorf("resizeCandidate(%v, %d, %d) = %+v, want %+v", tt.handle, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestResizeSENeverMovesCorner(t *testing.T) {
	origin := grid.Box{ID: "b", Title: "B", X: 5, Y: 5, W: 4, H: 4}
	for dx := -30; dx <= 30; dx += 5 {
		for dy := -30; dy <= 30; dy += 5 {
			got := resizeCandidate(origin, HandleSE, dx, dy)
			if got.X != origin.X || got.Y != origin.Y {
				t.Fatalf("SE resize moved the corner: delta (%d,%d) gave %+v", dx, dy, got)
			}
			if !got.InBounds() {
				t.Fatalf("SE resize left the grid: delta (%d,%d) gave %+v", dx, dy, got)
			}
		}
	}
}

func TestResizeFreezesOnCollision(t *testing.T) {
	e := New(twoBoxLayout())

	// Growing the mover eastwards runs into the wall at x=6.
	e.PointerDown(HandleTarget("mover", HandleE), Point{}, grid.Cell{X: 3, Y: 1})

	res := e.PointerMove(Point{X: 40, Y: 10}, grid.Cell{X: 4, Y: 1})
	if res.Colliding || res.Box.W != 5 {
		t.Fatalf("legal grow tick = %+v, want W=5", res)
	}
	res = e.PointerMove(Point{X: 80, Y: 10}, grid.Cell{X: 8, Y: 1})
	if !res.Colliding || res.Box.W != 5 {
		t.Fatalf("colliding tick = %+v, want frozen W=5", res)
	}

	res = e.PointerUp(Point{X: 80, Y: 10}, grid.Cell{X: 8, Y: 1})
	if res.Box.W != 5 || !res.Changed {
		t.Fatalf("commit = %+v, want the frozen W=5", res)
	}
}

func TestCreateCommit(t *testing.T) {
	e := New(grid.NewLayout("empty"))

	e.PointerDown(EmptyTarget(), Point{}, grid.Cell{X: 10, Y: 10})
	res := e.PointerMove(Point{X: 70, Y: 60}, grid.Cell{X: 7, Y: 6})
	if res.Colliding {
		t.Fatal("legal preview flagged as colliding")
	}
	// Dragging up-left of the anchor spans the rectangle backwards.
	want := grid.Box{X: 7, Y: 6, W: 4, H: 5}
	if res.Box != want {
		t.Fatalf("preview = %+v, want %+v", res.Box, want)
	}

	res = e.PointerUp(Point{X: 70, Y: 60}, grid.Cell{X: 7, Y: 6})
	if res.Op != OpCreate || !res.Changed {
		t.Fatalf("commit = %+v, want a changed create", res)
	}
	if res.Box.ID == "" || res.Box.Title == "" {
		t.Errorf("committed box missing identity: %+v", res.Box)
	}
	if len(e.Layout().Boxes) != 1 {
		t.Fatalf("layout has %d boxes, want 1", len(e.Layout().Boxes))
	}
	if e.SelectedID() != res.Box.ID {
		t.Error("created box is not selected")
	}
}

func TestCreateDiscards(t *testing.T) {
	tests := []struct {
		name string
		from grid.Cell
		to   grid.Cell
	}{
		{"TooSmall", grid.Cell{X: 3, Y: 3}, grid.Cell{X: 3, Y: 3}},
		{"OverlapsExisting", grid.Cell{X: 5, Y: 1}, grid.Cell{X: 7, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(twoBoxLayout())
			before := len(e.Layout().Boxes)

			e.PointerDown(EmptyTarget(), Point{}, tt.from)
			res := e.PointerMove(Point{X: 99, Y: 99}, tt.to)
			if !res.Colliding {
				t.Error("illegal preview not flagged")
			}
			res = e.PointerUp(Point{X: 99, Y: 99}, tt.to)
			if res.Changed {
				t.Error("illegal create committed")
			}
			if got := len(e.Layout().Boxes); got != before {
				t.Errorf("layout has %d boxes, want %d", got, before)
			}
		})
	}
}

func TestCreatePreviewClampsToGrid(t *testing.T) {
	e := New(grid.NewLayout("empty"))

	e.PointerDown(EmptyTarget(), Point{}, grid.Cell{X: 22, Y: 22})
	res := e.PointerMove(Point{X: 990, Y: 990}, grid.Cell{X: 99, Y: 99})

	if !res.Box.InBounds() {
		t.Errorf("preview escaped the grid: %+v", res.Box)
	}
	if res.Box.Right() != grid.Size || res.Box.Bottom() != grid.Size {
		t.Errorf("preview = %+v, want it pinned to the bottom-right corner", res.Box)
	}
}

func TestPointerDownDuringGestureIgnored(t *testing.T) {
	e := New(twoBoxLayout())

	e.PointerDown(BodyTarget("mover"), Point{}, grid.Cell{X: 0, Y: 0})
	res := e.PointerDown(BodyTarget("wall"), Point{}, grid.Cell{X: 6, Y: 0})
	if res.Op != OpNone {
		t.Errorf("second PointerDown Op = %v, want %v", res.Op, OpNone)
	}

	// The original session is still the live one.
	e.PointerMove(Point{X: 100, Y: 0}, grid.Cell{X: 10, Y: 0})
	up := e.PointerUp(Point{X: 100, Y: 0}, grid.Cell{X: 10, Y: 0})
	if up.Box.ID != "mover" {
		t.Errorf("committed box = %q, want %q", up.Box.ID, "mover")
	}
}

func TestHandleGrabSelects(t *testing.T) {
	e := New(twoBoxLayout())
	e.PointerDown(HandleTarget("wall", HandleS), Point{}, grid.Cell{X: 6, Y: 3})
	if e.SelectedID() != "wall" {
		t.Errorf("SelectedID() = %q, want %q", e.SelectedID(), "wall")
	}
}

func TestThresholdIsConfigurable(t *testing.T) {
	e := New(twoBoxLayout())
	e.SetDragThreshold(20)

	e.PointerDown(BodyTarget("mover"), Point{X: 0, Y: 0}, grid.Cell{X: 0, Y: 0})
	res := e.PointerMove(Point{X: 15, Y: 0}, grid.Cell{X: 1, Y: 0})
	if res.Op != OpNone {
		t.Errorf("15px of travel promoted with a 20px threshold: %+v", res)
	}
	res = e.PointerMove(Point{X: 25, Y: 0}, grid.Cell{X: 2, Y: 0})
	if res.Op != OpMove {
		t.Errorf("25px of travel did not promote: %+v", res)
	}
}
