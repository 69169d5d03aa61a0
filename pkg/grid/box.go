package grid

// Grid dimensions and interaction policy.
const (
	// Size is the number of cells along each axis. The grid is always
	// Size×Size and boxes must fit entirely inside it.
	Size = 24

	// MinBoxSize is the smallest width and height the editor will produce
	// when resizing or creating a box. The validation floor remains 1, so
	// layouts written by older tools stay loadable; interaction never
	// shrinks a box below this value.
	MinBoxSize = 2
)

// Cell is a single grid coordinate. X grows rightward, Y grows downward,
// both zero-based.
type Cell struct {
	X int
	Y int
}

// Box is a rectangle of grid cells with identity.
//
// A box covers the half-open range [X, X+W) × [Y, Y+H). Valid boxes satisfy
// 0 ≤ X ≤ 23, 0 ≤ Y ≤ 23, 1 ≤ W ≤ 24, 1 ≤ H ≤ 24, X+W ≤ 24, and Y+H ≤ 24;
// see [ValidateBox]. Within a [Layout], ID is unique and Title is unique
// under case-insensitive trimmed comparison.
//
// Box is a value type: operations that "change" a box return a new value.
type Box struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
}

// Right returns the exclusive right edge, X+W.
func (b Box) Right() int { return b.X + b.W }

// Bottom returns the exclusive bottom edge, Y+H.
func (b Box) Bottom() int { return b.Y + b.H }

// Rect returns the geometry of b without its identity.
// Two boxes with equal Rect occupy exactly the same cells.
func (b Box) Rect() (x, y, w, h int) { return b.X, b.Y, b.W, b.H }

// Overlaps reports whether b and o share at least one cell.
//
// Boxes are half-open rectangles, so two boxes whose edges touch exactly
// (b.X+b.W == o.X) do not overlap. This predicate is the single source of
// truth for every collision decision in the repository.
func (b Box) Overlaps(o Box) bool {
	return !(b.Right() <= o.X || o.Right() <= b.X || b.Bottom() <= o.Y || o.Bottom() <= b.Y)
}

// Contains reports whether the cell lies inside b.
func (b Box) Contains(c Cell) bool {
	return c.X >= b.X && c.X < b.Right() && c.Y >= b.Y && c.Y < b.Bottom()
}

// InBounds reports whether b lies entirely inside the grid with positive size.
func (b Box) InBounds() bool {
	return b.X >= 0 && b.Y >= 0 && b.W >= 1 && b.H >= 1 && b.Right() <= Size && b.Bottom() <= Size
}

// Clamp constrains v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
