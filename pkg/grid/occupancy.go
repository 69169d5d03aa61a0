package grid

// occupancy is an ephemeral bitmap of covered cells, built on demand for
// free-position search and discarded afterwards. It is never persisted.
type occupancy [Size][Size]bool

// mark covers every cell of b, clipped to the grid so malformed boxes cannot
// index out of range.
func (o *occupancy) mark(b Box) {
	for y := max(b.Y, 0); y < min(b.Bottom(), Size); y++ {
		for x := max(b.X, 0); x < min(b.Right(), Size); x++ {
			o[y][x] = true
		}
	}
}

// free reports whether the w×h footprint with top-left corner (x, y) is
// entirely uncovered.
func (o *occupancy) free(x, y, w, h int) bool {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if o[yy][xx] {
				return false
			}
		}
	}
	return true
}

// FindFreePosition returns the top-left corner of the first w×h region not
// covered by any existing box, scanning candidate corners in row-major order
// (top row first, left to right within a row). The result is deterministic:
// always the topmost, then leftmost, fit.
//
// It returns false when no region fits, including when w or h is outside
// [1, Size].
func FindFreePosition(w, h int, boxes []Box) (Cell, bool) {
	if w < 1 || h < 1 || w > Size || h > Size {
		return Cell{}, false
	}

	var occ occupancy
	for _, b := range boxes {
		occ.mark(b)
	}

	for y := 0; y <= Size-h; y++ {
		for x := 0; x <= Size-w; x++ {
			if occ.free(x, y, w, h) {
				return Cell{X: x, Y: y}, true
			}
		}
	}
	return Cell{}, false
}
