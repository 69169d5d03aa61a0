package grid

// NormalizeBox forces a box's geometry into the grid: X and Y are clamped
// into [0, Size-1], W and H into [1, Size], and only then W and H shrink as
// needed so the box does not extend past the right or bottom edge.
//
// Identity fields pass through untouched. NormalizeBox is idempotent:
// applying it twice yields the same value as applying it once. Every box it
// returns satisfies [Box.InBounds].
func NormalizeBox(b Box) Box {
	b.X = Clamp(b.X, 0, Size-1)
	b.Y = Clamp(b.Y, 0, Size-1)
	b.W = Clamp(b.W, 1, Size)
	b.H = Clamp(b.H, 1, Size)
	if b.X+b.W > Size {
		b.W = Size - b.X
	}
	if b.Y+b.H > Size {
		b.H = Size - b.Y
	}
	return b
}
