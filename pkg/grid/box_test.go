package grid

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{
			name: "Identical",
			a:    Box{X: 0, Y: 0, W: 4, H: 4},
			b:    Box{X: 0, Y: 0, W: 4, H: 4},
			want: true,
		},
		{
			name: "PartialOverlap",
			a:    Box{X: 0, Y: 0, W: 4, H: 4},
			b:    Box{X: 2, Y: 2, W: 4, H: 4},
			want: true,
		},
		{
			name: "EdgeTouchHorizontal",
			a:    Box{X: 0, Y: 0, W: 4, H: 4},
			b:    Box{X: 4, Y: 0, W: 4, H: 4},
			want: false,
		},
		{
			name: "EdgeTouchVertical",
			a:    Box{X: 0, Y: 0, W: 4, H: 4},
			b:    Box{X: 0, Y: 4, W: 4, H: 4},
			want: false,
		},
		{
			name: "CornerTouch",
			a:    Box{X: 0, Y: 0, W: 4, H: 4},
			b:    Box{X: 4, Y: 4, W: 4, H: 4},
			want: false,
		},
		{
			name: "Disjoint",
			a:    Box{X: 0, Y: 0, W: 2, H: 2},
			b:    Box{X: 10, Y: 10, W: 2, H: 2},
			want: false,
		},
		{
			name: "Contained",
			a:    Box{X: 0, Y: 0, W: 10, H: 10},
			b:    Box{X: 3, Y: 3, W: 2, H: 2},
			want: true,
		},
		{
			name: "CrossShape",
			a:    Box{X: 0, Y: 10, W: 24, H: 2},
			b:    Box{X: 10, Y: 0, W: 2, H: 24},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			// The predicate is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"TopLeft", Cell{X: 2, Y: 3}, true},
		{"Interior", Cell{X: 4, Y: 4}, true},
		{"BottomRightInside", Cell{X: 5, Y: 4}, true},
		{"RightEdgeOutside", Cell{X: 6, Y: 3}, false},
		{"BottomEdgeOutside", Cell{X: 2, Y: 5}, false},
		{"LeftOfBox", Cell{X: 1, Y: 4}, false},
		{"AboveBox", Cell{X: 3, Y: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.cell); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestBoxInBounds(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"FullGrid", Box{X: 0, Y: 0, W: 24, H: 24}, true},
		{"SingleCell", Box{X: 23, Y: 23, W: 1, H: 1}, true},
		{"NegativeX", Box{X: -1, Y: 0, W: 2, H: 2}, false},
		{"ZeroWidth", Box{X: 0, Y: 0, W: 0, H: 2}, false},
		{"RightOverflow", Box{X: 22, Y: 0, W: 4, H: 2}, false},
		{"BottomOverflow", Box{X: 0, Y: 22, W: 2, H: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.InBounds(); got != tt.want {
				t.Errorf("InBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
