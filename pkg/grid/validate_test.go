package grid

import (
	"slices"
	"testing"
)

func TestValidateBox(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		wantErrs []string
	}{
		{
			name: "Valid",
			box:  Box{ID: "a", Title: "Desk", X: 0, Y: 0, W: 4, H: 3},
		},
		{
			name: "FullGrid",
			box:  Box{ID: "a", Title: "All", X: 0, Y: 0, W: 24, H: 24},
		},
		{
			name:     "EmptyID",
			box:      Box{Title: "Desk", X: 0, Y: 0, W: 4, H: 3},
			wantErrs: []string{"id must not be empty"},
		},
		{
			name:     "WhitespaceTitle",
			box:      Box{ID: "a", Title: "   ", X: 0, Y: 0, W: 4, H: 3},
			wantErrs: []string{"title must not be empty"},
		},
		{
			name:     "NegativeX",
			box:      Box{ID: "a", Title: "Desk", X: -1, Y: 0, W: 4, H: 3},
			wantErrs: []string{"x must be between 0 and 23, got -1"},
		},
		{
			name:     "WidthTooLarge",
			box:      Box{ID: "a", Title: "Desk", X: 0, Y: 0, W: 40, H: 3},
			wantErrs: []string{"w must be between 1 and 24, got 40", "box extends past the right edge (x+w = 40, max 24)"},
		},
		{
			name:     "RightOverflow",
			box:      Box{ID: "a", Title: "Desk", X: 22, Y: 0, W: 4, H: 3},
			wantErrs: []string{"box extends past the right edge (x+w = 26, max 24)"},
		},
		{
			name:     "BottomOverflow",
			box:      Box{ID: "a", Title: "Desk", X: 0, Y: 22, W: 4, H: 4},
			wantErrs: []string{"box extends past the bottom edge (y+h = 26, max 24)"},
		},
		{
			name: "EverythingWrong",
			box:  Box{X: -1, Y: -1, W: 0, H: 0},
			wantErrs: []string{
				"id must not be empty",
				"title must not be empty",
				"x must be between 0 and 23, got -1",
				"y must be between 0 and 23, got -1",
				"w must be between 1 and 24, got 0",
				"h must be between 1 and 24, got 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateBox(tt.box)
			if res.Valid != (len(tt.wantErrs) == 0) {
				t.Errorf("Valid = %v, want %v", res.Valid, len(tt.wantErrs) == 0)
			}
			if !slices.Equal(res.Errors, tt.wantErrs) {
				t.Errorf("Errors = %q, want %q", res.Errors, tt.wantErrs)
			}
		})
	}
}

func TestValidateBoxWidthOneIsLegal(t *testing.T) {
	// The validation floor is 1 even though interactive resize stops at
	// MinBoxSize, so layouts from older tools stay loadable.
	res := ValidateBox(Box{ID: "a", Title: "Sliver", X: 0, Y: 0, W: 1, H: 1})
	if !res.Valid {
		t.Errorf("1x1 box should be valid, got errors %q", res.Errors)
	}
}

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		wantErrs []string
	}{
		{
			name:   "EmptyLayout",
			layout: NewLayout("office"),
		},
		{
			name: "ValidPair",
			layout: Layout{Name: "office", Boxes: []Box{
				{ID: "a", Title: "Desk", X: 0, Y: 0, W: 4, H: 3},
				{ID: "b", Title: "Shelf", X: 4, Y: 0, W: 4, H: 3},
			}},
		},
		{
			name:     "EmptyName",
			layout:   Layout{Name: "  ", Boxes: []Box{}},
			wantErrs: []string{"layout name must not be empty"},
		},
		{
			name:     "NilBoxes",
			layout:   Layout{Name: "office"},
			wantErrs: []string{"layout has no boxes list"},
		},
		{
			name: "DuplicateTitleCaseInsensitive",
			layout: Layout{Name: "office", Boxes: []Box{
				{ID: "a", Title: "Desk", X: 0, Y: 0, W: 4, H: 3},
				{ID: "b", Title: "  desk ", X: 4, Y: 0, W: 4, H: 3},
			}},
			wantErrs: []string{`duplicate title "  desk " (boxes 1 and 2)`},
		},
		{
			name: "DuplicateID",
			layout: Layout{Name: "office", Boxes: []Box{
				{ID: "a", Title: "Desk", X: 0, Y: 0, W: 4, H: 3},
				{ID: "a", Title: "Shelf", X: 4, Y: 0, W: 4, H: 3},
			}},
			wantErrs: []string{`duplicate id "a" (boxes 1 and 2)`},
		},
		{
			name: "Collision",
			layout: Layout{Name: "office", Boxes: []Box{
				{ID: "a", Title: "Desk", X: 0, Y: 0, W: 4, H: 3},
				{ID: "b", Title: "Shelf", X: 2, Y: 1, W: 4, H: 3},
			}},
			wantErrs: []string{`boxes "Desk" and "Shelf" overlap`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateLayout(tt.layout)
			if res.Valid != (len(tt.wantErrs) == 0) {
				t.Errorf("Valid = %v, want %v", res.Valid, len(tt.wantErrs) == 0)
			}
			if !slices.Equal(res.Errors, tt.wantErrs) {
				t.Errorf("Errors = %q, want %q", res.Errors, tt.wantErrs)
			}
		})
	}
}

func TestValidateLayoutErrorOrder(t *testing.T) {
	// All error sources accumulate in a fixed order: duplicate titles,
	// duplicate IDs, per-box violations, then collisions.
	l := Layout{Name: "office", Boxes: []Box{
		{ID: "a", Title: "Desk", X: 0, Y: 0, W: 4, H: 3},
		{ID: "a", Title: "desk", X: 2, Y: 1, W: 40, H: 3},
	}}

	want := []string{
		`duplicate title "desk" (boxes 1 and 2)`,
		`duplicate id "a" (boxes 1 and 2)`,
		"box 2: w must be between 1 and 24, got 40",
		"box 2: box extends past the right edge (x+w = 42, max 24)",
		`boxes "Desk" and "desk" overlap`,
	}

	res := ValidateLayout(l)
	if !slices.Equal(res.Errors, want) {
		t.Errorf("Errors = %q, want %q", res.Errors, want)
	}
}

func TestValidateLayoutSkipsEmptyKeysForUniqueness(t *testing.T) {
	// Empty titles and IDs are reported per box, never as duplicates of
	// each other.
	l := Layout{Name: "office", Boxes: []Box{
		{X: 0, Y: 0, W: 2, H: 2},
		{X: 4, Y: 0, W: 2, H: 2},
	}}

	want := []string{
		"box 1: id must not be empty",
		"box 1: title must not be empty",
		"box 2: id must not be empty",
		"box 2: title must not be empty",
	}

	res := ValidateLayout(l)
	if !slices.Equal(res.Errors, want) {
		t.Errorf("Errors = %q, want %q", res.Errors, want)
	}
}
