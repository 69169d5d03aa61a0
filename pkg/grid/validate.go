package grid

import (
	"fmt"
	"strings"
)

// ValidationResult is the outcome of a semantic validation pass. Errors
// holds one human-readable message per violation, in a deterministic order.
// A fresh result is produced per call and never mutated afterwards.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateBox checks a single box against the grid invariants: non-empty ID,
// non-empty trimmed title, X and Y in [0, 23], W and H in [1, 24], and the
// two overflow conditions X+W ≤ 24 and Y+H ≤ 24.
//
// All failures accumulate; nothing short-circuits. Coordinates are ints, so
// the integer-ness check of the persisted format is enforced by decoding,
// not here.
func ValidateBox(b Box) ValidationResult {
	errs := boxErrors(b)
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// boxErrors returns the violation messages for a single box.
func boxErrors(b Box) []string {
	var errs []string
	if b.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if strings.TrimSpace(b.Title) == "" {
		errs = append(errs, "title must not be empty")
	}
	if b.X < 0 || b.X > Size-1 {
		errs = append(errs, fmt.Sprintf("x must be between 0 and %d, got %d", Size-1, b.X))
	}
	if b.Y < 0 || b.Y > Size-1 {
		errs = append(errs, fmt.Sprintf("y must be between 0 and %d, got %d", Size-1, b.Y))
	}
	if b.W < 1 || b.W > Size {
		errs = append(errs, fmt.Sprintf("w must be between 1 and %d, got %d", Size, b.W))
	}
	if b.H < 1 || b.H > Size {
		errs = append(errs, fmt.Sprintf("h must be between 1 and %d, got %d", Size, b.H))
	}
	if b.X+b.W > Size {
		errs = append(errs, fmt.Sprintf("box extends past the right edge (x+w = %d, max %d)", b.X+b.W, Size))
	}
	if b.Y+b.H > Size {
		errs = append(errs, fmt.Sprintf("box extends past the bottom edge (y+h = %d, max %d)", b.Y+b.H, Size))
	}
	return errs
}

// ValidateLayout checks a whole layout. It requires a non-empty name and a
// non-nil Boxes slice; a nil slice fails fast with a single error because no
// per-box checks can run without one.
//
// Otherwise every error source accumulates into one ordered list:
// title-uniqueness violations (case-insensitive, trimmed), then
// ID-uniqueness violations, then per-box violations in box order (messages
// prefixed with the 1-based box index), then pairwise collision messages in
// (i<j) scan order.
func ValidateLayout(l Layout) ValidationResult {
	var errs []string

	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, "layout name must not be empty")
	}
	if l.Boxes == nil {
		errs = append(errs, "layout has no boxes list")
		return ValidationResult{Valid: false, Errors: errs}
	}

	seenTitle := make(map[string]int, len(l.Boxes))
	for i, b := range l.Boxes {
		key := titleKey(b.Title)
		if key == "" {
			continue // reported per-box below
		}
		if first, dup := seenTitle[key]; dup {
			errs = append(errs, fmt.Sprintf("duplicate title %q (boxes %d and %d)", b.Title, first+1, i+1))
		} else {
			seenTitle[key] = i
		}
	}

	seenID := make(map[string]int, len(l.Boxes))
	for i, b := range l.Boxes {
		if b.ID == "" {
			continue // reported per-box below
		}
		if first, dup := seenID[b.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate id %q (boxes %d and %d)", b.ID, first+1, i+1))
		} else {
			seenID[b.ID] = i
		}
	}

	for i, b := range l.Boxes {
		for _, msg := range boxErrors(b) {
			errs = append(errs, fmt.Sprintf("box %d: %s", i+1, msg))
		}
	}

	for _, c := range DetectCollisions(l.Boxes).Collisions {
		errs = append(errs, c.Message)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
