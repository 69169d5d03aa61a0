package grid

import (
	"slices"
	"strings"
)

// Layout is a named, ordered collection of boxes.
//
// Box order is insertion order. The engine itself is order-agnostic; the
// order only matters to renderers, which key deterministic color assignment
// off it. Layout has value semantics: the With/Without/Replace methods
// return a new Layout with a fresh Boxes slice and never mutate the
// receiver.
type Layout struct {
	Name  string `json:"name"`
	Boxes []Box  `json:"boxes"`
}

// NewLayout returns an empty layout with the given name. The Boxes slice is
// non-nil so the result passes [ValidateLayout] immediately.
func NewLayout(name string) Layout {
	return Layout{Name: name, Boxes: []Box{}}
}

// Box returns the box with the given ID, if present.
func (l Layout) Box(id string) (Box, bool) {
	for _, b := range l.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}

// BoxByTitle returns the box whose title matches under case-insensitive
// trimmed comparison, if present.
func (l Layout) BoxByTitle(title string) (Box, bool) {
	key := titleKey(title)
	for _, b := range l.Boxes {
		if titleKey(b.Title) == key {
			return b, true
		}
	}
	return Box{}, false
}

// WithBox returns a copy of l with b appended.
func (l Layout) WithBox(b Box) Layout {
	boxes := make([]Box, 0, len(l.Boxes)+1)
	boxes = append(boxes, l.Boxes...)
	boxes = append(boxes, b)
	l.Boxes = boxes
	return l
}

// ReplaceBox returns a copy of l with the box matching b.ID replaced by b,
// preserving its position in the order. If no box has that ID, the copy is
// unchanged.
func (l Layout) ReplaceBox(b Box) Layout {
	boxes := slices.Clone(l.Boxes)
	for i := range boxes {
		if boxes[i].ID == b.ID {
			boxes[i] = b
			break
		}
	}
	l.Boxes = boxes
	return l
}

// WithoutBox returns a copy of l with the box matching id removed. If no box
// has that ID, the copy is unchanged.
func (l Layout) WithoutBox(id string) Layout {
	boxes := make([]Box, 0, len(l.Boxes))
	for _, b := range l.Boxes {
		if b.ID != id {
			boxes = append(boxes, b)
		}
	}
	l.Boxes = boxes
	return l
}

// TitleTaken reports whether any box other than excludeID already uses the
// title under case-insensitive trimmed comparison.
func (l Layout) TitleTaken(title, excludeID string) bool {
	key := titleKey(title)
	for _, b := range l.Boxes {
		if b.ID == excludeID {
			continue
		}
		if titleKey(b.Title) == key {
			return true
		}
	}
	return false
}

// titleKey normalizes a title for uniqueness comparison.
func titleKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
