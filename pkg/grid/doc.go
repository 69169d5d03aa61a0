// Package grid provides the geometry and validation engine for box layouts
// on a fixed 24×24 cell grid.
//
// # Overview
//
// Gridplan composes named layouts of rectangular boxes that must stay inside
// the grid and must never overlap each other. This package defines the value
// types ([Box], [Layout], [Cell]) and the pure functions that decide what a
// legal configuration is: bounds validation, pairwise collision detection,
// free-position search, and coordinate normalization.
//
// Everything here is deterministic and side-effect free. Functions take
// values and return fresh results; no call mutates its arguments and no call
// touches global state. The interactive editor (package editor) consults
// these functions on every pointer tick, so the hot paths ([WouldCollide])
// stay allocation-light.
//
// # Basic Usage
//
// Build a layout, validate it, and search for room:
//
//	l := grid.NewLayout("office")
//	l = l.WithBox(grid.Box{ID: "a", Title: "Desk", X: 0, Y: 0, W: 4, H: 3})
//
//	if res := grid.ValidateLayout(l); !res.Valid {
//	    // res.Errors holds one human-readable message per violation.
//	}
//
//	if cell, ok := grid.FindFreePosition(4, 3, l.Boxes); ok {
//	    // cell is the topmost-then-leftmost corner that fits a 4×3 box.
//	}
//
// # Collision Semantics
//
// Boxes are half-open rectangles: a box covers cells [X, X+W) × [Y, Y+H).
// Two boxes whose edges touch exactly do not collide. [Box.Overlaps] is the
// single source of truth for this predicate; every other overlap decision in
// the repository delegates to it.
//
// # Error Policy
//
// The engine never panics on well-typed values and never returns Go errors
// for semantic problems. Violations are reported as ordered human-readable
// strings inside [ValidationResult] and [CollisionResult]; callers decide
// whether a given result blocks an operation or merely warns.
package grid
