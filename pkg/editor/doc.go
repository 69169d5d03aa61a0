// Package editor implements the pointer-driven interaction state machine
// for composing box layouts on the grid.
//
// # Overview
//
// An [Editor] owns the current [grid.Layout] and a selection, and consumes
// explicit pointer events injected by a renderer: [Editor.PointerDown],
// [Editor.PointerMove], [Editor.PointerUp], and [Editor.Cancel]. The
// renderer owns all subscription and coordinate-conversion concerns; the
// editor only ever sees a tagged [Target], screen coordinates in nominal
// pixels, and grid cells.
//
// # Gestures
//
// A gesture runs from pointer-down to pointer-up (or Escape) and is the only
// mutable session state in the core:
//
//	Idle → Pending → {Move | Resize | Create} → commit/cancel → Idle
//
// Pointer-down on a box body enters Pending: nothing moves until the pointer
// travels past the drag threshold, which is what distinguishes a click
// (select) from a drag. Pointer-down on a resize handle or on empty grid
// space is an intentional act and starts a Resize or Create immediately.
//
// On every pointer-move tick the editor builds a candidate rectangle from
// clamped arithmetic and asks [grid.WouldCollide] whether it is legal.
// Move and Resize freeze on collision: an illegal candidate leaves the last
// valid configuration untouched, and a later legal tick jumps straight to
// its candidate. Create never freezes; its preview always tracks the pointer
// and legality is enforced only at commit time.
//
// The layout itself is never touched while a gesture is live. Commit
// replaces exactly one box (or appends one, for Create); cancel discards the
// session leaving the origin box bit-for-bit intact.
//
// # Single-Step Operations
//
// Keyboard and headless paths use the single-step operations
// ([Editor.NewBoxAt], [Editor.MoveSelected], [Editor.ResizeSelected],
// [Editor.DeleteSelected], [Editor.RenameSelected]), which run the same
// engine checks as gestures. Illegal steps are flagged no-ops, never errors.
//
// # Concurrency
//
// The editor is single-threaded by contract: events must be delivered one
// at a time, in order, from one goroutine. Nothing here blocks or spawns
// concurrent work.
package editor
