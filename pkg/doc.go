// Package pkg provides the core libraries for gridplan layout editing.
//
// # Overview
//
// Gridplan edits named layouts of non-overlapping rectangular boxes on a
// fixed 24×24 cell grid. The pkg directory is organized into four areas:
//
//  1. [grid] - Geometry and validation engine (pure, deterministic)
//  2. [editor] - Pointer-interaction state machine and single-step edits
//  3. [store] - JSON persistence with a validation-gated atomic save
//  4. [errors] - Structured errors with stable codes
//
// # Architecture
//
// The typical data flow through gridplan:
//
//	layout file (JSON)
//	         ↓
//	    [store] package (decode + semantic gate)
//	         ↓
//	    [editor] package (gestures, moves, resizes, creates)
//	         ↓
//	    [grid] package (collision + bounds decisions per tick)
//	         ↓
//	    [store] package (validated atomic write-back)
//
// The terminal UI and CLI commands live under internal/ and consume these
// packages; nothing here imports a terminal library.
package pkg
