// Package store persists layouts as JSON files.
//
// # Overview
//
// The persisted format mirrors [grid.Layout] directly:
//
//	{
//	  "name": "office",
//	  "boxes": [
//	    {"id": "a", "title": "Desk", "x": 0, "y": 0, "w": 4, "h": 3}
//	  ]
//	}
//
// # Trust Boundary
//
// [Load] and [Read] perform structural decoding only: malformed JSON or
// wrongly-typed fields fail with an error before the engine ever sees the
// value, but semantically invalid layouts (out-of-bounds boxes, duplicate
// titles, overlaps) decode fine. Callers must gate loaded values through
// [grid.ValidateLayout] before trusting them.
//
// [Save] enforces the gate itself: it refuses to write a layout that fails
// validation, so a file written by this package is always loadable and
// valid. Writes are atomic, via a temp file in the target directory renamed
// over the destination, so a crash mid-save never corrupts an existing file.
//
// There is no file watching and no network backend.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/gridplan/pkg/errors"
	"github.com/matzehuels/gridplan/pkg/grid"
)

// Read decodes a layout from r. The decode is structural only; see the
// package comment for the trust boundary. Read does not close r.
func Read(r io.Reader) (grid.Layout, error) {
	var l grid.Layout
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return grid.Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return l, nil
}

// Write encodes a layout as indented JSON to w. It does not validate;
// use [Save] for the gated file path.
func Write(l grid.Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// Load reads the layout file at path. A missing file is reported with
// ErrCodeLayoutNotFound so callers can distinguish "start fresh" from a
// broken file.
func Load(path string) (grid.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return grid.Layout{}, errors.Wrap(errors.ErrCodeLayoutNotFound, err, "no layout file at %s", path)
		}
		return grid.Layout{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return grid.Layout{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "load %s", path)
	}
	return l, nil
}

// Save validates the layout and writes it to path atomically: the JSON is
// written to a temp file in the target directory, synced, and renamed over
// the destination. An invalid layout is refused with ErrCodeInvalidLayout
// carrying the first validation message; the file is never touched.
func Save(path string, l grid.Layout) error {
	if res := grid.ValidateLayout(l); !res.Valid {
		return errors.New(errors.ErrCodeInvalidLayout, "refusing to save invalid layout: %s", res.Errors[0])
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Write(l, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpName, path, err)
	}
	return nil
}
