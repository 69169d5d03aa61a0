package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateLayoutName validates a layout name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters
//   - Maximum length of 128 characters
//
// Semantic layout validation (bounds, uniqueness, overlaps) is done
// separately by the grid package; this only guards the CLI boundary.
func ValidateLayoutName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "layout name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "layout name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "layout name contains invalid control characters")
		}
	}

	return nil
}

// ValidateTitle validates a box title entered by the user.
//
// Validation rules:
//   - No empty or whitespace-only titles
//   - No control characters
//   - Maximum length of 64 characters
//
// Uniqueness against other boxes is a layout-level concern and is checked
// by the editor, not here.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidTitle, "title cannot be empty")
	}

	const maxTitleLength = 64
	if len(title) > maxTitleLength {
		return New(ErrCodeInvalidTitle, "title too long (max %d characters)", maxTitleLength)
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "title contains invalid control characters")
		}
	}

	return nil
}

// ValidateLayoutPath validates a layout file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must end in .json (the only persisted layout format)
func ValidateLayoutPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.ToLower(filepath.Ext(path)) != ".json" {
		return New(ErrCodeInvalidPath, "layout files must have a .json extension, got %q", filepath.Ext(path))
	}

	return nil
}
