package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds identifiers and category names.
const maxNameLength = 256

// ValidateID validates an item or node identifier supplied by a user.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}
	if len(id) > maxNameLength {
		return New(ErrCodeInvalidInput, "identifier too long (max %d characters)", maxNameLength)
	}
	if hasControl(id) {
		return New(ErrCodeInvalidInput, "identifier contains invalid control characters")
	}
	return nil
}

// ValidateCategory validates a category filter. The empty string is allowed
// and means "no filter".
func ValidateCategory(name string) error {
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidCategory, "category too long (max %d characters)", maxNameLength)
	}
	if hasControl(name) {
		return New(ErrCodeInvalidCategory, "category contains invalid control characters")
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidCategory, "category has leading or trailing whitespace: %q", name)
	}
	return nil
}

// ValidatePath validates a local file path given on the command line or in
// a config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if hasControl(path) {
		return New(ErrCodeInvalidPath, "path contains invalid control characters")
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file: %q", path)
	}

	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if r == '\x00' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}
