package errors

import (
	"strings"
	"unicode"
)

// ValidateSlotName validates a persistence slot name for safety.
// Slot names become file names and cache keys, so they must be simple
// identifiers without path components.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateSlotName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "slot name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "slot name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "slot name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "slot name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "slot name contains invalid characters: %q", "..")
	}

	return nil
}

// ValidateOutputFilename validates an export filename.
// It ensures the filename is a simple basename without path traversal.
// A directory component is allowed as long as it does not escape upward.
func ValidateOutputFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "output filename cannot be empty")
	}

	if strings.Contains(filename, "\x00") {
		return New(ErrCodeInvalidInput, "output filename contains null byte")
	}

	if strings.Contains(filename, "..") {
		return New(ErrCodeInvalidInput, "output filename cannot contain path traversal")
	}

	return nil
}
