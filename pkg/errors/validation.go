package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength bounds the length of transform, shape and fractal names.
const MaxNameLength = 256

// ValidateName validates an entity name as it appears in NFSF records.
// Names are single tokens: they must be non-empty, at most MaxNameLength
// bytes, and free of whitespace and control characters.
//
// The name "-" is reserved as the "no transform" marker in BRANCH records
// and is rejected here.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidInput, "%s name too long (max %d characters)", kind, MaxNameLength)
	}

	if name == "-" {
		return New(ErrCodeInvalidInput, "%s name %q is reserved", kind, name)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s name %q contains whitespace or control characters", kind, name)
		}
	}

	return nil
}

// ValidateOutputPath validates a derived output path before anything is
// written to it.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}
	return nil
}
