package errors

import (
	"strings"
	"unicode"
)

// ValidateName validates a parser or style name supplied on the command line.
//
// Style names are looked up as files inside the user style directory, so a
// name must be a plain basename:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "%s name cannot be empty", kind)
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "%s name too long (max 128 characters)", kind)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "%s name contains invalid control characters", kind)
		}
	}

	if strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidName, "%s name cannot contain path separators: %q", kind, name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidName, "invalid %s name: %q", kind, name)
	}

	return nil
}
