package errors

import (
	"strings"
	"unicode"
)

// ValidatePageName validates a page name for safety and correctness.
// Page names come from externally maintained model files and from HTTP
// query parameters, so the rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
//
// A name passing validation may still be absent from the graph; that is
// a lookup miss, not a validation error.
func ValidatePageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPage, "page name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPage, "page name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPage, "page name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPage, "page name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateRoleName validates a role name from the start-page mapping.
// Roles follow the same character rules as page names.
func ValidateRoleName(role string) error {
	if role == "" {
		return New(ErrCodeInvalidConfig, "role name cannot be empty")
	}
	if err := ValidatePageName(role); err != nil {
		return New(ErrCodeInvalidConfig, "invalid role name %q", role)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It rejects null bytes and control characters; relative and absolute
// paths are both allowed since the CLI writes wherever the user asks.
func ValidateOutputPath(path string) error {
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

	return nil
}
