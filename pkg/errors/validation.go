package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches a six-digit hex color with a leading '#'.
var hexColorRegex = regexp.MustCompile(`(?i)^#[0-9A-F]{6}$`)

// ValidateHexColor checks that s is a color of the form #RRGGBB.
// Letters may be upper or lower case. field names the offending value in the
// returned error.
func ValidateHexColor(field, s string) error {
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "%s: %q is not a #RRGGBB color", field, s)
	}
	return nil
}

// ValidateRange checks that lo <= v <= hi.
func ValidateRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidRange, "%s: %v is outside [%v, %v]", field, v, lo, hi)
	}
	return nil
}

// ValidateMin checks that v >= lo.
func ValidateMin(field string, v, lo float64) error {
	if v < lo {
		return New(ErrCodeInvalidRange, "%s: %v is below %v", field, v, lo)
	}
	return nil
}

// ValidatePath validates a style or preset file path supplied on the command
// line. It rejects empty paths, control characters and overlong input.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
