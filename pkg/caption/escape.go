package caption

import (
	"strings"

	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// Escape prefixes every double quote in s with a backslash and wraps the
// result in double quotes, producing a string literal that automation tools
// accept in a text field.
func Escape(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Unescape inverts Escape: it strips the surrounding quotes and turns every
// \" back into ". Unescape(Escape(s)) == s for every s.
func Unescape(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", errs.New(errs.ErrCodeInvalidInput, "escaped config must be wrapped in double quotes")
	}
	return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`), nil
}
