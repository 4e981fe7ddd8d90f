package caption

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// Color is a six-digit hex color including the leading '#', e.g. "#FFD700".
type Color string

// ParseColor normalizes s into a Color. A missing '#' is added; anything that
// is not #RRGGBB afterwards is rejected with ErrCodeInvalidColor.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if err := errs.ValidateHexColor("color", s); err != nil {
		return "", err
	}
	return Color(s), nil
}

// MustColor is like ParseColor but panics on malformed input. It is meant for
// package-level tables such as the preset catalog.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color digits without the leading '#'.
func (c Color) Hex() string {
	return strings.TrimPrefix(string(c), "#")
}

// String returns the color in #RRGGBB form.
func (c Color) String() string { return string(c) }

// Valid reports whether c is a well-formed #RRGGBB color.
func (c Color) Valid() bool {
	return errs.ValidateHexColor("color", string(c)) == nil
}

// RGBA renders c as a CSS rgba() value with the given alpha. Malformed colors
// render as black.
func (c Color) RGBA(alpha float64) string {
	r, g, b := c.rgb()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatFloat(alpha))
}

func (c Color) rgb() (uint8, uint8, uint8) {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 0, 0, 0
	}
	return col.RGB255()
}
