package caption

import (
	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// Validate checks p at the input boundary: every color must be #RRGGBB and
// every numeric field must lie in its documented range. Compile does not
// call Validate; callers that accept free-form input should. Enumerations are
// not checked: unknown anchors fall back to bottom_center and other values are
// emitted as given.
//
// The first violation is returned as an *errors.Error carrying
// ErrCodeInvalidColor or ErrCodeInvalidRange.
func Validate(p Params) error {
	for _, c := range []struct {
		field string
		color Color
	}{
		{"font_color", p.FontColor},
		{"outline.color", p.Outline.Color},
		{"shadow.color", p.Shadow.Color},
		{"box.color", p.Box.Color},
	} {
		if err := errs.ValidateHexColor(c.field, string(c.color)); err != nil {
			return err
		}
	}

	if p.FontSize <= 0 {
		return errs.New(errs.ErrCodeInvalidRange, "font_size: %d must be positive", p.FontSize)
	}

	for _, m := range []struct {
		field string
		v     int
	}{
		{"line_spacing", p.LineSpacing},
		{"outline.width", p.Outline.Width},
		{"box.border", p.Box.Border},
		{"box.width", p.Box.Width},
		{"box.padding", p.Box.Padding},
		{"padding", p.Padding},
	} {
		if err := errs.ValidateMin(m.field, float64(m.v), 0); err != nil {
			return err
		}
	}

	if err := errs.ValidateRange("alpha", p.Alpha, 0, 1); err != nil {
		return err
	}
	if err := errs.ValidateRange("box.opacity", p.Box.Opacity, 0, 1); err != nil {
		return err
	}
	if err := errs.ValidateMin("fade.in", p.Fade.In, 0); err != nil {
		return err
	}
	if err := errs.ValidateMin("fade.out", p.Fade.Out, 0); err != nil {
		return err
	}

	return checkFinite(p)
}
