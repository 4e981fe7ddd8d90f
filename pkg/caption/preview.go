package caption

import (
	"fmt"
	"math"
	"strings"
)

// Declaration is one CSS property.
type Declaration struct {
	Property string
	Value    string
}

// PreviewStyle is an ordered list of CSS declarations that approximates the
// compiled caption in a browser preview.
type PreviewStyle []Declaration

// Get returns the value of property, or "" if it is not declared.
func (s PreviewStyle) Get(property string) string {
	for _, d := range s {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

// String renders the declarations one per line, "property: value;".
func (s PreviewStyle) String() string {
	var b strings.Builder
	for _, d := range s {
		fmt.Fprintf(&b, "%s: %s;\n", d.Property, d.Value)
	}
	return b.String()
}

// minPreviewFontSize keeps scaled-down previews legible.
const minPreviewFontSize = 12

// Preview builds the CSS preview for p. Placement, outline, shadow and box use
// the same anchor table and feature predicates as Compile.
func Preview(p Params) PreviewStyle {
	s := PreviewStyle{
		{"font-family", p.FontFamily},
		{"font-size", formatFloat(math.Max(float64(p.FontSize)*0.5, minPreviewFontSize)) + "px"},
		{"color", hashed(p.FontColor)},
		{"text-align", string(alignOrDefault(p.Align))},
		{"opacity", formatFloat(p.Alpha)},
	}

	pl := previewPlacement(p.Position)
	rotate := fmt.Sprintf("rotate(%ddeg)", p.Rotation)
	if pl.Transform != "" && pl.Transform != "none" {
		rotate = pl.Transform + " " + rotate
	}
	s = append(s, Declaration{"transform", rotate})

	spacing := "normal"
	if p.Spacing != 0 {
		spacing = fmt.Sprintf("%dpx", p.Spacing)
	}
	s = append(s, Declaration{"letter-spacing", spacing})

	s = append(s,
		Declaration{"top", orAuto(pl.Top)},
		Declaration{"right", orAuto(pl.Right)},
		Declaration{"bottom", orAuto(pl.Bottom)},
		Declaration{"left", orAuto(pl.Left)},
		Declaration{"text-shadow", textShadow(p)},
	)

	return append(s, boxDeclarations(p.Box)...)
}

func previewPlacement(pos Position) Placement {
	if off, ok := pos.customOffset(); ok {
		return Placement{
			Top:       fmt.Sprintf("%dpx", off.Y),
			Left:      fmt.Sprintf("%dpx", off.X),
			Transform: "none",
		}
	}
	return pos.Anchor.Placement()
}

// textShadow draws the outline as a ring of offset copies, then the shadow.
func textShadow(p Params) string {
	var parts []string
	if outlineActive(p) {
		w := p.Outline.Width
		for i := -w; i <= w; i++ {
			for j := -w; j <= w; j++ {
				if i != 0 || j != 0 {
					parts = append(parts, fmt.Sprintf("%dpx %dpx 0px %s", i, j, hashed(p.Outline.Color)))
				}
			}
		}
	}
	if shadowActive(p) {
		parts = append(parts, fmt.Sprintf("%dpx %dpx 0px %s", p.Shadow.X, p.Shadow.Y, hashed(p.Shadow.Color)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func boxDeclarations(b Box) []Declaration {
	if !b.Enabled {
		return []Declaration{
			{"background-color", "transparent"},
			{"padding", "0"},
			{"border-radius", "0"},
			{"border", "none"},
			{"box-shadow", "none"},
		}
	}
	out := []Declaration{
		{"background-color", b.Color.RGBA(b.Opacity)},
		{"padding", "8px 16px"},
		{"border-radius", "4px"},
	}
	if b.Border > 0 {
		return append(out,
			Declaration{"border", fmt.Sprintf("%dpx solid %s", b.Border, b.Color.RGBA(math.Min(b.Opacity+0.2, 1)))},
			Declaration{"box-shadow", fmt.Sprintf("0 0 %dpx %s", b.Border*2, b.Color.RGBA(b.Opacity*0.5))},
		)
	}
	return append(out, Declaration{"border", "none"}, Declaration{"box-shadow", "none"})
}

func alignOrDefault(a Align) Align {
	if a == "" {
		return AlignLeft
	}
	return a
}

func orAuto(v string) string {
	if v == "" {
		return "auto"
	}
	return v
}
