package caption

import "strconv"

// feature is one optional part of a caption style. The same active predicate
// gates both the filter clauses and the config keys, so the two outputs can
// never disagree about whether a feature is on.
type feature struct {
	name   string
	cap    Capability // zero means every profile
	active func(Params) bool
	filter func(Params, Profile) []clause
	config func(Params, Profile, *Config)

	// required features appear in the config of every profile; the rest
	// only with CapRichConfig.
	required bool
}

// features is in filter order. Config key order is fixed by the Config struct.
var features = []feature{
	{
		name:   "align",
		active: alignActive,
		filter: func(p Params, _ Profile) []clause {
			return []clause{{"text_align", string(p.Align)}}
		},
		config: func(p Params, _ Profile, c *Config) { c.TextAlign = p.Align },
	},
	{
		name:   "line_spacing",
		active: func(p Params) bool { return p.LineSpacing > 0 },
		filter: func(p Params, _ Profile) []clause {
			return []clause{{"line_spacing", strconv.Itoa(p.LineSpacing)}}
		},
		config: func(p Params, _ Profile, c *Config) { c.LineSpacing = p.LineSpacing },
	},
	{
		name:   "alpha",
		active: func(p Params) bool { return p.Alpha < 1 },
		filter: func(p Params, _ Profile) []clause {
			return []clause{{"alpha", formatFloat(p.Alpha)}}
		},
		config: func(p Params, _ Profile, c *Config) {
			a := p.Alpha
			c.Alpha = &a
		},
	},
	{
		name:   "outline",
		cap:    CapOutline,
		active: outlineActive,
		filter: func(p Params, _ Profile) []clause {
			return []clause{
				{"borderw", strconv.Itoa(p.Outline.Width)},
				{"bordercolor", p.Outline.Color.Hex()},
			}
		},
		config: func(p Params, _ Profile, c *Config) {
			c.Outline = &OutlineConfig{Enabled: true, Color: hashed(p.Outline.Color), Width: p.Outline.Width}
		},
	},
	{
		name:   "shadow",
		cap:    CapShadow,
		active: shadowActive,
		filter: func(p Params, _ Profile) []clause {
			cs := []clause{{"shadowcolor", p.Shadow.Color.Hex()}}
			if p.Shadow.X != 0 {
				cs = append(cs, clause{"shadowx", strconv.Itoa(p.Shadow.X)})
			}
			if p.Shadow.Y != 0 {
				cs = append(cs, clause{"shadowy", strconv.Itoa(p.Shadow.Y)})
			}
			return cs
		},
		config: func(p Params, _ Profile, c *Config) {
			c.Shadow = &ShadowConfig{Enabled: true, Color: hashed(p.Shadow.Color), X: p.Shadow.X, Y: p.Shadow.Y}
		},
	},
	{
		name:   "box",
		active: func(p Params) bool { return p.Box.Enabled },
		filter: func(p Params, prof Profile) []clause {
			cs := []clause{
				{"box", "1"},
				{"boxcolor", p.Box.Color.Hex() + "@" + formatFloat(p.Box.Opacity)},
			}
			if v := positive(p.Box.Border); v != 0 {
				cs = append(cs, clause{"boxborderw", strconv.Itoa(v)})
			}
			if prof.Has(CapBoxSize) {
				if v := positive(p.Box.Width); v != 0 {
					cs = append(cs, clause{"box_w", strconv.Itoa(v)})
				}
				if v := positive(p.Box.Padding); v != 0 {
					cs = append(cs, clause{"box_padding", strconv.Itoa(v)})
				}
			}
			return cs
		},
		config: func(p Params, prof Profile, c *Config) {
			b := &BoxConfig{Enabled: true, Color: hashed(p.Box.Color), Opacity: p.Box.Opacity, Border: positive(p.Box.Border)}
			if prof.Has(CapBoxSize) {
				b.Width, b.Padding = positive(p.Box.Width), positive(p.Box.Padding)
			}
			c.Box = b
		},
	},
	{
		name:   "rotation",
		cap:    CapTransform,
		active: func(p Params) bool { return p.Rotation != 0 },
		filter: func(p Params, _ Profile) []clause {
			return []clause{{"text_rotation", strconv.Itoa(p.Rotation)}}
		},
		config: func(p Params, _ Profile, c *Config) { c.Rotation = p.Rotation },
	},
	{
		name:   "spacing",
		cap:    CapTransform,
		active: func(p Params) bool { return p.Spacing != 0 },
		filter: func(p Params, _ Profile) []clause {
			return []clause{{"text_shaping", "1"}, {"text_spacing", strconv.Itoa(p.Spacing)}}
		},
		config: func(p Params, _ Profile, c *Config) { c.Spacing = p.Spacing },
	},
	{
		name:   "expansion",
		cap:    CapExpansion,
		active: expansionActive,
		filter: func(p Params, _ Profile) []clause {
			return []clause{{"expansion", string(p.Expansion.Mode)}}
		},
		config: func(p Params, _ Profile, c *Config) { c.Expansion = p.Expansion.Mode },
	},
	{
		name:     "position",
		required: true,
		active:   func(Params) bool { return true },
		filter: func(p Params, _ Profile) []clause {
			off, ok := p.Position.customOffset()
			if !ok {
				x, y := p.Position.Anchor.Expr()
				return []clause{{"x", x}, {"y", y}}
			}
			var cs []clause
			if off.X != 0 {
				cs = append(cs, clause{"x", strconv.Itoa(off.X)})
			}
			if off.Y != 0 {
				cs = append(cs, clause{"y", strconv.Itoa(off.Y)})
			}
			return cs
		},
		config: func(p Params, prof Profile, c *Config) {
			off, custom := p.Position.customOffset()
			if !prof.Has(CapRichConfig) {
				if custom {
					c.Position = "custom"
				} else {
					c.Position = string(p.Position.Anchor.Resolve())
				}
				return
			}
			if custom {
				c.Position = &PositionConfig{Type: "custom", X: off.X, Y: off.Y}
				return
			}
			c.Position = &PositionConfig{Type: "preset", Value: p.Position.Anchor.Resolve()}
		},
	},
	{
		name:   "fade",
		cap:    CapFade,
		active: fadeActive,
		filter: func(p Params, _ Profile) []clause {
			var cs []clause
			if in := positive(p.Fade.In); in != 0 {
				cs = append(cs, clause{"enable", fadeExpr(0, in)})
			}
			if out := positive(p.Fade.Out); out != 0 {
				cs = append(cs, clause{"enable", fadeExpr(out, out+fadeOutWindow)})
			}
			return cs
		},
		config: func(p Params, _ Profile, c *Config) {
			c.Fade = &FadeConfig{Enabled: true, FadeIn: positive(p.Fade.In), FadeOut: positive(p.Fade.Out)}
		},
	},
}

// activeFeatures returns the features the profile supports and p turns on.
func activeFeatures(p Params, prof Profile) []feature {
	var out []feature
	for _, f := range features {
		if f.cap != 0 && !prof.Has(f.cap) {
			continue
		}
		if f.active(p) {
			out = append(out, f)
		}
	}
	return out
}

// ActiveFeatures names the optional features that compile to output for p
// under prof, in filter order. "position" is always present.
func ActiveFeatures(p Params, prof Profile) []string {
	fs := activeFeatures(p, prof)
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.name
	}
	return names
}

func alignActive(p Params) bool {
	return p.Align != "" && p.Align != AlignLeft
}

func outlineActive(p Params) bool {
	return p.Outline.Enabled && p.Outline.Width > 0
}

func shadowActive(p Params) bool {
	return p.Shadow.Enabled && (p.Shadow.X != 0 || p.Shadow.Y != 0)
}

func expansionActive(p Params) bool {
	return p.Expansion.Enabled && p.Expansion.Mode != "" && p.Expansion.Mode != ExpansionNone
}

func fadeActive(p Params) bool {
	return p.Fade.Enabled && (positive(p.Fade.In) != 0 || positive(p.Fade.Out) != 0)
}

// positive returns v when it is above zero and zero otherwise. Sub-values
// that are emitted only when positive go through it in both outputs, so a
// negative value is dropped from the filter and the config alike.
func positive[T int | float64](v T) T {
	if v > 0 {
		return v
	}
	return 0
}
