package caption

import (
	"bytes"
	"encoding/json"
)

// Config is the JSON configuration object. Field order is the key order of
// the serialized output; optional keys are nil or zero when their feature is
// off.
type Config struct {
	Text        string         `json:"text"`
	FontFamily  string         `json:"fontFamily,omitempty"`
	FontSize    int            `json:"fontSize"`
	FontColor   string         `json:"fontColor"`
	Style       string         `json:"style"`
	TextAlign   Align          `json:"textAlign,omitempty"`
	LineSpacing int            `json:"lineSpacing,omitempty"`
	Alpha       *float64       `json:"alpha,omitempty"`
	Outline     *OutlineConfig `json:"outline,omitempty"`
	Shadow      *ShadowConfig  `json:"shadow,omitempty"`
	Box         *BoxConfig     `json:"box,omitempty"`
	Rotation    int            `json:"rotation,omitempty"`
	Spacing     int            `json:"spacing,omitempty"`
	Expansion   ExpansionMode  `json:"expansion,omitempty"`
	Fade        *FadeConfig    `json:"fade,omitempty"`
	Position    any            `json:"position"` // *PositionConfig, or an anchor name without CapRichConfig
}

// OutlineConfig is the "outline" key.
type OutlineConfig struct {
	Enabled bool   `json:"enabled"`
	Color   string `json:"color"`
	Width   int    `json:"width"`
}

// ShadowConfig is the "shadow" key. Zero offsets are omitted.
type ShadowConfig struct {
	Enabled bool   `json:"enabled"`
	Color   string `json:"color"`
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
}

// BoxConfig is the "box" key. Border, Width and Padding are omitted unless
// positive.
type BoxConfig struct {
	Enabled bool    `json:"enabled"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Border  int     `json:"border,omitempty"`
	Width   int     `json:"width,omitempty"`
	Padding int     `json:"padding,omitempty"`
}

// FadeConfig is the "fade" key. Durations are omitted unless positive.
type FadeConfig struct {
	Enabled bool    `json:"enabled"`
	FadeIn  float64 `json:"fadeIn,omitempty"`
	FadeOut float64 `json:"fadeOut,omitempty"`
}

// PositionConfig is the structured "position" key: either
// {"type":"custom","x":..,"y":..} or {"type":"preset","value":anchor}.
type PositionConfig struct {
	Type  string `json:"type"`
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
	Value Anchor `json:"value,omitempty"`
}

func buildConfig(p Params, prof Profile, filter string) Config {
	c := Config{
		Text:      p.text(),
		FontSize:  p.FontSize,
		FontColor: hashed(p.FontColor),
		Style:     filter,
	}
	if prof.Has(CapFontFile) {
		c.FontFamily = p.FontFamily
	}
	for _, f := range activeFeatures(p, prof) {
		if !f.required && !prof.Has(CapRichConfig) {
			continue
		}
		f.config(p, prof, &c)
	}
	return c
}

// hashed renders a color with exactly one leading '#'.
func hashed(c Color) string {
	return "#" + c.Hex()
}

// marshalConfig encodes c without HTML escaping, so '<', '>' and '&' in the
// caption text survive verbatim. indent "" yields a single line.
func marshalConfig(c Config, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
