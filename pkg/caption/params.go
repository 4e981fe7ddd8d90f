package caption

// DefaultText is the caption text compiled when Params.Text is empty.
const DefaultText = "Welcome to our tutorial!"

// Align is the horizontal alignment of multi-line caption text.
type Align string

// Alignments accepted by the text-overlay tool.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Aligns lists the valid alignments.
var Aligns = []Align{AlignLeft, AlignCenter, AlignRight}

// ExpansionMode controls how the overlay tool expands the caption text.
type ExpansionMode string

// Expansion modes.
const (
	ExpansionNone     ExpansionMode = "none"
	ExpansionNormal   ExpansionMode = "normal"
	ExpansionStrftime ExpansionMode = "strftime"
)

// ExpansionModes lists the valid expansion modes.
var ExpansionModes = []ExpansionMode{ExpansionNone, ExpansionNormal, ExpansionStrftime}

// Outline draws a border around each glyph.
type Outline struct {
	Enabled bool  `toml:"enabled" yaml:"enabled" json:"enabled"`
	Color   Color `toml:"color" yaml:"color" json:"color"`
	Width   int   `toml:"width" yaml:"width" json:"width"`
}

// Shadow draws a solid drop shadow offset by (X, Y) pixels.
type Shadow struct {
	Enabled bool  `toml:"enabled" yaml:"enabled" json:"enabled"`
	Color   Color `toml:"color" yaml:"color" json:"color"`
	X       int   `toml:"x" yaml:"x" json:"x"`
	Y       int   `toml:"y" yaml:"y" json:"y"`
}

// Box is the background rectangle behind the caption. Width and Padding are
// only emitted by profiles with CapBoxSize.
type Box struct {
	Enabled bool    `toml:"enabled" yaml:"enabled" json:"enabled"`
	Color   Color   `toml:"color" yaml:"color" json:"color"`
	Opacity float64 `toml:"opacity" yaml:"opacity" json:"opacity"`
	Border  int     `toml:"border" yaml:"border" json:"border"`
	Width   int     `toml:"width" yaml:"width" json:"width"`
	Padding int     `toml:"padding" yaml:"padding" json:"padding"`
}

// Expansion enables text expansion in the overlay tool.
type Expansion struct {
	Enabled bool          `toml:"enabled" yaml:"enabled" json:"enabled"`
	Mode    ExpansionMode `toml:"mode" yaml:"mode" json:"mode"`
}

// Fade configures fade-in from t=0 and a fixed-length fade-out starting at Out
// seconds. Both are in seconds.
type Fade struct {
	Enabled bool    `toml:"enabled" yaml:"enabled" json:"enabled"`
	In      float64 `toml:"in" yaml:"in" json:"in"`
	Out     float64 `toml:"out" yaml:"out" json:"out"`
}

// Offset is a custom pixel position of the caption's top-left corner.
type Offset struct {
	X int `toml:"x" yaml:"x" json:"x"`
	Y int `toml:"y" yaml:"y" json:"y"`
}

// Position places the caption either at a named Anchor or at a Custom offset.
// A non-nil Custom is the active placement; Anchor is then only a fallback for
// a zero offset. Use AtAnchor and AtOffset to build one.
type Position struct {
	Anchor Anchor  `toml:"anchor" yaml:"anchor" json:"anchor"`
	Custom *Offset `toml:"custom,omitempty" yaml:"custom,omitempty" json:"custom,omitempty"`
}

// AtAnchor returns a Position at the named anchor.
func AtAnchor(a Anchor) Position {
	return Position{Anchor: a}
}

// AtOffset returns a Position at a custom pixel offset.
func AtOffset(x, y int) Position {
	return Position{Anchor: AnchorBottomCenter, Custom: &Offset{X: x, Y: y}}
}

// IsCustom reports whether the custom offset is the active placement.
func (p Position) IsCustom() bool { return p.Custom != nil }

// customOffset reports the active custom offset, if it moves the caption at all.
func (p Position) customOffset() (Offset, bool) {
	if p.Custom == nil || (p.Custom.X == 0 && p.Custom.Y == 0) {
		return Offset{}, false
	}
	return *p.Custom, true
}

// Params is the complete set of caption style parameters. A Params value is
// built fresh for every compilation, from Defaults, a preset or a style file.
type Params struct {
	Text        string    `toml:"text" yaml:"text" json:"text"`
	FontFamily  string    `toml:"font_family" yaml:"font_family" json:"font_family"`
	FontSize    int       `toml:"font_size" yaml:"font_size" json:"font_size"`
	FontColor   Color     `toml:"font_color" yaml:"font_color" json:"font_color"`
	Align       Align     `toml:"align" yaml:"align" json:"align"`
	LineSpacing int       `toml:"line_spacing" yaml:"line_spacing" json:"line_spacing"`
	Alpha       float64   `toml:"alpha" yaml:"alpha" json:"alpha"`
	Outline     Outline   `toml:"outline" yaml:"outline" json:"outline"`
	Shadow      Shadow    `toml:"shadow" yaml:"shadow" json:"shadow"`
	Box         Box       `toml:"box" yaml:"box" json:"box"`
	Rotation    int       `toml:"rotation" yaml:"rotation" json:"rotation"`
	Spacing     int       `toml:"spacing" yaml:"spacing" json:"spacing"`
	Expansion   Expansion `toml:"expansion" yaml:"expansion" json:"expansion"`
	Fade        Fade      `toml:"fade" yaml:"fade" json:"fade"`
	Position    Position  `toml:"position" yaml:"position" json:"position"`
	Padding     int       `toml:"padding" yaml:"padding" json:"padding"`
}

// Defaults returns the parameters used for any value a caller leaves unset.
func Defaults() Params {
	return Params{
		FontFamily: "Arial",
		FontSize:   24,
		FontColor:  "#FFFFFF",
		Align:      AlignLeft,
		Alpha:      1,
		Outline:    Outline{Color: "#000000", Width: 1},
		Shadow:     Shadow{Color: "#000000", X: 2, Y: 2},
		Box:        Box{Color: "#000000", Opacity: 0.5},
		Expansion:  Expansion{Mode: ExpansionNone},
		Position:   AtAnchor(AnchorBottomCenter),
		Padding:    10,
	}
}

// Clone returns a deep copy of p, so the custom offset is not shared.
func (p Params) Clone() Params {
	if p.Position.Custom != nil {
		off := *p.Position.Custom
		p.Position.Custom = &off
	}
	return p
}

// text returns the caption text, substituting DefaultText when empty.
func (p Params) text() string {
	if p.Text == "" {
		return DefaultText
	}
	return p.Text
}
