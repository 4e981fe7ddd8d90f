package caption

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func helloParams() Params {
	p := Defaults()
	p.Text = "Hello"
	p.FontSize = 32
	p.FontColor = "#FFFFFF"
	p.Position = AtAnchor(AnchorBottomCenter)
	return p
}

func mustCompile(t *testing.T, p Params, opts ...Option) Output {
	t.Helper()
	out, err := Compile(p, opts...)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return out
}

func decodeConfig(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("unmarshal config %q: %v", s, err)
	}
	return m
}

func TestCompileEffectsDisabled(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		out := mustCompile(t, helloParams(), WithProfile(ProfileBasic))

		want := "text='Hello':fontsize=32:fontcolor=FFFFFF:x=(w-text_w)/2:y=h-text_h-10"
		if out.Filter != want {
			t.Errorf("Filter = %q, want %q", out.Filter, want)
		}

		wantJSON := `{"text":"Hello","fontSize":32,"fontColor":"#FFFFFF","style":"` + want + `","position":"bottom_center"}`
		if out.Compact != wantJSON {
			t.Errorf("Compact = %s, want %s", out.Compact, wantJSON)
		}
	})

	t.Run("full", func(t *testing.T) {
		out := mustCompile(t, helloParams())

		want := "text='Hello':fontfile='Arial':fontsize=32:fontcolor=FFFFFF:x=(w-text_w)/2:y=h-text_h-10"
		if out.Filter != want {
			t.Errorf("Filter = %q, want %q", out.Filter, want)
		}

		m := decodeConfig(t, out.Compact)
		for _, key := range []string{"text", "fontFamily", "fontSize", "fontColor", "style", "position"} {
			if _, ok := m[key]; !ok {
				t.Errorf("config missing key %q", key)
			}
		}
		if len(m) != 6 {
			t.Errorf("config has %d keys, want 6: %v", len(m), m)
		}
		pos, _ := m["position"].(map[string]any)
		if pos["type"] != "preset" || pos["value"] != "bottom_center" {
			t.Errorf("position = %v, want preset bottom_center", pos)
		}
	})
}

func TestCompilePlaceholderText(t *testing.T) {
	p := helloParams()
	p.Text = ""
	out := mustCompile(t, p)

	if !strings.HasPrefix(out.Filter, "text='"+DefaultText+"'") {
		t.Errorf("Filter = %q, want placeholder text", out.Filter)
	}
	if out.Config.Text != DefaultText {
		t.Errorf("Config.Text = %q, want %q", out.Config.Text, DefaultText)
	}
}

func TestCompileElegantPreset(t *testing.T) {
	p, ok := DefaultCatalog().Get("elegant")
	if !ok {
		t.Fatal("elegant preset missing")
	}
	out := mustCompile(t, p)

	wantFilter := "text='Welcome to our tutorial!':fontfile='Georgia':fontsize=24:fontcolor=FFFFFF" +
		":text_align=right:line_spacing=3:alpha=0.9" +
		":shadowcolor=333333:shadowx=1:shadowy=1" +
		":box=1:boxcolor=000000@0.3:boxborderw=1" +
		":x=w-text_w-10:y=h-text_h-10" +
		":enable='between(t,0,1)*fade(t,0,1)':enable='between(t,1,6)*fade(t,1,6)'"
	if out.Filter != wantFilter {
		t.Errorf("Filter =\n%s\nwant\n%s", out.Filter, wantFilter)
	}

	wantJSON := `{
  "text": "Welcome to our tutorial!",
  "fontFamily": "Georgia",
  "fontSize": 24,
  "fontColor": "#FFFFFF",
  "style": "` + wantFilter + `",
  "textAlign": "right",
  "lineSpacing": 3,
  "alpha": 0.9,
  "shadow": {
    "enabled": true,
    "color": "#333333",
    "x": 1,
    "y": 1
  },
  "box": {
    "enabled": true,
    "color": "#000000",
    "opacity": 0.3,
    "border": 1
  },
  "fade": {
    "enabled": true,
    "fadeIn": 1,
    "fadeOut": 1
  },
  "position": {
    "type": "preset",
    "value": "bottom_right"
  }
}`
	if out.JSON != wantJSON {
		t.Errorf("JSON =\n%s\nwant\n%s", out.JSON, wantJSON)
	}
}

func TestCompileGamingPreset(t *testing.T) {
	p, _ := DefaultCatalog().Get("gaming")
	p.Text = "GG"
	out := mustCompile(t, p)

	want := "text='GG':fontfile='Impact':fontsize=36:fontcolor=FFD700" +
		":text_align=center:line_spacing=2" +
		":borderw=3:bordercolor=000000" +
		":shadowcolor=FF0000:shadowx=3:shadowy=3" +
		":text_shaping=1:text_spacing=1" +
		":x=(w-text_w)/2:y=(h-text_h)/2"
	if out.Filter != want {
		t.Errorf("Filter =\n%s\nwant\n%s", out.Filter, want)
	}
	if out.Config.Spacing != 1 {
		t.Errorf("Config.Spacing = %d, want 1", out.Config.Spacing)
	}
}

func TestAlignClause(t *testing.T) {
	tests := []struct {
		align Align
		want  string
	}{
		{AlignLeft, ""},
		{"", ""},
		{AlignCenter, ":text_align=center"},
		{AlignRight, ":text_align=right"},
	}

	for _, tt := range tests {
		t.Run(string(tt.align), func(t *testing.T) {
			p := helloParams()
			p.Align = tt.align
			out := mustCompile(t, p)

			has := strings.Contains(out.Filter, ":text_align=")
			if tt.want == "" {
				if has {
					t.Errorf("Filter %q should omit text_align", out.Filter)
				}
				if out.Config.TextAlign != "" {
					t.Errorf("Config.TextAlign = %q, want empty", out.Config.TextAlign)
				}
				return
			}
			if !strings.Contains(out.Filter, tt.want) {
				t.Errorf("Filter %q missing %q", out.Filter, tt.want)
			}
			if out.Config.TextAlign != tt.align {
				t.Errorf("Config.TextAlign = %q, want %q", out.Config.TextAlign, tt.align)
			}
		})
	}
}

func TestOutlineOmission(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		width   int
		want    bool
	}{
		{"disabled", false, 3, false},
		{"zero width", true, 0, false},
		{"disabled zero width", false, 0, false},
		{"active", true, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := helloParams()
			p.Outline = Outline{Enabled: tt.enabled, Color: "#112233", Width: tt.width}
			out := mustCompile(t, p)

			hasFilter := strings.Contains(out.Filter, ":borderw=")
			_, hasJSON := decodeConfig(t, out.Compact)["outline"]
			if hasFilter != tt.want || hasJSON != tt.want {
				t.Errorf("filter outline = %v, json outline = %v, want %v", hasFilter, hasJSON, tt.want)
			}
			if tt.want && !strings.Contains(out.Filter, ":borderw=2:bordercolor=112233") {
				t.Errorf("Filter %q missing outline clause", out.Filter)
			}
		})
	}
}

func TestShadowOffsets(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"both", 2, 3, ":shadowcolor=000000:shadowx=2:shadowy=3"},
		{"x only", 2, 0, ":shadowcolor=000000:shadowx=2:"},
		{"y only", 0, -1, ":shadowcolor=000000:shadowy=-1:"},
		{"none", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := helloParams()
			p.Shadow = Shadow{Enabled: true, Color: "#000000", X: tt.x, Y: tt.y}
			out := mustCompile(t, p)

			if tt.want == "" {
				if strings.Contains(out.Filter, "shadow") || out.Config.Shadow != nil {
					t.Errorf("zero-offset shadow should be omitted: %q", out.Filter)
				}
				return
			}
			if !strings.Contains(out.Filter, tt.want) {
				t.Errorf("Filter %q missing %q", out.Filter, tt.want)
			}
			if out.Config.Shadow == nil || out.Config.Shadow.X != tt.x || out.Config.Shadow.Y != tt.y {
				t.Errorf("Config.Shadow = %+v, want x=%d y=%d", out.Config.Shadow, tt.x, tt.y)
			}
		})
	}
}

// featureClauses maps a config key to the filter clause that signals it.
var featureClauses = map[string]string{
	"textAlign":   ":text_align=",
	"lineSpacing": ":line_spacing=",
	"alpha":       ":alpha=",
	"outline":     ":borderw=",
	"shadow":      ":shadowcolor=",
	"box":         ":box=1",
	"rotation":    ":text_rotation=",
	"spacing":     ":text_spacing=",
	"expansion":   ":expansion=",
	"fade":        ":enable=",
}

func TestConfigAgreesWithFilter(t *testing.T) {
	var cases []Params
	for _, name := range DefaultCatalog().Names() {
		p, _ := DefaultCatalog().Get(name)
		cases = append(cases, p)
	}

	p := helloParams()
	p.Expansion = Expansion{Enabled: true, Mode: ExpansionNormal}
	p.Rotation = -15
	p.Fade = Fade{Enabled: true, Out: 3}
	p.Alpha = 0
	cases = append(cases, p)

	p = helloParams()
	p.Expansion = Expansion{Enabled: true, Mode: ExpansionNone}
	p.Fade = Fade{Enabled: true}
	p.Shadow = Shadow{Enabled: false, X: 5, Y: 5, Color: "#000000"}
	p.Box = Box{Enabled: true, Color: "#FFFFFF", Opacity: 0}
	cases = append(cases, p)

	p = helloParams()
	p.Expansion = Expansion{Enabled: false, Mode: ExpansionStrftime}
	p.Fade = Fade{Enabled: false, In: 2, Out: 2}
	p.LineSpacing = 4
	cases = append(cases, p)

	for i, p := range cases {
		out := mustCompile(t, p)
		m := decodeConfig(t, out.Compact)
		for key, marker := range featureClauses {
			_, inJSON := m[key]
			inFilter := strings.Contains(out.Filter, marker)
			if inJSON != inFilter {
				t.Errorf("case %d: %s in json = %v, in filter = %v (%s)", i, key, inJSON, inFilter, out.Filter)
			}
		}
	}
}

// subClauses pairs nested config keys with the filter clause they mirror.
var subClauses = []struct {
	feature, key, marker string
}{
	{"box", "border", ":boxborderw="},
	{"box", "width", ":box_w="},
	{"box", "padding", ":box_padding="},
	{"fade", "fadeIn", ":enable='between(t,0,"},
	{"fade", "fadeOut", ""}, // depends on the start time, see below
}

func TestConfigSubKeysAgreeWithFilter(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		fade Fade
	}{
		{"negative", Box{Enabled: true, Color: "#000000", Opacity: 0.5, Border: -2, Width: -1, Padding: -4}, Fade{Enabled: true, In: -1, Out: 2}},
		{"positive", Box{Enabled: true, Color: "#000000", Opacity: 0.5, Border: 2, Width: 300, Padding: 8}, Fade{Enabled: true, In: 1.5, Out: -3}},
		{"zero", Box{Enabled: true, Color: "#000000", Opacity: 0.5}, Fade{Enabled: true, Out: 4}},
	}

	for _, tt := range tests {
		for _, prof := range []Profile{ProfileFull, {Name: "rich-box", Caps: ProfileFull.Caps | CapBoxSize}} {
			t.Run(tt.name+"/"+prof.Name, func(t *testing.T) {
				p := helloParams()
				p.Box, p.Fade = tt.box, tt.fade
				out := mustCompile(t, p, WithProfile(prof))
				m := decodeConfig(t, out.Compact)

				for _, sc := range subClauses {
					if sc.feature == "box" && (sc.key == "width" || sc.key == "padding") && !prof.Has(CapBoxSize) {
						continue
					}
					marker := sc.marker
					if sc.key == "fadeOut" {
						marker = ":enable='between(t," + formatFloat(tt.fade.Out) + ","
					}
					inFilter := strings.Contains(out.Filter, marker)
					section, _ := m[sc.feature].(map[string]any)
					_, inJSON := section[sc.key]
					if inJSON != inFilter {
						t.Errorf("%s.%s in json = %v, in filter = %v (%s)", sc.feature, sc.key, inJSON, inFilter, out.Filter)
					}
				}
			})
		}
	}
}

func TestNegativeSubValuesDropped(t *testing.T) {
	p := helloParams()
	p.Box = Box{Enabled: true, Color: "#000000", Opacity: 0.5, Border: -2}
	p.Fade = Fade{Enabled: true, In: -1, Out: 2}
	out := mustCompile(t, p)

	if strings.Contains(out.Filter, "boxborderw") {
		t.Errorf("Filter = %q, want no boxborderw", out.Filter)
	}
	if !strings.HasSuffix(out.Filter, ":enable='between(t,2,7)*fade(t,2,7)'") {
		t.Errorf("Filter = %q, want only the fade-out clause", out.Filter)
	}
	if out.Config.Box.Border != 0 {
		t.Errorf("Config.Box.Border = %d, want omitted", out.Config.Box.Border)
	}
	if out.Config.Fade.FadeIn != 0 || out.Config.Fade.FadeOut != 2 {
		t.Errorf("Config.Fade = %+v, want fadeOut only", *out.Config.Fade)
	}
	if !strings.Contains(out.Compact, `"fade":{"enabled":true,"fadeOut":2}`) {
		t.Errorf("Compact = %s", out.Compact)
	}

	p.Fade = Fade{Enabled: true, In: -1, Out: -1}
	out = mustCompile(t, p)
	if out.Config.Fade != nil || strings.Contains(out.Filter, "enable=") {
		t.Errorf("all-negative fade should be inactive: %q", out.Filter)
	}
}

func TestBasicProfileOmitsEffects(t *testing.T) {
	p := helloParams()
	p.Outline = Outline{Enabled: true, Color: "#000000", Width: 2}
	p.Shadow = Shadow{Enabled: true, Color: "#333333", X: 2, Y: 3}

	basic := mustCompile(t, p, WithProfile(ProfileBasic))
	for _, absent := range []string{"borderw", "bordercolor", "shadowcolor", "shadowx", "shadowy"} {
		if strings.Contains(basic.Filter, absent) {
			t.Errorf("basic Filter %q should not contain %q", basic.Filter, absent)
		}
	}
	if basic.Config.Outline != nil || basic.Config.Shadow != nil {
		t.Error("basic config carries outline or shadow")
	}

	full := mustCompile(t, p)
	if !strings.Contains(full.Filter, ":borderw=2:bordercolor=000000:shadowcolor=333333:shadowx=2:shadowy=3") {
		t.Errorf("full Filter %q missing effect clauses", full.Filter)
	}
}

func TestActiveFeatures(t *testing.T) {
	p, _ := DefaultCatalog().Get("bold")
	got := strings.Join(ActiveFeatures(p, ProfileFull), ",")
	want := "align,outline,shadow,box,spacing,position"
	if got != want {
		t.Errorf("ActiveFeatures(bold) = %s, want %s", got, want)
	}

	got = strings.Join(ActiveFeatures(p, ProfileBasic), ",")
	want = "align,box,position"
	if got != want {
		t.Errorf("ActiveFeatures(bold, basic) = %s, want %s", got, want)
	}
}

func TestEscapedRoundTrip(t *testing.T) {
	texts := []string{
		"Hello",
		`She said "hi"`,
		`back\slash`,
		`trailing\`,
		`mixed \"quotes\" and 'ticks'`,
		"<b>&amp;</b>",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			p := helloParams()
			p.Text = text
			out := mustCompile(t, p)

			if !strings.HasPrefix(out.Escaped, `"`) || !strings.HasSuffix(out.Escaped, `"`) {
				t.Fatalf("Escaped %q is not wrapped in quotes", out.Escaped)
			}
			got, err := Unescape(out.Escaped)
			if err != nil {
				t.Fatalf("Unescape() error: %v", err)
			}
			if got != out.Compact {
				t.Errorf("Unescape(Escaped) = %s, want %s", got, out.Compact)
			}

			var cfg Config
			if err := json.Unmarshal([]byte(got), &cfg); err != nil {
				t.Fatalf("unescaped text is not JSON: %v", err)
			}
			if cfg.Text != text {
				t.Errorf("round-tripped text = %q, want %q", cfg.Text, text)
			}
		})
	}
}

func TestCompactMatchesPretty(t *testing.T) {
	p, _ := DefaultCatalog().Get("bold")
	out := mustCompile(t, p)

	var a, b any
	if err := json.Unmarshal([]byte(out.JSON), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(out.Compact), &b); err != nil {
		t.Fatal(err)
	}
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Errorf("pretty and compact configs differ:\n%s\n%s", ja, jb)
	}
	if strings.Contains(out.Compact, "\n") {
		t.Error("compact config spans multiple lines")
	}
	if !strings.Contains(out.JSON, "\n  \"text\": ") {
		t.Error("pretty config is not indented by two spaces")
	}
}

func TestPositionClause(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"top right", AtAnchor(AnchorTopRight), ":x=w-text_w-10:y=10"},
		{"center", AtAnchor(AnchorCenter), ":x=(w-text_w)/2:y=(h-text_h)/2"},
		{"unknown", AtAnchor("middle_earth"), ":x=(w-text_w)/2:y=h-text_h-10"},
		{"empty", Position{}, ":x=(w-text_w)/2:y=h-text_h-10"},
		{"custom xy", AtOffset(120, 40), ":x=120:y=40"},
		{"custom x", AtOffset(120, 0), ":x=120"},
		{"custom y", AtOffset(0, -5), ":y=-5"},
		{"custom zero uses anchor", Position{Anchor: AnchorTopLeft, Custom: &Offset{}}, ":x=10:y=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := helloParams()
			p.Position = tt.pos
			out := mustCompile(t, p)
			if !strings.HasSuffix(out.Filter, tt.want) {
				t.Errorf("Filter = %q, want suffix %q", out.Filter, tt.want)
			}
			if strings.Count(out.Filter, ":x=")+strings.Count(out.Filter, ":y=") != strings.Count(tt.want, "=") {
				t.Errorf("Filter = %q has extra position clauses", out.Filter)
			}
		})
	}
}

func TestPositionConfig(t *testing.T) {
	p := helloParams()
	p.Position = AtOffset(0, 25)
	out := mustCompile(t, p)

	pos, ok := out.Config.Position.(*PositionConfig)
	if !ok {
		t.Fatalf("Position = %T, want *PositionConfig", out.Config.Position)
	}
	if pos.Type != "custom" || pos.X != 0 || pos.Y != 25 || pos.Value != "" {
		t.Errorf("Position = %+v, want custom y=25", pos)
	}
	if !strings.Contains(out.Compact, `"position":{"type":"custom","y":25}`) {
		t.Errorf("Compact = %s, want custom position without x", out.Compact)
	}

	basic := mustCompile(t, p, WithProfile(ProfileBasic))
	if basic.Config.Position != "custom" {
		t.Errorf("basic Position = %v, want custom", basic.Config.Position)
	}

	p.Position = AtAnchor("nowhere")
	basic = mustCompile(t, p, WithProfile(ProfileBasic))
	if basic.Config.Position != "bottom_center" {
		t.Errorf("basic Position = %v, want bottom_center fallback", basic.Config.Position)
	}
	if x, y := AnchorBottomCenter.Expr(); !strings.HasSuffix(basic.Filter, ":x="+x+":y="+y) {
		t.Errorf("basic Filter %q does not place the caption at the named anchor", basic.Filter)
	}
}

func TestFadeClauses(t *testing.T) {
	tests := []struct {
		name string
		fade Fade
		want string
	}{
		{"in only", Fade{Enabled: true, In: 0.5}, ":enable='between(t,0,0.5)*fade(t,0,0.5)'"},
		{"out only", Fade{Enabled: true, Out: 2.5}, ":enable='between(t,2.5,7.5)*fade(t,2.5,7.5)'"},
		{"disabled", Fade{Enabled: false, In: 1, Out: 1}, ""},
		{"zero", Fade{Enabled: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := helloParams()
			p.Fade = tt.fade
			out := mustCompile(t, p)
			if tt.want == "" {
				if strings.Contains(out.Filter, "enable=") || out.Config.Fade != nil {
					t.Errorf("fade should be omitted: %q", out.Filter)
				}
				return
			}
			if !strings.HasSuffix(out.Filter, tt.want) {
				t.Errorf("Filter = %q, want suffix %q", out.Filter, tt.want)
			}
		})
	}
}

func TestBasicProfileCapabilities(t *testing.T) {
	p := helloParams()
	p.Rotation = 10
	p.Spacing = 3
	p.Expansion = Expansion{Enabled: true, Mode: ExpansionNormal}
	p.Fade = Fade{Enabled: true, In: 1}
	p.Box = Box{Enabled: true, Color: "#000000", Opacity: 0.5, Border: 2, Width: 300, Padding: 8}

	basic := mustCompile(t, p, WithProfile(ProfileBasic))
	for _, absent := range []string{"fontfile", "text_rotation", "text_spacing", "expansion", "enable="} {
		if strings.Contains(basic.Filter, absent) {
			t.Errorf("basic Filter %q should not contain %q", basic.Filter, absent)
		}
	}
	if !strings.Contains(basic.Filter, ":box=1:boxcolor=000000@0.5:boxborderw=2:box_w=300:box_padding=8") {
		t.Errorf("basic Filter %q missing box size clauses", basic.Filter)
	}

	full := mustCompile(t, p)
	if strings.Contains(full.Filter, "box_w") || strings.Contains(full.Filter, "box_padding") {
		t.Errorf("full Filter %q should not contain box size clauses", full.Filter)
	}
	if !strings.Contains(full.Filter, ":text_rotation=10:text_shaping=1:text_spacing=3:expansion=normal:") {
		t.Errorf("full Filter %q missing transform clauses", full.Filter)
	}
}

func TestCompileHTMLCharacters(t *testing.T) {
	p := helloParams()
	p.Text = "a<b>&c"
	out := mustCompile(t, p)
	if !strings.Contains(out.Compact, `"text":"a<b>&c"`) {
		t.Errorf("Compact = %s, want HTML characters unescaped", out.Compact)
	}
}

func TestCompileNonFinite(t *testing.T) {
	p := helloParams()
	p.Box.Opacity = math.NaN()
	if _, err := Compile(p); err == nil {
		t.Error("Compile() with NaN opacity should fail")
	}
}

func TestCompileOutOfRangeEmittedAsGiven(t *testing.T) {
	p := helloParams()
	p.Alpha = -0.5
	p.FontSize = -3
	out := mustCompile(t, p)
	if !strings.Contains(out.Filter, ":fontsize=-3:") || !strings.Contains(out.Filter, ":alpha=-0.5") {
		t.Errorf("Filter = %q, want out-of-range values verbatim", out.Filter)
	}
}

func TestFilterMatchesCompile(t *testing.T) {
	p, _ := DefaultCatalog().Get("corporate")
	out := mustCompile(t, p, WithProfile(ProfileBasic))
	if got := Filter(p, WithProfile(ProfileBasic)); got != out.Filter {
		t.Errorf("Filter() = %q, want %q", got, out.Filter)
	}
}
