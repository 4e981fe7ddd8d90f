package caption

import (
	"math"
	"testing"

	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		code   errs.Code
	}{
		{"defaults", func(*Params) {}, ""},
		{"unknown anchor falls back", func(p *Params) { p.Position = AtAnchor("nowhere") }, ""},
		{"unknown align emitted as given", func(p *Params) { p.Align = "justify" }, ""},
		{"negative offsets", func(p *Params) { p.Position = AtOffset(-5, -5); p.Rotation = -90 }, ""},
		{"bad font color", func(p *Params) { p.FontColor = "white" }, errs.ErrCodeInvalidColor},
		{"bad outline color", func(p *Params) { p.Outline.Color = "#12" }, errs.ErrCodeInvalidColor},
		{"bad shadow color", func(p *Params) { p.Shadow.Color = "" }, errs.ErrCodeInvalidColor},
		{"bad box color", func(p *Params) { p.Box.Color = "000000" }, errs.ErrCodeInvalidColor},
		{"zero font size", func(p *Params) { p.FontSize = 0 }, errs.ErrCodeInvalidRange},
		{"negative line spacing", func(p *Params) { p.LineSpacing = -1 }, errs.ErrCodeInvalidRange},
		{"negative outline width", func(p *Params) { p.Outline.Width = -2 }, errs.ErrCodeInvalidRange},
		{"negative box border", func(p *Params) { p.Box.Border = -1 }, errs.ErrCodeInvalidRange},
		{"negative padding", func(p *Params) { p.Padding = -1 }, errs.ErrCodeInvalidRange},
		{"alpha above one", func(p *Params) { p.Alpha = 1.5 }, errs.ErrCodeInvalidRange},
		{"negative opacity", func(p *Params) { p.Box.Opacity = -0.1 }, errs.ErrCodeInvalidRange},
		{"negative fade in", func(p *Params) { p.Fade.In = -1 }, errs.ErrCodeInvalidRange},
		{"NaN alpha", func(p *Params) { p.Alpha = math.NaN() }, errs.ErrCodeInvalidRange},
		{"infinite fade out", func(p *Params) { p.Fade.Out = math.Inf(1) }, errs.ErrCodeInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Defaults()
			tt.mutate(&p)

			err := Validate(p)
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if got := errs.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "full", false},
		{"full", "full", false},
		{" Basic ", "basic", false},
		{"pro", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProfile(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProfile(%q) error = %v", tt.in, err)
			}
			if err != nil {
				if !errs.Is(err, errs.ErrCodeInvalidProfile) {
					t.Errorf("ParseProfile(%q) code = %s", tt.in, errs.GetCode(err))
				}
				return
			}
			if got.Name != tt.want {
				t.Errorf("ParseProfile(%q) = %s, want %s", tt.in, got.Name, tt.want)
			}
		})
	}
}

func TestProfileHas(t *testing.T) {
	if !ProfileFull.Has(CapFontFile | CapFade) {
		t.Error("full profile should have font file and fade")
	}
	if ProfileFull.Has(CapBoxSize) {
		t.Error("full profile should not have box size")
	}
	if !ProfileBasic.Has(CapBoxSize) || ProfileBasic.Has(CapRichConfig) || ProfileBasic.Has(CapOutline) || ProfileBasic.Has(CapShadow) {
		t.Error("basic profile capabilities wrong")
	}
}

func TestUnescapeRejectsUnquoted(t *testing.T) {
	for _, in := range []string{"", `"`, `{"a":1}`, `"{}`} {
		if _, err := Unescape(in); !errs.Is(err, errs.ErrCodeInvalidInput) {
			t.Errorf("Unescape(%q) error = %v, want INVALID_INPUT", in, err)
		}
	}
}

func TestEscape(t *testing.T) {
	if got, want := Escape(`{"a":"b"}`), `"{\"a\":\"b\"}"`; got != want {
		t.Errorf("Escape() = %s, want %s", got, want)
	}
	if got := Escape(""); got != `""` {
		t.Errorf("Escape(\"\") = %s, want \"\"", got)
	}
}
