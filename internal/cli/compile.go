package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
	"github.com/matzehuels/captionstyle/pkg/pipeline"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	preset     string // built-in or file preset to start from
	styleFile  string // style file to start from
	presetFile string // extra presets (TOML, YAML or JSON)
	profile    string // "full" or "basic"
	formats    string // comma-separated artifact formats
	output     string // directory for artifact files
	copyFormat string // artifact to place on the clipboard
	raw        bool   // print artifacts only, without headings

	style styleFlags
}

// styleFlags binds one flag per caption parameter. Only flags the user sets
// override the resolved parameters.
type styleFlags struct {
	text, font, fontColor, align string
	fontSize, lineSpacing        int
	alpha                        float64

	outline      bool
	outlineColor string
	outlineWidth int

	shadow           bool
	shadowColor      string
	shadowX, shadowY int

	box                              bool
	boxColor                         string
	boxOpacity                       float64
	boxBorder, boxWidth, boxPadding  int
	rotation, spacing, x, y, padding int

	expansion, position string
	fadeIn, fadeOut     float64
}

// compileCommand creates the compile command.
func (c *CLI) compileCommand() *cobra.Command {
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a caption style into filter text and JSON",
		Long: `Compile a caption style into a drawtext filter string, a JSON configuration
and an escaped JSON string.

The style starts from the defaults, a preset (--preset) or a style file
(--style), and every style flag you set overrides the matching field.`,
		Example: `  captionstyle compile --text "Hello" --font-size 32
  captionstyle compile --preset elegant --text "Chapter one" --format filter --raw
  captionstyle compile --style brand.toml --profile basic --output out/
  captionstyle compile --preset gaming --copy escaped`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), cmd.OutOrStdout(), &opts, opts.style.overrides(cmd.Flags()))
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "start from a preset (corporate, gaming, elegant, bold, minimal)")
	cmd.Flags().StringVarP(&opts.styleFile, "style", "s", "", "start from a style file (.toml, .yaml, .json)")
	cmd.Flags().StringVar(&opts.presetFile, "presets", "", "load extra presets from a file")
	cmd.Flags().StringVar(&opts.profile, "profile", pipeline.DefaultProfile, "generator profile: full, basic")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "artifacts: filter, json, escaped, css (comma-separated; default filter,json,escaped)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write artifacts to this directory")
	cmd.Flags().StringVar(&opts.copyFormat, "copy", "", "copy one artifact to the clipboard: filter, json, escaped, css")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "print artifacts without headings")
	opts.style.register(cmd.Flags())

	_ = cmd.RegisterFlagCompletionFunc("preset", completePresets)
	_ = cmd.RegisterFlagCompletionFunc("profile", completeProfiles)
	_ = cmd.RegisterFlagCompletionFunc("position", completeAnchors)
	cmd.MarkFlagsMutuallyExclusive("preset", "style")

	return cmd
}

// register adds the style flags to fs.
func (s *styleFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.text, "text", "", "caption text")
	fs.StringVar(&s.font, "font", "", "font family")
	fs.IntVar(&s.fontSize, "font-size", 0, "font size in pixels")
	fs.StringVar(&s.fontColor, "font-color", "", "font color (#RRGGBB)")
	fs.StringVar(&s.align, "align", "", "text alignment: left, center, right")
	fs.IntVar(&s.lineSpacing, "line-spacing", 0, "line spacing in pixels")
	fs.Float64Var(&s.alpha, "alpha", 0, "text opacity (0-1)")

	fs.BoolVar(&s.outline, "outline", false, "draw an outline")
	fs.StringVar(&s.outlineColor, "outline-color", "", "outline color (#RRGGBB)")
	fs.IntVar(&s.outlineWidth, "outline-width", 0, "outline width in pixels")

	fs.BoolVar(&s.shadow, "shadow", false, "draw a drop shadow")
	fs.StringVar(&s.shadowColor, "shadow-color", "", "shadow color (#RRGGBB)")
	fs.IntVar(&s.shadowX, "shadow-x", 0, "shadow x offset")
	fs.IntVar(&s.shadowY, "shadow-y", 0, "shadow y offset")

	fs.BoolVar(&s.box, "box", false, "draw a background box")
	fs.StringVar(&s.boxColor, "box-color", "", "box color (#RRGGBB)")
	fs.Float64Var(&s.boxOpacity, "box-opacity", 0, "box opacity (0-1)")
	fs.IntVar(&s.boxBorder, "box-border", 0, "box border width")
	fs.IntVar(&s.boxWidth, "box-width", 0, "box width (basic profile)")
	fs.IntVar(&s.boxPadding, "box-padding", 0, "box padding (basic profile)")

	fs.IntVar(&s.rotation, "rotation", 0, "text rotation in degrees")
	fs.IntVar(&s.spacing, "spacing", 0, "letter spacing")
	fs.StringVar(&s.expansion, "expansion", "", "text expansion: none, normal, strftime")
	fs.Float64Var(&s.fadeIn, "fade-in", 0, "fade-in duration in seconds")
	fs.Float64Var(&s.fadeOut, "fade-out", 0, "fade-out start in seconds")

	fs.StringVar(&s.position, "position", "", "anchor: top_left ... bottom_right")
	fs.IntVar(&s.x, "x", 0, "custom x offset (overrides --position)")
	fs.IntVar(&s.y, "y", 0, "custom y offset (overrides --position)")
	fs.IntVar(&s.padding, "padding", 0, "caption padding")
}

// overrides returns one override per flag set on fs, in a fixed order:
// --position is applied before --x and --y.
func (s *styleFlags) overrides(fs *pflag.FlagSet) []pipeline.Override {
	setters := []struct {
		flag  string
		apply pipeline.Override
	}{
		{"text", func(p *caption.Params) { p.Text = s.text }},
		{"font", func(p *caption.Params) { p.FontFamily = s.font }},
		{"font-size", func(p *caption.Params) { p.FontSize = s.fontSize }},
		{"font-color", func(p *caption.Params) { p.FontColor = looseColor(s.fontColor) }},
		{"align", func(p *caption.Params) { p.Align = caption.Align(s.align) }},
		{"line-spacing", func(p *caption.Params) { p.LineSpacing = s.lineSpacing }},
		{"alpha", func(p *caption.Params) { p.Alpha = s.alpha }},
		{"outline", func(p *caption.Params) { p.Outline.Enabled = s.outline }},
		{"outline-color", func(p *caption.Params) { p.Outline.Color = looseColor(s.outlineColor) }},
		{"outline-width", func(p *caption.Params) { p.Outline.Width = s.outlineWidth }},
		{"shadow", func(p *caption.Params) { p.Shadow.Enabled = s.shadow }},
		{"shadow-color", func(p *caption.Params) { p.Shadow.Color = looseColor(s.shadowColor) }},
		{"shadow-x", func(p *caption.Params) { p.Shadow.X = s.shadowX }},
		{"shadow-y", func(p *caption.Params) { p.Shadow.Y = s.shadowY }},
		{"box", func(p *caption.Params) { p.Box.Enabled = s.box }},
		{"box-color", func(p *caption.Params) { p.Box.Color = looseColor(s.boxColor) }},
		{"box-opacity", func(p *caption.Params) { p.Box.Opacity = s.boxOpacity }},
		{"box-border", func(p *caption.Params) { p.Box.Border = s.boxBorder }},
		{"box-width", func(p *caption.Params) { p.Box.Width = s.boxWidth }},
		{"box-padding", func(p *caption.Params) { p.Box.Padding = s.boxPadding }},
		{"rotation", func(p *caption.Params) { p.Rotation = s.rotation }},
		{"spacing", func(p *caption.Params) { p.Spacing = s.spacing }},
		{"expansion", func(p *caption.Params) {
			mode := caption.ExpansionMode(s.expansion)
			p.Expansion = caption.Expansion{Enabled: mode != caption.ExpansionNone, Mode: mode}
		}},
		{"fade-in", func(p *caption.Params) { p.Fade.Enabled, p.Fade.In = true, s.fadeIn }},
		{"fade-out", func(p *caption.Params) { p.Fade.Enabled, p.Fade.Out = true, s.fadeOut }},
		{"position", func(p *caption.Params) { p.Position = caption.AtAnchor(caption.Anchor(s.position)) }},
		{"x", func(p *caption.Params) { customOffset(p).X = s.x }},
		{"y", func(p *caption.Params) { customOffset(p).Y = s.y }},
		{"padding", func(p *caption.Params) { p.Padding = s.padding }},
	}

	var out []pipeline.Override
	for _, st := range setters {
		if fs.Changed(st.flag) {
			out = append(out, st.apply)
		}
	}
	return out
}

// looseColor adds a missing '#'. Malformed input is kept so validation can
// report it.
func looseColor(s string) caption.Color {
	if c, err := caption.ParseColor(s); err == nil {
		return c
	}
	return caption.Color(s)
}

// customOffset returns p's custom offset, switching p to custom placement.
func customOffset(p *caption.Params) *caption.Offset {
	if p.Position.Custom == nil {
		p.Position.Custom = &caption.Offset{}
	}
	return p.Position.Custom
}

// runCompile executes the pipeline and prints, writes and copies artifacts.
func runCompile(ctx context.Context, w io.Writer, opts *compileOpts, overrides []pipeline.Override) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts := pipeline.Options{
		Preset:     opts.preset,
		StyleFile:  opts.styleFile,
		PresetFile: opts.presetFile,
		Profile:    opts.profile,
		Formats:    parseFormats(opts.formats),
		Overrides:  overrides,
		Logger:     logger,
	}
	if opts.copyFormat != "" {
		if err := pipeline.ValidateFormat(opts.copyFormat); err != nil {
			return fmt.Errorf("--copy: %w", err)
		}
	}

	result, err := newRunner(ctx).Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compiled %s (%s profile)", result.Stats.Source, result.Profile.Name))

	formats := orderedFormats(result.Artifacts)
	printArtifacts(w, result, formats, opts.raw)

	if opts.output != "" {
		paths, err := pipeline.WriteArtifacts(ctx, opts.output, result.Artifacts, formats)
		if err != nil {
			return err
		}
		printSuccess(w, "Wrote %d files", len(paths))
		for _, p := range paths {
			printFile(w, p)
		}
	}

	if opts.copyFormat != "" {
		return copyArtifact(w, result, opts.copyFormat)
	}
	return nil
}

// orderedFormats lists the rendered formats in canonical order.
func orderedFormats(artifacts map[string][]byte) []string {
	var out []string
	for _, f := range pipeline.AllFormats {
		if _, ok := artifacts[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

var formatTitles = map[string]string{
	pipeline.FormatFilter:  "Filter",
	pipeline.FormatJSON:    "JSON config",
	pipeline.FormatEscaped: "Escaped JSON",
	pipeline.FormatCSS:     "Preview CSS",
}

// printArtifacts prints each artifact under a heading, or bare when raw.
func printArtifacts(w io.Writer, result *pipeline.Result, formats []string, raw bool) {
	for _, f := range formats {
		body := strings.TrimRight(string(result.Artifacts[f]), "\n")
		if raw {
			fmt.Fprintln(w, body)
			continue
		}
		printSection(w, formatTitles[f], body)
	}
	if raw {
		return
	}
	printKeyValue(w, "Source", result.Stats.Source)
	printKeyValue(w, "Profile", result.Profile.Name)
	printKeyValue(w, "Features", strings.Join(result.Features, ", "))
}

// copyArtifact places one artifact on the system clipboard.
func copyArtifact(w io.Writer, result *pipeline.Result, format string) error {
	data, ok := result.Artifacts[format]
	if !ok {
		rendered, err := pipeline.Render(result.Output, result.Params, []string{format})
		if err != nil {
			return err
		}
		data = rendered[format]
	}

	if clipboard.Unsupported {
		printWarning(w, "Clipboard is not available on this system")
		return nil
	}
	if err := writeClipboard(string(data)); err != nil {
		return errs.Wrap(errs.ErrCodeUnsupported, err, "copy %s to clipboard", format)
	}
	printSuccess(w, "Copied %s to clipboard", formatTitles[format])
	return nil
}
