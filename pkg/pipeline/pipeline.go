// Package pipeline provides the caption style pipeline shared by the CLI and
// any other front end.
//
// This package implements the complete resolve → compile → render flow. By
// centralizing it, every entry point resolves presets, style files and
// overrides the same way and validates input at the same boundary.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: start from the defaults, a named preset or a style file, then
//     apply field overrides and validate the result
//  2. Compile: turn the parameters into filter text and JSON config for a
//     capability profile
//  3. Render: produce the requested artifacts (filter, json, escaped, css)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.Options{
//	    Preset:  "gaming",
//	    Formats: []string{"filter", "escaped"},
//	    Overrides: []pipeline.Override{
//	        func(p *caption.Params) { p.Text = "GG" },
//	    },
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filter := result.Artifacts["filter"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultProfile is the capability profile used when none is given.
const DefaultProfile = "full"

// Format constants for artifacts.
const (
	FormatFilter  = "filter"
	FormatJSON    = "json"
	FormatEscaped = "escaped"
	FormatCSS     = "css"
)

// AllFormats lists every artifact format in output order.
var AllFormats = []string{FormatFilter, FormatJSON, FormatEscaped, FormatCSS}

// DefaultFormats are rendered when Options.Formats is empty.
var DefaultFormats = []string{FormatFilter, FormatJSON, FormatEscaped}

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatFilter:  true,
	FormatJSON:    true,
	FormatEscaped: true,
	FormatCSS:     true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Override changes one or more fields after the base parameters are resolved.
type Override func(*caption.Params)

// Options contains all configuration for one pipeline run.
type Options struct {
	// Resolve options. Preset and StyleFile are mutually exclusive; with
	// neither the defaults are used.
	Preset     string `json:"preset,omitempty"`
	StyleFile  string `json:"style_file,omitempty"`
	PresetFile string `json:"preset_file,omitempty"` // extra presets, merged over the built-in ones

	// Compile options
	Profile string `json:"profile,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Overrides []Override  `json:"-"`
	Logger    *log.Logger `json:"-"`

	profile   caption.Profile
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Params are the resolved, validated parameters.
	Params caption.Params

	// Profile is the profile the parameters were compiled for.
	Profile caption.Profile

	// Output holds every compiled representation.
	Output caption.Output

	// Features names the active features in filter order.
	Features []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Source      string // "defaults", "preset:<name>" or "file:<path>"
	ResolveTime time.Duration
	CompileTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(AllFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Preset != "" && o.StyleFile != "" {
		return errs.New(errs.ErrCodeInvalidInput, "preset and style file are mutually exclusive")
	}
	for _, path := range []string{o.StyleFile, o.PresetFile} {
		if path == "" {
			continue
		}
		if err := errs.ValidatePath(path); err != nil {
			return err
		}
	}

	if o.Profile == "" {
		o.Profile = DefaultProfile
	}
	prof, err := caption.ParseProfile(o.Profile)
	if err != nil {
		return err
	}
	o.profile = prof

	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), DefaultFormats...)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Source describes where the base parameters come from.
func (o *Options) Source() string {
	switch {
	case o.StyleFile != "":
		return "file:" + o.StyleFile
	case o.Preset != "":
		return "preset:" + o.Preset
	}
	return "defaults"
}
