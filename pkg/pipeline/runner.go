package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
	"github.com/matzehuels/captionstyle/pkg/observability"
	"github.com/matzehuels/captionstyle/pkg/styleio"
)

// Runner encapsulates pipeline execution against a preset catalog.
//
// The Runner is stateless except for the catalog and logger - it doesn't
// store pipeline results, and preset files named in Options are merged into a
// private copy of the catalog. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Catalog *caption.Catalog
	Logger  *log.Logger
}

// NewRunner creates a runner with the given catalog.
// If catalog is nil, the built-in presets are used.
func NewRunner(catalog *caption.Catalog, logger *log.Logger) *Runner {
	if catalog == nil {
		catalog = caption.DefaultCatalog()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog: catalog,
		Logger:  logger,
	}
}

// Execute runs the complete resolve → compile → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{Profile: opts.profile}

	// Stage 1: Resolve
	resolveStart := time.Now()
	params, err := r.Resolve(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Params = params
	result.Stats.Source = opts.Source()
	result.Stats.ResolveTime = time.Since(resolveStart)

	logger.Debug("resolved parameters",
		"source", result.Stats.Source,
		"duration", result.Stats.ResolveTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Compile
	compileStart := time.Now()
	out, features, err := r.Compile(ctx, params, opts.profile)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Features = features
	result.Stats.CompileTime = time.Since(compileStart)

	logger.Info("compiled caption style",
		"profile", opts.profile.Name,
		"features", strings.Join(features, ","),
		"duration", result.Stats.CompileTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(out, params, opts.Formats)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Resolve produces validated parameters from the defaults, a preset or a
// style file, with the overrides applied in order.
func (r *Runner) Resolve(ctx context.Context, opts Options) (caption.Params, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return caption.Params{}, err
	}

	source := opts.Source()
	start := time.Now()
	observability.Pipeline().OnResolveStart(ctx, source)

	p, err := r.resolve(ctx, opts)
	if err == nil {
		for _, o := range opts.Overrides {
			o(&p)
		}
		err = caption.Validate(p)
	}

	observability.Pipeline().OnResolveComplete(ctx, source, time.Since(start), err)
	if err != nil {
		return caption.Params{}, err
	}
	return p, nil
}

func (r *Runner) resolve(ctx context.Context, opts Options) (caption.Params, error) {
	if opts.StyleFile != "" {
		start := time.Now()
		p, err := styleio.ImportParams(opts.StyleFile)
		observability.Files().OnFileLoad(ctx, "style", opts.StyleFile, time.Since(start), err)
		return p, err
	}
	if opts.Preset == "" {
		return caption.Defaults(), nil
	}

	catalog, err := r.CatalogFor(ctx, opts)
	if err != nil {
		return caption.Params{}, err
	}
	p, ok := catalog.Get(opts.Preset)
	if !ok {
		return caption.Params{}, errs.New(errs.ErrCodePresetNotFound,
			"preset %q not found (available: %s)", opts.Preset, strings.Join(catalog.Names(), ", "))
	}
	return p, nil
}

// CatalogFor returns the runner's catalog, extended with opts.PresetFile when
// one is set. The runner's own catalog is never modified.
func (r *Runner) CatalogFor(ctx context.Context, opts Options) (*caption.Catalog, error) {
	r.applyLogger(&opts)
	if opts.PresetFile == "" {
		return r.Catalog, nil
	}

	start := time.Now()
	extra, err := styleio.ImportCatalog(opts.PresetFile)
	observability.Files().OnFileLoad(ctx, "presets", opts.PresetFile, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	merged := caption.NewCatalog()
	merged.Merge(r.Catalog)
	merged.Merge(extra)
	opts.Logger.Debug("loaded preset file", "path", opts.PresetFile, "presets", extra.Len())
	return merged, nil
}

// Compile compiles p for prof and reports the active features.
func (r *Runner) Compile(ctx context.Context, p caption.Params, prof caption.Profile) (caption.Output, []string, error) {
	start := time.Now()
	observability.Pipeline().OnCompileStart(ctx, prof.Name)

	out, err := caption.Compile(p, caption.WithProfile(prof))
	features := caption.ActiveFeatures(p, prof)

	observability.Pipeline().OnCompileComplete(ctx, prof.Name, len(features), time.Since(start), err)
	if err != nil {
		return caption.Output{}, nil, err
	}
	return out, features, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
