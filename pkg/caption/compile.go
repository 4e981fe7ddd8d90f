package caption

import (
	"math"

	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// Output holds the three compiled representations of one Params value.
type Output struct {
	// Filter is the drawtext parameter string, clauses joined by ':'.
	Filter string
	// Config is the structured JSON configuration.
	Config Config
	// JSON is Config pretty-printed with a two-space indent.
	JSON string
	// Compact is Config on a single line.
	Compact string
	// Escaped is Compact with every '"' backslash-escaped, wrapped in quotes.
	Escaped string
}

// Option configures Compile.
type Option func(*compiler)

type compiler struct {
	profile Profile
}

// WithProfile selects the capability profile. The default is ProfileFull.
func WithProfile(p Profile) Option {
	return func(c *compiler) { c.profile = p }
}

// Compile maps p to its filter text, JSON config and escaped JSON string.
//
// Compile is pure and deterministic and keeps no state between calls, so it is
// safe for concurrent use. Out-of-range values are emitted as given; run
// Validate first at the input boundary. The only error is a NaN or infinite
// float field, which JSON cannot represent.
func Compile(p Params, opts ...Option) (Output, error) {
	c := compiler{profile: ProfileFull}
	for _, opt := range opts {
		opt(&c)
	}

	if err := checkFinite(p); err != nil {
		return Output{}, err
	}

	filter := buildFilter(p, c.profile)
	cfg := buildConfig(p, c.profile, filter)

	pretty, err := marshalConfig(cfg, "  ")
	if err != nil {
		return Output{}, errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}
	compact, err := marshalConfig(cfg, "")
	if err != nil {
		return Output{}, errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}

	return Output{
		Filter:  filter,
		Config:  cfg,
		JSON:    pretty,
		Compact: compact,
		Escaped: Escape(compact),
	}, nil
}

// Filter returns only the filter text for p.
func Filter(p Params, opts ...Option) string {
	c := compiler{profile: ProfileFull}
	for _, opt := range opts {
		opt(&c)
	}
	return buildFilter(p, c.profile)
}

func checkFinite(p Params) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"alpha", p.Alpha},
		{"box.opacity", p.Box.Opacity},
		{"fade.in", p.Fade.In},
		{"fade.out", p.Fade.Out},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errs.New(errs.ErrCodeInvalidRange, "%s: %v is not a finite number", f.name, f.v)
		}
	}
	return nil
}
