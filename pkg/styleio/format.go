package styleio

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// Format is a style file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// ParseFormat maps a format name to a Format. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported style format %q (must be toml, yaml or json)", name)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errs.New(errs.ErrCodeInvalidFormat, "%s: missing file extension (use .toml, .yaml or .json)", path)
	}
	return ParseFormat(ext)
}

// normalizeColors adds a missing '#' to well-formed colors. Malformed values
// are left for caption.Validate to report.
func normalizeColors(p *caption.Params) {
	for _, c := range []*caption.Color{&p.FontColor, &p.Outline.Color, &p.Shadow.Color, &p.Box.Color} {
		if parsed, err := caption.ParseColor(string(*c)); err == nil {
			*c = parsed
		}
	}
}
