package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
	"github.com/matzehuels/captionstyle/pkg/observability"
)

// artifactFiles maps each format to the file name used by WriteArtifacts.
var artifactFiles = map[string]string{
	FormatFilter:  "filter.txt",
	FormatJSON:    "config.json",
	FormatEscaped: "config.escaped.txt",
	FormatCSS:     "preview.css",
}

// Render generates output artifacts in the requested formats. The filter,
// json and escaped artifacts are the exact strings in out; css is the preview
// style of p.
func Render(out caption.Output, p caption.Params, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		switch format {
		case FormatFilter:
			artifacts[format] = []byte(out.Filter)
		case FormatJSON:
			artifacts[format] = []byte(out.JSON)
		case FormatEscaped:
			artifacts[format] = []byte(out.Escaped)
		case FormatCSS:
			artifacts[format] = []byte(caption.Preview(p).String())
		default:
			return nil, errs.New(errs.ErrCodeUnsupported, "unsupported format: %s", format)
		}
	}
	return artifacts, nil
}

// ArtifactFilename returns the file name WriteArtifacts uses for format.
func ArtifactFilename(format string) string {
	if name, ok := artifactFiles[format]; ok {
		return name
	}
	return format + ".txt"
}

// WriteArtifacts writes each artifact to dir, creating it if needed, in the
// order of formats. It returns the paths written.
func WriteArtifacts(ctx context.Context, dir string, artifacts map[string][]byte, formats []string) ([]string, error) {
	if err := errs.ValidatePath(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", dir)
	}

	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, ArtifactFilename(format))
		buf := append(append([]byte(nil), data...), '\n')
		err := os.WriteFile(path, buf, 0o644)
		observability.Files().OnArtifactWrite(ctx, path, len(buf), err)
		if err != nil {
			return paths, errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
