package styleio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// WriteParams encodes p to w in the given format. The output can be read back
// with [ReadParams].
func WriteParams(w io.Writer, p caption.Params, f Format) error {
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode toml")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode yaml")
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode json")
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unsupported style format %q", f)
	}
	return nil
}

// ExportParams writes p to a file at path, in the format of its extension.
func ExportParams(path string, p caption.Params) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer file.Close()
	return WriteParams(file, p, f)
}
