package styleio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// ReadParams decodes a style from r on top of caption.Defaults.
//
// An empty document yields the defaults. Unknown keys and malformed values
// return an error with ErrCodeInvalidFormat. The result is not validated;
// call caption.Validate before compiling untrusted input. ReadParams does not
// close r.
func ReadParams(r io.Reader, f Format) (caption.Params, error) {
	p := caption.Defaults()

	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&p)
		if err != nil {
			return caption.Params{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode toml")
		}
		if err := checkUndecoded(md); err != nil {
			return caption.Params{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return caption.Params{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return caption.Params{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return caption.Params{}, errs.New(errs.ErrCodeInvalidFormat, "unsupported style format %q", f)
	}

	normalizeColors(&p)
	return p, nil
}

// ImportParams reads the style file at path. The format follows the file
// extension.
func ImportParams(path string) (caption.Params, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return caption.Params{}, err
	}
	file, err := open(path)
	if err != nil {
		return caption.Params{}, err
	}
	defer file.Close()

	p, err := ReadParams(file, f)
	if err != nil {
		return caption.Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ReadCatalog decodes a preset file: a top-level table keyed by preset name.
// Presets keep their file order and are each decoded on top of
// caption.Defaults.
func ReadCatalog(r io.Reader, f Format) (*caption.Catalog, error) {
	switch f {
	case FormatTOML:
		return readTOMLCatalog(r)
	case FormatYAML:
		return readYAMLCatalog(r)
	case FormatJSON:
		return readJSONCatalog(r)
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported preset format %q", f)
}

// ImportCatalog reads the preset file at path.
func ImportCatalog(path string) (*caption.Catalog, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c, err := ReadCatalog(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func open(path string) (*os.File, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(names, ", "))
}

func readTOMLCatalog(r io.Reader) (*caption.Catalog, error) {
	var raw map[string]toml.Primitive
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode toml")
	}

	c := caption.NewCatalog()
	seen := make(map[string]bool, len(raw))
	for _, key := range md.Keys() {
		name := key[0]
		if seen[name] {
			continue
		}
		seen[name] = true
		p := caption.Defaults()
		if err := md.PrimitiveDecode(raw[name], &p); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "preset %s", name)
		}
		normalizeColors(&p)
		c.Register(name, p)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return c, nil
}

func readYAMLCatalog(r io.Reader) (*caption.Catalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return caption.NewCatalog(), nil
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode yaml")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "line %d: preset file must be a mapping of preset names", root.Line)
	}

	c := caption.NewCatalog()
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		p, err := decodeYAMLPreset(root.Content[i+1])
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "preset %s", name)
		}
		normalizeColors(&p)
		c.Register(name, p)
	}
	return c, nil
}

// decodeYAMLPreset decodes one preset over the defaults, rejecting unknown
// keys. Node.Decode has no strict mode, so the node goes back through a
// decoder.
func decodeYAMLPreset(node *yaml.Node) (caption.Params, error) {
	data, err := yaml.Marshal(node)
	if err != nil {
		return caption.Params{}, err
	}
	p := caption.Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return caption.Params{}, err
	}
	return p, nil
}

func readJSONCatalog(r io.Reader) (*caption.Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	c := caption.NewCatalog()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json")
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "expected preset name, got %v", tok)
		}
		p := caption.Defaults()
		if err := dec.Decode(&p); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "preset %s", name)
		}
		normalizeColors(&p)
		c.Register(name, p)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return c, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json")
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errs.New(errs.ErrCodeInvalidFormat, "expected %q, got %v", want, tok)
	}
	return nil
}
