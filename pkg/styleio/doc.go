// Package styleio reads and writes caption style files and preset catalogs.
//
// # Formats
//
// Three encodings are supported, chosen from the file extension:
//
//   - .toml: decoded with github.com/BurntSushi/toml
//   - .yaml, .yml: decoded with gopkg.in/yaml.v3
//   - .json: decoded with encoding/json
//
// Keys are snake_case and mirror [caption.Params]:
//
//	text = "Hello"
//	font_family = "Georgia"
//	font_size = 28
//	font_color = "#FFFFFF"
//
//	[outline]
//	enabled = true
//	color = "#000000"
//	width = 2
//
//	[position]
//	anchor = "top_right"
//
// # Defaults
//
// Every style is decoded on top of [caption.Defaults], so a file only needs
// the fields it changes. Unknown keys are rejected with
// errors.ErrCodeInvalidFormat, which catches typos such as "font_colour".
//
// # Preset Catalogs
//
// A preset file holds one table per preset name:
//
//	[neon]
//	font_color = "#39FF14"
//	[neon.outline]
//	enabled = true
//
// [ReadCatalog] and [ImportCatalog] keep the presets in file order. Each
// preset is decoded on top of the defaults independently, so presets never
// inherit from one another.
//
// # Export
//
// [WriteParams] and [ExportParams] write a complete style in any of the three
// formats. The output can be read back with [ReadParams] unchanged.
package styleio
