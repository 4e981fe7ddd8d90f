// Package caption compiles caption style parameters into the text formats
// consumed by video tooling.
//
// # Overview
//
// A [Params] value describes one caption: font, color, alignment, outline,
// shadow, background box, rotation, letter spacing, expansion, fade and
// position. [Compile] turns it into three strings:
//
//   - Filter text for a drawtext-style overlay filter, e.g.
//     text='Hello':fontfile='Arial':fontsize=32:fontcolor=FFFFFF:x=(w-text_w)/2:y=h-text_h-10
//   - A JSON configuration object, pretty printed with a two-space indent
//   - The same JSON on one line with every '"' escaped and wrapped in quotes,
//     for pasting into a string field of a no-code automation tool
//
// [Preview] additionally produces CSS declarations for a browser preview.
//
// # Default Omission
//
// Only non-default features are emitted. A single feature table decides for
// each feature whether it is active, and both the filter builder and the JSON
// builder consult that table, so a key is present in the JSON exactly when
// its clauses are present in the filter text.
//
// # Profiles
//
// Advanced features are capabilities of a [Profile]. [ProfileFull] emits the
// font identifier, outline, shadow, rotation, spacing, expansion, fade and a
// structured JSON position. [ProfileBasic] omits those and adds explicit box
// width and padding; its JSON position is the bare anchor name.
//
//	out, err := caption.Compile(p, caption.WithProfile(caption.ProfileBasic))
//
// # Positions
//
// A [Position] is either one of nine [Anchor] values or a custom [Offset].
// Anchor names that are unknown resolve to bottom_center; this is a fallback,
// not an error.
//
// # Presets
//
// [DefaultCatalog] holds the built-in presets. Every preset is a complete
// Params value, so applying one replaces the whole parameter set.
//
// # Validation
//
// Compile never rejects finite input; values outside their documented ranges
// are emitted as given. Callers that accept user input should run [Validate]
// first.
package caption
