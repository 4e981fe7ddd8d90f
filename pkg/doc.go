// Package pkg provides the libraries behind the captionstyle tool.
//
// # Overview
//
// captionstyle compiles caption styling parameters into the inputs a video
// text-overlay tool needs: a drawtext filter string, a JSON configuration and
// an escaped JSON string for automation tools. The pkg directory is organized
// as follows:
//
//  1. [caption] - Domain logic (parameters, anchors, profiles, compilation,
//     presets, preview, validation)
//  2. [styleio] - Style and preset files in TOML, YAML or JSON
//  3. [pipeline] - Orchestration (resolve → compile → render)
//  4. [errors] - Structured error codes and input validators
//  5. [observability] - Optional instrumentation hooks
//  6. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The typical data flow:
//
//	defaults | preset | style file
//	         ↓
//	    [styleio] package (decode files over the defaults)
//	         ↓
//	    [caption] package (validate + compile)
//	         ↓
//	    filter / JSON / escaped JSON / preview CSS
//
// # Quick Start
//
// Compile a preset with custom text:
//
//	import "github.com/matzehuels/captionstyle/pkg/caption"
//
//	p, _ := caption.DefaultCatalog().Get("elegant")
//	p.Text = "Chapter one"
//
//	out, err := caption.Compile(p)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(out.Filter)  // text='Chapter one':fontfile='Georgia':...
//	fmt.Println(out.JSON)    // pretty-printed config
//	fmt.Println(out.Escaped) // "{\"text\":\"Chapter one\",...}"
//
// Run the full pipeline with a style file:
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    StyleFile: "brand.toml",
//	    Profile:   "basic",
//	})
//
// # Compilation Profiles
//
// Two generators share one compiler. [caption.ProfileFull] emits the font
// file, outline, shadow, rotation, letter spacing, text expansion, fades and a
// structured JSON position. [caption.ProfileBasic] drops those and adds
// explicit box width and padding; its JSON position is the bare anchor name.
//
// # Error Handling
//
// Functions return *errors.Error values carrying a machine-readable code:
//
//	if errors.Is(err, errors.ErrCodePresetNotFound) {
//	    // list the available presets
//	}
//
// # Thread Safety
//
// [caption.Compile] is pure and safe for concurrent use. [caption.Catalog]
// guards its map with a lock. [pipeline.Runner] keeps no per-run state.
//
// [caption]: github.com/matzehuels/captionstyle/pkg/caption
// [styleio]: github.com/matzehuels/captionstyle/pkg/styleio
// [pipeline]: github.com/matzehuels/captionstyle/pkg/pipeline
// [errors]: github.com/matzehuels/captionstyle/pkg/errors
// [observability]: github.com/matzehuels/captionstyle/pkg/observability
// [buildinfo]: github.com/matzehuels/captionstyle/pkg/buildinfo
// [caption.ProfileFull]: github.com/matzehuels/captionstyle/pkg/caption.ProfileFull
// [caption.ProfileBasic]: github.com/matzehuels/captionstyle/pkg/caption.ProfileBasic
// [caption.Compile]: github.com/matzehuels/captionstyle/pkg/caption.Compile
// [caption.Catalog]: github.com/matzehuels/captionstyle/pkg/caption.Catalog
// [pipeline.Runner]: github.com/matzehuels/captionstyle/pkg/pipeline.Runner
package pkg
