package caption

import (
	"strings"

	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// Capability is an optional feature a Profile may support.
type Capability uint16

// Capabilities. Features without a capability are available to every profile.
const (
	// CapFontFile emits the font identifier in the filter and config.
	CapFontFile Capability = 1 << iota
	// CapTransform enables rotation and letter spacing.
	CapTransform
	// CapExpansion enables the text expansion clause.
	CapExpansion
	// CapFade enables fade-in and fade-out clauses.
	CapFade
	// CapOutline enables the glyph outline.
	CapOutline
	// CapShadow enables the drop shadow and its offsets.
	CapShadow
	// CapBoxSize enables explicit box width and padding.
	CapBoxSize
	// CapRichConfig adds non-default keys and a structured position to the
	// JSON config. Without it the position is the bare anchor name.
	CapRichConfig
)

// Profile is a named capability set. One compiler serves every profile.
type Profile struct {
	Name string
	Caps Capability
}

var (
	// ProfileFull is the full-featured generator.
	ProfileFull = Profile{
		Name: "full",
		Caps: CapFontFile | CapTransform | CapExpansion | CapFade | CapOutline | CapShadow | CapRichConfig,
	}

	// ProfileBasic is the reduced box/position generator.
	ProfileBasic = Profile{
		Name: "basic",
		Caps: CapBoxSize,
	}
)

// Profiles lists the built-in profiles.
var Profiles = []Profile{ProfileFull, ProfileBasic}

// Has reports whether the profile supports all capabilities in c.
func (p Profile) Has(c Capability) bool {
	return p.Caps&c == c
}

// ParseProfile looks up a built-in profile by name. An empty name selects
// ProfileFull.
func ParseProfile(name string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ProfileFull, nil
	}
	for _, p := range Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, errs.New(errs.ErrCodeInvalidProfile, "unknown profile %q (must be 'full' or 'basic')", name)
}
