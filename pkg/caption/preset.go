package caption

import (
	"sort"
	"sync"
)

// Catalog maps preset names to complete Params values. Applying a preset
// replaces every field; nothing from the previous parameters survives.
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Params
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Params)}
}

// DefaultCatalog returns a catalog holding the built-in presets:
// corporate, gaming, elegant, bold and minimal.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, name := range builtinOrder {
		c.Register(name, builtinPresets[name])
	}
	return c
}

// Register adds or replaces a preset. Later registrations keep the position
// of the first one in Names.
func (c *Catalog) Register(name string, p Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[name]; !ok {
		c.order = append(c.order, name)
	}
	c.entries[name] = p.Clone()
}

// Get returns the preset called name. The boolean is false when no such
// preset exists.
func (c *Catalog) Get(name string) (Params, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.entries[name]
	if !ok {
		return Params{}, false
	}
	return p.Clone(), true
}

// Apply returns the preset called name in place of current. When name is
// unknown current is returned unchanged and ok is false. The result never
// mixes fields from current and the preset.
func (c *Catalog) Apply(current Params, name string) (Params, bool) {
	p, ok := c.Get(name)
	if !ok {
		return current, false
	}
	return p, true
}

// Names returns preset names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// SortedNames returns preset names in lexical order.
func (c *Catalog) SortedNames() []string {
	names := c.Names()
	sort.Strings(names)
	return names
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Merge registers every preset of other into c.
func (c *Catalog) Merge(other *Catalog) {
	for _, name := range other.Names() {
		p, _ := other.Get(name)
		c.Register(name, p)
	}
}

var builtinOrder = []string{"corporate", "gaming", "elegant", "bold", "minimal"}

var builtinPresets = map[string]Params{
	"corporate": {
		FontFamily:  "Arial",
		FontSize:    32,
		FontColor:   "#003366",
		Align:       AlignCenter,
		LineSpacing: 0,
		Alpha:       1,
		Outline:     Outline{Enabled: false, Color: "#000000", Width: 1},
		Shadow:      Shadow{Enabled: true, Color: "#000000", X: 2, Y: 2},
		Box:         Box{Enabled: true, Color: "#FFFFFF", Opacity: 0.9, Border: 2},
		Expansion:   Expansion{Enabled: false, Mode: ExpansionNone},
		Fade:        Fade{Enabled: false},
		Position:    AtAnchor(AnchorBottomCenter),
		Padding:     15,
	},
	"gaming": {
		FontFamily:  "Impact",
		FontSize:    36,
		FontColor:   "#FFD700",
		Align:       AlignCenter,
		LineSpacing: 2,
		Alpha:       1,
		Outline:     Outline{Enabled: true, Color: "#000000", Width: 3},
		Shadow:      Shadow{Enabled: true, Color: "#FF0000", X: 3, Y: 3},
		Box:         Box{Enabled: false, Color: "#000000", Opacity: 0.7},
		Spacing:     1,
		Expansion:   Expansion{Enabled: false, Mode: ExpansionNone},
		Fade:        Fade{Enabled: false},
		Position:    AtAnchor(AnchorCenter),
		Padding:     20,
	},
	"elegant": {
		FontFamily:  "Georgia",
		FontSize:    24,
		FontColor:   "#FFFFFF",
		Align:       AlignRight,
		LineSpacing: 3,
		Alpha:       0.9,
		Outline:     Outline{Enabled: false, Color: "#000000", Width: 1},
		Shadow:      Shadow{Enabled: true, Color: "#333333", X: 1, Y: 1},
		Box:         Box{Enabled: true, Color: "#000000", Opacity: 0.3, Border: 1},
		Expansion:   Expansion{Enabled: false, Mode: ExpansionNone},
		Fade:        Fade{Enabled: true, In: 1, Out: 1},
		Position:    AtAnchor(AnchorBottomRight),
		Padding:     10,
	},
	"bold": {
		FontFamily:  "Arial",
		FontSize:    40,
		FontColor:   "#FF4500",
		Align:       AlignCenter,
		LineSpacing: 0,
		Alpha:       1,
		Outline:     Outline{Enabled: true, Color: "#FFFFFF", Width: 4},
		Shadow:      Shadow{Enabled: true, Color: "#000000", X: 4, Y: 4},
		Box:         Box{Enabled: true, Color: "#000000", Opacity: 0.8, Border: 4},
		Spacing:     2,
		Expansion:   Expansion{Enabled: false, Mode: ExpansionNone},
		Fade:        Fade{Enabled: false},
		Position:    AtAnchor(AnchorTopCenter),
		Padding:     25,
	},
	"minimal": {
		FontFamily:  "Helvetica",
		FontSize:    20,
		FontColor:   "#FFFFFF",
		Align:       AlignLeft,
		LineSpacing: 0,
		Alpha:       1,
		Outline:     Outline{Enabled: false, Color: "#000000", Width: 0},
		Shadow:      Shadow{Enabled: false, Color: "#000000", X: 0, Y: 0},
		Box:         Box{Enabled: false, Color: "#000000", Opacity: 0},
		Expansion:   Expansion{Enabled: false, Mode: ExpansionNone},
		Fade:        Fade{Enabled: false},
		Position:    AtAnchor(AnchorBottomCenter),
		Padding:     5,
	},
}
