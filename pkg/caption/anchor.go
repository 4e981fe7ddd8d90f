package caption

// Anchor names one of the nine screen-relative caption positions.
type Anchor string

// The nine anchors, three vertical bands by three horizontal ones.
const (
	AnchorTopLeft      Anchor = "top_left"
	AnchorTopCenter    Anchor = "top_center"
	AnchorTopRight     Anchor = "top_right"
	AnchorCenterLeft   Anchor = "center_left"
	AnchorCenter       Anchor = "center"
	AnchorCenterRight  Anchor = "center_right"
	AnchorBottomLeft   Anchor = "bottom_left"
	AnchorBottomCenter Anchor = "bottom_center"
	AnchorBottomRight  Anchor = "bottom_right"
)

// FallbackAnchor is used whenever an anchor name is unknown or empty.
const FallbackAnchor = AnchorBottomCenter

// Placement is the CSS form of an anchor for a visual preview: offsets from
// the frame edges plus a centering transform. Unused edges are empty.
type Placement struct {
	Top       string
	Right     string
	Bottom    string
	Left      string
	Transform string
}

// anchorSpec holds both representations of one anchor. Keeping them in a
// single row is what keeps the preview and the filter in agreement.
type anchorSpec struct {
	x, y      string
	placement Placement
}

// anchorOrder is grid order, row by row from the top.
var anchorOrder = []Anchor{
	AnchorTopLeft, AnchorTopCenter, AnchorTopRight,
	AnchorCenterLeft, AnchorCenter, AnchorCenterRight,
	AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight,
}

// anchorTable uses the overlay tool's expression language: w/h are the frame
// dimensions, text_w/text_h the rendered text dimensions.
var anchorTable = map[Anchor]anchorSpec{
	AnchorTopLeft: {
		x: "10", y: "10",
		placement: Placement{Top: "10px", Left: "10px", Transform: "none"},
	},
	AnchorTopCenter: {
		x: "(w-text_w)/2", y: "10",
		placement: Placement{Top: "10px", Left: "50%", Transform: "translateX(-50%)"},
	},
	AnchorTopRight: {
		x: "w-text_w-10", y: "10",
		placement: Placement{Top: "10px", Right: "10px", Transform: "none"},
	},
	AnchorCenterLeft: {
		x: "10", y: "(h-text_h)/2",
		placement: Placement{Top: "50%", Left: "10px", Transform: "translateY(-50%)"},
	},
	AnchorCenter: {
		x: "(w-text_w)/2", y: "(h-text_h)/2",
		placement: Placement{Top: "50%", Left: "50%", Transform: "translate(-50%, -50%)"},
	},
	AnchorCenterRight: {
		x: "w-text_w-10", y: "(h-text_h)/2",
		placement: Placement{Top: "50%", Right: "10px", Transform: "translateY(-50%)"},
	},
	AnchorBottomLeft: {
		x: "10", y: "h-text_h-10",
		placement: Placement{Bottom: "10px", Left: "10px", Transform: "none"},
	},
	AnchorBottomCenter: {
		x: "(w-text_w)/2", y: "h-text_h-10",
		placement: Placement{Bottom: "10px", Left: "50%", Transform: "translateX(-50%)"},
	},
	AnchorBottomRight: {
		x: "w-text_w-10", y: "h-text_h-10",
		placement: Placement{Bottom: "10px", Right: "10px", Transform: "none"},
	},
}

// Anchors returns all anchors in grid order.
func Anchors() []Anchor {
	out := make([]Anchor, len(anchorOrder))
	copy(out, anchorOrder)
	return out
}

// Known reports whether a is one of the nine anchors.
func (a Anchor) Known() bool {
	_, ok := anchorTable[a]
	return ok
}

// ResolveAnchor maps name to an anchor, falling back to FallbackAnchor for
// unknown or empty names. It never fails.
func ResolveAnchor(name string) Anchor {
	if a := Anchor(name); a.Known() {
		return a
	}
	return FallbackAnchor
}

// Resolve returns a itself when known and FallbackAnchor otherwise.
func (a Anchor) Resolve() Anchor {
	return ResolveAnchor(string(a))
}

// Expr returns the x and y position expressions for the anchor.
func (a Anchor) Expr() (x, y string) {
	s := anchorTable[a.Resolve()]
	return s.x, s.y
}

// Clause returns the anchor's position as filter text, e.g. "x=10:y=10".
func (a Anchor) Clause() string {
	x, y := a.Expr()
	return joinClauses([]clause{{"x", x}, {"y", y}})
}

// Placement returns the CSS placement for the anchor.
func (a Anchor) Placement() Placement {
	return anchorTable[a.Resolve()].placement
}
