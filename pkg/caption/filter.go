package caption

import (
	"strconv"
	"strings"
)

// clauseSep joins filter clauses.
const clauseSep = ":"

// fadeOutWindow is the fixed length of the fade-out, in seconds.
const fadeOutWindow = 5

// clause is one key=value pair of filter text.
type clause struct {
	key, value string
}

func joinClauses(cs []clause) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.key + "=" + c.value
	}
	return strings.Join(parts, clauseSep)
}

// buildFilter assembles the filter text: the mandatory clauses, then every
// active feature in table order.
func buildFilter(p Params, prof Profile) string {
	cs := []clause{{"text", quote(p.text())}}
	if prof.Has(CapFontFile) {
		cs = append(cs, clause{"fontfile", quote(p.FontFamily)})
	}
	cs = append(cs,
		clause{"fontsize", strconv.Itoa(p.FontSize)},
		clause{"fontcolor", p.FontColor.Hex()},
	)

	for _, f := range activeFeatures(p, prof) {
		cs = append(cs, f.filter(p, prof)...)
	}
	return joinClauses(cs)
}

func quote(s string) string { return "'" + s + "'" }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// fadeExpr is the visibility-and-fade expression over [start, end].
func fadeExpr(start, end float64) string {
	s, e := formatFloat(start), formatFloat(end)
	return quote("between(t," + s + "," + e + ")*fade(t," + s + "," + e + ")")
}
