package variant

import (
	"sort"
	"strings"
)

// GraphAxis is the category name of the graph-shape axis, the one axis the
// path finder gates edges on.
const GraphAxis = "graph"

// Variant maps axis category to axis value, e.g. {graph: SimpleGraph, weight: i32}.
// A nil or empty Variant is the variant of a problem without axes.
type Variant map[string]string

// Get returns the value of axis category, or "" if the axis is absent.
func (v Variant) Get(category string) string { return v[category] }

// Axes returns the axis categories sorted ascending.
func (v Variant) Axes() []string {
	out := make([]string, 0, len(v))
	for c := range v {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Key renders the canonical form "graph=SimpleGraph,weight=i32" (axes sorted).
// Equal variants have equal keys; the empty variant renders as "".
func (v Variant) Key() string {
	var b strings.Builder
	for i, c := range v.Axes() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c)
		b.WriteByte('=')
		b.WriteString(v[c])
	}

	return b.String()
}

// String is Key wrapped in braces.
func (v Variant) String() string { return "{" + v.Key() + "}" }

// Equal reports axis-by-axis equality. nil and empty are equal.
func (v Variant) Equal(o Variant) bool {
	if len(v) != len(o) {
		return false
	}
	for c, val := range v {
		if ov, ok := o[c]; !ok || ov != val {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (v Variant) Clone() Variant {
	if v == nil {
		return nil
	}
	out := make(Variant, len(v))
	for c, val := range v {
		out[c] = val
	}

	return out
}

// sameAxes reports whether v and o declare exactly the same categories.
func (v Variant) sameAxes(o Variant) bool {
	if len(v) != len(o) {
		return false
	}
	for c := range v {
		if _, ok := o[c]; !ok {
			return false
		}
	}

	return true
}
