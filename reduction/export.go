package reduction

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/variant"
)

// Document is the serializable view of a graph for documentation and
// visualization tools.
type Document struct {
	Nodes []Node       `json:"nodes"`
	Edges []ExportEdge `json:"edges"`
}

// Node is one (name, variant) pair.
type Node struct {
	Name     string            `json:"name"`
	Variant  map[string]string `json:"variant"`
	Key      string            `json:"key"`
	Category string            `json:"category"`
	Axes     []Axis            `json:"axes"`
}

// Axis describes one variant axis value and its supertypes.
type Axis struct {
	Category  string   `json:"category"`
	Value     string   `json:"value"`
	Ancestors []string `json:"ancestors,omitempty"`
}

// ExportEdge is a rule (IsNatural false) or a derived natural cast, whose
// overhead is the identity over the problem's size fields.
type ExportEdge struct {
	Source        string            `json:"source"`
	SourceVariant map[string]string `json:"source_variant"`
	Target        string            `json:"target"`
	TargetVariant map[string]string `json:"target_variant"`
	Overhead      []overhead.Spec   `json:"overhead"`
	IsNatural     bool              `json:"is_natural"`
}

// Export lists every known (name, variant) node, then every rule followed
// by every natural edge. Natural edges are derived afresh on each call.
func (g *Graph) Export() *Document {
	h := g.cat.Hierarchy()
	doc := &Document{Nodes: []Node{}, Edges: []ExportEdge{}}

	for _, name := range g.cat.Names() {
		for _, v := range g.cat.Variants(name) {
			n := Node{
				Name:     name,
				Variant:  plain(v),
				Key:      v.Key(),
				Category: categorize(name),
				Axes:     []Axis{},
			}
			for _, c := range v.Axes() {
				n.Axes = append(n.Axes, Axis{Category: c, Value: v[c], Ancestors: h.Ancestors(c, v[c])})
			}
			doc.Nodes = append(doc.Nodes, n)
		}
	}
	for _, r := range g.cat.Rules() {
		doc.Edges = append(doc.Edges, ExportEdge{
			Source:        r.SourceName,
			SourceVariant: plain(r.SourceVariant),
			Target:        r.TargetName,
			TargetVariant: plain(r.TargetVariant),
			Overhead:      r.Overhead.Specs(),
		})
	}
	for _, ne := range g.cat.NaturalEdges() {
		doc.Edges = append(doc.Edges, ExportEdge{
			Source:        ne.Name,
			SourceVariant: plain(ne.From),
			Target:        ne.Name,
			TargetVariant: plain(ne.To),
			Overhead:      ne.Overhead.Specs(),
			IsNatural:     true,
		})
	}

	return doc
}

// WriteJSON writes d as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

func plain(v variant.Variant) map[string]string {
	out := make(map[string]string, len(v))
	for c, val := range v {
		out[c] = val
	}

	return out
}

// categorize groups problem names for display.
func categorize(name string) string {
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
	switch {
	case has("IndependentSet", "VertexCover", "MaxCut", "Coloring", "DominatingSet", "Matching", "Clique"):
		return "graph"
	case has("SetPacking", "SetCover"):
		return "set"
	case has("SpinGlass", "QUBO", "ILP"):
		return "optimization"
	case has("Satisfiability", "SAT"):
		return "satisfiability"
	case has("Factoring", "Circuit", "TravelingSalesman"):
		return "specialized"
	default:
		return "other"
	}
}
