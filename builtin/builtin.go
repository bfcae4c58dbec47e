// Package builtin ships the library's standard reduction facts: the graph,
// weight and k hierarchies, the size fields every standard problem exposes,
// and the standard rule set with its overhead formulas.
//
// Rules carry no transforms; callers that execute chains register their own
// rules with Reduce functions alongside, or instead of, this provider.
package builtin

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/facts"
)

//go:embed facts.yaml
var factsYAML []byte

var (
	once   sync.Once
	doc    *facts.Document
	docErr error
)

func load() (*facts.Document, error) {
	once.Do(func() {
		doc, docErr = facts.Load(bytes.NewReader(factsYAML))
	})

	return doc, docErr
}

// Provider returns the standard facts as a catalog.Provider.
func Provider() catalog.Provider {
	return catalog.ProviderFunc(func() (catalog.Facts, error) {
		d, err := load()
		if err != nil {
			return catalog.Facts{}, err
		}

		return d.Facts()
	})
}

// Catalog builds a catalog from the standard facts followed by extra providers.
func Catalog(extra []catalog.Provider, opts ...catalog.Option) (*catalog.Catalog, error) {
	return catalog.New(append([]catalog.Provider{Provider()}, extra...), opts...)
}

// SizeFields returns the size fields a standard problem exposes.
func SizeFields(name string) ([]string, bool) {
	d, err := load()
	if err != nil {
		return nil, false
	}

	return d.SizeFields(name)
}
