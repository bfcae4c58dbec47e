// Package problem defines the contract between the routing core and the
// concrete problem types it moves between: a stable name, a variant, and a
// size description. Nothing here knows how any problem is solved.
package problem

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/reductions/variant"
)

// ErrNegativeSize indicates a Size field holds a negative value.
var ErrNegativeSize = errors.New("problem: negative size field")

// Problem is a live instance of a problem type.
type Problem interface {
	// Name is the stable problem name, e.g. "MaximumIndependentSet".
	Name() string
	// Variant is the concrete variant the instance belongs to.
	Variant() variant.Variant
	// Size describes the instance's dimensions. Its field names must cover
	// every variable referenced by any rule whose source is this type.
	Size() Size
}

// Widener is implemented by problem types that can convert themselves into
// a more general variant of the same name without changing the solution space.
type Widener interface {
	Widen(to variant.Variant) (Problem, error)
}

// Size maps a field name to a non-negative instance dimension.
type Size map[string]int

// Get returns the field value and whether it is present.
func (s Size) Get(field string) (int, bool) {
	v, ok := s[field]

	return v, ok
}

// Lookup binds field names for expression evaluation.
func (s Size) Lookup(name string) (float64, bool) {
	v, ok := s[name]

	return float64(v), ok
}

// Names returns the field names sorted ascending.
func (s Size) Names() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Validate rejects negative fields.
func (s Size) Validate() error {
	for _, k := range s.Names() {
		if s[k] < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeSize, k, s[k])
		}
	}

	return nil
}

// Clone returns an independent copy.
func (s Size) Clone() Size {
	out := make(Size, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out
}

// Config is a solution configuration: one value per variable of an instance.
type Config []int

// Clone returns an independent copy.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}

	return append(Config(nil), c...)
}
