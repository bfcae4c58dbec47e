// Package overhead models how instance size grows when a reduction rule is
// applied: an ordered set of output fields, each a formula over the input
// size fields.
package overhead

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/reductions/expr"
	"github.com/katalvlaran/reductions/problem"
)

var (
	// ErrFieldMismatch indicates formulas reference size fields the source
	// problem does not expose.
	ErrFieldMismatch = errors.New("overhead: formula references unknown size fields")

	// ErrSizeOutOfRange indicates a field evaluated to a negative, non-finite
	// or too large value to be a size. It always comes with expr.ErrDomain.
	ErrSizeOutOfRange = errors.New("overhead: size out of range")

	// ErrDuplicateField indicates one output field was declared twice.
	ErrDuplicateField = errors.New("overhead: duplicate output field")

	// ErrEmptyField indicates an output field with an empty name.
	ErrEmptyField = errors.New("overhead: empty output field name")
)

// Spec is the textual declaration of one output field.
type Spec struct {
	Field   string `yaml:"field" json:"field" validate:"required"`
	Formula string `yaml:"formula" json:"expression" validate:"required"`
}

// Field is one parsed output field.
type Field struct {
	Name string
	Expr *expr.Expr
}

// Overhead is immutable once built.
type Overhead struct {
	fields []Field
}

// New parses every spec in order. Parse errors are wrapped with the field name
// and match expr.ErrParse.
func New(specs ...Spec) (*Overhead, error) {
	o := &Overhead{fields: make([]Field, 0, len(specs))}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Field == "" {
			return nil, ErrEmptyField
		}
		if seen[s.Field] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, s.Field)
		}
		seen[s.Field] = true

		e, err := expr.Parse(s.Formula)
		if err != nil {
			return nil, fmt.Errorf("overhead: field %q formula %q: %w", s.Field, s.Formula, err)
		}
		o.fields = append(o.fields, Field{Name: s.Field, Expr: e})
	}

	return o, nil
}

// MustNew is New that panics on error.
func MustNew(specs ...Spec) *Overhead {
	o, err := New(specs...)
	if err != nil {
		panic(err)
	}

	return o
}

// FromFields wraps already parsed fields. Field order is kept.
func FromFields(fields ...Field) *Overhead {
	return &Overhead{fields: append([]Field(nil), fields...)}
}

// Identity maps every field to the same-named input field.
func Identity(fields ...string) *Overhead {
	o := &Overhead{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		o.fields = append(o.fields, Field{Name: f, Expr: expr.Var(f)})
	}

	return o
}

// Len returns the number of output fields.
func (o *Overhead) Len() int { return len(o.fields) }

// Fields returns the output fields in declaration order.
func (o *Overhead) Fields() []Field { return append([]Field(nil), o.fields...) }

// Get returns the formula for one output field.
func (o *Overhead) Get(field string) (*expr.Expr, bool) {
	for _, f := range o.fields {
		if f.Name == field {
			return f.Expr, true
		}
	}

	return nil, false
}

// Specs renders every field back to text.
func (o *Overhead) Specs() []Spec {
	out := make([]Spec, len(o.fields))
	for i, f := range o.fields {
		out[i] = Spec{Field: f.Name, Formula: f.Expr.String()}
	}

	return out
}

// Variables returns every input field referenced by any formula, sorted.
func (o *Overhead) Variables() []string {
	seen := make(map[string]struct{})
	for _, f := range o.fields {
		for _, v := range f.Expr.Variables() {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Validate checks that every referenced variable is one of sourceFields.
func (o *Overhead) Validate(sourceFields []string) error {
	known := make(map[string]bool, len(sourceFields))
	for _, f := range sourceFields {
		known[f] = true
	}
	var unknown []string
	for _, v := range o.Variables() {
		if !known[v] {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %v (available: %v)", ErrFieldMismatch, unknown, sourceFields)
	}

	return nil
}

// Evaluate computes the output size for input.
// Every field is evaluated and then rounded with RoundSize; the first
// failure aborts.
func (o *Overhead) Evaluate(input problem.Size) (problem.Size, error) {
	out := make(problem.Size, len(o.fields))
	for _, f := range o.fields {
		v, err := f.Expr.Evaluate(input)
		if err != nil {
			return nil, fmt.Errorf("overhead: field %q: %w", f.Name, err)
		}
		n, err := RoundSize(f.Name, v)
		if err != nil {
			return nil, err
		}
		out[f.Name] = n
	}

	return out, nil
}

// RoundSize converts one evaluated formula to a size: rounded to nearest,
// rejecting negative, non-finite, and larger-than-int results.
func RoundSize(field string, v float64) (int, error) {
	r := math.Round(v)
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 || r >= math.MaxInt {
		return 0, fmt.Errorf("%w: %w", ErrSizeOutOfRange, &expr.EvalError{
			Kind:   expr.Domain,
			Func:   expr.FuncFloor,
			Detail: fmt.Sprintf("overhead for %q produced out-of-range value %v", field, v),
		})
	}

	return int(r), nil
}

// Compose returns the overhead of applying o and then next: next's formulas
// with o's outputs substituted for their inputs. Inputs of next that o does
// not produce stay as free variables.
//
// Evaluate rounds every field, so evaluating the composition equals
// evaluating o then next only when o's formulas yield whole numbers for the
// input at hand. For n = 3, "n / 2" then "m * 2" gives 4 in sequence and 3
// composed.
func (o *Overhead) Compose(next *Overhead) *Overhead {
	repl := make(map[string]*expr.Expr, len(o.fields))
	for _, f := range o.fields {
		repl[f.Name] = f.Expr
	}
	out := &Overhead{fields: make([]Field, len(next.fields))}
	for i, f := range next.fields {
		out.fields[i] = Field{Name: f.Name, Expr: f.Expr.Substitute(repl)}
	}

	return out
}

// IsIdentity reports whether every field maps to its own name.
func (o *Overhead) IsIdentity() bool {
	for _, f := range o.fields {
		if f.Expr.Kind() != expr.KindVar || f.Expr.Name() != f.Name {
			return false
		}
	}

	return true
}

// String renders "field = formula" pairs separated by "; ".
func (o *Overhead) String() string {
	parts := make([]string, len(o.fields))
	for i, f := range o.fields {
		parts[i] = f.Name + " = " + f.Expr.String()
	}

	return strings.Join(parts, "; ")
}
