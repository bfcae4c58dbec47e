// SPDX-License-Identifier: MIT
//
// File: facts.go
// Role: YAML fact documents: decoding, validation, conversion to catalog facts.
// Format:
//   - A stream may hold several YAML documents; they are merged in order.
//   - Unknown keys are rejected.

package facts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/variant"
)

var (
	// ErrDecode indicates the input is not a well-formed fact document.
	ErrDecode = errors.New("facts: decode failed")

	// ErrInvalid indicates a well-formed document that fails validation.
	ErrInvalid = errors.New("facts: invalid document")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return identRe.MatchString(fl.Field().String())
	})
}

// Document is one parsed fact file.
type Document struct {
	Problems  []ProblemFact `yaml:"problems" validate:"dive"`
	Hierarchy []TypeFact    `yaml:"hierarchy" validate:"dive"`
	Rules     []RuleFact    `yaml:"rules" validate:"dive"`
	Variants  []VariantFact `yaml:"variants" validate:"dive"`
}

// ProblemFact declares the size fields a problem exposes. Rules from that
// problem without their own source_fields are checked against them.
type ProblemFact struct {
	Name       string   `yaml:"name" validate:"required"`
	SizeFields []string `yaml:"size_fields" validate:"required,dive,ident"`
}

// TypeFact declares one axis value and its parents.
type TypeFact struct {
	Category string   `yaml:"category" validate:"required,ident"`
	Value    string   `yaml:"value" validate:"required"`
	Parents  []string `yaml:"parents" validate:"dive,required"`
}

// Endpoint names a problem and one of its variants.
type Endpoint struct {
	Name    string            `yaml:"name" validate:"required"`
	Variant map[string]string `yaml:"variant" validate:"dive,keys,required,ident,endkeys,required"`
}

// RuleFact declares one reduction rule.
type RuleFact struct {
	Source       Endpoint        `yaml:"source"`
	Target       Endpoint        `yaml:"target"`
	Overhead     []overhead.Spec `yaml:"overhead" validate:"dive"`
	SourceFields []string        `yaml:"source_fields" validate:"dive,ident"`
	Origin       string          `yaml:"origin"`
}

// VariantFact declares a concrete variant.
type VariantFact Endpoint

// Load decodes and validates every document in r.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	out := &Document{}
	for i := 0; ; i++ {
		var d Document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrDecode, i, err)
		}
		if err := validate.Struct(&d); err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalid, i, err)
		}
		out.merge(&d)
	}

	return out, nil
}

func (d *Document) merge(o *Document) {
	d.Problems = append(d.Problems, o.Problems...)
	d.Hierarchy = append(d.Hierarchy, o.Hierarchy...)
	d.Rules = append(d.Rules, o.Rules...)
	d.Variants = append(d.Variants, o.Variants...)
}

// LoadFile is Load on the named file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("facts: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// LoadFiles loads every path concurrently and merges the documents in the
// order the paths were given. The first failure cancels files not yet opened.
func LoadFiles(ctx context.Context, paths ...string) (*Document, error) {
	docs := make([]*Document, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := LoadFile(path)
			if err != nil {
				return err
			}
			docs[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := &Document{}
	for _, d := range docs {
		out.merge(d)
	}

	return out, nil
}

// SizeFields returns the declared size fields of name, if any.
func (d *Document) SizeFields(name string) ([]string, bool) {
	for i := len(d.Problems) - 1; i >= 0; i-- {
		if d.Problems[i].Name == name {
			return append([]string(nil), d.Problems[i].SizeFields...), true
		}
	}

	return nil, false
}

// Facts implements catalog.Provider. Rules carry no transforms.
func (d *Document) Facts() (catalog.Facts, error) {
	var f catalog.Facts
	for _, p := range d.Problems {
		f.Problems = append(f.Problems, catalog.ProblemFields{
			Name:       p.Name,
			SizeFields: append([]string(nil), p.SizeFields...),
		})
	}
	for _, t := range d.Hierarchy {
		f.Types = append(f.Types, variant.TypeEntry{
			Category: t.Category,
			Value:    t.Value,
			Parents:  append([]string(nil), t.Parents...),
		})
	}
	for _, r := range d.Rules {
		fields := r.SourceFields
		if fields == nil {
			fields, _ = d.SizeFields(r.Source.Name)
		}
		f.Rules = append(f.Rules, catalog.Entry{
			SourceName:    r.Source.Name,
			SourceVariant: toVariant(r.Source.Variant),
			TargetName:    r.Target.Name,
			TargetVariant: toVariant(r.Target.Variant),
			Overhead:      append([]overhead.Spec(nil), r.Overhead...),
			SourceFields:  fields,
			Origin:        r.Origin,
		})
	}
	for _, v := range d.Variants {
		f.Variants = append(f.Variants, catalog.ConcreteVariant{Name: v.Name, Variant: toVariant(v.Variant)})
	}

	return f, nil
}

func toVariant(m map[string]string) variant.Variant {
	if len(m) == 0 {
		return nil
	}

	return variant.Variant(m).Clone()
}
