// Package catalog loads the search page metadata: result fields and their
// groups, filter dialog fields, autocomplete term lists, sidebar facets and
// sample documents.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/gtm-serpro/docsearch/pkg/facets"
	"github.com/gtm-serpro/docsearch/pkg/results"
)

//go:embed default.yaml
var defaultYAML []byte

// FilterKind is the input type of a filter dialog field.
type FilterKind string

const (
	KindText       FilterKind = "text"
	KindAuto       FilterKind = "auto"
	KindDateRange  FilterKind = "date-range"
	KindValueRange FilterKind = "value-range"
)

type Group struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Field is a result card field. Catalog order is card order.
type Field struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
	Group string `yaml:"group" json:"group"`
}

type Filter struct {
	Field string     `yaml:"field" json:"field"`
	Label string     `yaml:"label" json:"label"`
	Kind  FilterKind `yaml:"kind" json:"kind"`
}

type Catalog struct {
	Version         int                 `yaml:"version" json:"version"`
	Groups          []Group             `yaml:"groups" json:"groups"`
	ResultFields    []Field             `yaml:"fields" json:"fields"`
	HiddenByDefault []string            `yaml:"hidden_by_default" json:"hiddenByDefault"`
	Filters         []Filter            `yaml:"filters" json:"filters"`
	TermLists       map[string][]string `yaml:"terms" json:"-"`
	Facets          []facets.Group      `yaml:"facets" json:"-"`
	Documents       []results.Document  `yaml:"documents" json:"-"`
}

// Load parses the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	groups := make(map[string]struct{}, len(c.Groups))
	for _, g := range c.Groups {
		groups[g.Key] = struct{}{}
	}
	seen := make(map[string]struct{}, len(c.ResultFields))
	for _, f := range c.ResultFields {
		if f.Key == "" {
			errs = append(errs, errors.New("field with empty key"))
			continue
		}
		if _, dup := seen[f.Key]; dup {
			errs = append(errs, fmt.Errorf("duplicate field %q", f.Key))
		}
		seen[f.Key] = struct{}{}
		if _, ok := groups[f.Group]; !ok {
			errs = append(errs, fmt.Errorf("field %q: unknown group %q", f.Key, f.Group))
		}
	}
	for _, p := range c.HiddenByDefault {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("invalid hidden_by_default pattern %q", p))
		}
	}
	for _, f := range c.Filters {
		switch f.Kind {
		case KindText, KindDateRange, KindValueRange:
		case KindAuto:
			if _, ok := c.TermLists[f.Field]; !ok {
				errs = append(errs, fmt.Errorf("filter %q: auto filter without terms", f.Field))
			}
		default:
			errs = append(errs, fmt.Errorf("filter %q: unknown kind %q", f.Field, f.Kind))
		}
	}
	return errors.Join(errs...)
}

// Terms implements autocomplete.TermSource.
func (c *Catalog) Terms(_ context.Context, field string) ([]string, bool) {
	t, ok := c.TermLists[field]
	return t, ok
}

// TermFields returns the autocomplete field names, sorted.
func (c *Catalog) TermFields() []string {
	out := make([]string, 0, len(c.TermLists))
	for k := range c.TermLists {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CardFields returns the card layout for results.NewBuilder.
func (c *Catalog) CardFields() []results.FieldDef {
	out := make([]results.FieldDef, 0, len(c.ResultFields))
	for _, f := range c.ResultFields {
		out = append(out, results.FieldDef{Key: f.Key, Label: f.Label})
	}
	return out
}

// FieldKeys returns every result field key in catalog order.
func (c *Catalog) FieldKeys() []string {
	out := make([]string, 0, len(c.ResultFields))
	for _, f := range c.ResultFields {
		out = append(out, f.Key)
	}
	return out
}

// Field looks a result field up by key.
func (c *Catalog) Field(key string) (Field, bool) {
	i := slices.IndexFunc(c.ResultFields, func(f Field) bool { return f.Key == key })
	if i < 0 {
		return Field{}, false
	}
	return c.ResultFields[i], true
}
