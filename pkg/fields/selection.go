// Package fields tracks which result card fields a user sees.
package fields

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gtm-serpro/docsearch/pkg/catalog"
)

// EmptyMessage is shown when no result offers a configurable field.
const EmptyMessage = "Nenhum resultado para configurar"

// DefaultHidden returns the keys matched by any of the glob patterns, in key
// order. Invalid patterns match nothing.
func DefaultHidden(keys, patterns []string) []string {
	var out []string
	for _, k := range keys {
		for _, p := range patterns {
			if ok, err := doublestar.Match(p, k); err == nil && ok {
				out = append(out, k)
				break
			}
		}
	}
	return out
}

// Selection is the visibility state of the catalog fields. Available fields
// are the ones present in the current results; Toggle and the bulk operations
// only act on those.
type Selection struct {
	cat       *catalog.Catalog
	hidden    map[string]struct{}
	available map[string]struct{}
}

// NewSelection starts from the stored hidden keys with every catalog field
// available.
func NewSelection(cat *catalog.Catalog, hidden []string) *Selection {
	s := &Selection{
		cat:       cat,
		hidden:    make(map[string]struct{}, len(hidden)),
		available: make(map[string]struct{}, len(cat.ResultFields)),
	}
	for _, k := range hidden {
		s.hidden[k] = struct{}{}
	}
	for _, f := range cat.ResultFields {
		s.available[f.Key] = struct{}{}
	}
	return s
}

// SetAvailable restricts the operations to the given keys. Unknown keys are
// ignored.
func (s *Selection) SetAvailable(keys []string) {
	clear(s.available)
	for _, k := range keys {
		if _, ok := s.cat.Field(k); ok {
			s.available[k] = struct{}{}
		}
	}
}

func (s *Selection) IsAvailable(key string) bool {
	_, ok := s.available[key]
	return ok
}

func (s *Selection) IsVisible(key string) bool {
	_, hidden := s.hidden[key]
	return !hidden
}

// Toggle sets the visibility of an available field. It reports whether the
// state changed.
func (s *Selection) Toggle(key string, visible bool) bool {
	if !s.IsAvailable(key) || s.IsVisible(key) == visible {
		return false
	}
	if visible {
		delete(s.hidden, key)
	} else {
		s.hidden[key] = struct{}{}
	}
	return true
}

func (s *Selection) ShowAll() {
	for k := range s.available {
		delete(s.hidden, k)
	}
}

func (s *Selection) HideAll() {
	for k := range s.available {
		s.hidden[k] = struct{}{}
	}
}

// Reset shows every field, available or not.
func (s *Selection) Reset() {
	clear(s.hidden)
}

// HiddenCount counts the available fields that are hidden.
func (s *Selection) HiddenCount() int {
	n := 0
	for k := range s.available {
		if !s.IsVisible(k) {
			n++
		}
	}
	return n
}

// Summary is the menu footer, e.g. "18 de 21 campos visíveis".
func (s *Selection) Summary() string {
	total := len(s.available)
	return fmt.Sprintf("%d de %d campos visíveis", total-s.HiddenCount(), total)
}

// Hidden returns the hidden keys in catalog order, the form persisted in
// preferences.
func (s *Selection) Hidden() []string {
	out := make([]string, 0, len(s.hidden))
	for _, f := range s.cat.ResultFields {
		if !s.IsVisible(f.Key) {
			out = append(out, f.Key)
		}
	}
	return out
}

// Item is a menu entry.
type Item struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// MenuGroup is a titled block of the fields menu.
type MenuGroup struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Menu is the fields dropdown model.
type Menu struct {
	Groups      []MenuGroup `json:"groups"`
	HiddenCount int         `json:"hiddenCount"`
	Summary     string      `json:"summary"`
	Empty       string      `json:"empty,omitempty"`
}

// Menu groups the available fields by catalog group, in group order. Groups
// without available fields are left out.
func (s *Selection) Menu() Menu {
	m := Menu{Groups: []MenuGroup{}, HiddenCount: s.HiddenCount(), Summary: s.Summary()}
	if len(s.available) == 0 {
		m.Empty = EmptyMessage
		return m
	}
	for _, g := range s.cat.Groups {
		mg := MenuGroup{Key: g.Key, Label: g.Label}
		for _, f := range s.cat.ResultFields {
			if f.Group == g.Key && s.IsAvailable(f.Key) {
				mg.Items = append(mg.Items, Item{Key: f.Key, Label: f.Label, Visible: s.IsVisible(f.Key)})
			}
		}
		if len(mg.Items) > 0 {
			m.Groups = append(m.Groups, mg)
		}
	}
	return m
}

// Visible filters keys down to the visible ones, keeping their order.
func (s *Selection) Visible(keys []string) []string {
	return slices.DeleteFunc(slices.Clone(keys), func(k string) bool { return !s.IsVisible(k) })
}
