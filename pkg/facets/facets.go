// Package facets filters the sidebar facet groups by a typed query.
package facets

import (
	"strings"

	"github.com/gtm-serpro/docsearch/pkg/textmatch"
)

// Item is one selectable facet value.
type Item struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Group is a facet category with its values.
type Group struct {
	Field string `json:"field,omitempty" yaml:"field"`
	Title string `json:"title" yaml:"title"`
	Items []Item `json:"items" yaml:"items"`
}

// FilteredItem is an item after filtering. LabelHTML is escaped.
type FilteredItem struct {
	Item
	LabelHTML string `json:"labelHtml"`
	Visible   bool   `json:"visible"`
}

// FilteredGroup is a group after filtering. Open is only meaningful when a
// query is active; with an empty query the UI keeps its own open state.
type FilteredGroup struct {
	Field        string         `json:"field,omitempty"`
	Title        string         `json:"title"`
	TitleHTML    string         `json:"titleHtml"`
	Visible      bool           `json:"visible"`
	Open         bool           `json:"open"`
	TitleMatched bool           `json:"titleMatched"`
	VisibleItems int            `json:"visibleItems"`
	Items        []FilteredItem `json:"items"`
}

// Filter applies the query to every group:
//   - an empty query shows everything without highlights;
//   - a matching title shows the whole group, highlighting only the title;
//   - otherwise only matching items are shown, highlighted.
//
// A group is visible when its title or any item matched, and opened then.
func Filter(groups []Group, query string) []FilteredGroup {
	query = strings.TrimSpace(query)
	hl := textmatch.HTML
	out := make([]FilteredGroup, 0, len(groups))
	for _, g := range groups {
		fg := FilteredGroup{
			Field:     g.Field,
			Title:     g.Title,
			TitleHTML: hl.Escape(g.Title),
			Items:     make([]FilteredItem, 0, len(g.Items)),
		}
		if query != "" && textmatch.Contains(g.Title, query) {
			fg.TitleMatched = true
			fg.TitleHTML = hl.HighlightAll(g.Title, query)
		}
		for _, it := range g.Items {
			fi := FilteredItem{Item: it, LabelHTML: hl.Escape(it.Label)}
			switch {
			case query == "", fg.TitleMatched:
				fi.Visible = true
			case textmatch.Contains(it.Label, query):
				fi.Visible = true
				fi.LabelHTML = hl.HighlightAll(it.Label, query)
			}
			if fi.Visible {
				fg.VisibleItems++
			}
			fg.Items = append(fg.Items, fi)
		}
		fg.Visible = query == "" || fg.TitleMatched || fg.VisibleItems > 0
		fg.Open = query != "" && fg.Visible
		out = append(out, fg)
	}
	return out
}

// CountVisible returns how many groups remain visible.
func CountVisible(groups []FilteredGroup) int {
	n := 0
	for _, g := range groups {
		if g.Visible {
			n++
		}
	}
	return n
}
