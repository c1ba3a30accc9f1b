package autocomplete

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gtm-serpro/docsearch/pkg/textmatch"
)

// ErrUnknownField is returned for fields without a term list.
var ErrUnknownField = errors.New("unknown autocomplete field")

// EmptyMessage is shown by the UI when no suggestion matches.
const EmptyMessage = "Nenhum resultado encontrado"

// TermSource supplies the candidate values of an autocomplete field.
type TermSource interface {
	Terms(ctx context.Context, field string) ([]string, bool)
	TermFields() []string
}

// Suggestion is a candidate value with its highlighted, escaped rendering.
type Suggestion struct {
	Value string `json:"value"`
	HTML  string `json:"html"`
}

// UseCase describes autocomplete behavior.
type UseCase interface {
	Suggest(ctx context.Context, field, query string, limit int) ([]Suggestion, error)
	Fields() []string
}

type service struct {
	terms TermSource
}

func NewService(terms TermSource) UseCase {
	return &service{terms: terms}
}

// Suggest keeps the terms containing the query (case and accent
// insensitive), in source order, and marks the first occurrence in each.
// A non-positive limit returns every match.
func (s *service) Suggest(ctx context.Context, field, query string, limit int) ([]Suggestion, error) {
	terms, ok := s.terms.Terms(ctx, field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	query = strings.TrimSpace(query)
	hl := textmatch.HTML
	out := make([]Suggestion, 0, len(terms))
	for _, term := range terms {
		if !textmatch.Contains(term, query) {
			continue
		}
		out = append(out, Suggestion{Value: term, HTML: hl.Highlight(term, query)})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *service) Fields() []string { return s.terms.TermFields() }
