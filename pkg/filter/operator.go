// Package filter holds the advanced filter dialog rules: per-field match
// operators, the active filter counter and currency input formatting.
package filter

import (
	"strings"

	"github.com/gtm-serpro/docsearch/pkg/textmatch"
)

// Operator is how a filter value is compared against a field.
type Operator string

const (
	Contains    Operator = "contains"
	NotContains Operator = "not-contains"
	Equals      Operator = "equals"
)

// Operators lists the operators in cycling order.
var Operators = []Operator{Contains, NotContains, Equals}

var labels = map[Operator]string{
	Contains:    "Contém",
	NotContains: "Não contém",
	Equals:      "Igual",
}

// ParseOperator returns the operator named s; unknown names are Contains.
func ParseOperator(s string) Operator {
	op := Operator(strings.TrimSpace(s))
	if _, ok := labels[op]; ok {
		return op
	}
	return Contains
}

// Label returns the pt-BR button text.
func (o Operator) Label() string { return labels[ParseOperator(string(o))] }

// Next returns the operator after o in cycling order.
func (o Operator) Next() Operator {
	cur := ParseOperator(string(o))
	for i, op := range Operators {
		if op == cur {
			return Operators[(i+1)%len(Operators)]
		}
	}
	return Contains
}

// Match reports whether value satisfies the operator for query. Comparison
// is case and accent insensitive; an empty query matches everything.
func (o Operator) Match(value, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	switch ParseOperator(string(o)) {
	case NotContains:
		return !textmatch.Contains(value, query)
	case Equals:
		return textmatch.Equal(strings.TrimSpace(value), query)
	default:
		return textmatch.Contains(value, query)
	}
}
