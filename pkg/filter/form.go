package filter

import "strings"

// Input is a single text filter with its operator.
type Input struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
}

// Range is a pair of bounds, used for date and value ranges.
type Range struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}

func (r Range) set() bool {
	return strings.TrimSpace(r.From) != "" || strings.TrimSpace(r.To) != ""
}

// Form is the state of the filter dialog.
type Form struct {
	Inputs      []Input `json:"inputs"`
	DateRanges  []Range `json:"dateRanges"`
	ValueRanges []Range `json:"valueRanges"`
}

// Count returns the number of active filters: each filled text input, and
// each range with at least one bound.
func (f Form) Count() int {
	n := 0
	for _, in := range f.Inputs {
		if strings.TrimSpace(in.Value) != "" {
			n++
		}
	}
	for _, r := range f.DateRanges {
		if r.set() {
			n++
		}
	}
	for _, r := range f.ValueRanges {
		if r.set() {
			n++
		}
	}
	return n
}

// Active returns the filled text inputs with their operators normalized.
func (f Form) Active() []Input {
	var out []Input
	for _, in := range f.Inputs {
		if strings.TrimSpace(in.Value) == "" {
			continue
		}
		in.Operator = ParseOperator(string(in.Operator))
		out = append(out, in)
	}
	return out
}

// Match reports whether every active text input accepts the value returned
// by lookup for its field.
func (f Form) Match(lookup func(field string) string) bool {
	for _, in := range f.Active() {
		if !in.Operator.Match(lookup(in.Field), in.Value) {
			return false
		}
	}
	return true
}
