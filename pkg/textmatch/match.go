package textmatch

import (
	"strings"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) over the original text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the span width in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Find returns the first case- and accent-insensitive occurrence of query in
// text. An empty text, an empty query or a query that folds to nothing never
// matches.
func Find(text, query string) (Span, bool) {
	if text == "" || query == "" {
		return Span{}, false
	}
	q := Normalize(query)
	if q == "" {
		return Span{}, false
	}
	f := fold(text)
	idx := strings.Index(f.text, q)
	if idx < 0 {
		return Span{}, false
	}
	from := utf8.RuneCountInString(f.text[:idx])
	return f.span(from, utf8.RuneCountInString(q)), true
}

// FindAll returns every non-overlapping occurrence of query in text, scanning
// left to right and resuming after each match.
func FindAll(text, query string) []Span {
	if text == "" || query == "" {
		return nil
	}
	q := Normalize(query)
	if q == "" {
		return nil
	}
	f := fold(text)
	n := utf8.RuneCountInString(q)

	var spans []Span
	pos, runePos := 0, 0
	for pos < len(f.text) {
		idx := strings.Index(f.text[pos:], q)
		if idx < 0 {
			break
		}
		runePos += utf8.RuneCountInString(f.text[pos : pos+idx])
		sp := f.span(runePos, n)
		// a match starting inside a source rune already consumed by the
		// previous span is dropped
		if len(spans) == 0 || sp.Start >= spans[len(spans)-1].End {
			spans = append(spans, sp)
		}
		pos += idx + len(q)
		runePos += n
	}
	return spans
}

// Contains reports whether the normalized text contains the normalized query.
// An empty query is contained in everything.
func Contains(text, query string) bool {
	return strings.Contains(Normalize(text), Normalize(query))
}

// Equal reports whether a and b are equal after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
