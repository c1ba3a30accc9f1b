package textmatch

import (
	"html"
	"strings"
)

const (
	DefaultOpen  = "<mark>"
	DefaultClose = "</mark>"
)

// Highlighter wraps matched spans of the original text in markers. Source
// segments go through the escaper; markers are written as-is. A Highlighter
// is immutable and safe for concurrent use.
type Highlighter struct {
	open   string
	close  string
	escape func(string) string
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithMarkers sets the delimiters inserted around a match.
func WithMarkers(open, close string) Option {
	return func(h *Highlighter) {
		h.open, h.close = open, close
	}
}

// WithEscaper sets the function applied to every source segment, matched or
// not. Matching always happens on the raw text.
func WithEscaper(fn func(string) string) Option {
	return func(h *Highlighter) {
		if fn != nil {
			h.escape = fn
		}
	}
}

func New(opts ...Option) *Highlighter {
	h := &Highlighter{
		open:   DefaultOpen,
		close:  DefaultClose,
		escape: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var (
	// Plain inserts markers without escaping. Removing the markers from its
	// output gives back the input.
	Plain = New()
	// HTML escapes every source segment before inserting markers. It is the
	// policy for anything that ends up inside markup.
	HTML = New(WithEscaper(html.EscapeString))
)

// Highlight marks the first occurrence of query in text. Without a match the
// (escaped) text is returned unchanged.
func (h *Highlighter) Highlight(text, query string) string {
	sp, ok := Find(text, query)
	if !ok {
		return h.escape(text)
	}
	return h.Wrap(text, []Span{sp})
}

// HighlightAll marks every non-overlapping occurrence of query in text.
func (h *Highlighter) HighlightAll(text, query string) string {
	return h.Wrap(text, FindAll(text, query))
}

// Wrap inserts markers around the given spans. Spans must be sorted and
// non-overlapping; out-of-range or overlapping spans are skipped.
func (h *Highlighter) Wrap(text string, spans []Span) string {
	if len(spans) == 0 {
		return h.escape(text)
	}
	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(h.open)+len(h.close)))
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos || sp.End > len(text) || sp.Start >= sp.End {
			continue
		}
		b.WriteString(h.escape(text[pos:sp.Start]))
		b.WriteString(h.open)
		b.WriteString(h.escape(text[sp.Start:sp.End]))
		b.WriteString(h.close)
		pos = sp.End
	}
	b.WriteString(h.escape(text[pos:]))
	return b.String()
}

// Escape applies the highlighter's escaper to s.
func (h *Highlighter) Escape(s string) string { return h.escape(s) }

// Strip removes this highlighter's markers from s.
func (h *Highlighter) Strip(s string) string {
	return strings.NewReplacer(h.open, "", h.close, "").Replace(s)
}

// Highlight marks the first occurrence of query in text using Plain.
func Highlight(text, query string) string { return Plain.Highlight(text, query) }

// HighlightAll marks every occurrence of query in text using Plain.
func HighlightAll(text, query string) string { return Plain.HighlightAll(text, query) }
