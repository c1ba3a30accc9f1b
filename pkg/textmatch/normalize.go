// Package textmatch finds case- and accent-insensitive occurrences of a query
// inside display text and marks them on the ORIGINAL string.
//
// Matching runs on a folded copy of the text (lower-cased, canonically
// decomposed, nonspacing marks removed). Every rune of the folded copy keeps
// the byte offset of the source rune it came from, so a match found in the
// folded copy can be cut out of the untouched source without shifting.
package textmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// marks is the set of runes dropped after decomposition.
var marks = runes.In(unicode.Mn)

// Normalize lower-cases text and strips combining diacritical marks.
// The result is only used for comparisons; display text is never touched.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteString(foldRune(r))
	}
	return b.String()
}

// BuildIndexMap returns, for every rune of Normalize(text), the byte offset in
// text of the rune it originated from. Source runes that fold to nothing
// (isolated combining marks) have no entry, so the map can be shorter than
// the rune count of text.
func BuildIndexMap(text string) []int {
	return fold(text).origin
}

// foldRune normalizes a single rune. Normalize is defined as the
// concatenation of foldRune over the input, which is what keeps the index
// map exact.
func foldRune(r rune) string {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		return string(r)
	}
	lower := norm.NFD.String(strings.ToLower(string(r)))
	return strings.Map(func(m rune) rune {
		if marks.Contains(m) {
			return -1
		}
		return m
	}, lower)
}

// folded is the normalized form of a source string together with the
// provenance of each of its runes.
type folded struct {
	text   string
	origin []int
	size   int
}

func fold(src string) folded {
	f := folded{size: len(src)}
	if src == "" {
		return f
	}
	var b strings.Builder
	b.Grow(len(src))
	f.origin = make([]int, 0, len(src))
	for i, r := range src {
		part := foldRune(r)
		if part == "" {
			continue
		}
		b.WriteString(part)
		for n := utf8.RuneCountInString(part); n > 0; n-- {
			f.origin = append(f.origin, i)
		}
	}
	f.text = b.String()
	return f
}

// span converts a match over folded runes [from, from+n) into a byte range of
// the source. The end is the origin of the first folded rune that belongs to
// a later source rune, so combining marks trailing the last matched character
// stay inside the range.
func (f folded) span(from, n int) Span {
	start := f.origin[from]
	last := f.origin[from+n-1]
	end := f.size
	for k := from + n; k < len(f.origin); k++ {
		if f.origin[k] > last {
			end = f.origin[k]
			break
		}
	}
	return Span{Start: start, End: end}
}
