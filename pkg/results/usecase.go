package results

import (
	"net/url"
	"strings"

	"github.com/gtm-serpro/docsearch/pkg/textmatch"
)

// DefaultDownloadBaseURL is where the document binaries are served from.
const DefaultDownloadBaseURL = "https://eprocesso.suiterfb.receita.fazenda/eprocesso/api/documentos/"

// MatchAll is the query the search page sends when nothing was typed.
const MatchAll = "*:*"

// UseCase turns raw documents into card render models.
type UseCase interface {
	Build(doc Document, term string) Card
	BuildAll(docs []Document, term string) []Card
	Highlight(text, query string) string
}

// Builder is the default UseCase. Every piece of document text that reaches
// a card goes through the HTML highlighter, so field content is always escaped.
type Builder struct {
	baseURL string
	fields  []FieldDef
	hl      *textmatch.Highlighter
}

// NewBuilder returns a card builder. Empty arguments fall back to the
// defaults.
func NewBuilder(baseURL string, fields []FieldDef) *Builder {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultDownloadBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if len(fields) == 0 {
		fields = DefaultFields
	}
	return &Builder{baseURL: baseURL, fields: fields, hl: textmatch.HTML}
}

// Fields returns the card body layout.
func (b *Builder) Fields() []FieldDef { return b.fields }

func (b *Builder) Build(doc Document, term string) Card {
	term = searchTerm(term)
	card := Card{
		ID:           doc.ID,
		TitleHTML:    b.hl.Highlight(cardTitle(doc), term),
		DownloadType: ResolveDownloadType(doc),
		Links:        DownloadLinks(b.baseURL, doc),
		Fields:       make([]CardField, 0, len(b.fields)),
	}
	if doc.ID != "" {
		card.Anchor = "doc-" + doc.ID
	}
	for _, f := range b.fields {
		v := doc.Value(f.Key)
		if v == "" {
			continue
		}
		card.Fields = append(card.Fields, CardField{
			Key:   f.Key,
			Label: f.Label,
			Value: v,
			HTML:  b.hl.Highlight(v, term),
		})
	}
	if term != "" && doc.Content != "" {
		card.SnippetHTML = b.hl.Highlight(doc.Content, term)
	}
	return card
}

func (b *Builder) BuildAll(docs []Document, term string) []Card {
	cards := make([]Card, 0, len(docs))
	for _, d := range docs {
		cards = append(cards, b.Build(d, term))
	}
	return cards
}

// Highlight is the live variant used while the user types: every occurrence
// is marked, and an empty or match-all query only escapes the text.
func (b *Builder) Highlight(text, query string) string {
	return b.hl.HighlightAll(text, searchTerm(query))
}

func searchTerm(q string) string {
	q = strings.TrimSpace(q)
	if q == MatchAll {
		return ""
	}
	return q
}

func cardTitle(doc Document) string {
	title := doc.DocumentType
	if title == "" {
		title = "Documento"
	}
	if doc.Title != "" {
		title += " - " + doc.Title
	}
	return title
}

// ResolveDownloadType decides which binaries a document offers from its
// indexing flags.
func ResolveDownloadType(doc Document) DownloadType {
	switch {
	case !doc.Indexed:
		return DownloadDisabled
	case doc.Searchable && !doc.OriginalSearchable:
		return DownloadDual
	case !doc.Searchable && !doc.OriginalSearchable:
		return DownloadOriginal
	case doc.Searchable && doc.OriginalSearchable:
		return DownloadSearchable
	}
	return DownloadOriginal
}

// DownloadLinks returns the anchors for the document's download type.
func DownloadLinks(baseURL string, doc Document) []Link {
	id := url.PathEscape(doc.ID)
	pdf := baseURL + id + "/obterbinario/download"
	ocr := baseURL + id + "/obterbinarioocr/download"
	switch ResolveDownloadType(doc) {
	case DownloadDual:
		return []Link{
			{URL: pdf, Title: "Baixar PDF Original"},
			{URL: ocr, Title: "Baixar PDF Pesquisável (OCR)", OCR: true},
		}
	case DownloadOriginal:
		return []Link{{URL: pdf, Title: "Baixar PDF Original"}}
	case DownloadSearchable:
		return []Link{{URL: pdf, Title: "Baixar PDF"}}
	}
	return nil
}
