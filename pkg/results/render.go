package results

import (
	"html/template"
	"io"
)

const cardsTemplate = `{{range .}}<article class="result-card"{{with .Anchor}} id="{{.}}"{{end}}>
<header class="result-card-header">
<div class="result-card-actions"><div class="btn-group">
{{- $n := len .Links}}{{if .Links}}{{range .Links}}<a href="{{.URL}}" class="btn-download{{if eq $n 1}} btn-download-single{{end}}" title="{{.Title}}" target="_blank"></a>{{end}}
{{- else}}<span class="btn-download btn-download-disabled" title="PDF não disponível"></span>{{end -}}
</div></div>
<h3 class="result-card-title">{{safe .TitleHTML}}</h3>
</header>
<div class="result-card-body">
{{- range .Fields}}
<div class="result-field" data-field="{{.Key}}" title="Clique para copiar"><dt class="result-field-label">{{.Label}}</dt><dd class="result-field-value"><span>{{safe .HTML}}</span></dd></div>
{{- end}}
</div>
{{- with .SnippetHTML}}
<div class="result-card-snippet"><dt class="result-snippet-label">Trecho:</dt><dd class="result-snippet-value">{{safe .}}</dd></div>
{{- end}}
</article>
{{end}}`

var cards = template.Must(template.New("cards").Funcs(template.FuncMap{
	// card HTML fields are produced by the HTML highlighter and are already
	// escaped
	"safe": func(s string) template.HTML { return template.HTML(s) },
}).Parse(cardsTemplate))

// Render writes the cards as HTML fragments.
func Render(w io.Writer, list []Card) error {
	return cards.Execute(w, list)
}
