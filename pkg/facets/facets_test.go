package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groups() []Group {
	return []Group{
		{Field: "tipo_documento", Title: "Tipo Documento", Items: []Item{
			{Label: "Acórdão", Count: 12},
			{Label: "Decisão", Count: 7},
			{Label: "Despacho", Count: 3},
		}},
		{Field: "unidade_origem", Title: "Unidade Origem", Items: []Item{
			{Label: "DRF São Paulo", Count: 40},
			{Label: "DRF Curitiba", Count: 2},
		}},
		{Field: "situacao", Title: "Situação & Status", Items: []Item{
			{Label: "Em Análise", Count: 1},
		}},
	}
}

func TestFilterEmptyQuery(t *testing.T) {
	out := Filter(groups(), "   ")
	require.Len(t, out, 3)
	for _, g := range out {
		assert.True(t, g.Visible)
		assert.False(t, g.Open)
		assert.Equal(t, len(g.Items), g.VisibleItems)
	}
	assert.Equal(t, "Situação &amp; Status", out[2].TitleHTML)
	assert.Equal(t, "Acórdão", out[0].Items[0].LabelHTML)
}

func TestFilterTitleMatchShowsWholeGroup(t *testing.T) {
	out := Filter(groups(), "DOCUMENTO")
	g := out[0]
	assert.True(t, g.TitleMatched)
	assert.True(t, g.Visible)
	assert.True(t, g.Open)
	assert.Equal(t, "Tipo <mark>Documento</mark>", g.TitleHTML)
	assert.Equal(t, 3, g.VisibleItems)
	for _, it := range g.Items {
		assert.True(t, it.Visible)
		assert.Equal(t, it.Label, it.LabelHTML)
	}

	assert.False(t, out[1].Visible)
	assert.False(t, out[2].Visible)
	assert.Equal(t, 1, CountVisible(out))
}

func TestFilterItemMatch(t *testing.T) {
	out := Filter(groups(), "sao")
	g := out[1]
	assert.False(t, g.TitleMatched)
	assert.True(t, g.Visible)
	assert.True(t, g.Open)
	assert.Equal(t, 1, g.VisibleItems)
	assert.Equal(t, "DRF <mark>São</mark> Paulo", g.Items[0].LabelHTML)
	assert.False(t, g.Items[1].Visible)

	// "Decisão" also contains "sao"
	assert.True(t, out[0].Visible)
	assert.Equal(t, "Deci<mark>são</mark>", out[0].Items[1].LabelHTML)
	assert.False(t, out[0].Items[0].Visible)
}

func TestFilterHighlightsEveryOccurrence(t *testing.T) {
	out := Filter([]Group{{Title: "X", Items: []Item{{Label: "Ana e ana"}}}}, "ana")
	assert.Equal(t, "<mark>Ana</mark> e <mark>ana</mark>", out[0].Items[0].LabelHTML)
}
