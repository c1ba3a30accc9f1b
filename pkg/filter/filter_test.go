package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorCycle(t *testing.T) {
	assert.Equal(t, NotContains, Contains.Next())
	assert.Equal(t, Equals, NotContains.Next())
	assert.Equal(t, Contains, Equals.Next())
	assert.Equal(t, NotContains, Operator("bogus").Next())
}

func TestOperatorLabels(t *testing.T) {
	assert.Equal(t, "Contém", Contains.Label())
	assert.Equal(t, "Não contém", NotContains.Label())
	assert.Equal(t, "Igual", Equals.Label())
	assert.Equal(t, Contains, ParseOperator(""))
	assert.Equal(t, Equals, ParseOperator(" equals "))
}

func TestOperatorMatch(t *testing.T) {
	assert.True(t, Contains.Match("DRF São Paulo", "sao"))
	assert.False(t, Contains.Match("DRF Curitiba", "sao"))
	assert.True(t, NotContains.Match("DRF Curitiba", "sao"))
	assert.False(t, NotContains.Match("DRF São Paulo", "SÃO"))
	assert.True(t, Equals.Match(" Acórdão ", "acordao"))
	assert.False(t, Equals.Match("Acórdão 2", "acordao"))
	assert.True(t, Equals.Match("anything", "  "))
}

func TestFormCount(t *testing.T) {
	f := Form{
		Inputs: []Input{
			{Field: "processo", Value: "10580"},
			{Field: "titulo", Value: "   "},
			{Field: "tributo_act", Value: "IRPJ", Operator: Equals},
		},
		DateRanges: []Range{
			{Field: "data_juntada", From: "2020-01-01"},
			{Field: "data_protocolo"},
		},
		ValueRanges: []Range{
			{Field: "valor", To: "R$ 10,00"},
			{Field: "valor_credito", From: " ", To: ""},
		},
	}
	assert.Equal(t, 4, f.Count())
	assert.Equal(t, 0, Form{}.Count())
	assert.Len(t, f.Active(), 2)
}

func TestFormMatch(t *testing.T) {
	f := Form{Inputs: []Input{
		{Field: "unidade", Operator: Contains, Value: "sao paulo"},
		{Field: "tipo", Operator: NotContains, Value: "despacho"},
		{Field: "ignored", Value: ""},
	}}
	doc := map[string]string{"unidade": "DRF São Paulo", "tipo": "Acórdão"}
	assert.True(t, f.Match(func(k string) string { return doc[k] }))
	doc["tipo"] = "Despacho Decisório"
	assert.False(t, f.Match(func(k string) string { return doc[k] }))
}

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"abc":          "",
		"5":            "R$ 0,05",
		"123456":       "R$ 1.234,56",
		"R$ 1.234,56":  "R$ 1.234,56",
		"000":          "R$ 0,00",
		"100":          "R$ 1,00",
		"123456789012": "R$ 1.234.567.890,12",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(in), in)
	}
}
