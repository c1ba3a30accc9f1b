package autocomplete

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string][]string

func (m mapSource) Terms(_ context.Context, field string) ([]string, bool) {
	v, ok := m[field]
	return v, ok
}

func (m mapSource) TermFields() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

var src = mapSource{
	"tipo_documento": {"Acórdão", "Decisão", "Despacho", "Auto de Infração", "Intimação", "Petição"},
	"unidade_origem": {"DRF São Paulo", "DRF Rio de Janeiro", "DRF <Teste>"},
}

func TestSuggestFiltersAndHighlights(t *testing.T) {
	svc := NewService(src)
	got, err := svc.Suggest(context.Background(), "tipo_documento", "CAO", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, Suggestion{Value: "Auto de Infração", HTML: "Auto de Infra<mark>ção</mark>"}, got[0])
	assert.Equal(t, "Intimação", got[1].Value)
	assert.Equal(t, "Peti<mark>ção</mark>", got[2].HTML)
}

func TestSuggestEmptyQueryReturnsAll(t *testing.T) {
	svc := NewService(src)
	got, err := svc.Suggest(context.Background(), "unidade_origem", "", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "DRF &lt;Teste&gt;", got[2].HTML)
}

func TestSuggestLimit(t *testing.T) {
	svc := NewService(src)
	got, err := svc.Suggest(context.Background(), "unidade_origem", "drf", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSuggestNoMatch(t *testing.T) {
	svc := NewService(src)
	got, err := svc.Suggest(context.Background(), "tipo_documento", "xyz", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"tipo_documento", "unidade_origem"}, NewService(src).Fields())
}

func TestSuggestUnknownField(t *testing.T) {
	svc := NewService(src)
	_, err := svc.Suggest(context.Background(), "nope", "a", 0)
	assert.True(t, errors.Is(err, ErrUnknownField))
}
