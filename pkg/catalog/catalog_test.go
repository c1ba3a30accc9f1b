package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtm-serpro/docsearch/pkg/results"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, c.Version)
	assert.Len(t, c.ResultFields, len(results.DefaultFields))
	assert.Equal(t, results.DefaultFields, c.CardFields())
	assert.Len(t, c.Documents, 5)
	assert.NotEmpty(t, c.Facets)

	terms, ok := c.Terms(context.Background(), "tipo_documento")
	require.True(t, ok)
	assert.Contains(t, terms, "Acórdão")

	_, ok = c.Terms(context.Background(), "nope")
	assert.False(t, ok)
}

func TestTermFieldsSorted(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	fields := c.TermFields()
	require.NotEmpty(t, fields)
	assert.IsIncreasing(t, fields)
}

func TestFieldLookup(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	f, ok := c.Field("cpf-responsavel")
	require.True(t, ok)
	assert.Equal(t, "partes", f.Group)

	_, ok = c.Field("missing")
	assert.False(t, ok)

	keys := c.FieldKeys()
	assert.Equal(t, "processo", keys[0])
	assert.Equal(t, "numero-doc-principal", keys[len(keys)-1])
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`
version: 2
groups:
  - {key: g, label: G}
fields:
  - {key: titulo, label: Título, group: g}
hidden_by_default: ["cpf-*"]
filters:
  - {field: tipo, label: Tipo, kind: auto}
terms:
  tipo: [A, B]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Version)
	assert.Equal(t, []string{"cpf-*"}, c.HiddenByDefault)
	assert.Equal(t, []string{"tipo"}, c.TermFields())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("version: 1\nbogus: true\n"))
	assert.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate field",
			yaml: "groups: [{key: g, label: G}]\nfields: [{key: a, label: A, group: g}, {key: a, label: A, group: g}]\n",
			want: `duplicate field "a"`,
		},
		{
			name: "unknown group",
			yaml: "fields: [{key: a, label: A, group: x}]\n",
			want: `unknown group "x"`,
		},
		{
			name: "empty key",
			yaml: "groups: [{key: g, label: G}]\nfields: [{label: A, group: g}]\n",
			want: "empty key",
		},
		{
			name: "bad pattern",
			yaml: "hidden_by_default: [\"cpf-[\"]\n",
			want: "invalid hidden_by_default pattern",
		},
		{
			name: "auto without terms",
			yaml: "filters: [{field: x, label: X, kind: auto}]\n",
			want: "auto filter without terms",
		},
		{
			name: "unknown kind",
			yaml: "filters: [{field: x, label: X, kind: slider}]\n",
			want: `unknown kind "slider"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
