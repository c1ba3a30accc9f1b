package textmatch

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []string{
	"",
	"Processo",
	"Decisão",
	"Acórdão",
	"café com açúcar",
	"NOTIFICAÇÃO DE LANÇAMENTO - COFINS",
	"DRF São Paulo",
	"CARF - 1ª Seção",
	"Cafe\u0301 bom",
	"\u0301solto",
	"ÀÉÎÕÜ Ç",
	"한글",
	"İstanbul",
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"Processo", "processo"},
		{"Decisão", "decisao"},
		{"ÀÉÎÕÜ Ç", "aeiou c"},
		{"Cafe\u0301", "cafe"},
		{"a\u0301b", "ab"},
		{"Manifestação de Inconformidade", "manifestacao de inconformidade"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), tc.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range samples {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), s)
	}
}

func TestBuildIndexMap(t *testing.T) {
	assert.Empty(t, BuildIndexMap(""))
	assert.Equal(t, []int{0, 1, 2, 3}, BuildIndexMap("café"))
	assert.Equal(t, []int{0, 1, 3, 5, 6, 7}, BuildIndexMap("açúcar"))
	// the isolated combining mark folds to nothing
	assert.Equal(t, []int{0, 3}, BuildIndexMap("a\u0301b"))
	// hangul syllables decompose into several jamo
	assert.Equal(t, []int{0, 0, 0, 3, 3, 3}, BuildIndexMap("한글"))
}

func TestBuildIndexMapInvariants(t *testing.T) {
	for _, s := range samples {
		m := BuildIndexMap(s)
		require.Len(t, m, utf8.RuneCountInString(Normalize(s)), s)
		for i := 1; i < len(m); i++ {
			assert.LessOrEqual(t, m[i-1], m[i], s)
		}
		for _, off := range m {
			assert.True(t, utf8.RuneStart(s[off]), s)
		}
	}
}

func TestBuildIndexMapStrictForLatin(t *testing.T) {
	for _, s := range []string{"café com açúcar", "Acórdão", "NOTIFICAÇÃO DE LANÇAMENTO"} {
		m := BuildIndexMap(s)
		for i := 1; i < len(m); i++ {
			assert.Less(t, m[i-1], m[i], s)
		}
	}
}

func TestHighlight(t *testing.T) {
	cases := []struct {
		name, text, query, want string
	}{
		{"empty query", "Processo", "", "Processo"},
		{"empty text", "", "processo", ""},
		{"case", "Processo", "PROCESSO", "<mark>Processo</mark>"},
		{"accent", "Decisão", "decisao", "<mark>Decisão</mark>"},
		{"no match", "Acórdão", "xyz", "Acórdão"},
		{"index fidelity", "café com açúcar", "com", "café <mark>com</mark> açúcar"},
		{"accented query", "café com açúcar", "AÇUCAR", "café com <mark>açúcar</mark>"},
		{"longer query", "abc", "abcd", "abc"},
		{"whole text", "Açúcar", "ACUCAR", "<mark>Açúcar</mark>"},
		{"first only", "Processo do processo", "processo", "<mark>Processo</mark> do processo"},
		{"trailing mark kept", "Cafe\u0301 bom", "cafe", "<mark>Cafe\u0301</mark> bom"},
		{"query of marks only", "Decisão", "\u0303", "Decisão"},
		{"inside word", "DRF São Paulo", "ao pa", "DRF S<mark>ão Pa</mark>ulo"},
		{"partial syllable", "한글", "ᅡ", "<mark>한</mark>글"},
		{"whole syllable", "한글", "글", "한<mark>글</mark>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Highlight(tc.text, tc.query))
		})
	}
}

func TestHighlightAll(t *testing.T) {
	assert.Equal(t,
		"<mark>Processo</mark> do <mark>processo</mark>",
		HighlightAll("Processo do processo", "processo"))
	assert.Equal(t,
		"<mark>Ação</mark> e <mark>acao</mark> e <mark>AÇÃO</mark>",
		HighlightAll("Ação e acao e AÇÃO", "acao"))
	assert.Equal(t, "<mark>aa</mark><mark>aa</mark>a", HighlightAll("aaaaa", "aa"))
	assert.Equal(t, "Acórdão", HighlightAll("Acórdão", "xyz"))
	assert.Equal(t, "", HighlightAll("", "x"))
	assert.Equal(t, "abc", HighlightAll("abc", ""))
}

func TestFind(t *testing.T) {
	sp, ok := Find("café com açúcar", "com")
	require.True(t, ok)
	assert.Equal(t, Span{Start: 6, End: 9}, sp)
	assert.Equal(t, "com", "café com açúcar"[sp.Start:sp.End])
	assert.Equal(t, 3, sp.Len())

	_, ok = Find("café", "")
	assert.False(t, ok)

	spans := FindAll("São Paulo, sao paulo", "SAO")
	require.Len(t, spans, 2)
	assert.Equal(t, "São", "São Paulo, sao paulo"[spans[0].Start:spans[0].End])
	assert.Equal(t, "sao", "São Paulo, sao paulo"[spans[1].Start:spans[1].End])
}

func TestHTMLEscapesEverySegment(t *testing.T) {
	text := "<b>Ação</b> & acao"
	assert.Equal(t,
		"&lt;b&gt;<mark>Ação</mark>&lt;/b&gt; &amp; acao",
		HTML.Highlight(text, "acao"))
	assert.Equal(t,
		"&lt;b&gt;<mark>Ação</mark>&lt;/b&gt; &amp; <mark>acao</mark>",
		HTML.HighlightAll(text, "acao"))
	assert.Equal(t, "&lt;script&gt;", HTML.Highlight("<script>", "xyz"))
	// matching runs on raw text, so an ampersand in the query still matches
	assert.Equal(t, "P&amp;D<mark> &amp;</mark>", HTML.Highlight("P&D &", " &"))
	assert.Equal(t, "<mark>&lt;b&gt;</mark>", HTML.Highlight("<b>", "<B>"))
}

func TestCustomMarkers(t *testing.T) {
	h := New(WithMarkers("[", "]"))
	assert.Equal(t, "[São] Paulo", h.Highlight("São Paulo", "sao"))
	assert.Equal(t, "São Paulo", h.Strip(h.Highlight("São Paulo", "sao")))

	upper := New(WithEscaper(strings.ToUpper), WithMarkers("*", "*"))
	assert.Equal(t, "*SÃO* PAULO", upper.Highlight("São Paulo", "sao"))
	assert.Equal(t, "X", upper.Escape("x"))
}

func TestWrapSkipsBadSpans(t *testing.T) {
	got := Plain.Wrap("abcdef", []Span{{Start: 0, End: 2}, {Start: 1, End: 3}, {Start: 4, End: 99}, {Start: 4, End: 5}})
	assert.Equal(t, "<mark>ab</mark>cd<mark>e</mark>f", got)
	assert.Equal(t, "abc", Plain.Wrap("abc", nil))
}

func TestContainsAndEqual(t *testing.T) {
	assert.True(t, Contains("DRF São Paulo", "sao p"))
	assert.True(t, Contains("anything", ""))
	assert.False(t, Contains("DRF Curitiba", "sao"))
	assert.True(t, Equal("Acórdão", "ACORDAO"))
	assert.False(t, Equal("Acórdão", "acordaos"))
}

func TestRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"café com açúcar", "com"},
		{"Decisão", "DECISAO"},
		{"Cafe\u0301 bom", "cafe"},
		{"Ação e acao e AÇÃO", "ação"},
		{"한글", "ᅡ"},
	}
	for _, p := range pairs {
		out := Highlight(p[0], p[1])
		require.NotEqual(t, p[0], out, p)
		assert.Equal(t, p[0], Plain.Strip(out))
		assert.Equal(t, p[0], Plain.Strip(HighlightAll(p[0], p[1])))
	}
}

func TestConcurrentUse(t *testing.T) {
	want := HTML.Highlight("café com açúcar", "ACUCAR")
	var wg sync.WaitGroup
	for k := 0; k < 16; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				assert.Equal(t, want, HTML.Highlight("café com açúcar", "ACUCAR"))
			}
		}()
	}
	wg.Wait()
}

func FuzzHighlightRoundTrip(f *testing.F) {
	for _, s := range samples {
		f.Add(s, "a")
	}
	f.Add("café com açúcar", "com")
	f.Add("Decisão", "ÃO")
	f.Fuzz(func(t *testing.T, text, query string) {
		if strings.ContainsAny(text, "<>") {
			t.Skip()
		}
		assert.Equal(t, text, Plain.Strip(Highlight(text, query)))
		assert.Equal(t, text, Plain.Strip(HighlightAll(text, query)))
		for _, sp := range FindAll(text, query) {
			require.True(t, sp.Start >= 0 && sp.Start < sp.End && sp.End <= len(text))
		}
	})
}
