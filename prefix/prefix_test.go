package prefix

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/segtok"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	list := `# comment
Dr

No #NUMERIC_ONLY#
  e.g
`
	rs, err := Parse("en", strings.NewReader(list))
	require.NoError(t, err)
	assert.Equal(t, 3, rs.Len())
	e, ok := rs.Lookup("No.")
	require.True(t, ok)
	assert.True(t, e.NumericException)
	e, ok = rs.Lookup("Dr")
	require.True(t, ok)
	assert.False(t, e.NumericException)
	_, ok = rs.Lookup("e.g.")
	assert.True(t, ok)
	_, ok = rs.Lookup("dr")
	assert.False(t, ok, "lookup must be case-sensitive")
	_, ok = rs.Lookup(".")
	assert.False(t, ok)
}

func TestParseCorrupt(t *testing.T) {
	_, err := Parse("en", strings.NewReader("Dr #SOMETHING#\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, segtok.ErrResourceLoad))
	_, err = Parse("en", strings.NewReader("Dr x\n"))
	assert.True(t, errors.Is(err, segtok.ErrResourceLoad))
}

func TestEntriesSorted(t *testing.T) {
	rs := NewRuleSet("en",
		PrefixEntry{Prefix: "Mr"},
		PrefixEntry{Prefix: "Dr"},
		PrefixEntry{Prefix: "No", NumericException: true},
	)
	entries := rs.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Dr", entries[0].Prefix)
	assert.Equal(t, "Mr", entries[1].Prefix)
	assert.Equal(t, "No", entries[2].Prefix)
}

func TestLoadEmbedded(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, lang := range []string{"en", "es", "en-US"} {
		rs, err := Load(lang)
		require.NoError(t, err, lang)
		_, ok := rs.Lookup("Dr")
		assert.True(t, ok, "Dr should be a prefix for %s", lang)
	}
	en, _ := Load("en")
	e, ok := en.Lookup("No")
	require.True(t, ok)
	assert.True(t, e.NumericException)
	e, ok = en.Lookup("no")
	require.True(t, ok)
	assert.True(t, e.NumericException, "lower case no must not suppress breaks before words")
	again, _ := Load("en-GB")
	assert.Same(t, en, again, "rule sets should be cached")
	assert.Equal(t, []string{"en", "es"}, Embedded.Languages())
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("de")
	require.Error(t, err)
	assert.True(t, errors.Is(err, segtok.ErrUnsupportedLanguage))
	var lerr *segtok.LanguageError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "de", lerr.Language)
	_, err = Load("not a language")
	assert.True(t, errors.Is(err, segtok.ErrUnsupportedLanguage))
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"lists/nonbreaking_prefix.fr": {Data: []byte("M\nMme\nn° #NUMERIC_ONLY#\n")},
	}
	loader := NewFSLoader(fsys, "lists")
	rs, err := loader.Load("fr-CA")
	require.NoError(t, err)
	assert.Equal(t, "fr", rs.Language())
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, []string{"fr"}, loader.Languages())
}
