package punkt

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/segtok"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func english(t *testing.T) *Model {
	m, err := LoadModel("en-US")
	require.NoError(t, err)
	return m
}

func TestLoadModel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	m := english(t)
	assert.Equal(t, "en", m.Language())
	again, err := LoadModel("en")
	require.NoError(t, err)
	assert.Same(t, m, again)
	assert.True(t, m.IsAbbreviation("Mr."))
	assert.False(t, m.IsAbbreviation("house"))
	_, err = LoadModel("ja")
	assert.True(t, errors.Is(err, segtok.ErrUnsupportedLanguage))
	_, err = NewModel("en", []byte("{ not json"))
	assert.True(t, errors.Is(err, segtok.ErrResourceLoad))
}

func TestSegment(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg := NewSegmenter(english(t))
	paragraph := "  Mr. Smith went to Washington. He arrived on time.  "
	spans, err := seg.Segment(paragraph)
	require.NoError(t, err)
	text := []rune(paragraph)
	var sentences []string
	prev := segtok.Span{}
	for _, s := range spans {
		require.True(t, s.IsValid())
		require.True(t, prev.Precedes(s))
		sentence := string(text[s.Start:s.End])
		assert.Equal(t, strings.TrimSpace(sentence), sentence)
		sentences = append(sentences, sentence)
		prev = s
	}
	assert.Equal(t, []string{"Mr. Smith went to Washington.", "He arrived on time."}, sentences)
}

func TestSegmentMultibyteOffsets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg := NewSegmenter(english(t))
	paragraph := "Größe zählt.  Ça marche. Größe zählt."
	spans, err := seg.Segment(paragraph)
	require.NoError(t, err)
	assert.Equal(t, []segtok.Span{{Start: 0, End: 12}, {Start: 14, End: 24}, {Start: 25, End: 37}}, spans)
}

func TestTokenize(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tok := NewTokenizer(english(t))
	sentence := "Mr. Smith's dog (J. Doe's, too) barked!"
	spans, err := tok.Tokenize(sentence)
	require.NoError(t, err)
	text := []rune(sentence)
	var tokens []string
	for _, s := range spans {
		tokens = append(tokens, string(text[s.Start:s.End]))
	}
	assert.Equal(t, []string{"Mr.", "Smith's", "dog", "(", "J.", "Doe's", ",", "too", ")", "barked", "!"}, tokens)
}

func TestVariant(t *testing.T) {
	m := english(t)
	assert.Equal(t, segtok.Statistical, segtok.VariantOf(NewSegmenter(m)))
	assert.Equal(t, segtok.Statistical, segtok.VariantOf(NewTokenizer(m)))
}
