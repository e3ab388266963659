package annotate

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/moses"
	"github.com/npillmayer/segtok/prefix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "Dr. Smith arrived. He was late.\n\n  No. 5 is ready. Größe matters!\n\n\nI said no. Then «he» left…"

func engines(t *testing.T) (*moses.Segmenter, *moses.Tokenizer) {
	rules, err := prefix.Load("en")
	require.NoError(t, err)
	return moses.NewSegmenter(rules), moses.NewTokenizer(rules)
}

func TestAnnotate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg, tok := engines(t)
	res, err := Annotate(sample, "en", seg, tok)
	require.NoError(t, err)
	assert.Equal(t, segtok.Provenance{Language: "en", Segmenter: segtok.RuleBased, Tokenizer: segtok.RuleBased},
		res.Provenance)
	require.Len(t, res.Paragraphs, 3)
	runes := []rune(sample)
	var sentences []string
	for _, p := range res.Paragraphs {
		for _, s := range p.Sentences {
			sentences = append(sentences, string(runes[s.Start:s.End]))
		}
	}
	assert.Equal(t, []string{
		"Dr. Smith arrived.", "He was late.",
		"No. 5 is ready.", "Größe matters!",
		"I said no.", "Then «he» left…",
	}, sentences)
	assert.Equal(t, 6, res.SentenceCount())
	assert.NoError(t, res.Validate(len(runes)))
}

func TestTokensMatchText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg, tok := engines(t)
	res, err := Annotate(sample, "en", seg, tok)
	require.NoError(t, err)
	runes := []rune(sample)
	covered := make([]bool, len(runes))
	for _, token := range res.Tokens() {
		assert.Equal(t, string(runes[token.Start:token.End]), token.Text)
		for i := token.Start; i < token.End; i++ {
			covered[i] = true
		}
	}
	for i, r := range runes {
		assert.Equal(t, !unicode.IsSpace(r), covered[i], "code-point %d %q", i, r)
	}
}

func TestWorkersAgree(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg, tok := engines(t)
	text := strings.Repeat(sample+"\n\n", 20)
	serial, err := New(seg, tok).Annotate(text)
	require.NoError(t, err)
	parallel, err := New(seg, tok, WithWorkers(4)).Annotate(text)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
	assert.Len(t, parallel.Paragraphs, 60)
}

func TestCustomDelimiter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg, tok := engines(t)
	res, err := New(seg, tok, WithDelimiter("<JA>")).Annotate("One here.<JA>Two there.")
	require.NoError(t, err)
	require.Len(t, res.Paragraphs, 2)
	assert.Equal(t, segtok.Span{Start: 13, End: 23}, res.Paragraphs[1].Span)
	assert.Equal(t, "", res.Language)
}

func TestEmptyText(t *testing.T) {
	seg, tok := engines(t)
	res, err := Annotate(" \n\n ", "en", seg, tok)
	require.NoError(t, err)
	assert.Empty(t, res.Paragraphs)
}

// --- Faulty engines ----------------------------------------------------------

var errBroken = errors.New("broken engine")

type brokenSegmenter struct{}

func (brokenSegmenter) Segment(string) ([]segtok.Span, error) {
	return nil, errBroken
}

type overlappingTokenizer struct{}

func (overlappingTokenizer) Tokenize(s string) ([]segtok.Span, error) {
	return []segtok.Span{{Start: 0, End: 2}, {Start: 1, End: 3}}, nil
}

type wholeParagraph struct{}

func (wholeParagraph) Segment(p string) ([]segtok.Span, error) {
	return []segtok.Span{{Start: 0, End: len([]rune(p))}}, nil
}

func TestEngineFailure(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, tok := engines(t)
	_, err := New(brokenSegmenter{}, tok, WithWorkers(3)).Annotate(sample)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBroken))
	res, err := Annotate("Some words here.", "en", wholeParagraph{}, overlappingTokenizer{})
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, segtok.ErrMalformedSpan))
	var serr *segtok.SpanError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "token", serr.Level)
	assert.Equal(t, "unknown", segtok.VariantOf(wholeParagraph{}))
}
