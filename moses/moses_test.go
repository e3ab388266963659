package moses

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/prefix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(s string, spans []segtok.Span) []string {
	text := []rune(s)
	var t []string
	for _, sp := range spans {
		t = append(t, string(text[sp.Start:sp.End]))
	}
	return t
}

func rules(t *testing.T, lang string) *prefix.RuleSet {
	rs, err := prefix.Load(lang)
	require.NoError(t, err)
	return rs
}

func TestSegmentAbbreviation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	seg := NewSegmenter(rules(t, "en"))
	input := "Dr. Smith arrived."
	spans, err := seg.Segment(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Smith arrived."}, texts(input, spans))
}

func TestSegmentNumericException(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg := NewSegmenter(rules(t, "en"))
	input := "No. 5 is ready. The end."
	spans, err := seg.Segment(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"No. 5 is ready.", "The end."}, texts(input, spans))
	input = "I said No. Then he left."
	spans, _ = seg.Segment(input)
	assert.Equal(t, []string{"I said No.", "Then he left."}, texts(input, spans))
	input = "I said no. Then he left. It was no. 7 of them."
	spans, _ = seg.Segment(input)
	assert.Equal(t, []string{"I said no.", "Then he left.", "It was no. 7 of them."}, texts(input, spans))
}

func TestSegmentInitials(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "J. R. Tolkien wrote it. It sold well."
	seg := NewSegmenter(nil)
	spans, _ := seg.Segment(input)
	assert.Equal(t, []string{"J. R. Tolkien wrote it.", "It sold well."}, texts(input, spans))
	seg = NewSegmenter(nil, WithPolicy(Policy{Precedence: []Rule{RuleBlankLine}}))
	spans, _ = seg.Segment(input)
	assert.Len(t, spans, 4, "initials rule switched off")
}

func TestSegmentPunctuationRuns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg := NewSegmenter(rules(t, "en"))
	input := "What?! Really... Yes."
	spans, _ := seg.Segment(input)
	assert.Equal(t, []string{"What?!", "Really...", "Yes."}, texts(input, spans))
	input = `He said "Stop." Then he left.`
	spans, _ = seg.Segment(input)
	assert.Equal(t, []string{`He said "Stop."`, "Then he left."}, texts(input, spans))
	input = "It cost 5 dollars. and then some"
	spans, _ = seg.Segment(input)
	assert.Len(t, spans, 1, "lower-case continuation is no boundary")
}

func TestSegmentSpanish(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg := NewSegmenter(rules(t, "es"))
	input := "Hola. ¿Qué tal? ¡Bien! Vale."
	spans, _ := seg.Segment(input)
	assert.Equal(t, []string{"Hola.", "¿Qué tal?", "¡Bien!", "Vale."}, texts(input, spans))
}

func TestSegmentBlankLinePrecedence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "It was the U.S.\n\nThen came more."
	seg := NewSegmenter(nil)
	spans, _ := seg.Segment(input)
	assert.Equal(t, []string{"It was the U.S.", "Then came more."}, texts(input, spans))
	seg = NewSegmenter(nil, WithPolicy(Policy{Precedence: []Rule{RuleAcronym, RuleBlankLine}}))
	spans, _ = seg.Segment(input)
	assert.Len(t, spans, 1)
	spans, _ = seg.Segment("It was the U.S. Army.")
	assert.Len(t, spans, 1)
}

func TestSegmentOffsets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seg := NewSegmenter(rules(t, "en"))
	spans, _ := seg.Segment("  Hello there.  ")
	assert.Equal(t, []segtok.Span{{Start: 2, End: 14}}, spans)
	spans, _ = seg.Segment("Ça va. Über alles.")
	assert.Equal(t, []segtok.Span{{Start: 0, End: 6}, {Start: 7, End: 18}}, spans)
	spans, err := seg.Segment("   ")
	assert.NoError(t, err)
	assert.Empty(t, spans)
}

func TestTokenize(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tok := NewTokenizer(rules(t, "en"))
	for _, test := range []struct {
		input  string
		tokens []string
	}{
		{"Dr. Smith arrived.", []string{"Dr.", "Smith", "arrived", "."}},
		{"don't stop", []string{"don't", "stop"}},
		{"Hello, (world)!", []string{"Hello", ",", "(", "world", ")", "!"}},
		{"What?!", []string{"What", "?", "!"}},
		{"Wait...", []string{"Wait", "..."}},
		{"the U.S. army", []string{"the", "U.S.", "army"}},
		{"It costs 3.14 or 12,000 dollars.", []string{"It", "costs", "3.14", "or", "12,000", "dollars", "."}},
		{"Pi is 3.14.", []string{"Pi", "is", "3.14", "."}},
		{"Visit https://example.com/a?b=1, now.", []string{"Visit", "https://example.com/a?b=1", ",", "now", "."}},
		{"Mail jane.doe@example.org.", []string{"Mail", "jane.doe@example.org", "."}},
		{"rock 'n' roll", []string{"rock", "'n'", "roll"}},
		{"the players' union", []string{"the", "players'", "union"}},
		{"'Hello'", []string{"'", "Hello", "'"}},
		{"well-known fact", []string{"well-known", "fact"}},
		{"see (e.g., below)", []string{"see", "(", "e.g.", ",", "below", ")"}},
	} {
		spans, err := tok.Tokenize(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.tokens, texts(test.input, spans), test.input)
	}
}

func TestTokenizeGraphemeClusters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tok := NewTokenizer(rules(t, "en"))
	input := "I \u2764\ufe0f \U0001F1E9\U0001F1EA, \U0001F469\u200d\U0001F4BB!"
	spans, err := tok.Tokenize(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "\u2764\ufe0f", "\U0001F1E9\U0001F1EA", ",", "\U0001F469\u200d\U0001F4BB", "!"},
		texts(input, spans))
}

func TestTokenizeInitials(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tok := NewTokenizer(nil)
	input := "A. Smith"
	spans, _ := tok.Tokenize(input)
	assert.Equal(t, []string{"A.", "Smith"}, texts(input, spans))
}

func TestTokenizeHyphens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	policy := DefaultPolicy()
	policy.SplitHyphens = true
	tok := NewTokenizer(rules(t, "en"), WithPolicy(policy))
	input := "well-known fact"
	spans, _ := tok.Tokenize(input)
	assert.Equal(t, []string{"well", "-", "known", "fact"}, texts(input, spans))
}

func TestTokenizeSpanish(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tok := NewTokenizer(rules(t, "es"))
	input := "¿Qué tal, Sr. García?"
	spans, err := tok.Tokenize(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"¿", "Qué", "tal", ",", "Sr.", "García", "?"}, texts(input, spans))
}

func TestTokenizeMultibyteOffsets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tok := NewTokenizer(rules(t, "en"))
	spans, err := tok.Tokenize("Größe: 5 €.")
	require.NoError(t, err)
	assert.Equal(t, []segtok.Span{
		{Start: 0, End: 5}, {Start: 5, End: 6}, {Start: 7, End: 8}, {Start: 9, End: 10}, {Start: 10, End: 11},
	}, spans)
}

func TestTokenizeIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tok := NewTokenizer(rules(t, "en"))
	for _, input := range []string{
		"Dr. Smith doesn't live at No. 5, does he?",
		"\"Stop!\" she said (quietly)... and left.",
		"Prices rose 3.5% to $12,000 on 12/05/2020, see www.example.com.",
		"rock 'n' roll, the players' union and the U.S. army",
		"Ask A. Smith, e.g. via https://example.org/x?y=1 or mail... \u2764\ufe0f \U0001F469\u200d\U0001F4BB!",
	} {
		spans, err := tok.Tokenize(input)
		require.NoError(t, err, input)
		first := texts(input, spans)
		joined := strings.Join(first, " ")
		spans, err = tok.Tokenize(joined)
		require.NoError(t, err, joined)
		assert.Equal(t, first, texts(joined, spans), input)
		for _, token := range first {
			single, err := tok.Tokenize(token)
			require.NoError(t, err, token)
			require.Len(t, single, 1, "token %q re-tokenized in isolation", token)
			assert.Equal(t, segtok.Span{Start: 0, End: len([]rune(token))}, single[0], token)
		}
	}
	for _, token := range []string{"e.g.", "A.", "players'", "'n'", "No.", "no.", "...",
		"www.example.com", "\U0001F469\u200d\U0001F4BB", "\U0001F1E9\U0001F1EA"} {
		single, err := tok.Tokenize(token)
		require.NoError(t, err, token)
		assert.Equal(t, []segtok.Span{{Start: 0, End: len([]rune(token))}}, single, token)
	}
}

func TestTokensCoverSentence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tok := NewTokenizer(rules(t, "en"))
	input := "  He said: «Ça marche!» — twice…  "
	spans, err := tok.Tokenize(input)
	require.NoError(t, err)
	text := []rune(input)
	prev := segtok.Span{}
	for i, s := range spans {
		require.True(t, s.IsValid(), "span %d", i)
		require.True(t, prev.Precedes(s), "span %d overlaps", i)
		prev = s
	}
	var nonspace []rune
	for _, r := range text {
		if r != ' ' {
			nonspace = append(nonspace, r)
		}
	}
	assert.Equal(t, string(nonspace), strings.Join(texts(input, spans), ""))
}

func TestVariant(t *testing.T) {
	assert.Equal(t, segtok.RuleBased, segtok.VariantOf(NewSegmenter(nil)))
	assert.Equal(t, segtok.RuleBased, segtok.VariantOf(NewTokenizer(nil)))
}

func TestLoadPolicy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p, err := LoadPolicy(strings.NewReader("precedence: [acronym, blankline]\nsplit_hyphens: true\n"))
	require.NoError(t, err)
	assert.Equal(t, []Rule{RuleAcronym, RuleBlankLine}, p.Precedence)
	assert.True(t, p.SplitHyphens)
	assert.False(t, p.Has(RulePrefix))
	p, err = LoadPolicy(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
	p, err = LoadPolicy(strings.NewReader("split_hyphens: true\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy().Precedence, p.Precedence)
	_, err = LoadPolicy(strings.NewReader("precedence: [prefix, magic]\n"))
	assert.True(t, errors.Is(err, ErrPolicy))
	_, err = LoadPolicy(strings.NewReader("precedence: [prefix, prefix]\n"))
	assert.True(t, errors.Is(err, ErrPolicy))
	_, err = LoadPolicy(strings.NewReader("colour: blue\n"))
	assert.True(t, errors.Is(err, ErrPolicy))
}

func ExampleTokenizer() {
	rules, _ := prefix.Load("en")
	tok := NewTokenizer(rules)
	sentence := "Dr. Smith doesn't live at No. 5, does he?"
	spans, _ := tok.Tokenize(sentence)
	text := []rune(sentence)
	for _, s := range spans {
		fmt.Printf("%s|", string(text[s.Start:s.End]))
	}
	// Output: Dr.|Smith|doesn't|live|at|No.|5|,|does|he|?|
}
