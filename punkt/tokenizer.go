package punkt

import (
	"unicode"

	"github.com/npillmayer/segtok"
)

// Tokenizer splits sentences at whitespace and separates punctuation at
// word boundaries. A trailing period stays with its word if the model
// knows the word as an abbreviation, or if the word is an initial.
type Tokenizer struct {
	model *Model
}

// NewTokenizer creates a statistical tokenizer.
func NewTokenizer(model *Model) *Tokenizer {
	return &Tokenizer{model: model}
}

// Variant returns segtok.Statistical.
func (t *Tokenizer) Variant() string {
	return segtok.Statistical
}

// Tokenize splits a sentence into tokens.
//
// Interface segtok.Tokenizer
func (t *Tokenizer) Tokenize(sentence string) ([]segtok.Span, error) {
	text := []rune(sentence)
	var spans []segtok.Span
	for i := 0; i < len(text); {
		if unicode.IsSpace(text[i]) {
			i++
			continue
		}
		start := i
		for i < len(text) && !unicode.IsSpace(text[i]) {
			i++
		}
		spans = t.word(text, start, i, spans)
	}
	return spans, nil
}

// word appends the tokens of the whitespace-delimited word text[ws:we].
func (t *Tokenizer) word(text []rune, ws, we int, spans []segtok.Span) []segtok.Span {
	cs, ce := ws, we
	for cs < ce && !isWordRune(text[cs]) {
		cs++
	}
	for ce > cs && !isWordRune(text[ce-1]) {
		ce--
	}
	if cs == ce { // punctuation only
		return punctuation(text, ws, we, spans)
	}
	spans = punctuation(text, ws, cs, spans)
	if ce < we && text[ce] == '.' && (ce+1 == we || text[ce+1] != '.') {
		core := string(text[cs:ce])
		if t.model.IsAbbreviation(core) || isInitial(text[cs:ce]) {
			ce++
		}
	}
	spans = append(spans, segtok.Span{Start: cs, End: ce})
	return punctuation(text, ce, we, spans)
}

// punctuation appends one token per run of equal code-points in text[i:end].
func punctuation(text []rune, i, end int, spans []segtok.Span) []segtok.Span {
	for i < end {
		j := i + 1
		for j < end && text[j] == text[i] {
			j++
		}
		spans = append(spans, segtok.Span{Start: i, End: j})
		i = j
	}
	return spans
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func isInitial(word []rune) bool {
	return len(word) == 1 && unicode.IsUpper(word[0])
}
