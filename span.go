package segtok

import "fmt"

// Span is a half-open range [Start, End) of code-point offsets.
// Valid spans have 0 <= Start < End.
type Span struct {
	Start int
	End   int
}

// Len returns the number of code-points covered by a span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsValid is true for non-empty spans with non-negative start.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Start < s.End
}

// Shift moves a span by d code-points.
func (s Span) Shift(d int) Span {
	return Span{Start: s.Start + d, End: s.End + d}
}

// Contains is true if o lies completely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Precedes is true if s ends at or before o starts, i.e. if both may be
// siblings in this order.
func (s Span) Precedes(o Span) bool {
	return s.End <= o.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// SentenceSegmenter splits a paragraph into sentences. Spans are relative
// to the paragraph and are expressed in code-points.
//
// Implementations must return spans in increasing order, without overlaps
// and without leading or trailing whitespace.
type SentenceSegmenter interface {
	Segment(paragraph string) ([]Span, error)
}

// Tokenizer splits a sentence into tokens. Spans are relative to the
// sentence and are expressed in code-points. Whitespace is never part of
// a token.
type Tokenizer interface {
	Tokenize(sentence string) ([]Span, error)
}

// Variant is an optional interface for segmenters and tokenizers to
// identify their engine family for provenance records.
type Variant interface {
	Variant() string
}

// VariantOf returns the variant name of an engine, or "unknown".
func VariantOf(engine interface{}) string {
	if v, ok := engine.(Variant); ok {
		return v.Variant()
	}
	return "unknown"
}
