package punkt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/spanmap"
)

// Segmenter is a sentence segmenter driven by a Punkt model.
type Segmenter struct {
	model *Model
}

// NewSegmenter creates a statistical segmenter.
func NewSegmenter(model *Model) *Segmenter {
	return &Segmenter{model: model}
}

// Variant returns segtok.Statistical.
func (s *Segmenter) Variant() string {
	return segtok.Statistical
}

// Segment splits a paragraph into sentences.
//
// The Punkt tokenizer reports sentences with byte offsets into the
// paragraph; Segment converts them to code-point spans and trims
// surrounding whitespace. Offsets out of bounds or out of order are an
// error wrapping segtok.ErrMalformedSpan.
//
// Interface segtok.SentenceSegmenter
func (s *Segmenter) Segment(paragraph string) ([]segtok.Span, error) {
	inx := spanmap.NewIndex(paragraph)
	var spans []segtok.Span
	cursor := 0
	for _, sent := range s.model.tokenizer.Tokenize(paragraph) {
		if sent.Start < cursor || sent.End < sent.Start || sent.End > len(paragraph) {
			return nil, &segtok.SpanError{
				Level: "sentence",
				Index: len(spans),
				Span:  segtok.Span{Start: inx.Rune(sent.Start), End: inx.Rune(sent.End)},
				Msg:   fmt.Sprintf("model sentence %q has invalid byte offsets", sent.Text),
			}
		}
		cursor = sent.End
		raw := paragraph[sent.Start:sent.End]
		text := strings.TrimLeftFunc(raw, unicode.IsSpace)
		start := sent.Start + len(raw) - len(text)
		text = strings.TrimRightFunc(text, unicode.IsSpace)
		if text == "" {
			continue
		}
		spans = append(spans, segtok.Span{Start: inx.Rune(start), End: inx.Rune(start + len(text))})
	}
	tracer().Debugf("punkt found %d sentences", len(spans))
	return spans, nil
}
