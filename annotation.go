package segtok

// Token is a leaf unit of text, together with its surface form.
type Token struct {
	Span
	Text string
}

// Sentence is a sequence of tokens. Its span covers the tokens' extent.
type Sentence struct {
	Span
	Tokens []Token
}

// Paragraph is a sequence of sentences.
type Paragraph struct {
	Span
	Sentences []Sentence
}

// Provenance records which engines produced an annotation.
type Provenance struct {
	Language  string
	Segmenter string
	Tokenizer string
}

// AnnotationResult holds the paragraphs of one input text. Spans at every
// level are offsets into this input text, in code-points.
//
// An AnnotationResult is read-only after it has been produced. To re-tokenize
// a text, clients create a new one.
type AnnotationResult struct {
	Provenance
	Paragraphs []Paragraph
}

// TokenCount returns the number of tokens over all paragraphs.
func (res *AnnotationResult) TokenCount() int {
	n := 0
	for _, p := range res.Paragraphs {
		for _, s := range p.Sentences {
			n += len(s.Tokens)
		}
	}
	return n
}

// Tokens returns all tokens of a result in text order.
func (res *AnnotationResult) Tokens() []Token {
	tokens := make([]Token, 0, res.TokenCount())
	for _, p := range res.Paragraphs {
		for _, s := range p.Sentences {
			tokens = append(tokens, s.Tokens...)
		}
	}
	return tokens
}

// SentenceCount returns the number of sentences over all paragraphs.
func (res *AnnotationResult) SentenceCount() int {
	n := 0
	for _, p := range res.Paragraphs {
		n += len(p.Sentences)
	}
	return n
}

// Validate checks the span invariants of a result against a text of
// length textLen (in code-points):
//
//   ▪︎ every span is non-empty and lies within [0, textLen)
//   ▪︎ siblings are strictly ordered and do not overlap
//   ▪︎ paragraphs cover their sentences
//   ▪︎ a sentence's span is exactly the extent of its tokens
//
// A violation is an internal defect; Validate reports the first one as a
// *SpanError.
func (res *AnnotationResult) Validate(textLen int) error {
	bounds := Span{Start: 0, End: textLen}
	prevP := Span{}
	for i, p := range res.Paragraphs {
		if err := checkSibling("paragraph", i, p.Span, prevP, bounds); err != nil {
			return err
		}
		prevP = p.Span
		prevS := Span{Start: p.Start, End: p.Start}
		for j, s := range p.Sentences {
			if err := checkSibling("sentence", j, s.Span, prevS, p.Span); err != nil {
				return err
			}
			prevS = s.Span
			if len(s.Tokens) == 0 {
				return &SpanError{Level: "sentence", Index: j, Span: s.Span, Msg: "sentence has no tokens"}
			}
			prevT := Span{Start: s.Start, End: s.Start}
			for k, t := range s.Tokens {
				if err := checkSibling("token", k, t.Span, prevT, s.Span); err != nil {
					return err
				}
				prevT = t.Span
			}
			extent := Span{Start: s.Tokens[0].Start, End: s.Tokens[len(s.Tokens)-1].End}
			if extent != s.Span {
				return &SpanError{Level: "sentence", Index: j, Span: s.Span,
					Msg: "sentence span differs from token extent " + extent.String()}
			}
		}
	}
	return nil
}

func checkSibling(level string, inx int, s, prev, parent Span) error {
	if !s.IsValid() {
		return &SpanError{Level: level, Index: inx, Span: s, Msg: "empty or negative span"}
	}
	if !parent.Contains(s) {
		return &SpanError{Level: level, Index: inx, Span: s, Msg: "span exceeds parent " + parent.String()}
	}
	if inx > 0 && !prev.Precedes(s) {
		return &SpanError{Level: level, Index: inx, Span: s, Msg: "span overlaps predecessor " + prev.String()}
	}
	return nil
}
