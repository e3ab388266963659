/*
Package annotate assembles paragraphs, sentences and tokens of a text into
a segtok.AnnotationResult.

An Annotator splits a text into paragraphs, hands every paragraph to a
segtok.SentenceSegmenter and every sentence to a segtok.Tokenizer, and
shifts the relative spans they return into offsets of the original text.
It is written against these interfaces only; any pair of engines may be
combined.

Paragraphs are independent of each other. With WithWorkers(n), up to n
paragraphs are processed concurrently; the result does not depend on
the number of workers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package annotate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/segment"
)

// tracer traces to segtok.annotate .
func tracer() tracing.Trace {
	return tracing.Select("segtok.annotate")
}

// Annotator runs a segmenter and a tokenizer over texts.
// Annotators are immutable and may be used concurrently.
type Annotator struct {
	segmenter segtok.SentenceSegmenter
	tokenizer segtok.Tokenizer
	delimiter string
	language  string
	workers   int
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithDelimiter sets the paragraph delimiter.
func WithDelimiter(delim string) Option {
	return func(a *Annotator) {
		if delim != "" {
			a.delimiter = delim
		}
	}
}

// WithLanguage sets the language recorded in the provenance of results.
func WithLanguage(lang string) Option {
	return func(a *Annotator) {
		a.language = lang
	}
}

// WithWorkers sets the number of paragraphs processed concurrently.
func WithWorkers(n int) Option {
	return func(a *Annotator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// New creates an Annotator.
func New(seg segtok.SentenceSegmenter, tok segtok.Tokenizer, opts ...Option) *Annotator {
	a := &Annotator{
		segmenter: seg,
		tokenizer: tok,
		delimiter: segtok.DefaultParagraphDelimiter,
		workers:   1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate is a shortcut for annotating a single text with default options.
func Annotate(text, language string, seg segtok.SentenceSegmenter, tok segtok.Tokenizer) (*segtok.AnnotationResult, error) {
	return New(seg, tok, WithLanguage(language)).Annotate(text)
}

// Annotate splits text into paragraphs, sentences and tokens. All spans of
// the result are code-point offsets into text. If any engine fails, or if
// the result violates an invariant, Annotate returns an error and no result.
func (a *Annotator) Annotate(text string) (*segtok.AnnotationResult, error) {
	runes := []rune(text)
	scanner := segment.NewScanner(a.delimiter)
	scanner.Init(strings.NewReader(text))
	var paras []segtok.Span
	for scanner.Next() {
		paras = append(paras, scanner.Span())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("splitting paragraphs: %w", err)
	}
	tracer().P("lang", a.language).Debugf("%d paragraphs", len(paras))
	res := &segtok.AnnotationResult{
		Provenance: segtok.Provenance{
			Language:  a.language,
			Segmenter: segtok.VariantOf(a.segmenter),
			Tokenizer: segtok.VariantOf(a.tokenizer),
		},
		Paragraphs: make([]segtok.Paragraph, len(paras)),
	}
	var err error
	if a.workers > 1 && len(paras) > 1 {
		err = a.parallel(runes, paras, res.Paragraphs)
	} else {
		for i, p := range paras {
			if res.Paragraphs[i], err = a.paragraph(runes, p); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}
	if err = res.Validate(len(runes)); err != nil {
		tracer().Errorf("invalid annotation: %v", err)
		return nil, err
	}
	return res, nil
}

// parallel annotates paragraphs with a pool of workers. The first error
// wins; remaining paragraphs are skipped.
func (a *Annotator) parallel(runes []rune, paras []segtok.Span, out []segtok.Paragraph) error {
	jobs := make(chan int)
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error
	failed := make(chan struct{})
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p, err := a.paragraph(runes, paras[i])
				if err != nil {
					once.Do(func() {
						firstErr = err
						close(failed)
					})
					continue
				}
				out[i] = p
			}
		}()
	}
feed:
	for i := range paras {
		select {
		case jobs <- i:
		case <-failed:
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return firstErr
}

// paragraph segments and tokenizes a single paragraph.
func (a *Annotator) paragraph(runes []rune, span segtok.Span) (segtok.Paragraph, error) {
	para := segtok.Paragraph{Span: span}
	text := string(runes[span.Start:span.End])
	sspans, err := a.segmenter.Segment(text)
	if err != nil {
		return para, fmt.Errorf("segmenting paragraph %v: %w", span, err)
	}
	for _, ss := range sspans {
		if !ss.IsValid() || ss.End > span.Len() {
			return para, &segtok.SpanError{Level: "sentence", Index: len(para.Sentences),
				Span: ss.Shift(span.Start), Msg: "segmenter returned span outside of paragraph"}
		}
		abs := ss.Shift(span.Start)
		tspans, err := a.tokenizer.Tokenize(string(runes[abs.Start:abs.End]))
		if err != nil {
			return para, fmt.Errorf("tokenizing sentence %v: %w", abs, err)
		}
		sentence := segtok.Sentence{Tokens: make([]segtok.Token, 0, len(tspans))}
		for _, ts := range tspans {
			if !ts.IsValid() || ts.End > abs.Len() {
				return para, &segtok.SpanError{Level: "token", Index: len(sentence.Tokens),
					Span: ts.Shift(abs.Start), Msg: "tokenizer returned span outside of sentence"}
			}
			t := ts.Shift(abs.Start)
			sentence.Tokens = append(sentence.Tokens, segtok.Token{
				Span: t,
				Text: string(runes[t.Start:t.End]),
			})
		}
		if len(sentence.Tokens) == 0 {
			continue // whitespace-only sentence
		}
		sentence.Span = segtok.Span{
			Start: sentence.Tokens[0].Start,
			End:   sentence.Tokens[len(sentence.Tokens)-1].End,
		}
		para.Sentences = append(para.Sentences, sentence)
	}
	return para, nil
}
