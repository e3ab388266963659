/*
Package segment splits text into paragraphs.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Scanner provides an interface similar to bufio.Scanner for reading
paragraphs from a text. Paragraphs are separated by a delimiter string,
which defaults to segtok.DefaultParagraphDelimiter ("\n\n").
Successive calls to Next() step through the paragraphs; Text() returns
the current paragraph and Span() its position in code-points, relative to
the start of the input.

  scanner := segment.NewScanner("\n\n")
  scanner.Init(strings.NewReader(text))
  for scanner.Next() {
    // do something with scanner.Text() and scanner.Span()
  }
  if err := scanner.Err(); err != nil {
    ...
  }

Paragraphs are trimmed of surrounding whitespace. Runs of delimiters or
whitespace-only paragraphs do not produce empty paragraphs.
*/
package segment

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtok"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Scanner receives a sequence of code-points from an io.RuneReader and
// splits it into paragraphs.
type Scanner struct {
	reader    io.RuneReader // where we get the next runes from
	delimiter []rune        // paragraph separator
	segment   []rune        // runes of the paragraph under construction
	segStart  int           // code-point offset of segment[0]
	active    string        // the most recent paragraph
	span      segtok.Span   // position of the most recent paragraph
	maxLen    int           // maximum length allowed for paragraphs
	pos       int           // current position in text, in code-points
	err       error
	atEOF     bool
}

// MaxParagraphSize is the default maximum size of a paragraph in code-points.
const MaxParagraphSize = 1 << 20

// ErrTooLong flags a paragraph exceeding the maximum size.
// ErrNotInitialized is returned if a scanner's Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("paragraph scanner: paragraph too long")
	ErrNotInitialized = errors.New("paragraph scanner not initialized; must call Init(...) first")
)

// NewScanner creates a paragraph scanner for a delimiter. An empty delimiter
// selects segtok.DefaultParagraphDelimiter.
//
// Before using newly created scanners, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewScanner(delimiter string) *Scanner {
	if delimiter == "" {
		delimiter = segtok.DefaultParagraphDelimiter
	}
	return &Scanner{
		delimiter: []rune(delimiter),
		maxLen:    MaxParagraphSize,
	}
}

// Init initializes a Scanner with an io.RuneReader to read from.
// s is either a newly created scanner to be initialized, or we may
// re-initialize a scanner already in use.
func (s *Scanner) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	s.segment = s.segment[:0]
	s.segStart, s.pos = 0, 0
	s.active, s.span = "", segtok.Span{}
	s.err = nil
	s.atEOF = false
}

// Limit sets the maximum paragraph length in code-points.
func (s *Scanner) Limit(max int) {
	s.maxLen = max
}

// Err returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Scanner to the next paragraph, which will then be
// available through the Text() and Span() methods. It returns false when
// the scan stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
func (s *Scanner) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	for !s.atEOF {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			s.atEOF = true
			if err != io.EOF {
				CT().Errorf("paragraph scanner: %v", err)
				s.setErr(err)
				return false
			}
			break
		}
		s.segment = append(s.segment, r)
		s.pos++
		if s.endsWithDelimiter() {
			content := s.segment[:len(s.segment)-len(s.delimiter)]
			if s.emit(content) {
				return true
			}
			continue
		}
		if len(s.segment) > s.maxLen {
			s.setErr(ErrTooLong)
			s.atEOF = true
			return false
		}
	}
	if len(s.segment) > 0 {
		return s.emit(s.segment)
	}
	return false
}

// emit makes content the active paragraph, if it contains anything besides
// whitespace. The segment buffer is reset in any case.
func (s *Scanner) emit(content []rune) bool {
	start, end := 0, len(content)
	for start < end && unicode.IsSpace(content[start]) {
		start++
	}
	for end > start && unicode.IsSpace(content[end-1]) {
		end--
	}
	found := end > start
	if found {
		s.active = string(content[start:end])
		s.span = segtok.Span{Start: s.segStart + start, End: s.segStart + end}
		CT().P("span", s.span.String()).Debugf("paragraph of %d code-points", end-start)
	}
	s.segment = s.segment[:0]
	s.segStart = s.pos
	return found
}

func (s *Scanner) endsWithDelimiter() bool {
	l, d := len(s.segment), len(s.delimiter)
	if l < d {
		return false
	}
	for i, r := range s.delimiter {
		if s.segment[l-d+i] != r {
			return false
		}
	}
	return true
}

// Text returns the most recent paragraph generated by a call to Next().
func (s *Scanner) Text() string {
	return s.active
}

// Span returns the position of the most recent paragraph, in code-points
// from the start of the input.
func (s *Scanner) Span() segtok.Span {
	return s.span
}

// setErr() records the first error encountered.
func (s *Scanner) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Paragraphs returns the spans of all paragraphs of text.
func Paragraphs(text, delimiter string) ([]segtok.Span, error) {
	s := NewScanner(delimiter)
	s.Init(strings.NewReader(text))
	var spans []segtok.Span
	for s.Next() {
		spans = append(spans, s.Span())
	}
	return spans, s.Err()
}
