/*
Package segtok is about splitting multilingual text into paragraphs,
sentences and tokens, and about recording where each of these units lives
in the original text.

Description

Splitting text into sentences and words looks easy until one meets real
text. The period (U+002E FULL STOP) is used ambiguously: sometimes it ends
a sentence, sometimes it closes an abbreviation ("Dr. Smith"), sometimes it
is part of a number ("3.14") or of an address ("www.example.org").
Apostrophes may be quotes or part of a contraction ("don't"), and every
language has its own list of abbreviations which should not end a sentence.

Package segtok and its sub-packages perform segmentation in three levels:

   text  →  paragraphs  →  sentences  →  tokens

Paragraphs are split by an explicit delimiter inserted by whoever joined
the input lines (see package segment). Sentences and tokens are found by
exchangeable engines. Every unit is reported as a Span of code-point
offsets into the original text, never as a copy detached from its origin.
Clients are therefore always able to re-slice the original text and get
the exact surface form of a unit back.

Engines

The capability contracts are SentenceSegmenter and Tokenizer. There are
two families of implementations:

(1) Rule-based, loosely following the Moses tokenizer (package moses).
Tokenization operates on a rewritten working copy of a sentence, in which
protected patterns (URLs, numbers, abbreviations) are replaced by
placeholders and punctuation is padded with spaces. Offsets on the working
copy are mapped back to the original by package spanmap.

(2) Statistical, using a trained Punkt model (package punkt).

Package annotate orchestrates the engines and produces an AnnotationResult,
package kaf renders results as KAF documents.

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

*/
package segtok

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultParagraphDelimiter separates paragraphs if clients do not
// specify a delimiter of their own. Line joiners insert it for blank lines.
const DefaultParagraphDelimiter = "\n\n"

// Names of the engine variants, as recorded in provenance information.
const (
	RuleBased   = "rule-based"
	Statistical = "statistical"
)
