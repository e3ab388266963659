/*
Package moses implements rule-based sentence segmentation and tokenization,
loosely following the tokenizer scripts of the Moses SMT toolkit.

Sentences

A Segmenter looks for runs of sentence-final punctuation ('.', '!', '?',
'…' and language specific additions). A run is a candidate boundary if it
is followed by whitespace and then by something which may start a sentence:
an upper-case (or case-less) letter, a digit, an opening quote or bracket,
or an inverted opener like Spanish '¿'. Closing quotes and brackets
directly after the run belong to the preceding sentence.

Candidates are then checked by a list of rules, in configurable order.
The first rule with an opinion decides:

   blankline   a blank line in the gap forces a break
   prefix      a non-breaking prefix ("Dr.") suppresses a break; prefixes
               flagged numeric-only ("No.") suppress it only before a number
   initial     a single upper-case letter ("A. Smith") suppresses a break
   acronym     a dotted acronym ("U.S.") suppresses a break

If no rule decides, the break is taken.

Tokens

A Tokenizer works on a rewritten working copy of a sentence:

   Protect   URLs, e-mail addresses, numbers with separators and
             abbreviations are replaced by a placeholder each
   Pad       punctuation is padded with spaces, honouring contractions
             ("don't"), initials and acronyms
   Split     the working copy is split at whitespace
   Restore   placeholders are expanded to their original text
   Map       working offsets are mapped to offsets of the sentence

Every rewriting step records its edits with a spanmap.Builder, so offsets
stay exact even for text with multi-byte characters.

Both types are immutable after construction and safe for concurrent use.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package moses

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to segtok.moses .
func tracer() tracing.Trace {
	return tracing.Select("segtok.moses")
}
