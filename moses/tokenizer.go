package moses

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/prefix"
	"github.com/npillmayer/segtok/spanmap"
)

// Tokenizer splits sentences into tokens. It is immutable after creation
// and safe for concurrent use.
type Tokenizer struct {
	prefixes *prefix.RuleSet
	profile  Profile
	policy   Policy
}

// NewTokenizer creates a rule-based tokenizer. prefixes may be nil, in which
// case no abbreviations are protected.
func NewTokenizer(prefixes *prefix.RuleSet, opts ...Option) *Tokenizer {
	c := configure(prefixes, opts)
	return &Tokenizer{prefixes: prefixes, profile: *c.profile, policy: c.policy}
}

// Variant returns segtok.RuleBased.
func (t *Tokenizer) Variant() string {
	return segtok.RuleBased
}

// Tokenize splits a sentence into tokens. Spans are code-point offsets into
// sentence. Every token re-sliced from sentence equals the token produced by
// the rewriting stages; if it does not, Tokenize fails with an error wrapping
// segtok.ErrMalformedSpan.
//
// Periods inside a protected number stay with it, but a word-final period
// after a number is split off: "3.14." yields "3.14" and ".".
//
// Interface segtok.Tokenizer
func (t *Tokenizer) Tokenize(sentence string) ([]segtok.Span, error) {
	ws := borrowWorkspace(sentence)
	defer ws.releaseIntoPool()
	t.protect(ws, sentence)
	t.pad(ws)
	chain := spanmap.Chain{ws.pass1.Mapper(), ws.pass2.Mapper()}
	work := ws.pass2.Runes()
	var spans []segtok.Span
	for i := 0; i < len(work); {
		if unicode.IsSpace(work[i]) && ws.marks2[i] < 0 {
			i++
			continue
		}
		start := i
		for i < len(work) && (ws.marks2[i] >= 0 || !unicode.IsSpace(work[i])) {
			i++
		}
		wspan := segtok.Span{Start: start, End: i}
		ospan := chain.Map(wspan)
		restored := ws.restore(wspan)
		if !ospan.IsValid() || ospan.End > len(ws.orig) || string(ws.orig[ospan.Start:ospan.End]) != restored {
			return nil, &segtok.SpanError{
				Level: "token",
				Index: len(spans),
				Span:  ospan,
				Msg:   fmt.Sprintf("does not match restored token %q", restored),
			}
		}
		spans = append(spans, ospan)
	}
	tracer().Debugf("%d tokens", len(spans))
	return spans, nil
}

// restore expands the placeholders of a span of the padded working copy.
func (ws *workspace) restore(s segtok.Span) string {
	var sb strings.Builder
	work := ws.pass2.Runes()
	for i := s.Start; i < s.End; i++ {
		if m := ws.marks2[i]; m >= 0 {
			p := ws.protected[m].orig
			sb.WriteString(string(ws.orig[p.Start:p.End]))
			continue
		}
		sb.WriteRune(work[i])
	}
	return sb.String()
}

// --- Padding ---------------------------------------------------------------

// pad builds the second working copy from the first one, surrounding
// punctuation with spaces.
func (t *Tokenizer) pad(ws *workspace) {
	w := ws.pass1.Runes()
	n := len(w)
	for i := 0; i < n; {
		r := w[i]
		switch {
		case ws.marks1[i] >= 0:
			ws.copy2(w[i], ws.marks1[i])
			i++
		case unicode.IsSpace(r) || isWordRune(r):
			ws.copy2(r, -1)
			i++
		case r == '.':
			j := runOf(w, ws.marks1, i)
			if t.splitPeriods(ws, i, j) {
				ws.padGroup(w, i, j)
			} else {
				ws.copyRun(w, i, j)
			}
			i = j
		case isApostrophe(r):
			if k := t.attachedApostrophe(ws, i); k > 0 {
				ws.copyRun(w, i, i+k)
				i += k
			} else {
				ws.padGroup(w, i, i+1)
				i++
			}
		case r == '-' && !t.profile.SplitHyphens:
			ws.copy2(r, -1)
			i++
		default:
			j := runOf(w, ws.marks1, i)
			if j == i+1 {
				j = clusterEnd(w, ws.marks1, i)
			}
			ws.padGroup(w, i, j)
			i = j
		}
	}
}

// clusterEnd returns the end of the grapheme cluster starting at w[i], for
// the cases relevant to symbols: combining marks and variation selectors,
// emoji modifiers, ZWJ sequences and pairs of regional indicators.
func clusterEnd(w []rune, marks []int, i int) int {
	j := i + 1
	if isRegionalIndicator(w[i]) && j < len(w) && marks[j] < 0 && isRegionalIndicator(w[j]) {
		j++
	}
	for j < len(w) && marks[j] < 0 {
		r := w[j]
		switch {
		case unicode.IsMark(r), r >= 0x1F3FB && r <= 0x1F3FF:
			j++
		case r == '\u200d' && j+1 < len(w) && marks[j+1] < 0 && !unicode.IsSpace(w[j+1]):
			j += 2
		default:
			return j
		}
	}
	return j
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// runOf returns the end of the run of code-points equal to w[i].
func runOf(w []rune, marks []int, i int) int {
	j := i + 1
	for j < len(w) && w[j] == w[i] && marks[j] < 0 {
		j++
	}
	return j
}

func (ws *workspace) copy2(r rune, mark int) {
	ws.pass2.Copy(r)
	ws.marks2 = append(ws.marks2, mark)
}

func (ws *workspace) copyRun(w []rune, i, j int) {
	for ; i < j; i++ {
		ws.copy2(w[i], ws.marks1[i])
	}
}

func (ws *workspace) space() {
	ws.pass2.Insert(' ')
	ws.marks2 = append(ws.marks2, -1)
}

// padGroup copies w[i:j] as a token of its own.
func (ws *workspace) padGroup(w []rune, i, j int) {
	if ws.pass2.Len() > 0 && !unicode.IsSpace(ws.pass2.Last()) {
		ws.space()
	}
	ws.copyRun(w, i, j)
	if j < len(w) && (ws.marks1[j] >= 0 || !unicode.IsSpace(w[j])) {
		ws.space()
	}
}

// splitPeriods decides if the period run w[i:j] becomes a token of its own.
// Only word-final runs are split, except after an initial or an acronym.
func (t *Tokenizer) splitPeriods(ws *workspace, i, j int) bool {
	w := ws.pass1.Runes()
	if j < len(w) && !unicode.IsSpace(w[j]) {
		if ws.marks1[j] >= 0 || !t.isPadded(w[j]) {
			return false // inside a word, as in "a.m"
		}
	}
	if j-i > 1 {
		return true
	}
	start := i
	for start > 0 && !unicode.IsSpace(w[start-1]) {
		start--
	}
	for start < i && ws.marks1[start] < 0 && !isWordRune(w[start]) {
		start++
	}
	word := w[start:i]
	for k := start; k < i; k++ {
		if ws.marks1[k] >= 0 {
			return true // e.g. "3.14."
		}
	}
	if t.policy.Has(RuleInitial) && t.profile.Initials && isInitial(word) {
		return false
	}
	if t.policy.Has(RuleAcronym) && isAcronym(word) {
		return false
	}
	return true
}

// isPadded is true for code-points which the padding stage separates from
// a preceding word.
func (t *Tokenizer) isPadded(r rune) bool {
	switch {
	case isWordRune(r), unicode.IsSpace(r), r == '.':
		return false
	case r == '-':
		return t.profile.SplitHyphens
	}
	return true
}

// attachedApostrophe returns the number of code-points starting at the
// apostrophe w[i] which stay attached to the surrounding word, or 0.
func (t *Tokenizer) attachedApostrophe(ws *workspace, i int) int {
	w := ws.pass1.Runes()
	wordAt := func(k int) bool {
		return k >= 0 && k < len(w) && (ws.marks1[k] >= 0 || isWordRune(w[k]))
	}
	prev, next := wordAt(i-1), wordAt(i+1)
	switch {
	case prev && next: // "don't", "l'agua"
		return 1
	case !prev && next:
		end := i
		for end < len(w) && ws.marks1[end] < 0 && !unicode.IsSpace(w[end]) {
			end++
		}
		if n := t.profile.leadingContraction(w[i:end]); n > 0 {
			if n > 1 && isApostrophe(w[i+n-1]) {
				return n // "'n'" keeps its closing apostrophe
			}
			return 1
		}
	case prev && !next:
		if t.profile.Contractions.PossessivePlural && i >= 2 && (w[i-1] == 's' || w[i-1] == 'S') && wordAt(i-2) {
			return 1 // "players'"
		}
	}
	return 0
}
