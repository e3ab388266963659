package moses

import (
	"unicode"

	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/prefix"
)

// Option configures a Segmenter or a Tokenizer.
type Option func(*config)

type config struct {
	profile *Profile
	policy  Policy
}

// WithProfile replaces the language profile derived from the prefix rule set.
func WithProfile(p Profile) Option {
	return func(c *config) {
		c.profile = &p
	}
}

// WithPolicy sets the rule policy. The default is DefaultPolicy().
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

func configure(prefixes *prefix.RuleSet, opts []Option) config {
	c := config{policy: DefaultPolicy()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.profile == nil {
		lang := ""
		if prefixes != nil {
			lang = prefixes.Language()
		}
		p := ProfileFor(lang)
		c.profile = &p
	}
	if c.policy.SplitHyphens {
		c.profile.SplitHyphens = true
	}
	return c
}

// decision is the verdict of a rule about a candidate boundary.
type decision int8

const (
	undecided decision = iota
	doBreak
	suppress
)

// Segmenter splits paragraphs into sentences. It is immutable after
// creation and safe for concurrent use.
type Segmenter struct {
	prefixes *prefix.RuleSet
	profile  Profile
	policy   Policy
}

// NewSegmenter creates a rule-based sentence segmenter. prefixes may be nil,
// switching off the prefix rule.
func NewSegmenter(prefixes *prefix.RuleSet, opts ...Option) *Segmenter {
	c := configure(prefixes, opts)
	tracer().Debugf("new segmenter for %q, precedence %v", c.profile.Language, c.policy.Precedence)
	return &Segmenter{prefixes: prefixes, profile: *c.profile, policy: c.policy}
}

// Variant returns segtok.RuleBased.
func (s *Segmenter) Variant() string {
	return segtok.RuleBased
}

// Segment splits a paragraph into sentences. Spans are code-point offsets
// into paragraph; leading and trailing whitespace is not part of any sentence.
//
// Interface segtok.SentenceSegmenter
func (s *Segmenter) Segment(paragraph string) ([]segtok.Span, error) {
	text := []rune(paragraph)
	n := len(text)
	var spans []segtok.Span
	start := skipSpace(text, 0)
	i := start
	for i < n {
		if !s.profile.isTerminator(text[i]) {
			i++
			continue
		}
		runStart := i
		runEnd := i
		for runEnd < n && s.profile.isTerminator(text[runEnd]) {
			runEnd++
		}
		j := runEnd
		for j < n && isClosingPunct(text[j]) {
			j++
		}
		if j < n && !unicode.IsSpace(text[j]) {
			i = j // terminator inside a word, e.g. "3.14" or "e.g"
			continue
		}
		k := skipSpace(text, j)
		if k < n && !s.startsSentence(text[k]) {
			i = k
			continue
		}
		if s.decide(text, start, runStart, runEnd, j, k) == suppress {
			tracer().Debugf("suppressed break at %d", j)
			i = k
			continue
		}
		spans = append(spans, segtok.Span{Start: start, End: j})
		start, i = k, k
	}
	if start < n {
		end := n
		for end > start && unicode.IsSpace(text[end-1]) {
			end--
		}
		if end > start {
			spans = append(spans, segtok.Span{Start: start, End: end})
		}
	}
	return spans, nil
}

// startsSentence is true for code-points which may open a sentence.
// Letters of case-less scripts qualify as well as digits.
func (s *Segmenter) startsSentence(r rune) bool {
	switch {
	case unicode.IsLetter(r):
		return !unicode.IsLower(r)
	case unicode.IsDigit(r):
		return true
	}
	return isOpeningPunct(r) || s.profile.isOpener(r)
}

// decide applies the rules in order of precedence to a candidate boundary.
// The terminator run is text[runStart:runEnd], the whitespace gap is text[j:k].
func (s *Segmenter) decide(text []rune, start, runStart, runEnd, j, k int) decision {
	word := precedingWord(text, start, runStart)
	singlePeriod := runEnd-runStart == 1 && text[runStart] == '.'
	for _, rule := range s.policy.Precedence {
		d := undecided
		switch rule {
		case RuleBlankLine:
			if isBlankLine(text[j:k]) {
				d = doBreak
			}
		case RulePrefix:
			if singlePeriod {
				d = s.prefixRule(word, text, k)
			}
		case RuleInitial:
			if singlePeriod && s.profile.Initials && isInitial(word) {
				d = suppress
			}
		case RuleAcronym:
			if singlePeriod && isAcronym(word) {
				d = suppress
			}
		}
		if d != undecided {
			tracer().Debugf("rule %s decided for %q", rule, string(word))
			return d
		}
	}
	return doBreak
}

func (s *Segmenter) prefixRule(word []rune, text []rune, k int) decision {
	if len(word) == 0 {
		return undecided
	}
	e, ok := s.prefixes.Lookup(string(word))
	if !ok {
		return undecided
	}
	if !e.NumericException || isNumericToken(text, k) {
		return suppress
	}
	return doBreak
}

// --- Helpers ---------------------------------------------------------------

func skipSpace(text []rune, i int) int {
	for i < len(text) && unicode.IsSpace(text[i]) {
		i++
	}
	return i
}

// precedingWord returns the whitespace-delimited word ending at end,
// without leading opening punctuation.
func precedingWord(text []rune, start, end int) []rune {
	ws := end
	for ws > start && !unicode.IsSpace(text[ws-1]) {
		ws--
	}
	for ws < end && !isWordRune(text[ws]) {
		ws++
	}
	return text[ws:end]
}

func isBlankLine(gap []rune) bool {
	nl := 0
	for _, r := range gap {
		if r == '\n' {
			nl++
		}
	}
	return nl >= 2
}

// isInitial is true for a single upper-case letter.
func isInitial(word []rune) bool {
	return len(word) == 1 && unicode.IsUpper(word[0])
}

// isAcronym is true for words like "U.S" or "e.g", where letters alternate
// with periods. The final period is not part of word.
func isAcronym(word []rune) bool {
	if len(word) < 3 || len(word)%2 == 0 {
		return false
	}
	for i, r := range word {
		if i%2 == 0 && !unicode.IsLetter(r) {
			return false
		} else if i%2 == 1 && r != '.' {
			return false
		}
	}
	return true
}

// isNumericToken is true if the whitespace-delimited token at text[k:]
// consists of digits, ignoring trailing punctuation.
func isNumericToken(text []rune, k int) bool {
	end := k
	for end < len(text) && !unicode.IsSpace(text[end]) {
		end++
	}
	for end > k && unicode.IsPunct(text[end-1]) {
		end--
	}
	if end == k {
		return false
	}
	for _, r := range text[k:end] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
