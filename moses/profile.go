package moses

import (
	"strings"
	"unicode"
)

// Profile holds the language specific parts of segmentation and tokenization.
type Profile struct {
	Language     string
	Terminators  string       // sentence-final punctuation
	Openers      string       // punctuation opening a sentence, e.g. '¿'
	Initials     bool         // treat "A." as an initial
	SplitHyphens bool         // separate hyphens from words
	Contractions Contractions // apostrophe rules
}

// Contractions tells the tokenizer when an apostrophe belongs to a word.
// Apostrophes between two letters always do ("don't", "l'agua").
type Contractions struct {
	Leading          []string // lower-case words starting with an apostrophe, e.g. "'tis"
	PossessivePlural bool     // trailing apostrophe after an 's', as in "players'"
}

var profiles = map[string]Profile{
	"en": {
		Language:    "en",
		Terminators: ".!?…",
		Initials:    true,
		Contractions: Contractions{
			Leading:          []string{"'tis", "'twas", "'em", "'cause", "'til", "'n'"},
			PossessivePlural: true,
		},
	},
	"es": {
		Language:    "es",
		Terminators: ".!?…",
		Openers:     "¿¡",
		Initials:    true,
	},
}

// ProfileFor returns the profile for a (base) language. Unknown languages
// get a neutral profile without contraction rules.
func ProfileFor(lang string) Profile {
	if p, ok := profiles[lang]; ok {
		return p
	}
	return Profile{
		Language:    lang,
		Terminators: ".!?…",
		Initials:    true,
	}
}

func (p *Profile) isTerminator(r rune) bool {
	return strings.ContainsRune(p.Terminators, r)
}

func (p *Profile) isOpener(r rune) bool {
	return strings.ContainsRune(p.Openers, r)
}

// leadingContraction returns the length of a leading contraction at the
// start of word, or 0.
func (p *Profile) leadingContraction(word []rune) int {
	for _, c := range p.Contractions.Leading {
		crs := []rune(c)
		if len(word) < len(crs) {
			continue
		}
		if !strings.EqualFold(string(word[:len(crs)]), c) && !strings.EqualFold(normalizeApostrophe(word[:len(crs)]), c) {
			continue
		}
		if len(word) > len(crs) && isWordRune(word[len(crs)]) {
			continue // e.g. "'emma" is not "'em"
		}
		return len(crs)
	}
	return 0
}

func normalizeApostrophe(word []rune) string {
	var sb strings.Builder
	for _, r := range word {
		if isApostrophe(r) {
			r = '\''
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// --- Character classes ----------------------------------------------------

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isOpeningPunct(r rune) bool {
	return unicode.In(r, unicode.Ps, unicode.Pi) || r == '"' || r == '\''
}

func isClosingPunct(r rune) bool {
	return unicode.In(r, unicode.Pe, unicode.Pf) || r == '"' || r == '\''
}
