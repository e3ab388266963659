package moses

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/spanmap"
)

// placeholder stands in for a protected region in a working copy.
// It is taken from the private use area, but a working copy never relies on
// its value: protected positions are tracked by marks.
const placeholder = '\uE000'

type protectClass int8

const (
	protURL protectClass = iota
	protEmail
	protNumber
	protAbbrev
)

func (c protectClass) String() string {
	switch c {
	case protURL:
		return "url"
	case protEmail:
		return "email"
	case protNumber:
		return "number"
	}
	return "abbrev"
}

// protection is an entry of the protection table: a region of the sentence
// which must come out as (part of) a single token.
type protection struct {
	orig  segtok.Span
	class protectClass
}

var (
	urlPattern    = regexp.MustCompile(`(?i)\b(?:(?:https?|ftp)://|www\.)[^\s<>"]+`)
	emailPattern  = regexp.MustCompile(`[\p{L}\p{N}._%+\-]+@[\p{L}\p{N}\-]+(?:\.[\p{L}\p{N}\-]+)+`)
	numberPattern = regexp.MustCompile(`\p{N}+(?:[.,:/]\p{N}+)+`)
)

// trailing punctuation which is never part of a URL
const urlTrailer = `.,;:!?)]}'"’”»`

// protect collects the protection table for ws.orig and builds the first
// working copy, with every protected region replaced by a placeholder.
func (t *Tokenizer) protect(ws *workspace, sentence string) {
	var candidates []protection
	inx := spanmap.NewIndex(sentence)
	add := func(class protectClass, locs [][]int, trim string) {
		for _, loc := range locs {
			start, end := inx.Rune(loc[0]), inx.Rune(loc[1])
			for end > start && strings.ContainsRune(trim, ws.orig[end-1]) {
				end--
			}
			if end > start {
				candidates = append(candidates, protection{
					orig:  segtok.Span{Start: start, End: end},
					class: class,
				})
			}
		}
	}
	add(protURL, urlPattern.FindAllStringIndex(sentence, -1), urlTrailer)
	add(protEmail, emailPattern.FindAllStringIndex(sentence, -1), ".")
	add(protNumber, numberPattern.FindAllStringIndex(sentence, -1), "")
	candidates = append(candidates, t.abbreviations(ws.orig)...)
	// earlier first, longer first; then drop overlaps
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].orig, candidates[j].orig
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End > b.End
	})
	end := 0
	for _, c := range candidates {
		if c.orig.Start < end {
			continue
		}
		ws.protected = append(ws.protected, c)
		end = c.orig.End
	}
	// build the first working copy
	next := 0
	for i := 0; i < len(ws.orig); {
		if next < len(ws.protected) && ws.protected[next].orig.Start == i {
			p := ws.protected[next]
			tracer().Debugf("protect %s %q", p.class, string(ws.orig[p.orig.Start:p.orig.End]))
			ws.pass1.Substitute(p.orig.Len(), placeholder)
			ws.marks1 = append(ws.marks1, next)
			i = p.orig.End
			next++
			continue
		}
		ws.pass1.Copy(ws.orig[i])
		ws.marks1 = append(ws.marks1, -1)
		i++
	}
}

// abbreviations finds words which are a non-breaking prefix followed by
// a period, as in "(Dr." or "etc.,". The protected region covers the
// prefix and its period only.
func (t *Tokenizer) abbreviations(text []rune) []protection {
	if t.prefixes == nil {
		return nil
	}
	var abbrevs []protection
	for i := 0; i < len(text); {
		if unicode.IsSpace(text[i]) {
			i++
			continue
		}
		ws := i
		for i < len(text) && !unicode.IsSpace(text[i]) {
			i++
		}
		start, end := ws, i
		for start < end && !isWordRune(text[start]) {
			start++
		}
		for end > start && text[end-1] != '.' && !isWordRune(text[end-1]) {
			end--
		}
		if end-start < 2 || text[end-1] != '.' || text[end-2] == '.' {
			continue
		}
		if _, ok := t.prefixes.Lookup(string(text[start : end-1])); ok {
			abbrevs = append(abbrevs, protection{
				orig:  segtok.Span{Start: start, End: end},
				class: protAbbrev,
			})
		}
	}
	return abbrevs
}
