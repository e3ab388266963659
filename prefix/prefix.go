/*
Package prefix holds per-language lists of non-breaking prefixes.

A non-breaking prefix is a token (usually an abbreviation) after which a
period does not end a sentence, as in "Dr. Smith" or "Prof. Hawking".
Some prefixes only inhibit a break if a number follows: "No. 5" is not
the end of a sentence, but "I said no. Then…" is. These prefixes carry
a NumericException flag.

Prefix lists use the format of the Moses SMT toolkit: one prefix per line,
comments start with '#', and a trailing marker "#NUMERIC_ONLY#" sets the
numeric exception:

   Dr
   No #NUMERIC_ONLY#

Lists for English and Spanish are embedded into this package. Rule sets are
loaded once and are read-only afterwards; they may be shared freely between
goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prefix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtok"
)

// tracer traces to segtok.prefix .
func tracer() tracing.Trace {
	return tracing.Select("segtok.prefix")
}

// numericOnly is the marker for prefixes with a numeric exception.
const numericOnly = "#NUMERIC_ONLY#"

// PrefixEntry is a non-breaking prefix. If NumericException is set,
// the prefix inhibits a sentence break only if the following token is
// numeric.
type PrefixEntry struct {
	Prefix           string
	NumericException bool
}

// RuleSet is an immutable table of non-breaking prefixes for a language.
type RuleSet struct {
	lang  string
	table *treemap.Map // string → PrefixEntry, sorted for listings
}

// NewRuleSet creates a rule set from a list of entries. Later entries
// replace earlier ones with the same prefix.
func NewRuleSet(lang string, entries ...PrefixEntry) *RuleSet {
	rs := &RuleSet{lang: lang, table: treemap.NewWithStringComparator()}
	for _, e := range entries {
		rs.table.Put(e.Prefix, e)
	}
	return rs
}

// Language returns the language code of a rule set.
func (rs *RuleSet) Language() string {
	return rs.lang
}

// Len returns the number of prefixes.
func (rs *RuleSet) Len() int {
	return rs.table.Size()
}

// Lookup finds the entry for a token. A single trailing period of token is
// ignored, i.e. "Dr." and "Dr" find the same entry. Lookup is case-sensitive.
func (rs *RuleSet) Lookup(token string) (PrefixEntry, bool) {
	if rs == nil {
		return PrefixEntry{}, false
	}
	token = strings.TrimSuffix(token, ".")
	if token == "" {
		return PrefixEntry{}, false
	}
	if e, found := rs.table.Get(token); found {
		return e.(PrefixEntry), true
	}
	return PrefixEntry{}, false
}

// Entries returns all entries, sorted by prefix.
func (rs *RuleSet) Entries() []PrefixEntry {
	entries := make([]PrefixEntry, 0, rs.table.Size())
	for _, v := range rs.table.Values() {
		entries = append(entries, v.(PrefixEntry))
	}
	return entries
}

// Parse reads a prefix list in Moses format. Invalid UTF-8 or prefixes
// containing whitespace make the list corrupt; Parse then returns an error
// wrapping segtok.ErrResourceLoad.
func Parse(lang string, r io.Reader) (*RuleSet, error) {
	rs := NewRuleSet(lang)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, corrupt(lang, lineno, "invalid UTF-8")
		}
		entry := PrefixEntry{Prefix: line}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			marker := strings.TrimSpace(line[i:])
			if marker != numericOnly {
				return nil, corrupt(lang, lineno, "unknown marker "+marker)
			}
			entry.Prefix = strings.TrimSpace(line[:i])
			entry.NumericException = true
		}
		if strings.ContainsAny(entry.Prefix, " \t") {
			return nil, corrupt(lang, lineno, "prefix contains whitespace")
		}
		rs.table.Put(entry.Prefix, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, &segtok.LanguageError{Language: lang, Resource: "prefix list",
			Err: fmt.Errorf("%w: %v", segtok.ErrResourceLoad, err)}
	}
	tracer().P("lang", lang).Debugf("parsed %d non-breaking prefixes", rs.Len())
	return rs, nil
}

func corrupt(lang string, lineno int, msg string) error {
	return &segtok.LanguageError{
		Language: lang,
		Resource: "prefix list",
		Err:      fmt.Errorf("%w: line %d: %s", segtok.ErrResourceLoad, lineno, msg),
	}
}
