package main

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// cleaner removes control and format characters, except tabs and the
// joiners needed by some scripts and emoji sequences. Line and paragraph
// separators become spaces, as lines are joined by readText.
var cleaner = transform.Chain(
	runes.Map(func(r rune) rune {
		if unicode.In(r, unicode.Zl, unicode.Zp) {
			return ' '
		}
		return r
	}),
	runes.Remove(runes.Predicate(isWeird)),
)

func isWeird(r rune) bool {
	switch r {
	case '\t', '\u200c', '\u200d':
		return false
	case unicode.ReplacementChar:
		return true
	}
	return unicode.In(r, unicode.Cc, unicode.Cf, unicode.Co)
}

// cleanLine applies the cleaner to a single line.
func cleanLine(line string) string {
	s, _, err := transform.String(cleaner, line)
	if err != nil {
		return line
	}
	return s
}

// readText reads lines from r, cleans them and joins them with newlines.
// Runs of blank lines are replaced by the paragraph delimiter.
func readText(r io.Reader, delim string) (string, error) {
	if delim == "" {
		delim = "\n\n"
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var sb strings.Builder
	blank := false
	for scanner.Scan() {
		line := cleanLine(scanner.Text())
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if sb.Len() > 0 {
			if blank {
				sb.WriteString(delim)
			} else {
				sb.WriteByte('\n')
			}
		}
		blank = false
		sb.WriteString(line)
	}
	return sb.String(), scanner.Err()
}
