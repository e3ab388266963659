/*
Package spanmap maps offsets on a rewritten working copy of a string back
to offsets in the original string.

Tokenizers often find it convenient to rewrite their input before splitting
it: patterns are replaced by placeholders, punctuation is padded with
spaces, and so on. Splitting the working copy then yields offsets which are
meaningless for the original. Instead of scattering offset arithmetic over
the rewriting rules, rules record their edits with a Builder, and a Mapper
translates working offsets back.

An edit relates a range of the original text to a range of the working
text:

   original:  D r .   S m i t h
              ╰─┬─╯                  Orig = [0:3)
   working:    ⊕      S m i t h
               ╰                     Work = [0:1)

Offsets outside of any edit are shifted by the length difference
accumulated so far. All offsets are code-point offsets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package spanmap

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtok"
)

// tracer traces to segtok.spanmap .
func tracer() tracing.Trace {
	return tracing.Select("segtok.spanmap")
}

// Edit relates a range of the original text to the range of the working
// text which replaced it. Either range may be empty: an empty Orig denotes
// an insertion, an empty Work a deletion.
type Edit struct {
	Orig segtok.Span
	Work segtok.Span
}

func (e Edit) delta() int {
	return e.Work.Len() - e.Orig.Len()
}

// Mapper maps working offsets to original offsets.
// A Mapper is immutable and safe for concurrent use.
type Mapper struct {
	edits []Edit // sorted by Work.Start, non-overlapping
}

// Identity is a Mapper for unchanged text.
var Identity = &Mapper{}

// NewMapper creates a Mapper from a list of edits. Edits have to be
// ordered by position and must not overlap; NewMapper copies them.
func NewMapper(edits []Edit) *Mapper {
	m := &Mapper{edits: make([]Edit, len(edits))}
	copy(m.edits, edits)
	return m
}

// Edits returns a copy of the edits of m.
func (m *Mapper) Edits() []Edit {
	edits := make([]Edit, len(m.edits))
	copy(edits, m.edits)
	return edits
}

// last returns the index of the last edit e with pred(e), or -1.
func (m *Mapper) last(pred func(Edit) bool) int {
	// edits are sorted, therefore pred is monotone (true…true false…false)
	i := sort.Search(len(m.edits), func(i int) bool {
		return !pred(m.edits[i])
	})
	return i - 1
}

// MapStart maps a working offset denoting the start of a range.
// If w is inside an edit, the start of the edit's original range is returned.
func (m *Mapper) MapStart(w int) int {
	i := m.last(func(e Edit) bool { return e.Work.Start <= w })
	if i < 0 {
		return w
	}
	e := m.edits[i]
	if w < e.Work.End {
		return e.Orig.Start
	}
	return e.Orig.End + (w - e.Work.End)
}

// MapEnd maps a working offset denoting the (exclusive) end of a range.
// If the code-point before w is inside an edit, the end of the edit's
// original range is returned.
func (m *Mapper) MapEnd(w int) int {
	i := m.last(func(e Edit) bool { return e.Work.Start < w })
	if i < 0 {
		return w
	}
	e := m.edits[i]
	if w <= e.Work.End {
		return e.Orig.End
	}
	return e.Orig.End + (w - e.Work.End)
}

// Map maps a working range to the original range.
func (m *Mapper) Map(s segtok.Span) segtok.Span {
	return segtok.Span{Start: m.MapStart(s.Start), End: m.MapEnd(s.End)}
}

// --- Chaining -------------------------------------------------------------

// Chain is a sequence of mappers for a sequence of rewriting stages.
// The first mapper maps the first stage's working text to the original,
// the last one maps the final working text to its predecessor.
type Chain []*Mapper

// Map maps a range of the final working text back to the original.
func (c Chain) Map(s segtok.Span) segtok.Span {
	for i := len(c) - 1; i >= 0; i-- {
		s = c[i].Map(s)
	}
	return s
}
