package spanmap

import "github.com/npillmayer/segtok"

// Builder constructs a working copy of a text from left to right and
// records every edit on the way. Clients walk the original text and call
// Copy for code-points to keep, Substitute for code-points to replace and
// Insert for code-points which have no counterpart in the original.
//
// The zero value is ready to use.
type Builder struct {
	work  []rune
	edits []Edit
	orig  int // number of original code-points consumed
}

// Reset clears a builder, re-using buf as storage for the working copy.
func (b *Builder) Reset(buf []rune) {
	b.work = buf[:0]
	b.edits = b.edits[:0]
	b.orig = 0
}

// Copy appends code-points unchanged.
func (b *Builder) Copy(r ...rune) {
	b.work = append(b.work, r...)
	b.orig += len(r)
}

// Substitute replaces the next n original code-points by repl.
func (b *Builder) Substitute(n int, repl ...rune) {
	e := Edit{
		Orig: segtok.Span{Start: b.orig, End: b.orig + n},
		Work: segtok.Span{Start: len(b.work), End: len(b.work) + len(repl)},
	}
	b.work = append(b.work, repl...)
	b.orig += n
	b.record(e, false)
}

// Insert appends code-points without consuming original ones.
func (b *Builder) Insert(r ...rune) {
	if len(r) == 0 {
		return
	}
	e := Edit{
		Orig: segtok.Span{Start: b.orig, End: b.orig},
		Work: segtok.Span{Start: len(b.work), End: len(b.work) + len(r)},
	}
	b.work = append(b.work, r...)
	b.record(e, true)
}

// record appends an edit. Adjacent insertions are merged into one edit.
func (b *Builder) record(e Edit, mergeable bool) {
	if l := len(b.edits); mergeable && l > 0 {
		prev := &b.edits[l-1]
		if prev.Orig.Len() == 0 && prev.Orig.End == e.Orig.Start && prev.Work.End == e.Work.Start {
			prev.Work.End = e.Work.End
			return
		}
	}
	tracer().Debugf("edit %v -> %v", e.Orig, e.Work)
	b.edits = append(b.edits, e)
}

// Len returns the length of the working copy so far.
func (b *Builder) Len() int {
	return len(b.work)
}

// Last returns the last code-point of the working copy, or 0.
func (b *Builder) Last() rune {
	if len(b.work) == 0 {
		return 0
	}
	return b.work[len(b.work)-1]
}

// Runes returns the working copy. The slice is owned by the builder and
// is valid until the next call to Reset.
func (b *Builder) Runes() []rune {
	return b.work
}

// Consumed returns the number of original code-points consumed so far.
func (b *Builder) Consumed() int {
	return b.orig
}

// Mapper returns a mapper for the edits recorded so far.
// The mapper does not share memory with the builder.
func (b *Builder) Mapper() *Mapper {
	if len(b.edits) == 0 {
		return Identity
	}
	return NewMapper(b.edits)
}
