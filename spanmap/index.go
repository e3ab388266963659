package spanmap

// Index converts byte offsets of a Go string into code-point offsets.
// Regular expressions and strings.Index report byte positions, whereas
// spans are measured in code-points.
type Index struct {
	runeAt []int // runeAt[b] = code-point offset of byte b; len = len(s)+1
}

// NewIndex creates an index for s.
func NewIndex(s string) *Index {
	inx := &Index{runeAt: make([]int, len(s)+1)}
	n, prev, i := 0, 0, 0
	for b := range s {
		for ; i < b; i++ { // continuation bytes of the previous code-point
			inx.runeAt[i] = prev
		}
		inx.runeAt[b] = n
		prev, i = n, b+1
		n++
	}
	for ; i < len(s); i++ {
		inx.runeAt[i] = prev
	}
	inx.runeAt[len(s)] = n
	return inx
}

// Rune returns the code-point offset for byte offset b.
// Offsets beyond the end of the string are clamped.
func (inx *Index) Rune(b int) int {
	if b < 0 {
		return 0
	}
	if b >= len(inx.runeAt) {
		return inx.runeAt[len(inx.runeAt)-1]
	}
	return inx.runeAt[b]
}

// Len returns the length of the indexed string in code-points.
func (inx *Index) Len() int {
	return inx.runeAt[len(inx.runeAt)-1]
}
