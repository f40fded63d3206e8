// Package runes provides a rune-indexed view of a string for the replacement
// engine.
//
// The engine counts positions, pattern lengths and advance amounts in runes,
// while the underlying text stays a plain byte string. Text precomputes the
// byte offset of every rune boundary so that rune-indexed slicing, prefix
// checks and byte/rune offset conversion are cheap and never copy the input
// into a []rune (which would corrupt invalid UTF-8 on the way back out).
package runes

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Text is an immutable rune-indexed view of a string.
//
// Invalid UTF-8 is handled the way the stdlib decoder handles it: each
// invalid byte is a single one-byte unit. All slicing returns the original
// bytes, so copying units out of a Text is lossless even for invalid input.
type Text struct {
	src string
	off []int // off[i] = byte offset of unit i; off[Len()] = len(src)
}

// New builds a rune-indexed view of s.
func New(s string) *Text {
	off := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		off = append(off, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	off = append(off, len(s))
	return &Text{src: s, off: off}
}

// Len returns the number of units (runes) in the text.
func (t *Text) Len() int {
	return len(t.off) - 1
}

// String returns the underlying string.
func (t *Text) String() string {
	return t.src
}

// Slice returns the original bytes of units [i, j).
// Panics if the range is out of bounds, same as native slicing.
func (t *Text) Slice(i, j int) string {
	return t.src[t.off[i]:t.off[j]]
}

// ByteOffset returns the byte offset where unit i starts.
// ByteOffset(Len()) is len of the underlying string.
func (t *Text) ByteOffset(i int) int {
	return t.off[i]
}

// HasPrefix reports whether the text starting at unit i begins with pat.
// The comparison is byte-wise; pat is expected to be a whole-rune string,
// so a match always ends on a unit boundary.
func (t *Text) HasPrefix(i int, pat string) bool {
	return strings.HasPrefix(t.src[t.off[i]:], pat)
}

// CeilUnit returns the smallest unit index whose byte offset is >= b.
// Used to translate a byte-level bound (e.g. from a prefilter) back into
// unit space: all units strictly before the result start below b.
func (t *Text) CeilUnit(b int) int {
	return sort.SearchInts(t.off, b)
}
