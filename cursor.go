// cursor.go: position bookkeeping over the input text
//
// A Cursor owns the scan position within one input string: the byte offset of
// the unconsumed suffix, the 1-based line/column of the next rune, and an
// "exhausted" latch that flips once the suffix becomes empty. The latch is
// what lets an end-of-input rule fire exactly once (see engine.go).
//
// Columns are counted in runes, not bytes, so multi-byte characters advance
// the column by exactly one. Lines increment on every consumed '\n', which
// also resets the column to 1.
//
// In the simple case an Engine exclusively owns its Cursor. For composable
// tokenizers, Share hands out an aliasing handle so several engines can take
// turns advancing the same position. Handles are confined to one goroutine:
// nothing here locks, callers must sequence all operations on a shared cursor
// from a single control thread.
package lexr

import "unicode/utf8"

// Cursor tracks the scan position over an input string.
type Cursor struct {
	src       string // full original input, never mutated
	byteIndex int    // byte offset of the unconsumed suffix within src
	line      int    // 1-based line of the next unconsumed rune
	col       int    // 1-based column of the next unconsumed rune
	exhausted bool   // latched once the suffix becomes empty
}

// NewCursor returns a cursor positioned at the very start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, line: 1, col: 1}
}

// Remaining returns the unconsumed suffix of the input. No copy is made.
func (c *Cursor) Remaining() string { return c.src[c.byteIndex:] }

// Source returns the full original input.
func (c *Cursor) Source() string { return c.src }

// ByteIndex returns the byte offset of the unconsumed suffix, 0-based.
// The invariant ByteIndex() + len(Remaining()) == len(Source()) always holds.
func (c *Cursor) ByteIndex() int { return c.byteIndex }

// Pos returns the 1-based line and column of the next unconsumed rune.
func (c *Cursor) Pos() (line, col int) { return c.line, c.col }

// Exhausted reports whether the end-of-input latch has been set.
func (c *Cursor) Exhausted() bool { return c.exhausted }

// Share returns a handle aliasing this cursor's state. Every advance through
// one handle is immediately visible through all others; there is no snapshot.
// All handles must be driven from the same goroutine, alternately, never
// concurrently.
func (c *Cursor) Share() *Cursor { return c }

// advance consumes exactly nChars runes, updating the byte index, line and
// column per rune. It reports the line/column at the last consumed rune; for
// nChars == 0 the current position is returned unchanged, which is what a
// zero-width match wants for its end position.
//
// Callers must pass the rune count of a successful match; overrunning the
// remaining input stops silently at the end.
func (c *Cursor) advance(nChars int) (endLine, endCol int) {
	endLine, endCol = c.line, c.col
	for n := 0; n < nChars; n++ {
		r, size := utf8.DecodeRuneInString(c.src[c.byteIndex:])
		if size == 0 {
			break
		}
		endLine, endCol = c.line, c.col
		c.byteIndex += size
		if r == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
	return endLine, endCol
}

// markExhaustedIfEmpty sets the end-of-input latch the first time the
// unconsumed suffix is empty. Idempotent; the latch never resets.
func (c *Cursor) markExhaustedIfEmpty() {
	if c.byteIndex >= len(c.src) {
		c.exhausted = true
	}
}
