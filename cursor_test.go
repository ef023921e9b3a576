// cursor_test.go
package lexr

import "testing"

func Test_Cursor_Advance_TracksLineAndCol(t *testing.T) {
	c := NewCursor("ab\ncd")

	endLine, endCol := c.advance(3) // 'a', 'b', '\n'
	if endLine != 1 || endCol != 3 {
		t.Fatalf("end position should be at the last consumed rune: got %d:%d", endLine, endCol)
	}
	if line, col := c.Pos(); line != 2 || col != 1 {
		t.Fatalf("after a newline the cursor must be at 2:1, got %d:%d", line, col)
	}
	if c.ByteIndex() != 3 {
		t.Fatalf("byte index should be 3, got %d", c.ByteIndex())
	}
	if c.Remaining() != "cd" {
		t.Fatalf("remaining should be %q, got %q", "cd", c.Remaining())
	}
}

func Test_Cursor_Advance_ZeroIsNoop(t *testing.T) {
	c := NewCursor("abc")
	c.advance(1)

	endLine, endCol := c.advance(0)
	if endLine != 1 || endCol != 2 {
		t.Fatalf("zero-width end position should equal current position, got %d:%d", endLine, endCol)
	}
	if c.ByteIndex() != 1 {
		t.Fatalf("advance(0) must not consume input")
	}
}

func Test_Cursor_Advance_ColumnsAreRuneCounted(t *testing.T) {
	c := NewCursor("héllo") // 'é' is 2 bytes, 1 column

	c.advance(2)
	if _, col := c.Pos(); col != 3 {
		t.Fatalf("column must advance once per rune, got col %d", col)
	}
	if c.ByteIndex() != 3 {
		t.Fatalf("byte index must advance per byte, got %d", c.ByteIndex())
	}
}

func Test_Cursor_Invariant_ByteIndexPlusRemaining(t *testing.T) {
	src := "one\ntwo three\nfour"
	c := NewCursor(src)
	for _, n := range []int{0, 1, 4, 2, 100} {
		c.advance(n)
		if c.ByteIndex()+len(c.Remaining()) != len(src) {
			t.Fatalf("invariant broken after advance(%d): %d + %d != %d",
				n, c.ByteIndex(), len(c.Remaining()), len(src))
		}
	}
}

func Test_Cursor_Share_AliasesState(t *testing.T) {
	c := NewCursor("abc")
	h := c.Share()

	c.advance(1)
	if h.ByteIndex() != 1 {
		t.Fatalf("shared handle must see advances immediately, got byte index %d", h.ByteIndex())
	}
	h.advance(1)
	if c.ByteIndex() != 2 {
		t.Fatalf("advances through the handle must be visible on the original")
	}
}

func Test_Cursor_MarkExhausted_OnlyWhenEmpty_AndIdempotent(t *testing.T) {
	c := NewCursor("a")
	c.markExhaustedIfEmpty()
	if c.Exhausted() {
		t.Fatalf("cursor with input left must not be exhausted")
	}

	c.advance(1)
	c.markExhaustedIfEmpty()
	if !c.Exhausted() {
		t.Fatalf("cursor must latch exhausted once remaining is empty")
	}
	c.markExhaustedIfEmpty()
	if !c.Exhausted() {
		t.Fatalf("exhausted latch must never reset")
	}
}
