// srcloc.go: source locations of matched spans
package lexr

import "fmt"

// SrcLoc describes where a matched span sits in the original input. Lines and
// columns are 1-based and rune-counted; the byte range is 0-based and
// half-open, [StartByte, EndByte). End coordinates name the position of the
// last consumed rune, so a one-rune match has EndLine/EndCol equal to its
// start, and a zero-width match (end of input) has its end equal to its
// start.
//
// SrcLoc is a pure value: constructed once per match, never mutated.
type SrcLoc struct {
	StartLine, StartCol int
	EndLine, EndCol     int
	StartByte, EndByte  int
}

// String renders the location as "line:col-line:col".
func (l SrcLoc) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", l.StartLine, l.StartCol, l.EndLine, l.EndCol)
}

// Len returns the byte length of the span.
func (l SrcLoc) Len() int { return l.EndByte - l.StartByte }
