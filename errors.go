// errors.go: scan failures and caret-snippet rendering
//
// What this file does
// -------------------
// There are exactly two ways a scan can fail, both terminal:
//
//   - UnmatchedInput: the unconsumed input is non-empty and no rule matches
//     at the current position. The error carries the offending rune and its
//     location.
//   - ActionFailed: a rule matched, but its action returned an error. The
//     action's error is wrapped verbatim and reachable through Unwrap.
//
// Skipped matches are not errors; they are the designed mechanism for
// discarding whitespace and comments.
//
// For user-facing output, WrapErrorWithSource turns a *ScanError into a
// Python-style snippet with numbered context lines and a caret under the
// offending column:
//
//	SCAN ERROR at 2:5: unexpected character '@'
//
//	   1 | let x = 1
//	   2 | let @ = 2
//	       |     ^
//	   3 | end
//
// Any other error is returned unchanged.
package lexr

import (
	"fmt"
	"strings"
)

// ErrKind distinguishes the two fatal scan failures.
type ErrKind int

const (
	UnmatchedInput ErrKind = iota
	ActionFailed
)

func (k ErrKind) String() string {
	switch k {
	case UnmatchedInput:
		return "UnmatchedInput"
	case ActionFailed:
		return "ActionFailed"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// ScanError is the terminal failure of a scan. Line and Col are 1-based;
// Byte is the 0-based offset of the failure. Char is set only for
// UnmatchedInput.
type ScanError struct {
	Kind ErrKind
	Char rune
	Line int
	Col  int
	Byte int
	Msg  string

	cause error // the action's error, for ActionFailed
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("SCAN ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Unwrap exposes the action's own error for errors.Is / errors.As.
func (e *ScanError) Unwrap() error { return e.cause }

func unmatchedError(ch rune, line, col, byteOff int) *ScanError {
	return &ScanError{
		Kind: UnmatchedInput,
		Char: ch,
		Line: line,
		Col:  col,
		Byte: byteOff,
		Msg:  fmt.Sprintf("unexpected character %q", ch),
	}
}

func actionError(cause error, loc SrcLoc) *ScanError {
	// An action that delegated to a sub-engine hands us that engine's own
	// failure; propagate it verbatim instead of wrapping it again.
	if se, ok := cause.(*ScanError); ok {
		return se
	}
	return &ScanError{
		Kind:  ActionFailed,
		Line:  loc.StartLine,
		Col:   loc.StartCol,
		Byte:  loc.StartByte,
		Msg:   cause.Error(),
		cause: cause,
	}
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src when err is a *ScanError; every other error is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name ("in <name>")
// in the header, for multi-file embedders.
func WrapErrorWithName(err error, srcName string, src string) error {
	se, ok := err.(*ScanError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", snippet(src, "SCAN ERROR", srcName, se.Line, se.Col, se.Msg))
}

// snippet builds the numbered context block with a caret. Coordinates are
// 1-based and clamped to the source bounds so rendering never panics on
// out-of-range positions.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
