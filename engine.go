// engine.go: the scanning engine
//
// What this file does
// -------------------
// Engine drives one step of tokenization at a time. Each Step consults the
// compiled rules against the cursor's unconsumed suffix, advances the cursor
// over the first match, runs that rule's action, and classifies the outcome:
//
//	StepEmitted    a token was produced, with its location
//	StepSkipped    a rule matched but its action discarded the text;
//	               the caller should immediately step again
//	StepExhausted  the input is done; repeated calls keep returning this
//	StepFailed     unmatched input or a failing action; terminal and sticky
//
// Priority semantics
// ------------------
// Rules are tried strictly in declaration order and the FIRST rule whose
// anchored pattern matches wins, regardless of how long any later rule's
// match would have been. This is deliberate and load-bearing: "first match
// by declaration order" is the contract, not longest-match. A grammar that
// wants keywords to beat identifiers must declare the keyword rules first.
//
// End-of-input handshake
// ----------------------
// The cursor's exhausted latch makes an EOF rule fire exactly once. On the
// step where the suffix first becomes empty the latch is set and the rules
// are still scanned, so an EOF rule can match on that very step. Every step
// after that sees the latch already set and returns StepExhausted before
// touching the rules.
//
// Failure is terminal. The engine never resynchronizes or skips ahead: one
// unmatched rune, or one action error, ends the scan, and the engine keeps
// reporting that same failure on every later step.
package lexr

import "unicode/utf8"

// StepKind classifies the outcome of one Engine.Step call.
type StepKind int

const (
	StepEmitted StepKind = iota
	StepSkipped
	StepExhausted
	StepFailed
)

// Step is the result of one scanning step. Token and Loc are meaningful only
// for StepEmitted; Err only for StepFailed.
type Step[T any] struct {
	Kind  StepKind
	Token T
	Loc   SrcLoc
	Err   *ScanError
}

// Engine scans one cursor with one compiled grammar. The grammar is shared
// and immutable; the cursor may additionally be shared with other engines
// (composable tokenizers), in which case the caller sequences their steps.
type Engine[T any] struct {
	rules *Ruleset[T]
	cur   *Cursor
	fail  *ScanError
}

// Cursor returns the engine's cursor handle.
func (e *Engine[T]) Cursor() *Cursor { return e.cur }

// Step performs one match-advance-dispatch cycle. See the file header for
// the outcome protocol.
func (e *Engine[T]) Step() Step[T] {
	if e.fail != nil {
		return Step[T]{Kind: StepFailed, Err: e.fail}
	}
	if e.cur.exhausted {
		return Step[T]{Kind: StepExhausted}
	}
	// Latch end of input now so an EOF rule can match on this very step.
	e.cur.markExhaustedIfEmpty()

	rem := e.cur.Remaining()
	for i := range e.rules.rules {
		r := &e.rules.rules[i]

		var byteLen int
		switch r.kind {
		case kindEOF:
			if !e.cur.exhausted {
				continue
			}
			byteLen = 0
		default:
			m := r.re.FindStringIndex(rem)
			if m == nil {
				continue
			}
			byteLen = m[1]
		}

		text := rem[:byteLen]
		startLine, startCol := e.cur.Pos()
		startByte := e.cur.ByteIndex()
		endLine, endCol := e.cur.advance(utf8.RuneCountInString(text))
		loc := SrcLoc{
			StartLine: startLine, StartCol: startCol,
			EndLine: endLine, EndCol: endCol,
			StartByte: startByte, EndByte: e.cur.ByteIndex(),
		}

		tok, emit, err := r.action(Match{Text: text, Loc: loc, Cursor: e.cur.Share()})
		if err != nil {
			e.fail = actionError(err, loc)
			return Step[T]{Kind: StepFailed, Err: e.fail}
		}
		if !emit {
			return Step[T]{Kind: StepSkipped}
		}
		return Step[T]{Kind: StepEmitted, Token: tok, Loc: loc}
	}

	if e.cur.exhausted {
		// Empty input and no EOF rule fired: a clean end.
		return Step[T]{Kind: StepExhausted}
	}

	ch, _ := utf8.DecodeRuneInString(rem)
	line, col := e.cur.Pos()
	e.fail = unmatchedError(ch, line, col, e.cur.ByteIndex())
	return Step[T]{Kind: StepFailed, Err: e.fail}
}
