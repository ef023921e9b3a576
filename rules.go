// rules.go: rule declaration and one-shot pattern compilation
//
// What this file does
// -------------------
// A tokenizer grammar is an ordered list of rules, each pairing a pattern
// with an action. Patterns come in two flavors:
//
//   - user patterns: one or more regexp fragments, concatenated and compiled
//     anchored, so a match must begin exactly at the current scan position;
//   - sentinels: Wildcard (any single rune, newline included), Whitespace
//     (one whitespace rune), and EOF (zero-width, succeeds only after the
//     cursor's end-of-input latch is set).
//
// Rule order is the priority order. The engine takes the first rule that
// matches at the current position, never the longest match. Callers encode
// precedence (keyword before identifier, "==" before "=") purely by
// declaring rules in the right order.
//
// Compile turns a Rules declaration into an immutable Ruleset. All patterns
// are compiled exactly once, up front; a malformed pattern is a construction
// error, never a scan-time surprise. A Ruleset is read-only afterwards and
// safe to share across engines and goroutines.
package lexr

import (
	"fmt"
	"regexp"
	"strings"
)

// Match is what a fired rule's action receives: the matched text, its
// location, and a shared handle on the cursor. The handle lets a composable
// action hand the scan over to a sub-tokenizer mid-stream; plain actions can
// ignore it.
type Match struct {
	Text   string
	Loc    SrcLoc
	Cursor *Cursor
}

// Action decides what a matched rule produces. Returning emit == false
// discards the match without producing a token (whitespace, comments).
// Returning a non-nil error aborts the whole scan.
type Action[T any] func(m Match) (tok T, emit bool, err error)

// Skip is the action that discards every match.
func Skip[T any](Match) (T, bool, error) {
	var zero T
	return zero, false, nil
}

// Emit returns an action that always produces the same token.
func Emit[T any](tok T) Action[T] {
	return func(Match) (T, bool, error) { return tok, true, nil }
}

// EmitText returns an action that builds a token from the matched text.
func EmitText[T any](build func(text string) T) Action[T] {
	return func(m Match) (T, bool, error) { return build(m.Text), true, nil }
}

type ruleKind int

const (
	kindPattern ruleKind = iota
	kindWildcard
	kindEOF
	kindWhitespace
)

// Rule is one (pattern, action) entry. Build rules with the Pattern, Seq,
// Wildcard, Whitespace and EOF constructors; the zero Rule is invalid.
type Rule[T any] struct {
	kind      ruleKind
	fragments []string
	action    Action[T]
}

// Rules is an ordered grammar declaration. Earlier entries win.
type Rules[T any] []Rule[T]

// Pattern declares a rule from a single regexp fragment.
func Pattern[T any](pattern string, action Action[T]) Rule[T] {
	return Rule[T]{kind: kindPattern, fragments: []string{pattern}, action: action}
}

// Seq declares a rule whose pattern is the concatenation of several regexp
// fragments, letting fragments be reused across rules.
func Seq[T any](fragments []string, action Action[T]) Rule[T] {
	return Rule[T]{kind: kindPattern, fragments: fragments, action: action}
}

// Wildcard declares a rule matching any single rune, newline included.
func Wildcard[T any](action Action[T]) Rule[T] {
	return Rule[T]{kind: kindWildcard, action: action}
}

// Whitespace declares a rule matching one whitespace rune (space, tab,
// carriage return or newline).
func Whitespace[T any](action Action[T]) Rule[T] {
	return Rule[T]{kind: kindWhitespace, action: action}
}

// EOF declares a zero-width rule that succeeds exactly once, after the input
// has been fully consumed.
func EOF[T any](action Action[T]) Rule[T] {
	return Rule[T]{kind: kindEOF, action: action}
}

// compiledRule pairs a ready matcher with its action. re is nil for EOF
// rules, which match on the cursor latch instead of on text.
type compiledRule[T any] struct {
	kind   ruleKind
	re     *regexp.Regexp
	action Action[T]
}

// Ruleset is a compiled, immutable grammar. One Ruleset can drive any number
// of engines, concurrently or not; only cursors carry mutable state.
type Ruleset[T any] struct {
	rules []compiledRule[T]
}

var (
	wildcardRe   = regexp.MustCompile(`(?s)\A.`)
	whitespaceRe = regexp.MustCompile(`\A[ \t\r\n]`)
)

// Compile compiles every rule's pattern and returns the resulting Ruleset.
// Each user pattern is anchored by wrapping the concatenated fragments in
// `\A(?:...)`, so matching starts exactly at the scan position. Compilation
// happens here and only here; scanning never recompiles.
func Compile[T any](rules Rules[T]) (*Ruleset[T], error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexr: empty rule list")
	}
	rs := &Ruleset[T]{rules: make([]compiledRule[T], 0, len(rules))}
	for i, r := range rules {
		if r.action == nil {
			return nil, fmt.Errorf("lexr: rule %d has no action", i)
		}
		cr := compiledRule[T]{kind: r.kind, action: r.action}
		switch r.kind {
		case kindPattern:
			if len(r.fragments) == 0 {
				return nil, fmt.Errorf("lexr: rule %d has no pattern", i)
			}
			pat := `\A(?:` + strings.Join(r.fragments, "") + `)`
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, fmt.Errorf("lexr: rule %d: %w", i, err)
			}
			cr.re = re
		case kindWildcard:
			cr.re = wildcardRe
		case kindWhitespace:
			cr.re = whitespaceRe
		case kindEOF:
			// no matcher; succeeds on the cursor latch
		}
		rs.rules = append(rs.rules, cr)
	}
	return rs, nil
}

// MustCompile is Compile for grammars known good at program start; it panics
// on a compilation error.
func MustCompile[T any](rules Rules[T]) *Ruleset[T] {
	rs, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return rs
}

// Engine returns a scanning engine over cur using this grammar. Several
// engines may share one cursor (see Cursor.Share); they then take turns
// advancing the same position.
func (rs *Ruleset[T]) Engine(cur *Cursor) *Engine[T] {
	return &Engine[T]{rules: rs, cur: cur}
}

// Lex is the common case: a fresh cursor over src, one engine, wrapped in a
// Stream for iteration.
func (rs *Ruleset[T]) Lex(src string) *Stream[T] {
	return NewStream(rs.Engine(NewCursor(src)))
}
