// Package toy defines a small demonstration tokenizer: numbers, words,
// string literals with escapes, single-rune symbols, hash-delimited and line
// comments. The CLI uses it as its default grammar and the tests use it as
// an end-to-end workout for the engine.
//
// String literals show the composable side of the engine: the opening quote
// is matched by the host grammar, whose action then hands the shared cursor
// to a sub-tokenizer that consumes the body and the closing quote before
// returning control.
package toy

import (
	"fmt"
	"strconv"
	"strings"

	lexr "github.com/JENebel/lexr-parsr"
)

// Kind classifies toy tokens.
type Kind int

const (
	Number Kind = iota
	Word
	Str
	Symbol
	EndOfFile
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Word:
		return "Word"
	case Str:
		return "Str"
	case Symbol:
		return "Symbol"
	case EndOfFile:
		return "EndOfFile"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one toy-language token. Num is set for Number tokens; Text holds
// the word, decoded string body, or symbol.
type Token struct {
	Kind Kind
	Text string
	Num  int64
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", t.Num)
	case Str:
		return fmt.Sprintf("Str(%s)", strconv.Quote(t.Text))
	case EndOfFile:
		return "EndOfFile"
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}

const word = `[a-zA-Z_][a-zA-Z0-9_]*`

// Tokenizer is the toy grammar. Declaration order is the priority order:
// comments before symbols so "//" beats "/", keywords would go before the
// word rule if the toy language had any.
var Tokenizer = lexr.MustCompile(lexr.Rules[Token]{
	lexr.Whitespace(lexr.Skip[Token]),
	lexr.Pattern(`//[^\n]*`, lexr.Skip[Token]),
	lexr.Seq([]string{`#`, word, `#`}, lexr.Skip[Token]),
	lexr.Pattern(`[0-9]+`, parseNumber),
	lexr.Pattern(word, lexr.EmitText(func(s string) Token {
		return Token{Kind: Word, Text: s}
	})),
	lexr.Pattern(`"`, scanString),
	lexr.Pattern(`[+\-*/=(){}<>,;:.]`, lexr.EmitText(func(s string) Token {
		return Token{Kind: Symbol, Text: s}
	})),
	lexr.EOF(lexr.Emit(Token{Kind: EndOfFile})),
})

// Lex tokenizes src with the toy grammar.
func Lex(src string) *lexr.Stream[Token] { return Tokenizer.Lex(src) }

func parseNumber(m lexr.Match) (Token, bool, error) {
	n, err := strconv.ParseInt(m.Text, 10, 64)
	if err != nil {
		return Token{}, false, fmt.Errorf("integer literal %s out of range", m.Text)
	}
	return Token{Kind: Number, Num: n}, true, nil
}

// strPart is what the string sub-tokenizer emits: decoded body chunks, then
// a final done marker for the closing quote.
type strPart struct {
	text string
	done bool
}

var strTokenizer = lexr.MustCompile(lexr.Rules[strPart]{
	lexr.Pattern(`"`, lexr.Emit(strPart{done: true})),
	lexr.Pattern(`\\n`, lexr.Emit(strPart{text: "\n"})),
	lexr.Pattern(`\\t`, lexr.Emit(strPart{text: "\t"})),
	lexr.Pattern(`\\"`, lexr.Emit(strPart{text: `"`})),
	lexr.Pattern(`\\\\`, lexr.Emit(strPart{text: `\`})),
	lexr.Pattern(`(?s)\\.`, func(m lexr.Match) (strPart, bool, error) {
		return strPart{}, false, fmt.Errorf("invalid escape sequence %q", m.Text)
	}),
	lexr.Pattern(`[^"\\]+`, lexr.EmitText(func(s string) strPart {
		return strPart{text: s}
	})),
	lexr.EOF(func(lexr.Match) (strPart, bool, error) {
		return strPart{}, false, fmt.Errorf("string literal not terminated")
	}),
})

// scanString fires on the opening quote and delegates the rest of the
// literal to strTokenizer over the shared cursor. When it returns, the host
// engine resumes scanning right after the closing quote.
func scanString(m lexr.Match) (Token, bool, error) {
	sub := strTokenizer.Engine(m.Cursor)
	var b strings.Builder
	for {
		st := sub.Step()
		switch st.Kind {
		case lexr.StepEmitted:
			if st.Token.done {
				return Token{Kind: Str, Text: b.String()}, true, nil
			}
			b.WriteString(st.Token.text)
		case lexr.StepSkipped:
			continue
		case lexr.StepFailed:
			return Token{}, false, st.Err
		default:
			return Token{}, false, fmt.Errorf("string literal not terminated")
		}
	}
}
