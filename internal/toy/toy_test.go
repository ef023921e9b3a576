// toy_test.go
package toy

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	lexr "github.com/JENebel/lexr-parsr"
)

func kinds(lxs []lexr.Lexeme[Token]) []Kind {
	out := make([]Kind, 0, len(lxs))
	for _, lx := range lxs {
		out = append(out, lx.Token.Kind)
	}
	return out
}

func Test_Toy_Program_Tokenizes(t *testing.T) {
	src := "let x = 42 // init\nprint(\"hi\\n\") #note# done"

	lxs, err := Lex(src).Collect()
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	want := []Kind{
		Word, Word, Symbol, Number,
		Word, Symbol, Str, Symbol,
		Word,
		EndOfFile,
	}
	if got := kinds(lxs); !reflect.DeepEqual(got, want) {
		t.Fatalf("token kinds mismatch:\nwant %v\ngot  %v", want, got)
	}

	if lxs[3].Token.Num != 42 {
		t.Fatalf("number literal not parsed: %v", lxs[3].Token)
	}
	if lxs[6].Token.Text != "hi\n" {
		t.Fatalf("string escapes not decoded: %q", lxs[6].Token.Text)
	}
}

func Test_Toy_String_SubTokenizerAdvancesSharedCursor(t *testing.T) {
	src := `x "a\"b" y`

	lxs, err := Lex(src).Collect()
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if got := kinds(lxs); !reflect.DeepEqual(got, []Kind{Word, Str, Word, EndOfFile}) {
		t.Fatalf("unexpected kinds: %v", got)
	}

	if lxs[1].Token.Text != `a"b` {
		t.Fatalf("escaped quote not decoded: %q", lxs[1].Token.Text)
	}
	// The host rule matched only the opening quote; the sub-tokenizer
	// consumed the body and closing quote through the shared cursor, so the
	// next token starts right after the literal.
	if lxs[2].Loc.StartByte != len(`x "a\"b" `) {
		t.Fatalf("scan did not resume after the literal: %+v", lxs[2].Loc)
	}
}

func Test_Toy_UnterminatedString_Fails(t *testing.T) {
	_, err := Lex(`"abc`).Collect()
	var se *lexr.ScanError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ScanError, got %v", err)
	}
	if se.Kind != lexr.ActionFailed || !strings.Contains(se.Msg, "not terminated") {
		t.Fatalf("unexpected failure: %+v", se)
	}
}

func Test_Toy_InvalidEscape_Fails(t *testing.T) {
	_, err := Lex(`"a\q"`).Collect()
	var se *lexr.ScanError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ScanError, got %v", err)
	}
	if !strings.Contains(se.Msg, "invalid escape") {
		t.Fatalf("unexpected failure: %+v", se)
	}
}

func Test_Toy_NumberOverflow_Fails(t *testing.T) {
	_, err := Lex("99999999999999999999").Collect()
	var se *lexr.ScanError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ScanError, got %v", err)
	}
	if se.Kind != lexr.ActionFailed || !strings.Contains(se.Msg, "out of range") {
		t.Fatalf("unexpected failure: %+v", se)
	}
}

func Test_Toy_Comments_AreSkipped(t *testing.T) {
	toks, err := Lex("a // trailing\n#mid# b").Tokens()
	if err != nil {
		t.Fatalf("Tokens error: %v", err)
	}
	var texts []string
	for _, tok := range toks {
		if tok.Kind == Word {
			texts = append(texts, tok.Text)
		}
	}
	if !reflect.DeepEqual(texts, []string{"a", "b"}) {
		t.Fatalf("comments leaked into the token stream: %v", texts)
	}
}
