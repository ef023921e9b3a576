// print.go: lexeme dump formatting for CLI and debugging output
package lexr

import (
	"fmt"
	"strings"
)

/* ---------- globals & tiny helpers ---------- */

var EnableColor = false // REPL-only; tests can leave this false

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
)

func colorize(s, c string) string {
	if !EnableColor {
		return s
	}
	return c + s + colorReset
}
func blue(s string) string  { return colorize(s, colorBlue) }
func green(s string) string { return colorize(s, colorGreen) }

/* ---------- lexeme dump ---------- */

// FormatLexemes renders one aligned line per lexeme: the line:col span, the
// byte range, then the token's %v rendering. Locations come out green and
// tokens blue when EnableColor is set.
func FormatLexemes[T any](lxs []Lexeme[T]) string {
	locs := make([]string, len(lxs))
	bytes := make([]string, len(lxs))
	locW, byteW := 0, 0
	for i, lx := range lxs {
		locs[i] = lx.Loc.String()
		bytes[i] = fmt.Sprintf("%d..%d", lx.Loc.StartByte, lx.Loc.EndByte)
		if len(locs[i]) > locW {
			locW = len(locs[i])
		}
		if len(bytes[i]) > byteW {
			byteW = len(bytes[i])
		}
	}

	var b strings.Builder
	for i, lx := range lxs {
		loc := locs[i] + strings.Repeat(" ", locW-len(locs[i]))
		byt := bytes[i] + strings.Repeat(" ", byteW-len(bytes[i]))
		fmt.Fprintf(&b, "%s  %s  %s\n", green(loc), green(byt), blue(fmt.Sprintf("%v", lx.Token)))
	}
	return b.String()
}
