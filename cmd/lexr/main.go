package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lexr "github.com/JENebel/lexr-parsr"
	"github.com/JENebel/lexr-parsr/internal/toy"
)

const (
	appName     = "lexr"
	historyFile = ".lexr_history"
	prompt      = "==> "
)

var banner = fmt.Sprintf("lexr %s tokenizer REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", lexr.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(lexr.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lexr %s (built %s)

Usage:
  %s tokens <file> [--color]    Tokenize a file and dump the lexemes.
  %s repl                       Tokenize lines interactively.
  %s version                    Print the version.

`, lexr.Version, lexr.BuildDate, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	color := fs.Bool("color", false, "colorize the lexeme dump")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokens <file> [--color]\n", appName)
		return 2
	}
	file := fs.Arg(0)

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	lexr.EnableColor = *color
	lxs, serr := toy.Lex(string(src)).Collect()
	fmt.Print(lexr.FormatLexemes(lxs))
	if serr != nil {
		fmt.Fprintln(os.Stderr, red(lexr.WrapErrorWithName(serr, file, string(src)).Error()))
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	lexr.EnableColor = true

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			continue
		case ":quit":
			return 0
		}

		lxs, serr := toy.Lex(line).Collect()
		fmt.Print(lexr.FormatLexemes(lxs))
		if serr != nil {
			fmt.Fprintln(os.Stderr, red(lexr.WrapErrorWithSource(serr, line).Error()))
			continue
		}
		ln.AppendHistory(line)
	}
}
