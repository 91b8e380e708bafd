package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mgomes/protodecl/protodecl"
)

type tokenJSON struct {
	Kind   protodecl.Kind `json:"kind"`
	Lexeme string         `json:"lexeme"`
	Number *uint64        `json:"number,omitempty"`
	Bool   *bool          `json:"bool,omitempty"`
	Line   int            `json:"line"`
	Column int            `json:"column"`
	Offset int            `json:"offset"`
}

func lexCommand(args []string) error {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	asJSON := fs.Bool("json", false, "print tokens as a JSON array")
	noComments := fs.Bool("no-comments", false, "omit comment tokens")
	verbose := fs.Bool("v", false, "report source size and token count on stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return errors.New("protodecl lex: at most one file may be given")
	}
	path := defaultSource
	if len(remaining) == 1 {
		path = remaining[0]
	}

	engine := protodecl.MustNewEngine(protodecl.Config{})
	started := time.Now()
	tokens, err := engine.LexFile(path)
	if err != nil {
		return fmt.Errorf("lex failed: %w", err)
	}
	if *noComments {
		tokens = dropComments(tokens)
	}

	if *verbose {
		size := "unknown size"
		if info, statErr := os.Stat(path); statErr == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		fmt.Fprintf(os.Stderr, "%s: %s, %d tokens in %s\n", path, size, len(tokens), time.Since(started).Round(time.Microsecond))
	}

	if *asJSON {
		return writeTokensJSON(os.Stdout, tokens)
	}
	writeTokens(os.Stdout, tokens)
	return nil
}

func dropComments(tokens []protodecl.Token) []protodecl.Token {
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok.Kind != protodecl.KindComment {
			kept = append(kept, tok)
		}
	}
	return kept
}

func writeTokens(w io.Writer, tokens []protodecl.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%d:%d\t%s\n", tok.Pos.Line, tok.Pos.Column, tok)
	}
}

func writeTokensJSON(w io.Writer, tokens []protodecl.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		entry := tokenJSON{
			Kind:   tok.Kind,
			Lexeme: tok.Lexeme(),
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			Offset: tok.Pos.Offset,
		}
		switch tok.Kind {
		case protodecl.KindNumber:
			n := tok.Number
			entry.Number = &n
		case protodecl.KindBool:
			b := tok.Bool
			entry.Bool = &b
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}
