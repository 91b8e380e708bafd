package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// defaultSource is lexed when no file is named on the command line.
const defaultSource = "example.protodecl"

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "lex":
		return lexCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [file]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintf(os.Stderr, "  lex [file]        print the tokens of a source file (default %s)\n", defaultSource)
	fmt.Fprintln(os.Stderr, "  check <file>...   report every malformed number literal")
	fmt.Fprintln(os.Stderr, "  repl              explore tokens interactively")
	fmt.Fprintln(os.Stderr, "Lex flags:")
	fmt.Fprintln(os.Stderr, "  -json")
	fmt.Fprintln(os.Stderr, "    print tokens as a JSON array")
	fmt.Fprintln(os.Stderr, "  -no-comments")
	fmt.Fprintln(os.Stderr, "    omit comment tokens")
	fmt.Fprintln(os.Stderr, "  -v")
	fmt.Fprintln(os.Stderr, "    report source size and token count on stderr")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
