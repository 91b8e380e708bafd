package protodecl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies failures so callers need not match on message text.
type ErrorKind uint8

const (
	// ErrSourceUnreadable means the input could not be opened or read.
	ErrSourceUnreadable ErrorKind = iota + 1
	// ErrInvalidNumber means a numeric-looking identifier had digits
	// outside its base or a value beyond 64 bits.
	ErrInvalidNumber
	// ErrUnexpectedChar means a character started no token.
	ErrUnexpectedChar
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSourceUnreadable:
		return "source error"
	case ErrInvalidNumber:
		return "number error"
	case ErrUnexpectedChar:
		return "lex error"
	default:
		return "error"
	}
}

// Error is the error type returned by every stage of the package.
type Error struct {
	Kind ErrorKind
	Pos  Position
	// Path is set when the source came from a file.
	Path string
	// Lexeme is the offending source text, if any.
	Lexeme string
	Err    error

	source string
}

func (e *Error) Error() string {
	if e.Kind == ErrSourceUnreadable {
		return e.Kind.String() + ": " + e.Message()
	}

	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s at %d:%d: ", e.Kind, e.Pos.Line, e.Pos.Column)
	b.WriteString(e.Message())
	if frame := formatCodeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// Message describes the failure without position or code frame.
func (e *Error) Message() string {
	switch e.Kind {
	case ErrSourceUnreadable:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "cannot read " + e.Path
	case ErrInvalidNumber:
		if errors.Is(e.Err, strconv.ErrRange) {
			return fmt.Sprintf("number literal %q does not fit in 64 bits", e.Lexeme)
		}
		return fmt.Sprintf("invalid number literal %q", e.Lexeme)
	case ErrUnexpectedChar:
		return fmt.Sprintf("unexpected character %q", e.Lexeme)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown failure"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}

// withSource attaches src to a positioned *Error so it renders a code frame.
func withSource(err error, src string) error {
	var perr *Error
	if errors.As(err, &perr) && perr.Kind != ErrSourceUnreadable {
		perr.source = src
	}
	return err
}

func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[pos.Line-1], "\r")
	lineRunes := []rune(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
