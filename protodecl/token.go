package protodecl

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a token.
type Kind string

const (
	KindIdent     Kind = "IDENT"
	KindBool      Kind = "BOOL"
	KindNumber    Kind = "NUMBER"
	KindOperator  Kind = "OPERATOR"
	KindDelimiter Kind = "DELIMITER"
	KindKeyword   Kind = "KEYWORD"
	KindComment   Kind = "COMMENT"

	// KindEOF marks end of input. It never appears in a token sequence
	// returned by Tokenize, Resolve or the Engine.
	KindEOF Kind = "EOF"
)

// Token is a classified lexical unit. Only the payload field matching Kind
// is meaningful.
type Token struct {
	Kind Kind
	// Text holds identifier, keyword and comment text.
	Text   string
	Char   rune
	Bool   bool
	Number uint64
	Pos    Position
}

// Position identifies the first character of a lexeme.
type Position struct {
	Line   int
	Column int
	// Offset counts characters (runes), not bytes, from the start of input.
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (t Token) String() string {
	switch t.Kind {
	case KindIdent:
		return "Identifier(" + strconv.Quote(t.Text) + ")"
	case KindKeyword:
		return "Keyword(" + strconv.Quote(t.Text) + ")"
	case KindComment:
		return "Comment(" + strconv.Quote(t.Text) + ")"
	case KindBool:
		return "Boolean(" + strconv.FormatBool(t.Bool) + ")"
	case KindNumber:
		return "Number(" + strconv.FormatUint(t.Number, 10) + ")"
	case KindOperator:
		return "Operator(" + strconv.QuoteRune(t.Char) + ")"
	case KindDelimiter:
		return "Delimiter(" + strconv.QuoteRune(t.Char) + ")"
	case KindEOF:
		return "EOF"
	default:
		return string(t.Kind)
	}
}

// Lexeme reconstructs the source spelling of the token where one exists.
// Comments come back without their delimiters.
func (t Token) Lexeme() string {
	switch t.Kind {
	case KindOperator, KindDelimiter:
		return string(t.Char)
	case KindBool:
		return strconv.FormatBool(t.Bool)
	case KindNumber:
		return strconv.FormatUint(t.Number, 10)
	case KindEOF:
		return ""
	default:
		return t.Text
	}
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '%', '=', '<', '>', '!', '&', '|', '^', '~', '/':
		return true
	}
	return false
}

func isDelimiter(r rune) bool {
	switch r {
	case '{', '}', '(', ')', '[', ']', ';':
		return true
	}
	return false
}
