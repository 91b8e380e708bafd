package protodecl

import (
	"io"
	"unicode"
)

// Lexer produces tokens from protodecl source one at a time. A Lexer is not
// safe for concurrent use.
type Lexer struct {
	c *cursor

	end  Token
	done bool
}

// NewLexer returns a lexer positioned at the first character of src.
func NewLexer(src string) *Lexer {
	l := &Lexer{c: newCursor(src)}
	l.c.advance()
	return l
}

// NextToken returns the next token. It returns io.EOF once the input is
// exhausted and an *Error of kind ErrUnexpectedChar for characters that
// start no token; the offending character is consumed so scanning may
// continue.
func (l *Lexer) NextToken() (Token, error) {
	if !l.skipWhitespace() {
		return l.finish()
	}

	start := l.c.position()
	ch := l.c.ch

	switch {
	case ch == '/':
		switch next, _ := l.c.peek(); next {
		case '/':
			return l.readLineComment(start), nil
		case '*':
			return l.readBlockComment(start), nil
		}
		l.c.advance()
		return Token{Kind: KindOperator, Char: ch, Pos: start}, nil
	case isOperator(ch):
		l.c.advance()
		return Token{Kind: KindOperator, Char: ch, Pos: start}, nil
	case isDelimiter(ch):
		l.c.advance()
		return Token{Kind: KindDelimiter, Char: ch, Pos: start}, nil
	case isIdentifierRune(ch):
		return l.readWord(start), nil
	default:
		l.c.advance()
		return Token{}, &Error{
			Kind:   ErrUnexpectedChar,
			Pos:    start,
			Lexeme: string(ch),
		}
	}
}

// End returns the end-of-input marker once NextToken has reported io.EOF.
func (l *Lexer) End() (Token, bool) {
	return l.end, l.done
}

func (l *Lexer) finish() (Token, error) {
	if !l.done {
		l.end = Token{Kind: KindEOF, Pos: l.c.endPosition()}
		l.done = true
	}
	return Token{}, io.EOF
}

func (l *Lexer) skipWhitespace() bool {
	if l.c.eof {
		return false
	}
	for unicode.IsSpace(l.c.ch) {
		if !l.c.advance() {
			return false
		}
	}
	return true
}

func (l *Lexer) readLineComment(start Position) Token {
	l.c.advance()
	l.c.advance()

	textStart := l.c.offset
	for !l.c.eof && l.c.ch != '\n' {
		l.c.advance()
	}
	tok := Token{Kind: KindComment, Text: l.c.span(textStart), Pos: start}

	if !l.c.eof {
		l.c.advance()
	}
	return tok
}

// readBlockComment keeps everything through end of input when the closing
// `*/` is missing.
func (l *Lexer) readBlockComment(start Position) Token {
	l.c.advance()
	l.c.advance()

	textStart := l.c.offset
	for !l.c.eof && !l.atBlockClose() {
		l.c.advance()
	}
	tok := Token{Kind: KindComment, Text: l.c.span(textStart), Pos: start}

	if !l.c.eof {
		l.c.advance()
		l.c.advance()
	}
	return tok
}

func (l *Lexer) atBlockClose() bool {
	if l.c.ch != '*' {
		return false
	}
	next, ok := l.c.peek()
	return ok && next == '/'
}

func (l *Lexer) readWord(start Position) Token {
	for !l.c.eof && isIdentifierRune(l.c.ch) {
		l.c.advance()
	}
	word := l.c.span(start.Offset)

	if _, ok := LookupKeyword(word); ok {
		return Token{Kind: KindKeyword, Text: word, Pos: start}
	}
	switch word {
	case "true":
		return Token{Kind: KindBool, Bool: true, Pos: start}
	case "false":
		return Token{Kind: KindBool, Bool: false, Pos: start}
	}
	return Token{Kind: KindIdent, Text: word, Pos: start}
}

// isIdentifierRune accepts alphabetic characters, including combining vowel
// signs, numbers and underscores.
func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' ||
		unicode.Is(unicode.Other_Alphabetic, r)
}

// Tokenize scans all of src. Number literals are left as identifiers; pass
// the result to Resolve.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, withSource(err, src)
		}
		tokens = append(tokens, tok)
	}
}
