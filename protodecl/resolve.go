package protodecl

import (
	"strconv"
	"strings"
)

// Resolve returns a copy of tokens in which identifiers spelling a number
// literal become KindNumber tokens. Literals are `0x` hexadecimal, `0b`
// binary, or decimal when the first character is an ASCII digit. The first
// malformed or out-of-range literal fails the whole call and no tokens are
// returned.
func Resolve(tokens []Token) ([]Token, error) {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		resolved, err := resolveToken(tok)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

// ResolveEach resolves every literal it can and reports each failure with
// its position. Tokens that fail stay identifiers in the returned slice.
func ResolveEach(tokens []Token) ([]Token, []*Error) {
	out := make([]Token, len(tokens))
	var errs []*Error
	for i, tok := range tokens {
		resolved, err := resolveToken(tok)
		if err != nil {
			errs = append(errs, err)
			out[i] = tok
			continue
		}
		out[i] = resolved
	}
	return out, errs
}

func resolveToken(tok Token) (Token, *Error) {
	if tok.Kind != KindIdent {
		return tok, nil
	}

	digits, base, ok := numberLiteral(tok.Text)
	if !ok {
		return tok, nil
	}

	value, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return tok, &Error{
			Kind:   ErrInvalidNumber,
			Pos:    tok.Pos,
			Lexeme: tok.Text,
			Err:    err,
		}
	}
	return Token{Kind: KindNumber, Number: value, Pos: tok.Pos}, nil
}

// numberLiteral splits text into the digits to parse and their base.
func numberLiteral(text string) (string, int, bool) {
	switch {
	case strings.HasPrefix(text, "0x"):
		return text[2:], 16, true
	case strings.HasPrefix(text, "0b"):
		return text[2:], 2, true
	case text != "" && text[0] >= '0' && text[0] <= '9':
		return text, 10, true
	default:
		return "", 0, false
	}
}
