// Package protodecl implements the lexical front-end for the protodecl
// packet description language. Source text such as
//
//	packet Ping {
//	    field id u32;
//	    field payload Bytes16le;
//	}
//
// is turned into classified tokens in two explicit stages:
//   - A Lexer walks the source one character at a time and emits keywords,
//     identifiers, booleans, operators, delimiters and comments.
//   - Resolve reinterprets identifier-shaped literals (`42`, `0xFF`,
//     `0b101`) as unsigned 64-bit numbers.
//
// Comments use `//` and `/* */`. An Engine runs both stages, loads files and
// memoizes results per source text.
package protodecl
