package token

import (
	"fmt"
)

// Token represents a lexical token.
//
// Literal holds the decoded text of the token: the contents of a string literal
// without the quotes, the digits of a number literal, empty otherwise.
// Numbers are kept in their textual form until the parser builds the AST.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal string
	Line    int
}

func NewToken(t TokenType, lexeme string, literal string, line int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal string, line int) *Token {
	tt := NewToken(t, lexeme, literal, line)
	return &tt
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %q, Line: %d}", t.Type, t.Lexeme, t.Literal, t.Line)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
