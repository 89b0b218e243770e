package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/loxfront/internal/token"
)

var (
	ErrParseUnexpectedToken         = errors.New("Expect expression.")
	ErrParseExpectedRightParenToken = errors.New("Expect ')' after expression.")
	ErrParseExpectedEnd             = errors.New("Expect end of expression.")
	ErrParseExpectedSemicolon       = errors.New("Expect ';' after expression.")
	ErrParseInvalidNumber           = errors.New("Invalid number literal.")

	// ErrInternal marks a broken invariant inside the front end itself,
	// e.g. an operator token without an AST operator.
	ErrInternal = errors.New("internal error")
)

func ErrInternalOperator(tok *token.Token) error {
	return fmt.Errorf("%w: no operator for token %s", ErrInternal, tok.Type)
}

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Token is the token the parser was looking at when it failed.
func (p *ParserError) Token() token.Token {
	return *p.tok
}

// Where renders the location context of the error.
func (p *ParserError) Where() string {
	if p.tok.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", p.tok.Lexeme)
}

func (p *ParserError) Line() int {
	return p.tok.Line
}

func (p *ParserError) Message() string {
	return p.cause.Error()
}

// Error implements error.
func (p *ParserError) Error() string {
	return formatDiagnostic(p.Line(), p.Where(), p.Message())
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ interface{ Unwrap() error } = (*ParserError)(nil)
