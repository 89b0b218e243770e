package parser

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/leonardinius/loxfront/internal/loxerrors"
	"github.com/leonardinius/loxfront/internal/token"
)

var (
	nilExpr  Expr   = nil
	nilExprs []Expr = nil
)

// Parser builds expression trees out of a token sequence.
//
// A Parser is single use: it keeps a cursor into the tokens it was created with.
type Parser interface {
	// Parse parses exactly one expression spanning all of the tokens.
	// Tokens left over after the expression are an error
	// (loxerrors.ErrParseExpectedEnd), never silently dropped.
	Parse() (Expr, error)

	// ParseAll parses a sequence of ';' separated expressions. The ';' after the
	// last expression is optional.
	//
	// On a parse error it skips to the next likely statement boundary and
	// carries on, so that every malformed region yields one error. If any error
	// was found, no expressions are returned.
	ParseAll() ([]Expr, error)
}

type parserOpts struct {
	reporter loxerrors.ErrReporter
}

type ParserOption func(*parserOpts)

// WithReporter sends every parse error to r.
func WithReporter(r loxerrors.ErrReporter) ParserOption {
	return func(opts *parserOpts) {
		opts.reporter = r
	}
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
	opts    parserOpts
}

// NewParser returns a new Parser over tokens.
// A missing token.EOF sentinel is appended; tokens itself is never modified.
func NewParser(tokens []token.Token, options ...ParserOption) Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(slices.Clip(tokens), token.NewToken(token.EOF, "", "", line))
	}

	p := &parser{
		tokens:  tokens,
		current: 0,
	}
	for _, opt := range options {
		opt(&p.opts)
	}
	return p
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (Expr, error) {
	expr := p.expression()

	if p.err == nil && !p.isAtEnd() {
		p.reportExprError(loxerrors.ErrParseExpectedEnd)
	}

	if p.err != nil {
		// never hand out a partially built tree
		p.report(p.err)
		return nilExpr, p.err
	}

	return expr, nil
}

// ParseAll implements Parser.
func (p *parser) ParseAll() ([]Expr, error) {
	var exprs []Expr
	var errs []error

	for !p.isAtEnd() {
		expr := p.expressionStatement()
		if p.err != nil {
			errs = append(errs, p.err)
			p.report(p.err)
			p.synchronize()
			p.err = nil
			continue
		}
		exprs = append(exprs, expr)
	}

	if len(errs) > 0 {
		return nilExprs, errors.Join(errs...)
	}

	return exprs, nil
}

func (p *parser) expressionStatement() Expr {
	expr := p.expression()

	if p.err == nil && !p.match(token.SEMICOLON) && !p.isAtEnd() {
		return p.reportExprError(loxerrors.ErrParseExpectedSemicolon)
	}

	return expr
}

func (p *parser) expression() Expr {
	return p.equality()
}

func (p *parser) equality() Expr {
	expr := p.comparison()

	for p.anyMatch(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = p.newBinary(expr, operator, right)
	}

	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()

	for p.anyMatch(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = p.newBinary(expr, operator, right)
	}

	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()

	for p.anyMatch(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = p.newBinary(expr, operator, right)
	}

	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()

	for p.anyMatch(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = p.newBinary(expr, operator, right)
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return p.newUnary(operator, right)
	}

	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.FALSE) {
		return &Literal{Value: FalseValue}
	}
	if p.match(token.TRUE) {
		return &Literal{Value: TrueValue}
	}
	if p.match(token.NIL) {
		return &Literal{Value: NilValue}
	}

	if p.match(token.NUMBER) {
		tok := p.previous()
		// out of range literals become ±Inf
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return p.reportTokenExprError(tok, loxerrors.ErrParseInvalidNumber)
		}
		return &Literal{Value: ValueFloat(value)}
	}

	if p.match(token.STRING) {
		tok := p.previous()
		return &Literal{Value: ValueString(tok.Literal)}
	}

	return p.grouping()
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		expr := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportExprError(loxerrors.ErrParseExpectedRightParenToken)
		}
		return &Grouping{Expression: expr}
	}

	return p.reportExprError(loxerrors.ErrParseUnexpectedToken)
}

func (p *parser) newBinary(left Expr, operator *token.Token, right Expr) Expr {
	if p.err != nil {
		return nilExpr
	}

	op, ok := binaryOperators[operator.Type]
	if !ok {
		p.err = loxerrors.ErrInternalOperator(operator)
		return nilExpr
	}

	return &Binary{Left: left, Operator: op, Token: *operator, Right: right}
}

func (p *parser) newUnary(operator *token.Token, right Expr) Expr {
	if p.err != nil {
		return nilExpr
	}

	op, ok := unaryOperators[operator.Type]
	if !ok {
		p.err = loxerrors.ErrInternalOperator(operator)
		return nilExpr
	}

	return &Unary{Operator: op, Token: *operator, Right: right}
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	if p.isDone() || !slices.Contains(types, p.peek().Type) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

// advance consumes the current token and returns it.
// At the sentinel it stays put and returns the sentinel.
func (p *parser) advance() *token.Token {
	if p.isAtEnd() {
		return p.peek()
	}
	p.current++
	return p.previous()
}

// isAtEnd ignores parse errors, use isDone inside the grammar rules.
// Only Parse, ParseAll, synchronize and advance look at isAtEnd directly.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportExprError(err error) Expr {
	return p.reportTokenExprError(p.peek(), err)
}

func (p *parser) reportTokenExprError(tok *token.Token, err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	p.err = loxerrors.NewParseError(tok, err)
	return nilExpr
}

func (p *parser) report(err error) {
	if p.opts.reporter != nil {
		p.opts.reporter.ReportError(err)
	}
}

// synchronize discards tokens up to the next likely statement boundary:
// right after a ';' or right before a statement keyword.
func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		if token.IsStatementStart(p.peek().Type) {
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
