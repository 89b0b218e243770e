package parser

import (
	"strings"
)

// Printer renders an expression tree as text.
type Printer interface {
	Print(expr Expr) string
}

// AstPrinter renders expressions as Lisp-like s-expressions, e.g. (* (- 1) (group 2)).
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinary implements Visitor.
func (p *AstPrinter) VisitBinary(expr *Binary) string {
	return p.parenthesize(expr.Operator.Symbol(), expr.Left, expr.Right)
}

// VisitGrouping implements Visitor.
func (p *AstPrinter) VisitGrouping(expr *Grouping) string {
	return p.parenthesize("group", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *AstPrinter) VisitLiteral(expr *Literal) string {
	return expr.Value.String()
}

// VisitUnary implements Visitor.
func (p *AstPrinter) VisitUnary(expr *Unary) string {
	return p.parenthesize(expr.Operator.Symbol(), expr.Right)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(Accept[string](expr, p))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

// Print implements Printer.
func (p *AstPrinter) Print(expr Expr) string {
	return Accept[string](expr, p)
}

var _ Visitor[string] = (*AstPrinter)(nil)
var _ Printer = (*AstPrinter)(nil)
