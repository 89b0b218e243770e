package parser

import (
	"strings"
)

// RPNPrinter renders expressions in reverse Polish notation.
// Grouping disappears and unary minus is written as ~.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *Binary) string {
	return p.reverse(expr.Operator.Symbol(), expr.Left, expr.Right)
}

// VisitGrouping implements Visitor.
func (p *RPNPrinter) VisitGrouping(expr *Grouping) string {
	return p.reverse("", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *RPNPrinter) VisitLiteral(expr *Literal) string {
	return expr.Value.String()
}

// VisitUnary implements Visitor.
func (p *RPNPrinter) VisitUnary(expr *Unary) string {
	operator := expr.Operator.Symbol()
	if expr.Operator == OpNegate {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(Accept[string](expr, p))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	return strings.TrimSuffix(out.String(), " ")
}

// Print implements Printer.
func (p *RPNPrinter) Print(expr Expr) string {
	return Accept[string](expr, p)
}

var _ Visitor[string] = (*RPNPrinter)(nil)
var _ Printer = (*RPNPrinter)(nil)
