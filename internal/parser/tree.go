package parser

import (
	"fmt"
	"strconv"
)

// TreePrinter renders the node structure itself,
// e.g. Binary(Literal(1), Plus, Grouping(Literal("a"))).
type TreePrinter struct{}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// VisitBinary implements Visitor.
func (p *TreePrinter) VisitBinary(expr *Binary) string {
	return fmt.Sprintf("Binary(%s, %s, %s)", p.Print(expr.Left), expr.Operator, p.Print(expr.Right))
}

// VisitGrouping implements Visitor.
func (p *TreePrinter) VisitGrouping(expr *Grouping) string {
	return fmt.Sprintf("Grouping(%s)", p.Print(expr.Expression))
}

// VisitLiteral implements Visitor.
func (p *TreePrinter) VisitLiteral(expr *Literal) string {
	var value string
	switch v := expr.Value.(type) {
	case ValueString:
		value = strconv.Quote(string(v))
	case ValueBool:
		value = "False"
		if v {
			value = "True"
		}
	case ValueNil:
		value = "Nil"
	default:
		value = v.String()
	}
	return fmt.Sprintf("Literal(%s)", value)
}

// VisitUnary implements Visitor.
func (p *TreePrinter) VisitUnary(expr *Unary) string {
	return fmt.Sprintf("Unary(%s, %s)", expr.Operator, p.Print(expr.Right))
}

// Print implements Printer.
func (p *TreePrinter) Print(expr Expr) string {
	return Accept[string](expr, p)
}

var _ Visitor[string] = (*TreePrinter)(nil)
var _ Printer = (*TreePrinter)(nil)
