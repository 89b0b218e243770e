package parser

import (
	"fmt"

	"github.com/leonardinius/loxfront/internal/token"
)

// Expr is an expression node.
//
// The set of nodes is closed: *Binary, *Grouping, *Literal and *Unary.
// Every node owns its children; nodes are not shared or mutated once built.
type Expr interface {
	exprNode()
}

// Visitor is the interface that wraps the Visit methods.
//
// Visit is called for every node in the tree.
type Visitor[R any] interface {
	VisitBinary(expr *Binary) R
	VisitGrouping(expr *Grouping) R
	VisitLiteral(expr *Literal) R
	VisitUnary(expr *Unary) R
}

// Accept dispatches expr to the matching method of v.
func Accept[R any](expr Expr, v Visitor[R]) R {
	switch e := expr.(type) {
	case *Binary:
		return v.VisitBinary(e)
	case *Grouping:
		return v.VisitGrouping(e)
	case *Literal:
		return v.VisitLiteral(e)
	case *Unary:
		return v.VisitUnary(e)
	}
	panic(fmt.Sprintf("parser: unexpected expression %T", expr))
}

type Binary struct {
	Left     Expr
	Operator BinaryOperator
	Token    token.Token
	Right    Expr
}

type Grouping struct {
	Expression Expr
}

type Literal struct {
	Value Value
}

type Unary struct {
	Operator UnaryOperator
	Token    token.Token
	Right    Expr
}

func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}

var (
	_ Expr = (*Binary)(nil)
	_ Expr = (*Grouping)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Unary)(nil)
)
