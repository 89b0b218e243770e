package parser

import (
	"github.com/leonardinius/loxfront/internal/token"
)

type UnaryOperator uint8

const (
	OpNot UnaryOperator = iota
	OpNegate
)

type BinaryOperator uint8

const (
	OpEqual BinaryOperator = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var unaryOperators = map[token.TokenType]UnaryOperator{
	token.BANG:  OpNot,
	token.MINUS: OpNegate,
}

var binaryOperators = map[token.TokenType]BinaryOperator{
	token.EQUAL_EQUAL:   OpEqual,
	token.BANG_EQUAL:    OpNotEqual,
	token.LESS:          OpLess,
	token.LESS_EQUAL:    OpLessEqual,
	token.GREATER:       OpGreater,
	token.GREATER_EQUAL: OpGreaterEqual,
	token.PLUS:          OpAdd,
	token.MINUS:         OpSubtract,
	token.STAR:          OpMultiply,
	token.SLASH:         OpDivide,
}

var unaryNames = [...]struct{ name, symbol string }{
	OpNot:    {"Bang", "!"},
	OpNegate: {"Minus", "-"},
}

var binaryNames = [...]struct{ name, symbol string }{
	OpEqual:        {"EqualEqual", "=="},
	OpNotEqual:     {"BangEqual", "!="},
	OpLess:         {"Less", "<"},
	OpLessEqual:    {"LessEqual", "<="},
	OpGreater:      {"Greater", ">"},
	OpGreaterEqual: {"GreaterEqual", ">="},
	OpAdd:          {"Plus", "+"},
	OpSubtract:     {"Minus", "-"},
	OpMultiply:     {"Star", "*"},
	OpDivide:       {"Slash", "/"},
}

// String implements fmt.Stringer.
func (op UnaryOperator) String() string {
	return unaryNames[op].name
}

// Symbol returns the source spelling of the operator.
func (op UnaryOperator) Symbol() string {
	return unaryNames[op].symbol
}

// String implements fmt.Stringer.
func (op BinaryOperator) String() string {
	return binaryNames[op].name
}

// Symbol returns the source spelling of the operator.
func (op BinaryOperator) Symbol() string {
	return binaryNames[op].symbol
}
