package token

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var reservedKeywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Keywords that begin a statement. The parser stops discarding tokens before
// any of them when it recovers from an error.
var statementKeywords = []TokenType{CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN}

// Keyword returns the token type of a reserved word.
func Keyword(identifier string) (TokenType, bool) {
	t, ok := reservedKeywords[identifier]
	return t, ok
}

// Keywords returns all reserved words in lexical order.
func Keywords() []string {
	words := maps.Keys(reservedKeywords)
	slices.Sort(words)
	return words
}

// IsStatementStart reports whether t is a reserved word that starts a statement.
func IsStatementStart(t TokenType) bool {
	return slices.Contains(statementKeywords, t)
}
