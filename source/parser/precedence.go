package parser

import (
	"github.com/espira-lang/espira/source/token"
)

// Data and functions for sorting out the operator precedences. All the binary operators are
// left-associative.

const (
	_ int = iota
	LOWEST
	SUM     // + or -
	PRODUCT // * or /
)

var precedences = map[token.TokenType]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

func precedence(tok token.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return LOWEST
}
