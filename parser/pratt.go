package parser

import (
	"github.com/matthewcpp/delve-script/ast"
	"github.com/matthewcpp/delve-script/token"
)

// precedence is the binding power of an operator. Higher binds tighter.
type precedence int

const (
	Lowest precedence = iota
	Equals
	LessGreater
	Sum
	Product
	Prefix
	Call
)

// precedences maps an infix operator's token kind to its binding power.
// Any kind absent from the table is Lowest.
var precedences = map[token.Kind]precedence{
	token.Equal:       Equals,
	token.NotEqual:    Equals,
	token.LessThan:    LessGreater,
	token.GreaterThan: LessGreater,
	token.Plus:        Sum,
	token.Minus:       Sum,
	token.Multiply:    Product,
	token.Divide:      Product,
	token.LParen:      Call,
}

func precedenceOf(k token.Kind) precedence {
	if p, ok := precedences[k]; ok {
		return p
	}
	return Lowest
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(left ast.Expression) ast.Expression
)
