package parser_test

import (
	"fmt"

	"github.com/matthewcpp/delve-script/examples"
	"github.com/matthewcpp/delve-script/lexer"
	"github.com/matthewcpp/delve-script/parser"
)

func parseFixture(name string) string {
	src, err := examples.Scripts.ReadFile("scripts/" + name)
	if err != nil {
		panic(err)
	}

	tokens := lexer.New(string(src)).Tokenize()
	program, errs := parser.New(tokens).ParseProgram()
	if len(errs) != 0 {
		panic(fmt.Sprintf("unexpected parse errors for %s: %v", name, errs))
	}

	return program.String()
}

func Example_letStatement() {
	fmt.Print(parseFixture("let.ds"))
	// Output: let x = 7;
}

func Example_returnStatement() {
	fmt.Print(parseFixture("return.ds"))
	// Output: return (5 - my_var);
}

func Example_precedence() {
	fmt.Print(parseFixture("precedence.ds"))
	// Output: (x + (y * z));
}

func Example_groupedExpression() {
	fmt.Print(parseFixture("grouped.ds"))
	// Output: ((3 + x) * (y - 4));
}

func Example_ifExpression() {
	fmt.Print(parseFixture("if_expression.ds"))
	// Output: if (i == 7) {
	// (i + 2);
	// };
}

func Example_functionLiteral() {
	fmt.Print(parseFixture("function_literal.ds"))
	// Output: function(x, y) {
	// return (x + y);
	// };
}

func Example_callExpression() {
	fmt.Print(parseFixture("call.ds"))
	// Output: add((a + b), c);
}
