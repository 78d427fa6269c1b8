package ast

import (
	"bytes"
	"testing"

	"github.com/matthewcpp/delve-script/token"
)

func TestLetStatementString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Kind: token.Let, Literal: "let"},
				Name: &Identifier{
					Token: token.Token{Kind: token.Identifier, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: token.Token{Kind: token.Identifier, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	if program.String() != "let myVar = anotherVar;\n" {
		t.Errorf("program.String() wrong. got=%q", program.String())
	}
}

func TestPrefixExpressionString(t *testing.T) {
	pe := &PrefixExpression{
		Token:    token.Token{Kind: token.Negate, Literal: "!"},
		Operator: "!",
		Right:    &Identifier{Token: token.Token{Literal: "x"}, Value: "x"},
	}

	if got, want := pe.String(), "(!x)"; got != want {
		t.Errorf("PrefixExpression.String() = %q, want %q", got, want)
	}
}

func TestInfixExpressionString(t *testing.T) {
	ie := &InfixExpression{
		Left:     &Identifier{Value: "a"},
		Operator: "+",
		Right:    &Identifier{Value: "b"},
	}

	if got, want := ie.String(), "(a + b)"; got != want {
		t.Errorf("InfixExpression.String() = %q, want %q", got, want)
	}
}

func TestIfExpressionStringWithoutAlternative(t *testing.T) {
	ie := &IfExpression{
		Condition: &Identifier{Value: "cond"},
		Consequence: &BlockStatement{
			Statements: []Statement{
				&ExpressionStatement{Expression: &Identifier{Value: "x"}},
			},
		},
	}

	want := "if cond {\nx;\n}"
	if got := ie.String(); got != want {
		t.Errorf("IfExpression.String() = %q, want %q", got, want)
	}
}

func TestIfExpressionStringWithAlternative(t *testing.T) {
	ie := &IfExpression{
		Condition:   &Identifier{Value: "cond"},
		Consequence: &BlockStatement{Statements: []Statement{&ExpressionStatement{Expression: &Identifier{Value: "x"}}}},
		Alternative: &BlockStatement{Statements: []Statement{&ExpressionStatement{Expression: &Identifier{Value: "y"}}}},
	}

	want := "if cond {\nx;\n} else {\ny;\n}"
	if got := ie.String(); got != want {
		t.Errorf("IfExpression.String() = %q, want %q", got, want)
	}
}

func TestFunctionLiteralString(t *testing.T) {
	fl := &FunctionLiteral{
		Token:      token.Token{Literal: "function"},
		Parameters: []*Identifier{{Value: "x"}, {Value: "y"}},
		Body: &BlockStatement{
			Statements: []Statement{
				&ReturnStatement{
					Token:       token.Token{Literal: "return"},
					ReturnValue: &InfixExpression{Left: &Identifier{Value: "x"}, Operator: "+", Right: &Identifier{Value: "y"}},
				},
			},
		},
	}

	want := "function(x, y) {\nreturn (x + y);\n}"
	if got := fl.String(); got != want {
		t.Errorf("FunctionLiteral.String() = %q, want %q", got, want)
	}
}

func TestCallExpressionString(t *testing.T) {
	ce := &CallExpression{
		Function: &Identifier{Value: "add"},
		Arguments: []Expression{
			&InfixExpression{Left: &Identifier{Value: "a"}, Operator: "+", Right: &Identifier{Value: "b"}},
			&Identifier{Value: "c"},
		},
	}

	want := "add((a + b), c)"
	if got := ce.String(); got != want {
		t.Errorf("CallExpression.String() = %q, want %q", got, want)
	}
}

func TestProgramTokenLiteralOfEmptyProgram(t *testing.T) {
	p := &Program{}
	if p.TokenLiteral() != "" {
		t.Errorf("empty Program.TokenLiteral() = %q, want empty", p.TokenLiteral())
	}
}

func TestFprint(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&ExpressionStatement{Expression: &IntegerLiteral{Token: token.Token{Literal: "7"}, Value: 7}},
		},
	}

	var buf bytes.Buffer
	n, err := Fprint(&buf, program)
	if err != nil {
		t.Fatalf("Fprint returned error: %v", err)
	}
	if buf.String() != "7;\n" {
		t.Errorf("Fprint wrote %q, want %q", buf.String(), "7;\n")
	}
	if n != buf.Len() {
		t.Errorf("Fprint returned n=%d, want %d", n, buf.Len())
	}
}
