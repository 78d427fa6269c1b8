package parser

import (
	"testing"

	"github.com/matthewcpp/delve-script/token"
)

// TestPrecedenceOfTable is table-driven over the token-to-precedence
// table specified in the Pratt algorithm.
func TestPrecedenceOfTable(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		expected precedence
	}{
		{token.Equal, Equals},
		{token.NotEqual, Equals},
		{token.LessThan, LessGreater},
		{token.GreaterThan, LessGreater},
		{token.Plus, Sum},
		{token.Minus, Sum},
		{token.Multiply, Product},
		{token.Divide, Product},
		{token.LParen, Call},
		{token.Semicolon, Lowest},
		{token.Identifier, Lowest},
		{token.RParen, Lowest},
	}

	for i, tt := range tests {
		if got := precedenceOf(tt.kind); got != tt.expected {
			t.Errorf("tests[%d] - precedenceOf(%q) = %d, want %d", i, tt.kind, got, tt.expected)
		}
	}
}

func TestPrecedenceLadderOrdering(t *testing.T) {
	ladder := []precedence{Lowest, Equals, LessGreater, Sum, Product, Prefix, Call}
	for i := 1; i < len(ladder); i++ {
		if ladder[i-1] >= ladder[i] {
			t.Fatalf("precedence ladder out of order at index %d: %d >= %d", i, ladder[i-1], ladder[i])
		}
	}
}
