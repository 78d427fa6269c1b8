// Package token defines the lexical tokens produced by the Delve Script
// lexer and consumed by its parser.
package token

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Illegal Kind = iota
	Eof

	Identifier
	Integer

	True
	False

	Assign
	Plus
	Minus
	Multiply
	Divide
	Negate

	LessThan
	GreaterThan
	Equal
	NotEqual

	Comma
	Semicolon

	LParen
	RParen
	LBrace
	RBrace

	Function
	Let
	If
	Else
	Return
)

var kindNames = [...]string{
	Illegal:     "illegal",
	Eof:         "eof",
	Identifier:  "identifier",
	Integer:     "int",
	True:        "true",
	False:       "false",
	Assign:      "=",
	Plus:        "+",
	Minus:       "-",
	Multiply:    "*",
	Divide:      "/",
	Negate:      "!",
	LessThan:    "<",
	GreaterThan: ">",
	Equal:       "==",
	NotEqual:    "!=",
	Comma:       ",",
	Semicolon:   ";",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	Function:    "function",
	Let:         "let",
	If:          "if",
	Else:        "else",
	Return:      "return",
}

// String returns the canonical printed form of the kind, as used in
// error messages and diagnostics.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// keywords maps reserved identifier spellings to their token kind.
var keywords = map[string]Kind{
	"function": Function,
	"let":      Let,
	"true":     True,
	"false":    False,
	"if":       If,
	"else":     Else,
	"return":   Return,
}

// LookupIdentifier classifies a scanned identifier as a keyword or a
// plain Identifier.
func LookupIdentifier(literal string) Kind {
	if kind, ok := keywords[literal]; ok {
		return kind
	}
	return Identifier
}

// Token is an immutable lexical unit: its kind, the exact source text it
// spans (or the canonical spelling for fixed tokens), and its 1-based
// source position.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}
