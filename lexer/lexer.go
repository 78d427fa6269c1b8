// Package lexer implements the Delve Script hand-written scanner.
package lexer

import (
	"github.com/matthewcpp/delve-script/token"
)

// Lexer scans a source string into a stream of token.Token values. A
// Lexer is not safe for concurrent use; independent instances on
// independent inputs require no coordination.
type Lexer struct {
	input string

	position     int  // current 0-based read position (points to ch)
	readPosition int  // next read position
	ch           byte // current character; 0 at end of input

	line   int // current 1-based line
	column int // current 1-based column of ch
}

// New creates a Lexer ready to scan input.
func New(input string) *Lexer {
	l := &Lexer{}
	l.Reset(input)
	return l
}

// Reset restores the Lexer to its initial state so a new input can be
// tokenized, without allocating a new Lexer.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.position = 0
	l.readPosition = 0
	l.ch = 0
	l.line = 1
	l.column = 0
	l.readChar()
}

// readChar advances the scanner by one character, updating line/column.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar looks one character ahead without advancing the scanner.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// Tokenize scans the entire input, returning the ordered token sequence
// terminated by an Eof token, or ending with a single Illegal token if
// an unrecognizable character is encountered.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Kind == token.Eof || tok.Kind == token.Illegal {
			break
		}
	}

	return tokens
}

// NextToken scans and returns the next token in the input. Once Eof has
// been produced, further calls continue to report Eof.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, column := l.line, l.column

	var tok token.Token
	tok.Line, tok.Column = line, column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Kind, tok.Literal = token.Equal, "=="
		} else {
			tok.Kind, tok.Literal = token.Assign, "="
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Kind, tok.Literal = token.NotEqual, "!="
		} else {
			tok.Kind, tok.Literal = token.Negate, "!"
		}
	case '+':
		tok.Kind, tok.Literal = token.Plus, "+"
	case '-':
		tok.Kind, tok.Literal = token.Minus, "-"
	case '*':
		tok.Kind, tok.Literal = token.Multiply, "*"
	case '/':
		tok.Kind, tok.Literal = token.Divide, "/"
	case '<':
		tok.Kind, tok.Literal = token.LessThan, "<"
	case '>':
		tok.Kind, tok.Literal = token.GreaterThan, ">"
	case ',':
		tok.Kind, tok.Literal = token.Comma, ","
	case ';':
		tok.Kind, tok.Literal = token.Semicolon, ";"
	case '(':
		tok.Kind, tok.Literal = token.LParen, "("
	case ')':
		tok.Kind, tok.Literal = token.RParen, ")"
	case '{':
		tok.Kind, tok.Literal = token.LBrace, "{"
	case '}':
		tok.Kind, tok.Literal = token.RBrace, "}"
	case 0:
		tok.Kind, tok.Literal = token.Eof, ""
		return tok
	default:
		switch {
		case isLetter(l.ch):
			tok.Literal = l.readIdentifier()
			tok.Kind = token.LookupIdentifier(tok.Literal)
			return tok
		case isDigit(l.ch):
			tok.Literal = l.readInteger()
			tok.Kind = token.Integer
			return tok
		default:
			tok.Kind, tok.Literal = token.Illegal, string(l.ch)
			return tok
		}
	}

	l.readChar()
	return tok
}

// skipWhitespace advances over space, tab, CR, LF, vertical tab, and
// form feed characters between tokens.
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// readIdentifier consumes a run starting with [A-Za-z_] and continuing
// with [A-Za-z_0-9], returning the matched substring.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readInteger consumes a run starting with [0-9] and continuing with
// identifier-body characters, returning the matched substring verbatim.
// A trailing run of letters (e.g. "123abc") is intentionally captured
// here; interpreting it as an integer is the parser's job.
func (l *Lexer) readInteger() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}
