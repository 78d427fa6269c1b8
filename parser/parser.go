// Package parser implements a Pratt (top-down operator-precedence)
// parser that turns a Delve Script token stream into an ast.Program.
package parser

import (
	"strconv"

	"github.com/matthewcpp/delve-script/ast"
	"github.com/matthewcpp/delve-script/token"
)

// Parser consumes a pre-lexed token slice and produces an ast.Program
// plus a list of error messages. A Parser is not safe for concurrent
// use.
type Parser struct {
	tokens  []token.Token
	current int
	peek    int

	errors []error

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New creates a Parser over tokens.
func New(tokens []token.Token) *Parser {
	p := &Parser{}
	p.Reset(tokens)
	return p
}

// Reset returns the Parser to its initial state over a new token slice,
// so it may be reused without reallocating its dispatch tables.
//
// A stream the lexer cut short with a trailing Illegal token has no Eof;
// Reset parses a copy of it with an Eof appended, so that parsing stops.
func (p *Parser) Reset(tokens []token.Token) {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == token.Illegal {
		last := tokens[n-1]
		tokens = append(tokens[:n:n], token.Token{Kind: token.Eof, Line: last.Line, Column: last.Column})
	}

	p.tokens = tokens
	p.current = 0
	p.peek = 0
	if len(tokens) > 1 {
		p.peek = 1
	}
	p.errors = nil

	if p.prefixParseFns != nil {
		return
	}

	p.prefixParseFns = map[token.Kind]prefixParseFn{
		token.Identifier: p.parseIdentifier,
		token.Integer:    p.parseIntegerLiteral,
		token.True:       p.parseBooleanLiteral,
		token.False:      p.parseBooleanLiteral,
		token.Negate:     p.parsePrefixExpression,
		token.Minus:      p.parsePrefixExpression,
		token.LParen:     p.parseGroupedExpression,
		token.Function:   p.parseFunctionLiteral,
		token.If:         p.parseIfExpression,
	}

	p.infixParseFns = map[token.Kind]infixParseFn{
		token.Plus:        p.parseInfixExpression,
		token.Minus:       p.parseInfixExpression,
		token.Multiply:    p.parseInfixExpression,
		token.Divide:      p.parseInfixExpression,
		token.Equal:       p.parseInfixExpression,
		token.NotEqual:    p.parseInfixExpression,
		token.LessThan:    p.parseInfixExpression,
		token.GreaterThan: p.parseInfixExpression,
		token.LParen:      p.parseCallExpression,
	}
}

// ParseProgram parses the full token stream into a Program and a list of
// error messages. If tokens is empty, the Program is nil and errors is
// nil. Otherwise a Program is always produced, possibly with zero
// statements.
func (p *Parser) ParseProgram() (*ast.Program, []string) {
	if len(p.tokens) == 0 {
		return nil, nil
	}

	program := &ast.Program{}

	for p.curTok().Kind != token.Eof {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.recoverToNextStatement()
		}
		p.advance(1)
	}

	return program, p.errorStrings()
}

func (p *Parser) errorStrings() []string {
	if len(p.errors) == 0 {
		return nil
	}
	out := make([]string, len(p.errors))
	for i, err := range p.errors {
		out[i] = err.Error()
	}
	return out
}

// ---- token cursor ----

func (p *Parser) curTok() token.Token  { return p.tokens[p.current] }
func (p *Parser) peekTok() token.Token { return p.tokens[p.peek] }

// advance slides current and peek forward n times. Reads past the end of
// the token slice clamp: both pointers stabilize on the last token
// (Eof, for any stream that ends in Eof or Illegal; see Reset).
func (p *Parser) advance(n int) {
	for i := 0; i < n; i++ {
		if p.peek < len(p.tokens)-1 {
			p.current = p.peek
			p.peek++
		} else {
			p.current = len(p.tokens) - 1
			p.peek = len(p.tokens) - 1
		}
	}
}

// recoverToNextStatement consumes tokens up to and including the next
// Semicolon, or Eof, whichever comes first, confining a statement's
// parse failure to that statement alone.
func (p *Parser) recoverToNextStatement() {
	for p.curTok().Kind != token.Semicolon && p.curTok().Kind != token.Eof {
		p.advance(1)
	}
}

// addError records a parse error naming what was expected, positioned at
// the token that was actually found there.
func (p *Parser) addError(expected string, found token.Token) {
	p.errors = append(p.errors, &ParseError{
		Expected: expected,
		Line:     found.Line,
		Column:   found.Column,
		Found:    found.Kind.String(),
	})
}

// addErrorAtCurrent records a parse error positioned at the current
// token, for failures detected while current is already the offender
// (e.g. no prefix parser registered for it).
func (p *Parser) addErrorAtCurrent(expected string) {
	p.addError(expected, p.curTok())
}

// expectPeek checks the peek token's kind; on match it advances onto it
// and returns true, otherwise it records an error positioned at the peek
// token and returns false.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekTok().Kind == kind {
		p.advance(1)
		return true
	}
	p.addError(kind.String(), p.peekTok())
	return false
}

// ---- statements ----

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok().Kind {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.LBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curTok()}

	if !p.expectPeek(token.Identifier) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curTok(), Value: p.curTok().Literal}

	if !p.expectPeek(token.Assign) {
		return nil
	}

	p.advance(1)
	value := p.parseExpression(Lowest)
	if value == nil {
		return nil
	}
	stmt.Value = value

	if !p.expectPeek(token.Semicolon) {
		return nil
	}

	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curTok()}

	p.advance(1)
	value := p.parseExpression(Lowest)
	if value == nil {
		return nil
	}
	stmt.ReturnValue = value

	if !p.expectPeek(token.Semicolon) {
		return nil
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	startTok := p.curTok()
	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}

	stmt := &ast.ExpressionStatement{Token: startTok, Expression: expr}

	if !p.expectPeek(token.Semicolon) {
		return nil
	}

	return stmt
}

// parseBlockStatement requires current to be `{`. It leaves current on
// the matching `}`.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curTok()}

	p.advance(1)

	for p.curTok().Kind != token.RBrace && p.curTok().Kind != token.Eof {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.recoverToNextStatement()
		}
		p.advance(1)
	}

	return block
}

// parseIfStatement wraps an IfExpression in an ExpressionStatement. Unlike
// the generic expression-statement path, it does not require a trailing
// semicolon: an if statement's own terminator is the closing `}` of its
// consequence (or alternative) block, which parseIfExpression already
// leaves current on.
func (p *Parser) parseIfStatement() ast.Statement {
	startTok := p.curTok()
	expr := p.parseIfExpression()
	if expr == nil {
		return nil
	}

	return &ast.ExpressionStatement{Token: startTok, Expression: expr}
}

// ---- Pratt expression parsing ----

func (p *Parser) parseExpression(prec precedence) ast.Expression {
	prefix := p.prefixParseFns[p.curTok().Kind]
	if prefix == nil {
		p.addErrorAtCurrent("expression")
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for p.peekTok().Kind != token.Semicolon && prec < precedenceOf(p.peekTok().Kind) {
		infix := p.infixParseFns[p.peekTok().Kind]
		if infix == nil {
			return left
		}
		p.advance(1)
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curTok(), Value: p.curTok().Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curTok()
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, &ParseError{
			Expected: "integer literal",
			Line:     tok.Line,
			Column:   tok.Column,
			Found:    tok.Literal,
		})
		return nil
	}
	return &ast.IntegerLiteral{Token: tok, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curTok(), Value: p.curTok().Kind == token.True}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curTok()
	expr := &ast.PrefixExpression{Token: tok, Operator: tok.Literal}

	p.advance(1)
	right := p.parseExpression(Prefix)
	if right == nil {
		return nil
	}
	expr.Right = right

	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curTok()

	prec := precedenceOf(tok.Kind)
	p.advance(1)
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}

	return &ast.InfixExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance(1)
	expr := p.parseExpression(Lowest)

	if !p.expectPeek(token.RParen) {
		return nil
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curTok()}

	if !p.expectPeek(token.LParen) {
		return nil
	}

	params := p.parseFunctionParameters()
	if params == nil {
		return nil
	}
	lit.Parameters = params

	if !p.expectPeek(token.LBrace) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

// parseFunctionParameters requires current to be `(`. Leaves current on
// `)`.
func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTok().Kind == token.RParen {
		p.advance(1)
		return params
	}

	p.advance(1)

	if p.curTok().Kind != token.Identifier {
		p.addErrorAtCurrent(token.Identifier.String())
		return nil
	}
	params = append(params, &ast.Identifier{Token: p.curTok(), Value: p.curTok().Literal})

	for p.peekTok().Kind == token.Comma {
		p.advance(2)
		if p.curTok().Kind != token.Identifier {
			p.addErrorAtCurrent(token.Identifier.String())
			return nil
		}
		params = append(params, &ast.Identifier{Token: p.curTok(), Value: p.curTok().Literal})
	}

	if !p.expectPeek(token.RParen) {
		return nil
	}

	return params
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	tok := p.curTok()
	args := p.parseCallArguments()
	if args == nil {
		return nil
	}
	return &ast.CallExpression{Token: tok, Function: fn, Arguments: args}
}

// parseCallArguments requires current to be `(`. Leaves current on `)`.
// Returns nil (as opposed to a non-nil empty slice) if any argument or
// the closing `)` failed to parse, so a broken call never leaks a
// partially-built argument list into the AST.
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTok().Kind == token.RParen {
		p.advance(1)
		return args
	}

	p.advance(1)
	arg := p.parseExpression(Lowest)
	if arg == nil {
		return nil
	}
	args = append(args, arg)

	for p.peekTok().Kind == token.Comma {
		p.advance(2)
		arg := p.parseExpression(Lowest)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.RParen) {
		return nil
	}

	return args
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curTok()}

	if !p.expectPeek(token.LParen) {
		return nil
	}

	p.advance(1)
	condition := p.parseExpression(Lowest)
	if condition == nil {
		return nil
	}
	expr.Condition = condition

	if !p.expectPeek(token.RParen) {
		return nil
	}

	if !p.expectPeek(token.LBrace) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()

	if p.peekTok().Kind == token.Else {
		p.advance(1)

		if !p.expectPeek(token.LBrace) {
			return nil
		}

		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}
