// Package parser implements a Pratt (top-down operator precedence)
// parser that turns a Helium token stream into an *ast.Program.
//
// Parsing never panics: malformed input accumulates messages in
// Errors() and the parser recovers at the next statement boundary so
// later, independent errors are also reported.
package parser

import (
	"fmt"

	"github.com/helium-lang/helium/ast"
	"github.com/helium-lang/helium/lexer"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the two-token lookahead window the Pratt algorithm
// needs, plus the prefix/infix function tables that associate token
// types with the grammar rule that parses them.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []error

	prefixParseFns map[lexer.Type]prefixParseFn
	infixParseFns  map[lexer.Type]infixParseFn
}

// New creates a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[lexer.Type]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolean)
	p.registerPrefix(lexer.FALSE, p.parseBoolean)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseHashLiteral)

	p.infixParseFns = make(map[lexer.Type]infixParseFn)
	for _, tt := range []lexer.Type{
		lexer.PLUS, lexer.MINUS, lexer.SLASH, lexer.ASTERISK,
		lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT, lexer.LT_EQ, lexer.GT_EQ,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(lexer.ASSIGN, p.parseAssignExpression)
	for _, tt := range []lexer.Type{lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.ASTERISK_ASSIGN, lexer.SLASH_ASSIGN} {
		p.registerInfix(tt, p.parseCompoundAssignExpression)
	}
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tt lexer.Type, fn prefixParseFn) { p.prefixParseFns[tt] = fn }
func (p *Parser) registerInfix(tt lexer.Type, fn infixParseFn)   { p.infixParseFns[tt] = fn }

// Errors returns every parse error accumulated during ParseProgram, in
// the order encountered.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram parses the full token stream into a Program, collecting
// errors rather than stopping at the first one.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for p.curToken.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) curTokenIs(tt lexer.Type) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt lexer.Type) bool { return p.peekToken.Type == tt }

// expectPeek advances past the peek token if it has type tt, else
// records an error and leaves the cursor in place for recovery.
func (p *Parser) expectPeek(tt lexer.Type) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt lexer.Type) {
	p.errors = append(p.errors, fmt.Errorf(
		"ParseError:\n\tline %d: expected next token to be %s, got %s instead",
		p.peekToken.Line, tt, p.peekToken.Type))
}

func (p *Parser) noPrefixParseFnError(tt lexer.Type) {
	p.errors = append(p.errors, fmt.Errorf(
		"ParseError:\n\tline %d: no prefix parse function for %s found",
		p.curToken.Line, tt))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}
