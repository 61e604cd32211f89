package parser

import (
	"strconv"

	"github.com/helium-lang/helium/ast"
	"github.com/helium-lang/helium/lexer"
)

// parseExpression is the Pratt loop: parse one prefix expression, then
// keep folding in infix operators whose precedence exceeds the
// minimum this call was entered with.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, wrapParseError(p.curToken.Line, "could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseAssignExpression parses `target = value` as right-associative
// (`a = b = c` assigns c to b, then that result to a) by recursing at
// one precedence below ASSIGN.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.curToken, Operator: "=", Left: left}
	p.nextToken()
	expr.Right = p.parseExpression(ASSIGN - 1)
	return expr
}

// parseCompoundAssignExpression desugars `target += value` into
// `target = target + value` at parse time (SPEC_FULL.md §6).
func (p *Parser) parseCompoundAssignExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := compoundOps[tok.Type]
	p.nextToken()
	rhs := p.parseExpression(ASSIGN - 1)
	return &ast.InfixExpression{
		Token:    tok,
		Operator: "=",
		Left:     left,
		Right: &ast.InfixExpression{
			Token:    tok,
			Operator: op,
			Left:     left,
			Right:    rhs,
		},
	}
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: fn}
	expr.Arguments = p.parseExpressionList(lexer.RPAREN)
	return expr
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(lexer.RBRACKET)
	return arr
}

// parseExpressionList parses a comma-separated expression list up to
// and including the closing token (RPAREN or RBRACKET).
func (p *Parser) parseExpressionList(end lexer.Type) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseHashLiteral parses `{k: v, ...}`. Since LBRACE also opens a
// Block, the statement-level dispatch only reaches here via prefix
// position, where a bare brace can only mean a hash literal.
func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.curToken}

	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON) {
			return nil
		}

		p.nextToken()
		val := p.parseExpression(LOWEST)

		hash.Keys = append(hash.Keys, key)
		hash.Vals = append(hash.Vals, val)

		if !p.peekTokenIs(lexer.RBRACE) && !p.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}

	return hash
}

// parseIfExpression parses `if condition body [else body]`, where each
// body is a single statement or a `{ ... }` block. The condition is a
// bare expression with no required parentheses, matching
// original_source/src/parser/parser.rs's parse_if_expression and
// spec.md's own worked examples (`if x == 0 { ... }`).
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	p.nextToken()
	expr.Consequence = p.parseStatement()

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()

		if p.peekTokenIs(lexer.IF) {
			p.nextToken()
			expr.Alternative = p.parseIfStatementAsStatement()
		} else {
			p.nextToken()
			expr.Alternative = p.parseStatement()
		}
	}

	return expr
}

// parseIfStatementAsStatement lets `else if` chain without nested
// blocks, by wrapping the chained IfExpression back into a Statement.
func (p *Parser) parseIfStatementAsStatement() ast.Statement {
	expr := p.parseIfExpression()
	return &ast.ExpressionStatement{Token: p.curToken, Expression: expr}
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		fn.Name = p.curToken.Literal
	}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()

	return fn
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	var params []*ast.Identifier

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return params
}
