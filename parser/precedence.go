package parser

import "github.com/helium-lang/helium/lexer"

// Operator precedence constants, lowest to highest binding power.
// Following the usual Pratt-parser ladder: assignment binds loosest,
// index/call binds tightest.
const (
	LOWEST      = iota
	ASSIGN      // =, +=, -=, *=, /=
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x, !x
	CALL        // fn(...)
	INDEX       // arr[i]
)

var precedences = map[lexer.Type]int{
	lexer.ASSIGN:          ASSIGN,
	lexer.PLUS_ASSIGN:     ASSIGN,
	lexer.MINUS_ASSIGN:    ASSIGN,
	lexer.ASTERISK_ASSIGN: ASSIGN,
	lexer.SLASH_ASSIGN:    ASSIGN,
	lexer.EQ:              EQUALS,
	lexer.NOT_EQ:          EQUALS,
	lexer.LT:              LESSGREATER,
	lexer.GT:              LESSGREATER,
	lexer.LT_EQ:           LESSGREATER,
	lexer.GT_EQ:           LESSGREATER,
	lexer.PLUS:            SUM,
	lexer.MINUS:           SUM,
	lexer.SLASH:           PRODUCT,
	lexer.ASTERISK:        PRODUCT,
	lexer.LPAREN:          CALL,
	lexer.LBRACKET:        INDEX,
}

// compoundOps maps a compound-assignment token to the binary operator
// it desugars to: `x += 1` parses as `x = x + 1` (spec.md §9 decision,
// recorded in SPEC_FULL.md §6).
var compoundOps = map[lexer.Type]string{
	lexer.PLUS_ASSIGN:     "+",
	lexer.MINUS_ASSIGN:    "-",
	lexer.ASTERISK_ASSIGN: "*",
	lexer.SLASH_ASSIGN:    "/",
}
