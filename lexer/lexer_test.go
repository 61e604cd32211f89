package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allTokens(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestNextTokenOperatorsAndPunctuation(t *testing.T) {
	input := `=+(){}[],;: ! * / < > == != <= >= += -= *= /=`

	expected := []Type{
		ASSIGN, PLUS, LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, SEMICOLON, COLON,
		BANG, ASTERISK, SLASH, LT, GT, EQ, NOT_EQ, LT_EQ, GT_EQ,
		PLUS_ASSIGN, MINUS_ASSIGN, ASTERISK_ASSIGN, SLASH_ASSIGN,
	}

	toks := allTokens(input)
	assert.Len(t, toks, len(expected))
	for i, typ := range expected {
		assert.Equalf(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	input := `let fn true false if else return for while in five x_1`

	expected := []struct {
		typ Type
		lit string
	}{
		{LET, "let"}, {FUNCTION, "fn"}, {TRUE, "true"}, {FALSE, "false"},
		{IF, "if"}, {ELSE, "else"}, {RETURN, "return"}, {FOR, "for"},
		{WHILE, "while"}, {IN, "in"}, {IDENT, "five"}, {IDENT, "x_1"},
	}

	toks := allTokens(input)
	assert.Len(t, toks, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.typ, toks[i].Type)
		assert.Equal(t, e.lit, toks[i].Literal)
	}
}

func TestNextTokenIntegers(t *testing.T) {
	toks := allTokens(`5 10 12345`)
	assert.Equal(t, []string{"5", "10", "12345"}, []string{toks[0].Literal, toks[1].Literal, toks[2].Literal})
	for _, tok := range toks {
		assert.Equal(t, INT, tok.Type)
	}
}

func TestNextTokenStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello world"`, "hello world"},
		{`'hello world'`, "hello world"},
		{`"line\nbreak"`, "line\nbreak"},
		{`"tab\tstop"`, "tab\tstop"},
		{`"a\\b"`, `a\b`},
		{`"quote: \""`, `quote: "`},
		{`'it\'s'`, "it's"},
		{`"nul\0byte"`, "nul\x00byte"},
	}

	for _, tt := range tests {
		toks := allTokens(tt.input)
		assert.Len(t, toks, 1)
		assert.Equal(t, STRING, toks[0].Type)
		assert.Equal(t, tt.expected, toks[0].Literal)
	}
}

func TestNextTokenUnterminatedStringIsIllegal(t *testing.T) {
	l := New(`"never closes`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
}

func TestNextTokenBadEscapeIsIllegal(t *testing.T) {
	l := New(`"bad \q escape"`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
}

func TestNextTokenIllegalByte(t *testing.T) {
	toks := allTokens(`@`)
	assert.Len(t, toks, 1)
	assert.Equal(t, ILLEGAL, toks[0].Type)
}

func TestNextTokenFullProgram(t *testing.T) {
	input := `
let add = fn(x, y) { x + y; };
let result = add(5, 10);
if (result > 5) {
	return true;
} else {
	return false;
}
[1, 2][0];
{"foo": "bar"};
x += 1;
`
	toks := allTokens(input)
	assert.NotEmpty(t, toks)
	assert.Equal(t, LET, toks[0].Type)
	assert.Equal(t, IDENT, toks[1].Type)
	assert.Equal(t, "add", toks[1].Literal)
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	toks := allTokens("let x = 1\nlet y = 2")
	assert.Equal(t, 1, toks[0].Line)
	var secondLet Token
	for _, tok := range toks {
		if tok.Type == LET && tok.Line == 2 {
			secondLet = tok
		}
	}
	assert.Equal(t, LET, secondLet.Type)
}
