package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helium-lang/helium/ast"
	"github.com/helium-lang/helium/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return program
}

func TestLetStatement(t *testing.T) {
	program := parseProgram(t, `let x = 5;`)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.LetStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name.Value)

	val, ok := stmt.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), val.Value)
}

func TestReturnStatementBareDesugarsToNull(t *testing.T) {
	program := parseProgram(t, `return;`)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	_, ok = stmt.ReturnValue.(*ast.NullLiteral)
	assert.True(t, ok)
}

func TestOperatorPrecedenceFullyParenthesized(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a + b * c", "(a + (b * c))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"!(true == true)", "(!(true == true))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)
		assert.Equal(t, tt.expected, program.Statements[0].String())
	}
}

func TestCompoundAssignmentDesugarsToPlainAssign(t *testing.T) {
	program := parseProgram(t, `x += 1;`)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	assign, ok := stmt.Expression.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "=", assign.Operator)

	rhs, ok := assign.Right.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "+", rhs.Operator)
}

func TestFunctionLiteralWithName(t *testing.T) {
	program := parseProgram(t, `let fact = fn(n) { return n; };`)
	let := program.Statements[0].(*ast.LetStatement)
	fn := let.Value.(*ast.FunctionLiteral)
	assert.Equal(t, "fact", fn.Name)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "n", fn.Parameters[0].Value)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, `if (x < y) { x } else { y }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ie := stmt.Expression.(*ast.IfExpression)
	assert.NotNil(t, ie.Consequence)
	assert.NotNil(t, ie.Alternative)
}

// TestIfConditionWithoutParens covers spec.md's own worked examples
// (`if x == 0 { ... }`), which have no parentheses around the
// condition at all.
func TestIfConditionWithoutParens(t *testing.T) {
	program := parseProgram(t, `if x == 0 { 0 } else if x == 1 { 1 } else { 2 }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ie := stmt.Expression.(*ast.IfExpression)
	assert.NotNil(t, ie.Consequence)
	assert.NotNil(t, ie.Alternative)
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, `while (x < 10) { x = x + 1; }`)
	ws, ok := program.Statements[0].(*ast.WhileStatement)
	require.True(t, ok)
	assert.NotNil(t, ws.Condition)
	assert.NotNil(t, ws.Body)
}

// TestWhileConditionWithoutParens covers the unparenthesized grammar
// original_source's parser uses.
func TestWhileConditionWithoutParens(t *testing.T) {
	program := parseProgram(t, `while x < 10 { x = x + 1; }`)
	ws, ok := program.Statements[0].(*ast.WhileStatement)
	require.True(t, ok)
	assert.NotNil(t, ws.Condition)
	assert.NotNil(t, ws.Body)
}

func TestForStatement(t *testing.T) {
	program := parseProgram(t, `for x in [1, 2, 3] { print(x); }`)
	fs, ok := program.Statements[0].(*ast.ForStatement)
	require.True(t, ok)
	assert.Equal(t, "x", fs.Name.Value)
	_, ok = fs.Iterable.(*ast.ArrayLiteral)
	assert.True(t, ok)
}

func TestHashLiteral(t *testing.T) {
	program := parseProgram(t, `({"one": 1, "two": 2});`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	assert.Len(t, hash.Keys, 2)
}

func TestCallExpressionArguments(t *testing.T) {
	program := parseProgram(t, `add(1, 2 * 3, 4 + 5);`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	assert.Len(t, call.Arguments, 3)
}

func TestParserRecordsErrorAndRecovers(t *testing.T) {
	p := New(lexer.New(`let = 5; let y = 10;`))
	program := p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
	// the malformed statement is skipped, but the well-formed one after
	// it still parses.
	var names []string
	for _, s := range program.Statements {
		if ls, ok := s.(*ast.LetStatement); ok {
			names = append(names, ls.Name.Value)
		}
	}
	assert.Contains(t, names, "y")
}
