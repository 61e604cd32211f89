/*
Package evaluator walks a Helium AST and produces runtime object.Object
values.

Eval is a direct type-switch dispatcher in the Monkey-book tradition —
the teacher's go-mix also drives evaluation from a central type switch
(eval.Evaluator.Eval in eval/eval_expressions.go), so that shape is
kept; what changes is the node set (Helium's, not Go-Mix's) and the
environment model (shared-reference frames, see package environment,
rather than scope.Scope.Copy() snapshots).
*/
package evaluator

import (
	"io"
	"os"

	"github.com/helium-lang/helium/ast"
	"github.com/helium-lang/helium/environment"
	"github.com/helium-lang/helium/object"
)

// Evaluator holds the state shared across a single evaluation run:
// where builtins write their output, and the registry of built-in
// functions available to every scope.
type Evaluator struct {
	Out      io.Writer
	Builtins map[string]*object.Builtin
}

// New creates an Evaluator that writes builtin output to os.Stdout.
func New() *Evaluator {
	e := &Evaluator{Out: os.Stdout}
	e.Builtins = registerBuiltins(e)
	return e
}

// NewWithWriter creates an Evaluator writing builtin output to w,
// primarily so tests can capture output (mirrors the teacher's
// Evaluator.SetWriter for the same purpose).
func NewWithWriter(w io.Writer) *Evaluator {
	e := &Evaluator{Out: w}
	e.Builtins = registerBuiltins(e)
	return e
}

// Eval evaluates node in the given environment and returns the
// resulting object. Evaluation never panics: anomalies surface as
// *object.Error values that flow through the same return channel as
// any other result.
func (e *Evaluator) Eval(node ast.Node, env *environment.Environment) object.Object {
	switch node := node.(type) {

	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *ast.LetStatement:
		val := e.Eval(node.Value, env)
		if object.IsError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return object.NULL

	case *ast.ReturnStatement:
		val := e.Eval(node.ReturnValue, env)
		if object.IsError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.WhileStatement:
		return e.evalWhileStatement(node, env)

	case *ast.ForStatement:
		return e.evalForStatement(node, env)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Boolean:
		return object.NativeBool(node.Value)

	case *ast.NullLiteral:
		return object.NULL

	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && object.IsError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}

	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if object.IsError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)

	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		fn := &object.Function{
			Name:       node.Name,
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env,
		}
		// A named function binds itself in its own defining scope so
		// recursive calls resolve the name (spec.md §4.5 "named
		// recursive functions"), grounded on the teacher's
		// RegisterFunction which captures e.Scp directly, not a copy.
		if node.Name != "" {
			env.Set(node.Name, fn)
		}
		return fn

	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	}

	return object.NULL
}

func (e *Evaluator) evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement deliberately does NOT unwrap a ReturnValue: it
// must keep propagating up through nested If/While/For until a call
// boundary (applyFunction) or the program root unwraps it, which is
// how an early return exits every enclosing construct (spec.md §4.2).
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	child := environment.NewEnclosed(env)
	var result object.Object = object.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, child)

		if result != nil {
			rt := result.Type()
			if rt == object.ReturnType || rt == object.ErrorType {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalExpressions(exps []ast.Expression, env *environment.Environment) []object.Object {
	var result []object.Object

	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if object.IsError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}
