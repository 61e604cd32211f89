package evaluator

import (
	"github.com/helium-lang/helium/ast"
	"github.com/helium-lang/helium/environment"
	"github.com/helium-lang/helium/object"
)

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *environment.Environment) object.Object {
	fn := e.Eval(node.Function, env)
	if object.IsError(fn) {
		return fn
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && object.IsError(args[0]) {
		return args[0]
	}

	return e.applyFunction(fn, args)
}

// applyFunction unwraps a ReturnValue at the call boundary: a `return`
// inside the callee's body stops propagating exactly here, never
// further out (spec.md §4.2). evalProgram does the same for a `return`
// at the top level of a program.
func (e *Evaluator) applyFunction(fn object.Object, args []object.Object) object.Object {
	switch fn := fn.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return object.WrongParametersError(len(fn.Parameters), len(args))
		}

		callEnv := environment.NewEnclosed(fn.Env.(*environment.Environment))
		for i, param := range fn.Parameters {
			callEnv.Set(param.Value, args[i])
		}

		result := e.Eval(fn.Body, callEnv)
		if rv, ok := result.(*object.ReturnValue); ok {
			return rv.Value
		}
		return result

	case *object.Builtin:
		return fn.Fn(args...)

	default:
		return object.NewCallError(fn)
	}
}
