package evaluator

import (
	"github.com/helium-lang/helium/ast"
	"github.com/helium-lang/helium/environment"
	"github.com/helium-lang/helium/object"
)

// evalWhileStatement re-evaluates Condition before every iteration and
// exits as soon as a ReturnValue or Error escapes the body, letting
// `return` inside a while loop unwind past it (spec.md §4.2).
func (e *Evaluator) evalWhileStatement(node *ast.WhileStatement, env *environment.Environment) object.Object {
	for {
		condition := e.Eval(node.Condition, env)
		if object.IsError(condition) {
			return condition
		}
		if !isTruthy(condition) {
			break
		}

		result := e.Eval(node.Body, env)
		if result != nil {
			rt := result.Type()
			if rt == object.ReturnType || rt == object.ErrorType {
				return result
			}
		}
	}

	return object.NULL
}

// evalForStatement iterates an Array value, binding Name to each
// element via Set in the enclosing scope itself, not a fresh frame per
// iteration (spec.md §4.5). A non-Array iterable is a TypeError.
func (e *Evaluator) evalForStatement(node *ast.ForStatement, env *environment.Environment) object.Object {
	iterable := e.Eval(node.Iterable, env)
	if object.IsError(iterable) {
		return iterable
	}

	arr, ok := iterable.(*object.Array)
	if !ok {
		return object.TypeErrorf("an array", iterable)
	}

	for _, elem := range arr.Elements {
		env.Set(node.Name.Value, elem)

		result := e.Eval(node.Body, env)
		if result != nil {
			rt := result.Type()
			if rt == object.ReturnType || rt == object.ErrorType {
				return result
			}
		}
	}

	return object.NULL
}
