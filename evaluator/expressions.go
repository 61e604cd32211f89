package evaluator

import (
	"github.com/helium-lang/helium/ast"
	"github.com/helium-lang/helium/environment"
	"github.com/helium-lang/helium/object"
)

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.Builtins[node.Value]; ok {
		return builtin
	}
	return object.UndefinedVariableError(node.Value)
}

func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return object.NativeBool(!isTruthy(right))
	case "-":
		intg, ok := right.(*object.Integer)
		if !ok {
			return object.UnknownOperatorError(operator, right)
		}
		return &object.Integer{Value: -intg.Value}
	default:
		return object.UnknownOperatorError(operator, right)
	}
}

// isTruthy implements spec.md §4.4's truthiness table: false and null
// are falsy, every other value (including 0 and "") is truthy.
func isTruthy(obj object.Object) bool {
	switch obj {
	case object.NULL:
		return false
	case object.TRUE:
		return true
	case object.FALSE:
		return false
	default:
		return true
	}
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *environment.Environment) object.Object {
	if node.Operator == "=" {
		return e.evalAssignExpression(node, env)
	}

	left := e.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if object.IsError(right) {
		return right
	}

	switch {
	case left.Type() == object.IntegerType && right.Type() == object.IntegerType:
		return evalIntegerInfixExpression(node.Operator, left.(*object.Integer), right.(*object.Integer))
	case left.Type() == object.StringType && right.Type() == object.StringType:
		return evalStringInfixExpression(node.Operator, left.(*object.String), right.(*object.String))
	case node.Operator == "==":
		return object.NativeBool(left == right || sameValue(left, right))
	case node.Operator == "!=":
		return object.NativeBool(!(left == right || sameValue(left, right)))
	case left.Type() != right.Type():
		return object.TypeMismatchError(node.Operator, left, right)
	default:
		return object.UnknownOperatorError(node.Operator, left)
	}
}

// sameValue compares two objects of the same concrete type by value:
// booleans and null compare trivially, arrays and hashes compare
// structurally element-by-element/pair-by-pair (spec.md §4.4, "two
// values are equal iff same kind and structurally equal"), rather than
// falling back to pointer identity for container types.
func sameValue(left, right object.Object) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case *object.Boolean:
		return l.Value == right.(*object.Boolean).Value
	case *object.Null:
		return true
	case *object.Array:
		r := right.(*object.Array)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i, elem := range l.Elements {
			if !objectsEqual(elem, r.Elements[i]) {
				return false
			}
		}
		return true
	case *object.Hash:
		r := right.(*object.Hash)
		if len(l.Pairs) != len(r.Pairs) {
			return false
		}
		for key, pair := range l.Pairs {
			other, ok := r.Pairs[key]
			if !ok || !objectsEqual(pair.Value, other.Value) {
				return false
			}
		}
		return true
	}
	return false
}

// objectsEqual is the element-level equality sameValue's Array/Hash
// cases apply to each member, so nested arrays/hashes compare
// structurally too, not just one level deep.
func objectsEqual(left, right object.Object) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case *object.Integer:
		return l.Value == right.(*object.Integer).Value
	case *object.String:
		return l.Value == right.(*object.String).Value
	default:
		return left == right || sameValue(left, right)
	}
}

func evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Object {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return object.DivisionByZeroError()
		}
		// Integer division truncates toward zero, Go's native int64
		// behavior (SPEC_FULL.md §6 decision).
		return &object.Integer{Value: left.Value / right.Value}
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "<=":
		return object.NativeBool(left.Value <= right.Value)
	case ">=":
		return object.NativeBool(left.Value >= right.Value)
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return object.UnknownOperatorError(operator, left)
	}
}

func evalStringInfixExpression(operator string, left, right *object.String) object.Object {
	switch operator {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return object.UnknownOperatorError(operator, left)
	}
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *environment.Environment) object.Object {
	condition := e.Eval(node.Condition, env)
	if object.IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(node.Consequence, env)
	} else if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return object.NULL
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *environment.Environment) object.Object {
	left := e.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if object.IsError(index) {
		return index
	}

	switch {
	case left.Type() == object.ArrayType && index.Type() == object.IntegerType:
		arr := left.(*object.Array)
		idx := index.(*object.Integer).Value
		if idx < 0 || idx >= int64(len(arr.Elements)) {
			return object.IndexErrorf(left, index)
		}
		return arr.Elements[idx]
	case left.Type() == object.HashType:
		hashable, ok := index.(object.Hashable)
		if !ok {
			return object.IndexErrorf(left, index)
		}
		hash := left.(*object.Hash)
		pair, ok := hash.Pairs[hashable.HashKey()]
		if !ok {
			return object.NULL
		}
		return pair.Value
	default:
		return object.IndexErrorf(left, index)
	}
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *environment.Environment) object.Object {
	hash := object.NewHash()

	for i, keyNode := range node.Keys {
		key := e.Eval(keyNode, env)
		if object.IsError(key) {
			return key
		}
		hashable, ok := key.(object.Hashable)
		if !ok {
			return object.TypeErrorf("a hashable key", key)
		}

		val := e.Eval(node.Vals[i], env)
		if object.IsError(val) {
			return val
		}

		hash.Pairs[hashable.HashKey()] = object.HashPair{Key: key, Value: val}
	}

	return hash
}

// evalAssignExpression handles `target = value`. target is inspected
// syntactically rather than evaluated (assigning never reads the old
// value through Eval) so the left-hand side determines the write
// target: a bare identifier rebinds in the scope where it was
// originally declared, an index expression mutates the container
// in place (spec.md §9 "Assignment evaluation order").
func (e *Evaluator) evalAssignExpression(node *ast.InfixExpression, env *environment.Environment) object.Object {
	val := e.Eval(node.Right, env)
	if object.IsError(val) {
		return val
	}

	switch target := node.Left.(type) {
	case *ast.Identifier:
		if !env.Assign(target.Value, val) {
			return object.UndefinedVariableError(target.Value)
		}
		return val

	case *ast.IndexExpression:
		container := e.Eval(target.Left, env)
		if object.IsError(container) {
			return container
		}
		index := e.Eval(target.Index, env)
		if object.IsError(index) {
			return index
		}

		switch c := container.(type) {
		case *object.Array:
			idx, ok := index.(*object.Integer)
			if !ok {
				return object.IndexErrorf(container, index)
			}
			if idx.Value < 0 || idx.Value >= int64(len(c.Elements)) {
				return object.IndexErrorf(container, index)
			}
			c.Elements[idx.Value] = val
			return val
		case *object.Hash:
			hashable, ok := index.(object.Hashable)
			if !ok {
				return object.TypeErrorf("a hashable key", index)
			}
			c.Pairs[hashable.HashKey()] = object.HashPair{Key: index, Value: val}
			return val
		default:
			return object.IndexErrorf(container, index)
		}

	default:
		evaluatedTarget := e.Eval(node.Left, env)
		if object.IsError(evaluatedTarget) {
			return evaluatedTarget
		}
		return object.CannotAssignError(evaluatedTarget)
	}
}
