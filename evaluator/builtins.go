package evaluator

import (
	"fmt"

	"github.com/helium-lang/helium/object"
)

// registerBuiltins wires up the built-in function table. The set
// (len, first, last, rest, push, print) is spec.md §3's built-ins
// list; print routes through the Evaluator's configured writer the
// same way the teacher's std.print writes through an io.Writer rather
// than hardcoding os.Stdout (std/common.go), which is what lets the
// REPL and the tests capture output.
func registerBuiltins(e *Evaluator) map[string]*object.Builtin {
	builtins := map[string]*object.Builtin{
		"len":   {Name: "len", Fn: builtinLen},
		"first": {Name: "first", Fn: builtinFirst},
		"last":  {Name: "last", Fn: builtinLast},
		"rest":  {Name: "rest", Fn: builtinRest},
		"push":  {Name: "push", Fn: builtinPush},
	}
	builtins["print"] = &object.Builtin{Name: "print", Fn: e.builtinPrint}
	return builtins
}

func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return object.WrongParametersError(1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return object.TypeErrorf("a string or array", args[0])
	}
}

// builtinFirst returns the first element of an array, or the first
// character of a string as a one-character String (spec.md §4.6);
// first('') and first([]) are null, not an error (spec.md §8).
func builtinFirst(args ...object.Object) object.Object {
	if len(args) != 1 {
		return object.WrongParametersError(1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.Array:
		if len(arg.Elements) == 0 {
			return object.NULL
		}
		return arg.Elements[0]
	case *object.String:
		if len(arg.Value) == 0 {
			return object.NULL
		}
		return &object.String{Value: arg.Value[:1]}
	default:
		return object.TypeErrorf("a string or array", args[0])
	}
}

// builtinLast is symmetric with builtinFirst: last element of an
// array, or last character of a string.
func builtinLast(args ...object.Object) object.Object {
	if len(args) != 1 {
		return object.WrongParametersError(1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.Array:
		if len(arg.Elements) == 0 {
			return object.NULL
		}
		return arg.Elements[len(arg.Elements)-1]
	case *object.String:
		if len(arg.Value) == 0 {
			return object.NULL
		}
		return &object.String{Value: arg.Value[len(arg.Value)-1:]}
	default:
		return object.TypeErrorf("a string or array", args[0])
	}
}

func builtinRest(args ...object.Object) object.Object {
	if len(args) != 1 {
		return object.WrongParametersError(1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.TypeErrorf("an array", args[0])
	}
	if len(arr.Elements) == 0 {
		return object.NULL
	}
	rest := make([]object.Object, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &object.Array{Elements: rest}
}

// builtinPush returns a new array with val appended, leaving the
// original untouched — Helium arrays are otherwise mutable in place
// via index-assignment, but push follows the Monkey-book convention
// of returning a fresh array so existing references aren't surprised.
// For a string collection, push concatenates val coerced to its
// textual form onto the string (spec.md §4.6).
func builtinPush(args ...object.Object) object.Object {
	if len(args) != 2 {
		return object.WrongParametersError(2, len(args))
	}
	switch coll := args[0].(type) {
	case *object.Array:
		newElements := make([]object.Object, len(coll.Elements), len(coll.Elements)+1)
		copy(newElements, coll.Elements)
		newElements = append(newElements, args[1])
		return &object.Array{Elements: newElements}
	case *object.String:
		return &object.String{Value: coll.Value + args[1].Inspect()}
	default:
		return object.TypeErrorf("a string or array", args[0])
	}
}

func (e *Evaluator) builtinPrint(args ...object.Object) object.Object {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.Inspect()
	}
	for i, p := range parts {
		if i > 0 {
			fmt.Fprint(e.Out, " ")
		}
		fmt.Fprint(e.Out, p)
	}
	fmt.Fprintln(e.Out)
	return object.NULL
}
