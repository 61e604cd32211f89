package object

import "fmt"

// ErrorKind classifies a runtime error. The set and wording are
// recovered from original_source/src/error.rs, which the distilled
// spec.md didn't fully reproduce (SPEC_FULL.md §5).
type ErrorKind string

const (
	TypeMismatch      ErrorKind = "TypeMismatch"
	UnknownOperator   ErrorKind = "UnknownOperator"
	UndefinedVariable ErrorKind = "UndefinedVariable"
	WrongParameters   ErrorKind = "WrongParameters"
	CallError         ErrorKind = "CallError"
	TypeError         ErrorKind = "TypeError"
	IndexError        ErrorKind = "IndexError"
	CannotAssign      ErrorKind = "CannotAssign"
	DivisionByZero    ErrorKind = "DivisionByZero"
)

// Error is the runtime error Object. It flows through Eval exactly
// like any other value until a caller checks for it; a call or a
// program boundary turns it into a fatal condition.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Type() Type      { return ErrorType }
func (e *Error) Inspect() string { return e.Error() }

// Error renders as "Kind:\n\tmessage", matching the original
// interpreter's Display impl so error output reads the same.
func (e *Error) Error() string {
	return fmt.Sprintf("%s:\n\t%s", e.Kind, e.Message)
}

func Newf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func TypeMismatchError(operator string, left, right Object) *Error {
	return Newf(TypeMismatch, "cannot use '%s' on %s and %s", operator, left.Type(), right.Type())
}

func UnknownOperatorError(operator string, obj Object) *Error {
	return Newf(UnknownOperator, "cannot use '%s' on %s", operator, obj.Type())
}

func UndefinedVariableError(name string) *Error {
	return Newf(UndefinedVariable, "'%s' was used before it was defined", name)
}

func WrongParametersError(expected, got int) *Error {
	return Newf(WrongParameters, "expected %d parameters, got %d instead", expected, got)
}

func NewCallError(obj Object) *Error {
	return Newf(CallError, "%s is not a function", obj.Inspect())
}

func TypeErrorf(expected string, got Object) *Error {
	return Newf(TypeError, "expected %s, got %s instead", expected, got.Type())
}

func IndexErrorf(iterable, index Object) *Error {
	return Newf(IndexError, "cannot index %s with %s", iterable.Type(), index.Inspect())
}

func CannotAssignError(obj Object) *Error {
	return Newf(CannotAssign, "cannot assign to %s", obj.Inspect())
}

func DivisionByZeroError() *Error {
	return Newf(DivisionByZero, "division by zero")
}

// IsError reports whether obj is a runtime *Error, the idiom Eval uses
// throughout to short-circuit on failure without panicking.
func IsError(obj Object) bool {
	if obj == nil {
		return false
	}
	_, ok := obj.(*Error)
	return ok
}
