package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashKeyCanonicalization(t *testing.T) {
	// spec.md §4.4: the string form of an int, a bool, and a string key
	// must never collide with each other despite sharing a dictionary.
	one := &Integer{Value: 1}
	oneStr := &String{Value: "1"}
	trueVal := &Boolean{Value: true}

	assert.NotEqual(t, one.HashKey(), oneStr.HashKey())
	assert.NotEqual(t, one.HashKey(), trueVal.HashKey())

	anotherOne := &Integer{Value: 1}
	assert.Equal(t, one.HashKey(), anotherOne.HashKey())
}

func TestNativeBoolReturnsSingletons(t *testing.T) {
	assert.Same(t, TRUE, NativeBool(true))
	assert.Same(t, FALSE, NativeBool(false))
}

func TestErrorRendersKindAndMessage(t *testing.T) {
	err := UndefinedVariableError("x")
	assert.Equal(t, "UndefinedVariable:\n\t'x' was used before it was defined", err.Error())
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(&Error{Kind: TypeError, Message: "boom"}))
	assert.False(t, IsError(&Integer{Value: 1}))
	assert.False(t, IsError(nil))
}
