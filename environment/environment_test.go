package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helium-lang/helium/object"
)

func TestGetWalksParentChain(t *testing.T) {
	outer := New()
	outer.Set("x", &object.Integer{Value: 1})
	inner := NewEnclosed(outer)

	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*object.Integer).Value)
}

func TestSetShadowsInCurrentFrameOnly(t *testing.T) {
	outer := New()
	outer.Set("x", &object.Integer{Value: 1})
	inner := NewEnclosed(outer)
	inner.Set("x", &object.Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, int64(2), innerVal.(*object.Integer).Value)
	assert.Equal(t, int64(1), outerVal.(*object.Integer).Value)
}

func TestAssignMutatesOuterFrameInPlace(t *testing.T) {
	outer := New()
	outer.Set("count", &object.Integer{Value: 0})
	inner := NewEnclosed(outer)

	ok := inner.Assign("count", &object.Integer{Value: 5})
	assert.True(t, ok)

	val, _ := outer.Get("count")
	assert.Equal(t, int64(5), val.(*object.Integer).Value)
}

func TestAssignUndefinedReturnsFalse(t *testing.T) {
	env := New()
	ok := env.Assign("ghost", &object.Integer{Value: 1})
	assert.False(t, ok)
}

func TestSharedFrameVisibleToBothClosures(t *testing.T) {
	// Two closures built from the same call frame must observe each
	// other's writes (spec.md §8 "adder" scenario).
	shared := New()
	shared.Set("count", &object.Integer{Value: 0})

	closureA := NewEnclosed(shared)
	closureB := NewEnclosed(shared)

	closureA.Assign("count", &object.Integer{Value: 10})
	val, _ := closureB.Get("count")
	assert.Equal(t, int64(10), val.(*object.Integer).Value)
}
