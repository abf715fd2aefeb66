/*
File   : value/list_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AddConcatenates(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	b := NewList([]Value{NewInt(3)})
	sum, err := a.Add(b)
	require.Nil(t, err)
	assert.Equal(t, 3, len(sum.(*List).Elements))
}

func TestList_SubRemovesMatchingElements(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2), NewInt(3)})
	b := NewList([]Value{NewInt(2)})
	diff, err := a.Sub(b)
	require.Nil(t, err)
	out := diff.(*List).Elements
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].(*Number).I)
	assert.Equal(t, int64(3), out[1].(*Number).I)
}

func TestList_MulZipsEqualLength(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	b := NewList([]Value{NewString("a"), NewString("b")})
	zipped, err := a.Mul(b)
	require.Nil(t, err)
	pairs := zipped.(*List).Elements
	require.Len(t, pairs, 2)
	first := pairs[0].(*List).Elements
	assert.Equal(t, int64(1), first[0].(*Number).I)
	assert.Equal(t, "a", first[1].(*String).Val)
}

func TestList_MulRejectsUnequalLength(t *testing.T) {
	a := NewList([]Value{NewInt(1)})
	b := NewList([]Value{NewInt(1), NewInt(2)})
	_, err := a.Mul(b)
	require.NotNil(t, err)
}

func TestList_DivChunks(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2), NewInt(3), NewInt(4), NewInt(5)})
	chunks, err := a.Div(NewInt(2))
	require.Nil(t, err)
	out := chunks.(*List).Elements
	require.Len(t, out, 3)
	assert.Len(t, out[0].(*List).Elements, 2)
	assert.Len(t, out[2].(*List).Elements, 1)
}

func TestList_At_NegativeIndex(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2), NewInt(3)})
	last, err := a.At(NewInt(-1))
	require.Nil(t, err)
	assert.Equal(t, int64(3), last.(*Number).I)
}

func TestList_At_OutOfBounds(t *testing.T) {
	a := NewList([]Value{NewInt(1)})
	_, err := a.At(NewInt(5))
	require.NotNil(t, err)
	assert.Equal(t, "OutOfBounds", string(err.Kind))
}

func TestList_Contains(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	v, err := a.Contains(NewInt(2))
	require.Nil(t, err)
	assert.True(t, v.IsTrue())
}

func TestList_CopyIsDeep(t *testing.T) {
	inner := NewList([]Value{NewInt(1)})
	outer := NewList([]Value{inner})
	cp := outer.Copy().(*List)
	cp.Elements[0].(*List).Elements[0].(*Number).I = 99
	assert.Equal(t, int64(1), inner.Elements[0].(*Number).I)
}
