/*
File   : builtin/collections_test.go
Package: builtin
*/
package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepherdp/SAFyR-dev/value"
)

func TestPopFn_RemovesAndReturnsLast(t *testing.T) {
	l := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
	v, err := popFn(nil, nil, l)
	require.Nil(t, err)
	assert.Equal(t, int64(2), v.(*value.Number).I)
	assert.Len(t, l.Elements, 1)
}

func TestPopFn_EmptyListErrors(t *testing.T) {
	l := value.NewList(nil)
	_, err := popFn(nil, nil, l)
	require.NotNil(t, err)
	assert.Equal(t, "OutOfBounds", string(err.Kind))
}

func TestAppendFn_MutatesAndReturnsList(t *testing.T) {
	l := value.NewList([]value.Value{value.NewInt(1)})
	v, err := appendFn(nil, nil, l, value.NewInt(2))
	require.Nil(t, err)
	assert.Len(t, v.(*value.List).Elements, 2)
	assert.Len(t, l.Elements, 2)
}

func TestAppendFn_WrongTypeErrors(t *testing.T) {
	_, err := appendFn(nil, nil, value.NewInt(1), value.NewInt(2))
	require.NotNil(t, err)
	assert.Equal(t, "InvalidArgumentSet", string(err.Kind))
}

func TestExtendFn_AppendsAllElements(t *testing.T) {
	l := value.NewList([]value.Value{value.NewInt(1)})
	o := value.NewList([]value.Value{value.NewInt(2), value.NewInt(3)})
	v, err := extendFn(nil, nil, l, o)
	require.Nil(t, err)
	assert.Len(t, v.(*value.List).Elements, 3)
}

func TestKeysFn_ReturnsInsertionOrder(t *testing.T) {
	m := value.NewMap()
	m.Set(value.NewString("b"), value.NewInt(1))
	m.Set(value.NewString("a"), value.NewInt(2))
	v, err := keysFn(nil, nil, m)
	require.Nil(t, err)
	keys := v.(*value.List).Elements
	require.Len(t, keys, 2)
	assert.Equal(t, "b", keys[0].(*value.String).Val)
}

func TestValuesFn_MatchesKeyOrder(t *testing.T) {
	m := value.NewMap()
	m.Set(value.NewString("a"), value.NewInt(1))
	m.Set(value.NewString("b"), value.NewInt(2))
	v, err := valuesFn(nil, nil, m)
	require.Nil(t, err)
	vals := v.(*value.List).Elements
	require.Len(t, vals, 2)
	assert.Equal(t, int64(1), vals[0].(*value.Number).I)
	assert.Equal(t, int64(2), vals[1].(*value.Number).I)
}

func TestLenFn_AcrossContainerKinds(t *testing.T) {
	s, err := lenFn(nil, nil, value.NewString("abc"))
	require.Nil(t, err)
	assert.Equal(t, int64(3), s.(*value.Number).I)

	l, err := lenFn(nil, nil, value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)}))
	require.Nil(t, err)
	assert.Equal(t, int64(2), l.(*value.Number).I)
}

func TestLenFn_UnsupportedTypeErrors(t *testing.T) {
	_, err := lenFn(nil, nil, value.NewInt(1))
	require.NotNil(t, err)
	assert.Equal(t, "InvalidArgumentSet", string(err.Kind))
}

func TestTypeFns(t *testing.T) {
	v, err := typeFn(nil, nil, value.NewInt(1))
	require.Nil(t, err)
	assert.Equal(t, "INT", v.(*value.String).Val)

	b, err := isnumFn(nil, nil, value.NewInt(1))
	require.Nil(t, err)
	assert.True(t, b.IsTrue())

	b2, err := isstrFn(nil, nil, value.NewInt(1))
	require.Nil(t, err)
	assert.False(t, b2.IsTrue())
}
