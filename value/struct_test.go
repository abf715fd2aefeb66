/*
File   : value/struct_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_SetPropertyTracksInsertionOrder(t *testing.T) {
	s := NewStruct("point")
	s.SetProperty("y", NewInt(2))
	s.SetProperty("x", NewInt(1))
	require.Equal(t, []string{"y", "x"}, s.PropOrder)
	assert.Equal(t, "point{y=2, x=1}", s.String())
}

func TestStruct_SetPropertyOverwriteKeepsOrder(t *testing.T) {
	s := NewStruct("point")
	s.SetProperty("x", NewInt(1))
	s.SetProperty("y", NewInt(2))
	s.SetProperty("x", NewInt(99))
	require.Equal(t, []string{"x", "y"}, s.PropOrder)
	assert.Equal(t, int64(99), s.Properties["x"].(*Number).I)
}

func TestStruct_CopyDuplicatesPropertiesAndInterfaces(t *testing.T) {
	s := NewStruct("point")
	s.SetProperty("x", NewInt(1))
	s.Interfaces["area"] = "marker"

	cp := s.Copy().(*Struct)
	require.NotSame(t, s, cp)
	assert.Equal(t, int64(1), cp.Properties["x"].(*Number).I)

	cp.Properties["x"].(*Number).I = 42
	assert.Equal(t, int64(1), s.Properties["x"].(*Number).I, "copy must be deep")

	require.Contains(t, cp.Interfaces, "area")
	assert.Equal(t, "marker", cp.Interfaces["area"], "interface entries must survive Copy, not be flattened to a bool")
}

func TestStruct_EqComparesPropertiesByName(t *testing.T) {
	a := NewStruct("point")
	a.SetProperty("x", NewInt(1))
	a.SetProperty("y", NewInt(2))
	b := NewStruct("point")
	b.SetProperty("x", NewInt(1))
	b.SetProperty("y", NewInt(2))

	eq, err := a.Eq(b)
	require.Nil(t, err)
	assert.True(t, eq.IsTrue())

	b.SetProperty("y", NewInt(3))
	eq, err = a.Eq(b)
	require.Nil(t, err)
	assert.False(t, eq.IsTrue())
}

func TestStruct_NeNegatesEq(t *testing.T) {
	a := NewStruct("point")
	b := NewStruct("point")
	ne, err := a.Ne(b)
	require.Nil(t, err)
	assert.False(t, ne.IsTrue())
}

func TestStruct_EqFalseForDifferentPropertyCount(t *testing.T) {
	a := NewStruct("point")
	a.SetProperty("x", NewInt(1))
	b := NewStruct("point")
	eq, err := a.Eq(b)
	require.Nil(t, err)
	assert.False(t, eq.IsTrue())
}

func TestStruct_IsTrueAlwaysTrue(t *testing.T) {
	assert.True(t, NewStruct("point").IsTrue())
}
