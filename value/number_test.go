/*
File   : value/number_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_ArithmeticIdentities(t *testing.T) {
	n := NewInt(5)
	sum, err := n.Add(NewInt(0))
	require.Nil(t, err)
	assert.Equal(t, int64(5), sum.(*Number).I)

	prod, err := n.Mul(NewInt(1))
	require.Nil(t, err)
	assert.Equal(t, int64(5), prod.(*Number).I)

	diff, err := n.Sub(NewInt(5))
	require.Nil(t, err)
	assert.Equal(t, int64(0), diff.(*Number).I)
}

func TestNumber_FloatPromotion(t *testing.T) {
	sum, err := NewInt(1).Add(NewFlt(2.5))
	require.Nil(t, err)
	result := sum.(*Number)
	assert.Equal(t, SubFlt, result.Sub)
	assert.Equal(t, 3.5, result.F)
}

func TestNumber_DivisionByZero(t *testing.T) {
	_, err := NewInt(1).Div(NewInt(0))
	require.NotNil(t, err)
	assert.Equal(t, "RuntimeError", string(err.Kind))
}

func TestNumber_ModuloByZero(t *testing.T) {
	_, err := NewInt(1).Mod(NewInt(0))
	require.NotNil(t, err)
	assert.Equal(t, "RuntimeError", string(err.Kind))
}

func TestNumber_ComparisonAcrossVariantErrors(t *testing.T) {
	_, err := NewInt(1).Lt(NewString("x"))
	require.NotNil(t, err)
	assert.Equal(t, "NotImplemented", string(err.Kind))
}

func TestNumber_EqAcrossVariantIsFalseNotError(t *testing.T) {
	v, err := NewInt(1).Eq(NewString("x"))
	require.Nil(t, err)
	assert.False(t, v.IsTrue())
}

func TestNumber_CopyIsIndependent(t *testing.T) {
	n := NewInt(1)
	n.Meta().ConstFlag = true
	cp := n.Copy().(*Number)
	cp.I = 99
	assert.Equal(t, int64(1), n.I)
	assert.True(t, cp.Meta().ConstFlag)
}

func TestNumber_At_DigitIndexing(t *testing.T) {
	n := NewInt(123)
	d, err := n.At(NewInt(0))
	require.Nil(t, err)
	assert.Equal(t, int64(1), d.(*Number).I)

	d2, err := n.At(NewInt(-1))
	require.Nil(t, err)
	assert.Equal(t, int64(3), d2.(*Number).I)
}

func TestNumber_StringRoundTrip(t *testing.T) {
	assert.Equal(t, "5", NewInt(5).String())
	assert.Equal(t, "5.5", NewFlt(5.5).String())
	assert.Equal(t, "5.", NewFlt(5.0).String())
}
