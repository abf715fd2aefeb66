/*
File   : builtin/misc_test.go
Package: builtin
*/
package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepherdp/SAFyR-dev/value"
)

func TestRangeFn_AscendingDefaultStep(t *testing.T) {
	v, err := rangeFn(nil, nil, value.NewInt(1), value.NewInt(3))
	require.Nil(t, err)
	lst := v.(*value.List).Elements
	require.Len(t, lst, 3)
	assert.Equal(t, int64(1), lst[0].(*value.Number).I)
	assert.Equal(t, int64(3), lst[2].(*value.Number).I)
}

func TestRangeFn_DescendingDefaultStep(t *testing.T) {
	v, err := rangeFn(nil, nil, value.NewInt(3), value.NewInt(1))
	require.Nil(t, err)
	lst := v.(*value.List).Elements
	require.Len(t, lst, 3)
	assert.Equal(t, int64(3), lst[0].(*value.Number).I)
	assert.Equal(t, int64(1), lst[2].(*value.Number).I)
}

func TestRangeFn_ExplicitStep(t *testing.T) {
	v, err := rangeFn(nil, nil, value.NewInt(0), value.NewInt(10), value.NewInt(5))
	require.Nil(t, err)
	lst := v.(*value.List).Elements
	require.Len(t, lst, 3)
	assert.Equal(t, int64(10), lst[2].(*value.Number).I)
}

func TestRangeFn_ZeroStepErrors(t *testing.T) {
	_, err := rangeFn(nil, nil, value.NewInt(0), value.NewInt(10), value.NewInt(0))
	require.NotNil(t, err)
	assert.Equal(t, "InvalidArgumentSet", string(err.Kind))
}

func TestRandFn_NoArgsReturnsFloatInUnitRange(t *testing.T) {
	v, err := randFn(nil, nil)
	require.Nil(t, err)
	f := v.(*value.Number).F
	assert.GreaterOrEqual(t, f, 0.0)
	assert.Less(t, f, 1.0)
}

func TestRandFn_TwoArgsReturnsIntWithinBounds(t *testing.T) {
	v, err := randFn(nil, nil, value.NewInt(5), value.NewInt(5))
	require.Nil(t, err)
	assert.Equal(t, int64(5), v.(*value.Number).I)
}

func TestRandFn_HighLessThanLowErrors(t *testing.T) {
	_, err := randFn(nil, nil, value.NewInt(5), value.NewInt(1))
	require.NotNil(t, err)
	assert.Equal(t, "InvalidArgumentSet", string(err.Kind))
}
