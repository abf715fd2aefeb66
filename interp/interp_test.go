/*
File   : interp/interp_test.go
Package: interp
*/
package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepherdp/SAFyR-dev/value"
)

func runOK(t *testing.T, src string) value.Value {
	t.Helper()
	var out bytes.Buffer
	it := New(&out, &bytes.Buffer{}, FileResolver{})
	v, err := it.Run(src, "<test>")
	require.Nil(t, err, "unexpected error: %v", err)
	return v
}

func TestAugmentedAssign_StaysDynamic(t *testing.T) {
	v := runOK(t, "a=1\na+=1\na")
	n := v.(*value.Number)
	assert.Equal(t, value.SubInt, n.Sub)
	assert.Equal(t, int64(2), n.I)
}

func TestStaticTag_CoercesOnRebind(t *testing.T) {
	v := runOK(t, "int a=1\na=6.\na")
	n := v.(*value.Number)
	assert.Equal(t, value.SubInt, n.Sub)
	assert.Equal(t, int64(6), n.I)
}

func TestStructNestedProperty_Access(t *testing.T) {
	src := "::u [a] {\nx=a\n}\nm=u(11)\ng=:: [b] {\ny=b\n}\nn=g(m)\nn.y.x"
	v := runOK(t, src)
	n := v.(*value.Number)
	assert.Equal(t, int64(11), n.I)
}

func TestStructNestedProperty_Reassign(t *testing.T) {
	src := "::u [a] {\nx=a\n}\nm=u(11)\ng=:: [b] {\ny=b\n}\nn=g(m)\nn.y.x=99\nn.y.x"
	v := runOK(t, src)
	n := v.(*value.Number)
	assert.Equal(t, int64(99), n.I)
}

func TestStringSub_RemovesOccurrences(t *testing.T) {
	v := runOK(t, `"babcb"-"b"`)
	assert.Equal(t, "ac", v.(*value.String).Val)
}

func TestStringDiv_SplitsDroppingEmpty(t *testing.T) {
	v := runOK(t, `"abc"/"b"`)
	lst := v.(*value.List)
	require.Len(t, lst.Elements, 2)
	assert.Equal(t, "a", lst.Elements[0].(*value.String).Val)
	assert.Equal(t, "c", lst.Elements[1].(*value.String).Val)
}

func TestWhenTrigger_FiresOnRebindThenWhileDrains(t *testing.T) {
	src := "a=1\nb=0\nwhen a==10: b=57\nwhile b!=57: a+=1"
	var out bytes.Buffer
	it := New(&out, &bytes.Buffer{}, FileResolver{})
	_, err := it.Run(src, "<test>")
	require.Nil(t, err)

	aVal, ok := it.Root.SymbolTable.Get("a")
	require.True(t, ok)
	bVal, ok := it.Root.SymbolTable.Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(10), aVal.(*value.Number).I)
	assert.Equal(t, int64(57), bVal.(*value.Number).I)
}

func TestTryCatch_RecoversFromDivisionByZero(t *testing.T) {
	v := runOK(t, "a=1\ntry {\na=a/0\n} catch {\na=3\n}\na")
	assert.Equal(t, int64(3), v.(*value.Number).I)
}

func TestTryCatch_NoErrorLeavesTryResult(t *testing.T) {
	v := runOK(t, "a=1\ntry {\na=a/1\n} catch {\na=3\n}\na")
	assert.Equal(t, int64(1), v.(*value.Number).I)
}
