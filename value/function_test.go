/*
File   : value/function_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunction_StringIncludesNameAndParams(t *testing.T) {
	f := &Function{Name: "add", Params: []string{"a", "b"}}
	assert.Equal(t, "fn:add(a, b)", f.String())
}

func TestFunction_CopyPreservesFieldsNotIdentity(t *testing.T) {
	env := struct{}{}
	f := &Function{Name: "add", Params: []string{"a"}, Body: "body", AutoReturn: true, CapturedEnv: &env}
	f.Meta().ConstFlag = true

	cp := f.Copy().(*Function)
	require.NotSame(t, f, cp)
	assert.Equal(t, "add", cp.Name)
	assert.Equal(t, []string{"a"}, cp.Params)
	assert.True(t, cp.AutoReturn)
	assert.Same(t, f.CapturedEnv, cp.CapturedEnv, "closures share the captured environment")
	assert.True(t, cp.Meta().ConstFlag)
}

func TestFunction_IsTrueAlwaysTrue(t *testing.T) {
	assert.True(t, (&Function{}).IsTrue())
}

func TestStructGenerator_StringIncludesNameAndParams(t *testing.T) {
	g := &StructGenerator{Name: "point", Params: []string{"x", "y"}}
	assert.Equal(t, "struct:point(x, y)", g.String())
}

func TestStructGenerator_CopyIsIndependentValue(t *testing.T) {
	g := &StructGenerator{Name: "point", Params: []string{"x"}}
	cp := g.Copy().(*StructGenerator)
	require.NotSame(t, g, cp)
	assert.Equal(t, g.Name, cp.Name)
}

func TestBuiltInFunction_StringIncludesName(t *testing.T) {
	b := &BuiltInFunction{Name: "len", ParamNames: []string{"v"}}
	assert.Equal(t, "builtin:len", b.String())
}

func TestBuiltInFunction_CopyIsIndependentValue(t *testing.T) {
	b := &BuiltInFunction{Name: "len", ParamNames: []string{"v"}}
	cp := b.Copy().(*BuiltInFunction)
	require.NotSame(t, b, cp)
	assert.Equal(t, b.Name, cp.Name)
}
