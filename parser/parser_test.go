/*
File   : parser/parser_test.go
Package: parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *Capsule {
	t.Helper()
	p := NewParser(src, "<test>")
	cap := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return cap
}

func TestParse_SimpleAssignment(t *testing.T) {
	cap := parseOK(t, "a=1")
	require.Len(t, cap.Statements, 1)
	va, ok := cap.Statements[0].(*VarAssign)
	require.True(t, ok)
	assert.Equal(t, "a", va.Name)
	assert.Equal(t, "=", va.Op)
	assert.Equal(t, "", va.TypeTag)
}

func TestParse_TypeTaggedDeclaration(t *testing.T) {
	cap := parseOK(t, "int a=1")
	va := cap.Statements[0].(*VarAssign)
	assert.Equal(t, "int", va.TypeTag)
}

func TestParse_AugmentedAssignment(t *testing.T) {
	cap := parseOK(t, "a+=1")
	va := cap.Statements[0].(*VarAssign)
	assert.Equal(t, "+=", va.Op)
}

func TestParse_MultipleStatementsSeparatedByBreak(t *testing.T) {
	cap := parseOK(t, "a=1\nb=2\nc=3")
	assert.Len(t, cap.Statements, 3)
}

func TestParse_CallExpression(t *testing.T) {
	cap := parseOK(t, "foo(1 2)")
	call, ok := cap.Statements[0].(*Call)
	require.True(t, ok)
	callee, ok := call.Callee.(*VarAccess)
	require.True(t, ok)
	assert.Equal(t, "foo", callee.Name)
	assert.Len(t, call.Args, 2)
}

func TestParse_PropertyChainAssignment(t *testing.T) {
	cap := parseOK(t, "a.b.c=1")
	ra, ok := cap.Statements[0].(*ReferenceAssign)
	require.True(t, ok)
	assert.Equal(t, "=", ra.Op)
	require.Len(t, ra.Target.Steps, 2)
	assert.True(t, ra.Target.Steps[0].IsProperty)
	assert.Equal(t, "b", ra.Target.Steps[0].Name)
	assert.Equal(t, "c", ra.Target.Steps[1].Name)
}

func TestParse_IfElse(t *testing.T) {
	cap := parseOK(t, "if a==1 {\nb=1\n} else {\nb=2\n}")
	ifNode, ok := cap.Statements[0].(*If)
	require.True(t, ok)
	require.Len(t, ifNode.Conds, 1)
	require.NotNil(t, ifNode.Else)
}

func TestParse_StructDefWithInterface(t *testing.T) {
	cap := parseOK(t, "::p [x] {\ny=x\n.area <~: y\n}")
	sd, ok := cap.Statements[0].(*StructDef)
	require.True(t, ok)
	assert.Equal(t, "p", sd.Name)
	assert.Equal(t, []string{"x"}, sd.Params)
	require.Len(t, sd.Fields, 1)
	require.Len(t, sd.Interfaces, 1)
	assert.Equal(t, "area", sd.Interfaces[0].Name)
}

func TestParse_TryCatch(t *testing.T) {
	cap := parseOK(t, "try {\na=1\n} catch {\na=2\n}")
	eh, ok := cap.Statements[0].(*ErrorHandler)
	require.True(t, ok)
	require.NotNil(t, eh.TryBody)
	require.NotNil(t, eh.CatchBody)
}

func TestParse_UnopenedScopeRecordsError(t *testing.T) {
	p := NewParser("while a 1", "<test>")
	p.Parse()
	require.True(t, p.HasErrors())
	assert.Equal(t, "UnopenedScope", string(p.GetErrors()[0].Kind))
}

func TestParse_MissingClosingBraceRecordsError(t *testing.T) {
	p := NewParser("if a {\nb=1\n", "<test>")
	p.Parse()
	require.True(t, p.HasErrors())
	found := false
	for _, e := range p.GetErrors() {
		if string(e.Kind) == "UnclosedScope" {
			found = true
		}
	}
	assert.True(t, found)
}
