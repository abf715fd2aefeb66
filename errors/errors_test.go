/*
File   : errors/errors_test.go
Package: errors
*/
package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shepherdp/SAFyR-dev/source"
)

func TestNew_FormatsMessageWithArgs(t *testing.T) {
	e := New(VariableAccess, source.Span{}, "undefined identifier %q", "x")
	assert.Equal(t, "undefined identifier \"x\"", e.Message)
	assert.Equal(t, VariableAccess, e.Kind)
}

func TestError_ErrorIncludesKindAndSpan(t *testing.T) {
	span := source.Span{Start: source.Position{Line: 2, Col: 4}}
	e := New(RuntimeErr, span, "boom")
	assert.Equal(t, "RuntimeError: [2:4] boom", e.Error())
}

func TestError_ErrorIncludesTracebackWhenPresent(t *testing.T) {
	e := New(RuntimeErr, source.Span{}, "boom")
	e.Push("fn:inner").Push("fn:outer")
	out := e.Error()
	assert.Contains(t, out, "Traceback (most recent call last):")
	assert.Contains(t, out, "in fn:outer")
	assert.Contains(t, out, "in fn:inner")
}

func TestError_TracebackOrdersMostRecentCallLast(t *testing.T) {
	e := New(RuntimeErr, source.Span{}, "boom")
	e.Push("fn:a").Push("fn:b")
	tb := e.Traceback()
	aIdx := indexOf(tb, "in fn:a")
	bIdx := indexOf(tb, "in fn:b")
	assert.True(t, bIdx < aIdx, "first-pushed (innermost) frame should render last")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestError_NoTracebackWhenTraceEmpty(t *testing.T) {
	e := New(RuntimeErr, source.Span{}, "boom")
	assert.NotContains(t, e.Error(), "Traceback")
}
