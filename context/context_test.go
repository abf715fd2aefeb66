/*
File   : context/context_test.go
Package: context
*/
package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepherdp/SAFyR-dev/value"
)

func TestSymbolTable_GetLocalWinsOverParent(t *testing.T) {
	root := NewSymbolTable(nil)
	root.Set("a", value.NewInt(1))
	child := NewSymbolTable(root)
	child.Set("a", value.NewInt(2))
	v, ok := child.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.(*value.Number).I)
}

func TestSymbolTable_GlobalAscendsToDescendants(t *testing.T) {
	root := NewSymbolTable(nil)
	root.Set("g", value.NewInt(7))
	root.MarkGlobal("g")
	child := NewSymbolTable(root)
	grandchild := NewSymbolTable(child)

	v, ok := grandchild.Get("g")
	require.True(t, ok)
	assert.Equal(t, int64(7), v.(*value.Number).I)

	owner, ok := grandchild.Owner("g")
	require.True(t, ok)
	assert.Same(t, root, owner)
}

func TestSymbolTable_NonGlobalParentBindingIsInvisible(t *testing.T) {
	root := NewSymbolTable(nil)
	root.Set("a", value.NewInt(1))
	child := NewSymbolTable(root)
	_, ok := child.Get("a")
	assert.False(t, ok)
}

func TestSymbolTable_SnapshotRestore(t *testing.T) {
	st := NewSymbolTable(nil)
	st.Set("a", value.NewInt(1))
	snap := st.Snapshot()
	st.Set("a", value.NewInt(99))
	st.Set("b", value.NewInt(2))
	st.Restore(snap)

	v, ok := st.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.Number).I)
	_, ok = st.Get("b")
	assert.False(t, ok)
}

func TestSymbolTable_RemoveDropsBindingAndTriggers(t *testing.T) {
	st := NewSymbolTable(nil)
	st.Set("a", value.NewInt(1))
	st.Triggers["a"] = []*value.Trigger{{}}
	st.Remove("a")
	_, ok := st.Get("a")
	assert.False(t, ok)
	assert.Empty(t, st.Triggers["a"])
}

func TestContext_StaticInheritedFromParent(t *testing.T) {
	root := NewContext("<root>", nil)
	root.Static = true
	child := NewContext("child", root)
	assert.True(t, child.Static)
}

func TestContext_IsStructContext(t *testing.T) {
	s := NewContext("struct:point", nil)
	assert.True(t, s.IsStructContext())
	n := NewContext("fn:main", nil)
	assert.False(t, n.IsStructContext())
}

func TestContext_Trace(t *testing.T) {
	root := NewContext("<root>", nil)
	fn := NewContext("fn:foo", root)
	frames := fn.Trace()
	assert.Equal(t, []string{"fn:foo", "<root>"}, frames)
}
