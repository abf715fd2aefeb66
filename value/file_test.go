/*
File   : value/file_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_StringIncludesNameAndMode(t *testing.T) {
	f := NewFile("out.txt", "w")
	assert.Equal(t, "file:out.txt(w)", f.String())
}

func TestFile_IsTrueFalseOnceClosed(t *testing.T) {
	f := NewFile("out.txt", "r")
	assert.True(t, f.IsTrue())
	f.Closed = true
	assert.False(t, f.IsTrue())
}

func TestFile_CopySharesHandleNotIdentity(t *testing.T) {
	handle := struct{}{}
	f := NewFile("out.txt", "r")
	f.Handle = &handle

	cp := f.Copy().(*File)
	require.NotSame(t, f, cp)
	assert.Same(t, f.Handle, cp.Handle, "copies of an open file share the underlying handle")
	assert.Equal(t, f.Filename, cp.Filename)

	cp.Closed = true
	assert.False(t, f.Closed, "Closed flag must not alias between copies")
}
