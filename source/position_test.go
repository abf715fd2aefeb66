/*
File   : source/position_test.go
Package: source
*/
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_AdvanceTracksLineAndColumn(t *testing.T) {
	p := NewPosition("<test>")
	p = p.Advance('a')
	p = p.Advance('b')
	assert.Equal(t, 1, p.Line)
	assert.Equal(t, 1, p.Col)
	assert.Equal(t, 1, p.Idx)
}

func TestPosition_AdvanceOnNewlineResetsColumn(t *testing.T) {
	p := NewPosition("<test>")
	p = p.Advance('a')
	p = p.Advance('\n')
	p = p.Advance('b')
	assert.Equal(t, 2, p.Line)
	assert.Equal(t, 0, p.Col)
}

func TestPosition_CopyIsIndependentValue(t *testing.T) {
	p := NewPosition("<test>")
	cp := p.Copy()
	cp = cp.Advance('x')
	assert.Equal(t, -1, p.Idx)
	assert.Equal(t, 0, cp.Idx)
}

func TestSpan_StringUsesStartPosition(t *testing.T) {
	start := Position{Line: 3, Col: 5}
	end := Position{Line: 3, Col: 9}
	sp := Span{Start: start, End: end}
	assert.Equal(t, "[3:5]", sp.String())
}
