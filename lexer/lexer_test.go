/*
File   : lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(t *testing.T, src string) []Kind {
	t.Helper()
	toks, err := NewLexer(src, "<test>").Tokenize()
	require.Nil(t, err)
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestTokenize_Numbers(t *testing.T) {
	toks, err := NewLexer("1 2.5 3..4", "<test>").Tokenize()
	require.Nil(t, err)
	require.True(t, len(toks) >= 5)
	assert.Equal(t, INT, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Value)
	assert.Equal(t, FLT, toks[1].Kind)
	assert.Equal(t, "2.5", toks[1].Value)
	assert.Equal(t, INT, toks[2].Kind)
	assert.Equal(t, "3", toks[2].Value)
	assert.Equal(t, RNG, toks[3].Kind)
	assert.Equal(t, INT, toks[4].Kind)
	assert.Equal(t, "4", toks[4].Value)
}

func TestTokenize_IdentifiersAndKeywords(t *testing.T) {
	toks, err := NewLexer("abc if const a1", "<test>").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, SYM, toks[0].Kind)
	assert.Equal(t, KWD, toks[1].Kind)
	assert.Equal(t, KWD, toks[2].Kind)
	assert.Equal(t, SYM, toks[3].Kind)
}

func TestTokenize_Strings(t *testing.T) {
	toks, err := NewLexer(`"hello" 'world'`, "<test>").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, STR, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Value)
	assert.Equal(t, STR, toks[1].Kind)
	assert.Equal(t, "world", toks[1].Value)
}

func TestTokenize_UnmatchedQuote(t *testing.T) {
	_, err := NewLexer("\"unterminated\nstring\"", "<test>").Tokenize()
	require.NotNil(t, err)
	assert.Equal(t, "UnmatchedQuote", string(err.Kind))
}

func TestTokenize_IllegalNumberFormat(t *testing.T) {
	_, err := NewLexer("123abc", "<test>").Tokenize()
	require.NotNil(t, err)
	assert.Equal(t, "IllegalTokenFormat", string(err.Kind))
}

func TestTokenize_Bigraphs(t *testing.T) {
	toks, err := NewLexer("+= == <= >= <~ ~> ~& ~| >< </ /> ::", "<test>").Tokenize()
	require.Nil(t, err)
	want := []Kind{ASG, EQ, LE, GE, INJ, IN, NAND, NOR, XOR, LSLC, RSLC, DCOLON}
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestTokenize_AssignThenString(t *testing.T) {
	toks, err := NewLexer(`a="x"`, "<test>").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, SYM, toks[0].Kind)
	assert.Equal(t, ASG, toks[1].Kind)
	assert.Equal(t, STR, toks[2].Kind)
}

func TestTokenize_Newline(t *testing.T) {
	kinds := kindsOf(t, "a\nb")
	assert.Equal(t, []Kind{SYM, BREAK, SYM, EOF}, kinds)
}

func TestTokenize_LineComment(t *testing.T) {
	kinds := kindsOf(t, "a ; this is a comment\nb")
	assert.Equal(t, []Kind{SYM, BREAK, SYM, EOF}, kinds)
}

func TestTokenize_BlockComment(t *testing.T) {
	kinds := kindsOf(t, "a ;; skip\nme ;; b")
	assert.Equal(t, []Kind{SYM, SYM, EOF}, kinds)
}

func TestTokenize_IllegalCharacter(t *testing.T) {
	_, err := NewLexer("a $ b", "<test>").Tokenize()
	require.NotNil(t, err)
	assert.Equal(t, "IllegalInputCharacter", string(err.Kind))
}

func TestTokenize_EndsWithEOF(t *testing.T) {
	toks, err := NewLexer("a", "<test>").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, EOF, toks[len(toks)-1].Kind)
}
