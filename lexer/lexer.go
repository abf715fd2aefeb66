/*
File   : lexer/lexer.go
Package: lexer

A deterministic character-class DFA over the states `new, int, flt, dec,
con, ops, st1, st2, sym, cmt, cm2, fin, xxx`. The states are expressed
here as an explicit per-character switch (matching the driver style of
a hand-rolled recursive-descent lexer) rather than as a literal
state/char table, but every transition implements the rule named after
it in the state list above.
*/
package lexer

import (
	"strings"

	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/source"
)

// Lexer turns source text into a token stream.
type Lexer struct {
	Src      string
	SrcName  string
	Pos      source.Position
	Current  byte
	Length   int
	AtEOF    bool
	lastLine string
}

func NewLexer(src, srcName string) *Lexer {
	lx := &Lexer{
		Src:     src,
		SrcName: srcName,
		Length:  len(src),
		Pos:     source.NewPosition(srcName),
	}
	lx.advance()
	return lx
}

func (lx *Lexer) advance() {
	lx.Pos = lx.Pos.Advance(lx.Current)
	idx := lx.Pos.Idx
	if idx >= lx.Length {
		lx.Current = 0
		lx.AtEOF = true
		return
	}
	lx.Current = lx.Src[idx]
}

func (lx *Lexer) peek() byte {
	idx := lx.Pos.Idx + 1
	if idx >= lx.Length {
		return 0
	}
	return lx.Src[idx]
}

func (lx *Lexer) here() source.Position { return lx.Pos }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }

const opChars = "+-*/=%^?!><&|~:.@;"
const containerChars = "{}[]()"

// Tokenize drains the lexer and returns a full token stream terminated
// by EOF, or the first lexical error encountered.
func (lx *Lexer) Tokenize() ([]Token, *errors.Error) {
	var toks []Token
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// NextToken scans and returns the next token, skipping whitespace and
// comments. It is the single entry point corresponding to the `fin`
// state of the DFA: every branch below ends by finalizing one lexeme.
func (lx *Lexer) NextToken() (Token, *errors.Error) {
	for {
		if lx.AtEOF {
			return NewToken(EOF, "", source.Span{Start: lx.here(), End: lx.here()}), nil
		}

		c := lx.Current

		switch {
		case c == '\n':
			start := lx.here()
			lx.advance()
			return NewToken(BREAK, "\n", source.Span{Start: start, End: lx.here()}), nil

		case c == ' ' || c == '\t' || c == '\r':
			lx.advance()
			continue

		case c == ';':
			if err := lx.skipComment(); err != nil {
				return Token{}, err
			}
			continue

		case isDigit(c) || c == '.':
			return lx.readNumber()

		case isAlpha(c):
			return lx.readIdentifier()

		case c == '\'' || c == '"':
			return lx.readString(c)

		case strings.IndexByte(containerChars, c) != -1:
			start := lx.here()
			lx.advance()
			lit := string(c)
			return NewToken(opNames[lit], lit, source.Span{Start: start, End: lx.here()}), nil

		case strings.IndexByte(opChars, c) != -1:
			return lx.readOperator()

		default:
			start := lx.here()
			return Token{}, errors.New(errors.IllegalInputCharacter, source.Span{Start: start, End: start},
				"illegal input character %q", string(c))
		}
	}
}

// skipComment consumes `; ... \n` line comments and `;; ... ;;`
// multi-line comments.
func (lx *Lexer) skipComment() *errors.Error {
	lx.advance() // consume leading ';'
	if lx.Current == ';' {
		lx.advance() // consume second ';'
		for {
			if lx.AtEOF {
				return nil
			}
			if lx.Current == ';' && lx.peek() == ';' {
				lx.advance()
				lx.advance()
				return nil
			}
			lx.advance()
		}
	}
	for !lx.AtEOF && lx.Current != '\n' {
		lx.advance()
	}
	return nil
}

// readNumber implements the `new/int/flt/dec` states: a run of digits
// optionally followed by a single '.' and more digits becomes FLT; a
// second '.' ends the float and leaves ".." to be read as RNG by the
// following call. A lone leading '.' with no digits at all is the DOT
// operator, not a number.
func (lx *Lexer) readNumber() (Token, *errors.Error) {
	start := lx.here()
	var b strings.Builder
	sawDot := false

	if lx.Current == '.' {
		if lx.peek() == '.' {
			lx.advance()
			lx.advance()
			return NewToken(RNG, "..", source.Span{Start: start, End: lx.here()}), nil
		}
		if !isDigit(lx.peek()) {
			lx.advance()
			return NewToken(DOT, ".", source.Span{Start: start, End: lx.here()}), nil
		}
		sawDot = true
		b.WriteByte('.')
		lx.advance()
	}

	for isDigit(lx.Current) {
		b.WriteByte(lx.Current)
		lx.advance()
	}

	if !sawDot && lx.Current == '.' && lx.peek() != '.' {
		sawDot = true
		b.WriteByte('.')
		lx.advance()
		for isDigit(lx.Current) {
			b.WriteByte(lx.Current)
			lx.advance()
		}
	}

	if !lx.AtEOF && (isAlpha(lx.Current) || lx.Current == '_') {
		return Token{}, errors.New(errors.IllegalTokenFormat, source.Span{Start: start, End: lx.here()},
			"illegal number format near %q", b.String()+string(lx.Current))
	}

	kind := INT
	if sawDot {
		kind = FLT
	}
	return NewToken(kind, b.String(), source.Span{Start: start, End: lx.here()}), nil
}

// readIdentifier implements the `sym` state: letters and digits,
// classified KWD if reserved else SYM.
func (lx *Lexer) readIdentifier() (Token, *errors.Error) {
	start := lx.here()
	var b strings.Builder
	for !lx.AtEOF && isAlnum(lx.Current) {
		b.WriteByte(lx.Current)
		lx.advance()
	}
	lit := b.String()
	kind := SYM
	if Keywords[lit] {
		kind = KWD
	}
	return NewToken(kind, lit, source.Span{Start: start, End: lx.here()}), nil
}

// readString implements `st1`/`st2`: any printable up to the matching
// quote; an embedded newline before the closing quote is an error.
func (lx *Lexer) readString(quote byte) (Token, *errors.Error) {
	start := lx.here()
	lx.advance() // opening quote
	var b strings.Builder
	for {
		if lx.AtEOF || lx.Current == '\n' {
			return Token{}, errors.New(errors.UnmatchedQuote, source.Span{Start: start, End: lx.here()},
				"unmatched quote starting at %s", start.String())
		}
		if lx.Current == quote {
			lx.advance()
			break
		}
		if lx.Current == '\\' {
			lx.advance()
			b.WriteByte(escape(lx.Current))
			lx.advance()
			continue
		}
		b.WriteByte(lx.Current)
		lx.advance()
	}
	return NewToken(STR, b.String(), source.Span{Start: start, End: lx.here()}), nil
}

func escape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return c
	}
}

// readOperator implements the `ops` state: one- or two-character
// operators, where a second character is consumed only if it forms a
// member of the bigraph set. A following quote right after '=' always
// ends the operator immediately so "=" then a string literal lexes as
// two tokens rather than being absorbed into a longer operator run.
func (lx *Lexer) readOperator() (Token, *errors.Error) {
	start := lx.here()
	first := lx.Current
	lx.advance()

	lit := string(first)
	if !lx.AtEOF {
		second := lx.Current
		pair := lit + string(second)
		if second != '\'' && second != '"' && Bigraphs[pair] {
			lx.advance()
			lit = pair
		}
	}

	if Keywords[lit] {
		return NewToken(KWD, lit, source.Span{Start: start, End: lx.here()}), nil
	}
	if kind, ok := opNames[lit]; ok {
		return NewToken(kind, lit, source.Span{Start: start, End: lx.here()}), nil
	}
	return NewToken(OPS, lit, source.Span{Start: start, End: lx.here()}), nil
}
