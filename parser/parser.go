/*
File   : parser/parser.go
Package: parser

The driver: two-token lookahead, non-panicking multi-error collection,
and the top-level `statements` production (a Capsule of statements
separated by one or more BREAK tokens).
*/
package parser

import (
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/lexer"
	"github.com/shepherdp/SAFyR-dev/source"
)

// Parser turns a token stream into an AST, recording rather than
// panicking on syntax errors so that multiple can be reported per run.
type Parser struct {
	Lex        *lexer.Lexer
	Curr, Next lexer.Token
	Errors      []*errors.Error
}

func NewParser(src, srcName string) *Parser {
	p := &Parser{Lex: lexer.NewLexer(src, srcName)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) HasErrors() bool         { return len(p.Errors) > 0 }
func (p *Parser) GetErrors() []*errors.Error { return p.Errors }

func (p *Parser) addError(kind errors.Kind, format string, args ...interface{}) {
	p.Errors = append(p.Errors, errors.New(kind, source.Span{Start: p.Curr.Span.Start, End: p.Curr.Span.End}, format, args...))
}

// advance shifts Curr <- Next and pulls a fresh token from the lexer.
// A lex error is recorded and surfaces as an EOF token so parsing can
// terminate instead of looping.
func (p *Parser) advance() {
	p.Curr = p.Next
	if p.Lex == nil {
		return
	}
	tok, err := p.Lex.NextToken()
	if err != nil {
		p.Errors = append(p.Errors, err)
		p.Next = lexer.NewToken(lexer.EOF, "", tok.Span)
		return
	}
	p.Next = tok
}

// expect checks Curr against (kind, value) and advances past it,
// recording InvalidSyntax if it doesn't match. value == "" matches any
// literal of that kind.
func (p *Parser) expect(kind lexer.Kind, value string) bool {
	if !p.Curr.Is(kind, value) {
		p.addError(errors.InvalidSyntax, "expected %s %q, got %s %q", kind, value, p.Curr.Kind, p.Curr.Value)
		return false
	}
	p.advance()
	return true
}

// skipBreaks consumes zero or more BREAK tokens (blank statement
// separators).
func (p *Parser) skipBreaks() {
	for p.Curr.Kind == lexer.BREAK {
		p.advance()
	}
}

// isStopToken reports whether Curr ends the current statement sequence
// (used by Capsule parsing to know when to stop without consuming a
// terminator that belongs to an enclosing construct).
func isStopToken(t lexer.Token, stops []lexer.Token) bool {
	for _, s := range stops {
		if t.Kind == s.Kind && (s.Value == "" || t.Value == s.Value) {
			return true
		}
	}
	return t.Kind == lexer.EOF
}

// Parse runs the top-level `statements` production: the whole program
// is a Capsule of BREAK-separated statements up to EOF.
func (p *Parser) Parse() *Capsule {
	cap := p.parseCapsule(lexer.Token{Kind: lexer.EOF})
	if p.Curr.Kind != lexer.EOF {
		p.addError(errors.InvalidSyntax, "unexpected trailing token %s %q", p.Curr.Kind, p.Curr.Value)
	}
	return cap
}

// parseCapsule parses statements, separated by one or more BREAK
// tokens, until a token matching one of stops (or EOF) is seen. It
// enforces the return-last rule: at most one `return`, and only as the
// final statement.
func (p *Parser) parseCapsule(stops ...lexer.Token) *Capsule {
	start := p.Curr.Span.Start
	var stmts []Node
	p.skipBreaks()
	for !isStopToken(p.Curr, stops) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.Curr.Kind == lexer.BREAK {
			p.skipBreaks()
			continue
		}
		if isStopToken(p.Curr, stops) {
			break
		}
		p.addError(errors.InvalidSyntax, "expected a statement separator, got %s %q", p.Curr.Kind, p.Curr.Value)
		break
	}
	for i, s := range stmts {
		if _, ok := s.(*Return); ok && i != len(stmts)-1 {
			p.addError(errors.InvalidSyntax, "return must be the last statement in its block")
			break
		}
	}
	return &Capsule{base: base{span: source.Span{Start: start, End: p.Curr.Span.End}}, Statements: stmts}
}
