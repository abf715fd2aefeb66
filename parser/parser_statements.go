/*
File   : parser/parser_statements.go
Package: parser

Statement-level productions: `use <identifier>`, `return [expr]`, `del
<identifier>`, `continue`, `once`, `break`, else `expr`; and the
inline-vs-braced block-form helper shared by if/for/foreach/while/
when/defer/try/catch and function/struct bodies.
*/
package parser

import (
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/lexer"
	"github.com/shepherdp/SAFyR-dev/source"
)

func (p *Parser) parseStatement() Node {
	start := p.Curr.Span.Start
	if p.Curr.Kind == lexer.KWD {
		switch p.Curr.Value {
		case "use":
			return p.parseUse()
		case "return":
			return p.parseReturn()
		case "del":
			return p.parseDelete()
		case "continue":
			p.advance()
			return &Continue{base{source.Span{Start: start, End: p.Curr.Span.Start}}}
		case "once":
			p.advance()
			return &Once{base{source.Span{Start: start, End: p.Curr.Span.Start}}}
		case "break":
			p.advance()
			return &Break{base{source.Span{Start: start, End: p.Curr.Span.Start}}}
		}
	}
	return p.parseExpr()
}

func (p *Parser) parseUse() Node {
	start := p.Curr.Span.Start
	p.advance() // 'use'
	if p.Curr.Kind != lexer.SYM {
		p.addError(errors.InvalidSyntax, "expected a module name after 'use', got %s %q", p.Curr.Kind, p.Curr.Value)
		return &Use{base: base{source.Span{Start: start, End: p.Curr.Span.End}}}
	}
	name := p.Curr.Value
	p.advance()
	span := source.Span{Start: start, End: p.Curr.Span.Start}
	if name == "static" {
		return &Use{base: base{span}, IsStatic: true}
	}
	return &Use{base: base{span}, Name: name}
}

func (p *Parser) parseReturn() Node {
	start := p.Curr.Span.Start
	p.advance() // 'return'
	if p.endsStatement() {
		return &Return{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}}
	}
	val := p.parseExpr()
	return &Return{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Value: val}
}

func (p *Parser) parseDelete() Node {
	start := p.Curr.Span.Start
	p.advance() // 'del'
	if p.Curr.Kind != lexer.SYM {
		p.addError(errors.InvalidSyntax, "expected an identifier after 'del', got %s %q", p.Curr.Kind, p.Curr.Value)
		return &Delete{base: base{source.Span{Start: start, End: p.Curr.Span.End}}}
	}
	name := p.Curr.Value
	p.advance()
	return &Delete{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Name: name}
}

func (p *Parser) endsStatement() bool {
	switch p.Curr.Kind {
	case lexer.BREAK, lexer.EOF, lexer.RCR:
		return true
	}
	if p.Curr.Kind == lexer.KWD && p.Curr.Value == "catch" {
		return true
	}
	return false
}

// parseBody implements the inline-vs-braced block form shared by every
// construct with a body: an inline form introduced by ':' that parses
// a single statement, or a braced form `{ \n statements \n }` that
// requires a newline immediately after '{'. A newline before '}' is
// accepted but not required: the last statement may end on the '}' line.
func (p *Parser) parseBody() Node {
	switch p.Curr.Kind {
	case lexer.COLON:
		p.advance()
		return p.parseStatement()
	case lexer.LCR:
		return p.parseBracedBlock()
	default:
		p.addError(errors.UnopenedScope, "expected ':' or '{' to open a body, got %s %q", p.Curr.Kind, p.Curr.Value)
		return &Capsule{base: base{p.Curr.Span}}
	}
}

func (p *Parser) parseBracedBlock() Node {
	start := p.Curr.Span.Start
	p.advance() // '{'
	if p.Curr.Kind != lexer.BREAK {
		p.addError(errors.InvalidSyntax, "expected a newline immediately after '{'")
	} else {
		p.skipBreaks()
	}
	body := p.parseCapsule(lexer.Token{Kind: lexer.RCR}, lexer.Token{Kind: lexer.EOF})
	if p.Curr.Kind != lexer.RCR {
		p.addError(errors.UnclosedScope, "missing closing '}' for block opened at %s", start.String())
		return body
	}
	p.advance() // '}'
	body.span = source.Span{Start: start, End: p.Curr.Span.Start}
	return body
}
