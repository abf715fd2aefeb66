/*
File   : parser/parser_structs.go
Package: parser

Function and struct definitions. `:` starts a function (optional name,
then `[params]`, then `<~` then body). `::` starts a struct the same
way; struct bodies are always braced, and `.name <~ body` inside a
struct body defines an interface method by that name.
*/
package parser

import (
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/lexer"
	"github.com/shepherdp/SAFyR-dev/source"
)

func (p *Parser) parseParamList() []string {
	p.expect(lexer.LBR, "")
	var params []string
	for p.Curr.Kind == lexer.SYM {
		params = append(params, p.Curr.Value)
		p.advance()
	}
	p.expect(lexer.RBR, "")
	return params
}

func (p *Parser) parseFunctionDef() Node {
	start := p.Curr.Span.Start
	p.advance() // ':'
	name := ""
	if p.Curr.Kind == lexer.SYM {
		name = p.Curr.Value
		p.advance()
	}
	var params []string
	if p.Curr.Kind == lexer.LBR {
		params = p.parseParamList()
	}
	p.expect(lexer.INJ, "")
	body := p.parseBody()
	return &FunctionDef{
		base:   base{source.Span{Start: start, End: p.Curr.Span.Start}},
		Name:   name,
		Params: params,
		Body:   body,
	}
}

func (p *Parser) parseStructDef() Node {
	start := p.Curr.Span.Start
	p.advance() // '::'
	name := ""
	if p.Curr.Kind == lexer.SYM {
		name = p.Curr.Value
		p.advance()
	}
	var params []string
	if p.Curr.Kind == lexer.LBR {
		params = p.parseParamList()
	}
	fields, ifaces := p.parseStructBody()
	return &StructDef{
		base:       base{source.Span{Start: start, End: p.Curr.Span.Start}},
		Name:       name,
		Params:     params,
		Fields:     fields,
		Interfaces: ifaces,
	}
}

// parseStructBody parses the always-braced struct body, separating
// plain field-initializer statements from interface-method
// definitions (introduced by a leading '.').
func (p *Parser) parseStructBody() ([]Node, []*InterfaceDef) {
	if p.Curr.Kind != lexer.LCR {
		p.addError(errors.UnopenedScope, "struct bodies must be braced")
		return nil, nil
	}
	start := p.Curr.Span.Start
	p.advance() // '{'
	if p.Curr.Kind != lexer.BREAK {
		p.addError(errors.InvalidSyntax, "expected a newline immediately after '{'")
	} else {
		p.skipBreaks()
	}

	var fields []Node
	var ifaces []*InterfaceDef
	for p.Curr.Kind != lexer.RCR && p.Curr.Kind != lexer.EOF {
		if p.Curr.Kind == lexer.DOT {
			ifaces = append(ifaces, p.parseInterfaceDef())
		} else {
			fields = append(fields, p.parseStatement())
		}
		if p.Curr.Kind == lexer.BREAK {
			p.skipBreaks()
			continue
		}
		break
	}
	if p.Curr.Kind != lexer.RCR {
		p.addError(errors.UnclosedScope, "missing closing '}' for struct body opened at %s", start.String())
		return fields, ifaces
	}
	p.advance() // '}'
	return fields, ifaces
}

func (p *Parser) parseInterfaceDef() *InterfaceDef {
	start := p.Curr.Span.Start
	p.advance() // '.'
	if p.Curr.Kind != lexer.SYM {
		p.addError(errors.InvalidSyntax, "expected an interface method name after '.'")
	}
	name := p.Curr.Value
	p.advance()
	p.expect(lexer.INJ, "")
	body := p.parseBody()
	return &InterfaceDef{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Name: name, Body: body}
}
