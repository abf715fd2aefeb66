/*
File   : parser/parser_control.go
Package: parser

Control-flow atoms: conditional chains, for/foreach/while loops, when
triggers, defer, and try/catch. Each arm independently chooses inline
or braced form via parseBody.
*/
package parser

import (
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/lexer"
	"github.com/shepherdp/SAFyR-dev/source"
)

// parseIf handles the conditional chain: `?`/`if` start it, `!?`/`elif`
// continue it, `!`/`else` close it.
func (p *Parser) parseIf() Node {
	start := p.Curr.Span.Start
	p.advance() // '?' or 'if'
	var conds, bodies []Node

	cond := p.parseExpr()
	body := p.parseBody()
	conds = append(conds, cond)
	bodies = append(bodies, body)

	for p.Curr.Kind == lexer.KWD && (p.Curr.Value == "!?" || p.Curr.Value == "elif") {
		p.advance()
		cond := p.parseExpr()
		body := p.parseBody()
		conds = append(conds, cond)
		bodies = append(bodies, body)
	}

	var elseBody Node
	if p.Curr.Kind == lexer.KWD && (p.Curr.Value == "!" || p.Curr.Value == "else") {
		p.advance()
		elseBody = p.parseBody()
	}

	return &If{
		base:   base{source.Span{Start: start, End: p.Curr.Span.Start}},
		Conds:  conds,
		Bodies: bodies,
		Else:   elseBody,
	}
}

// parseFor handles `for IDENT = start .. end [.. step] <body>`.
func (p *Parser) parseFor() Node {
	start := p.Curr.Span.Start
	p.advance() // 'for'
	if p.Curr.Kind != lexer.SYM {
		p.addError(errors.InvalidSyntax, "expected a loop variable after 'for'")
	}
	name := p.Curr.Value
	p.advance()
	p.expect(lexer.ASG, "")
	from := p.parseExpr()
	p.expect(lexer.RNG, "")
	to := p.parseExpr()
	var step Node
	if p.Curr.Kind == lexer.RNG {
		p.advance()
		step = p.parseExpr()
	}
	body := p.parseBody()
	return &For{
		base:  base{source.Span{Start: start, End: p.Curr.Span.Start}},
		Var:   name,
		Start: from,
		End:   to,
		Step:  step,
		Body:  body,
	}
}

// parseForEach handles `foreach IDENT in expr <body>`.
func (p *Parser) parseForEach() Node {
	start := p.Curr.Span.Start
	p.advance() // 'foreach'
	if p.Curr.Kind != lexer.SYM {
		p.addError(errors.InvalidSyntax, "expected a loop variable after 'foreach'")
	}
	name := p.Curr.Value
	p.advance()
	if !(p.Curr.Kind == lexer.KWD && p.Curr.Value == "in") {
		p.addError(errors.InvalidSyntax, "expected 'in' after foreach variable")
	} else {
		p.advance()
	}
	iterable := p.parseExpr()
	body := p.parseBody()
	return &ForEach{
		base:     base{source.Span{Start: start, End: p.Curr.Span.Start}},
		Var:      name,
		Iterable: iterable,
		Body:     body,
	}
}

// parseWhile handles `while cond <body>`.
func (p *Parser) parseWhile() Node {
	start := p.Curr.Span.Start
	p.advance() // 'while'
	cond := p.parseExpr()
	body := p.parseBody()
	return &While{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Cond: cond, Body: body}
}

// parseWhen handles `when COND <body>`; the triggered variable name is
// resolved later by the interpreter by walking the condition's
// left spine.
func (p *Parser) parseWhen() Node {
	start := p.Curr.Span.Start
	p.advance() // 'when'
	cond := p.parseExpr()
	body := p.parseBody()
	return &When{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Cond: cond, Body: body}
}

// parseDefer handles `defer <body>`.
func (p *Parser) parseDefer() Node {
	start := p.Curr.Span.Start
	p.advance() // 'defer'
	body := p.parseBody()
	return &Defer{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Body: body}
}

// parseTry handles `try <body> catch <body>`.
func (p *Parser) parseTry() Node {
	start := p.Curr.Span.Start
	p.advance() // 'try'
	tryBody := p.parseBody()
	if !(p.Curr.Kind == lexer.KWD && p.Curr.Value == "catch") {
		p.addError(errors.InvalidSyntax, "expected 'catch' after try body")
		return &ErrorHandler{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, TryBody: tryBody}
	}
	p.advance() // 'catch'
	catchBody := p.parseBody()
	return &ErrorHandler{
		base:      base{source.Span{Start: start, End: p.Curr.Span.Start}},
		TryBody:   tryBody,
		CatchBody: catchBody,
	}
}
