/*
File   : parser/parser_expressions.go
Package: parser

The expression grammar, lowest precedence first:

	expr     := [const] [global] [var|int|flt|str|lst|map] (func_def | struct_def
	          | SYM ASG expr | logical)
	          [ASG expr]              ; chained-access assignment
	logical  := comp_expr ((AND|OR|NAND|NOR|XOR|INJ|IN) comp_expr)*
	comp_expr:= NOT comp_expr | arith_expr (EQ|NE|LT|GT|LE|GE arith_expr)*
	arith    := term ((PLS|MNS) term)*
	term     := factor ((MUL|DIV|MOD) factor)*
	factor   := (PLS|MNS) factor | power
	power    := index (POW factor)*            ; right-assoc via factor as rhs
	index    := property ((LSLC|RSLC|AT) property)*
	property := call (DOT atom)*               ; DOT rhs parsed as atom
	call     := atom [ '(' expr* ')' ]
	atom     := INT | FLT | STR | SYM | '(' expr ')' | list | map | if | for | foreach
	          | while | when | defer | try | func_def | struct_def
*/
package parser

import (
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/lexer"
	"github.com/shepherdp/SAFyR-dev/source"
)

var typeTags = map[string]bool{"var": true, "int": true, "flt": true, "str": true, "lst": true, "map": true}

func (p *Parser) parseExpr() Node {
	start := p.Curr.Span.Start
	isConst := false
	isGlobal := false
	typeTag := ""

	if p.Curr.Is(lexer.KWD, "const") {
		isConst = true
		p.advance()
	}
	if p.Curr.Is(lexer.KWD, "global") {
		isGlobal = true
		p.advance()
	}
	if p.Curr.Kind == lexer.KWD && typeTags[p.Curr.Value] {
		typeTag = p.Curr.Value
		p.advance()
	}

	switch p.Curr.Kind {
	case lexer.COLON:
		return p.parseFunctionDef()
	case lexer.DCOLON:
		return p.parseStructDef()
	}

	if p.Curr.Kind == lexer.SYM && p.Next.Kind == lexer.ASG {
		name := p.Curr.Value
		p.advance()
		op := p.Curr.Value
		p.advance()
		val := p.parseExpr()
		return &VarAssign{
			base:     base{source.Span{Start: start, End: p.Curr.Span.Start}},
			Name:     name,
			TypeTag:  typeTag,
			IsConst:  isConst,
			IsGlobal: isGlobal,
			Op:       op,
			Value:    val,
		}
	}

	left := p.parseLogical()

	if p.Curr.Kind == lexer.ASG {
		ref, ok := toReferenceChain(left)
		if !ok {
			p.addError(errors.InvalidSyntax, "left-hand side of assignment must be a reference chain")
			return left
		}
		op := p.Curr.Value
		p.advance()
		rhs := p.parseExpr()
		return &ReferenceAssign{
			base:   base{source.Span{Start: start, End: p.Curr.Span.Start}},
			Target: ref,
			Op:     op,
			Value:  rhs,
		}
	}
	return left
}

var logicalOps = map[lexer.Kind]bool{
	lexer.AND: true, lexer.OR: true, lexer.NAND: true, lexer.NOR: true,
	lexer.XOR: true, lexer.INJ: true, lexer.IN: true,
}

func (p *Parser) parseLogical() Node {
	left := p.parseComp()
	for logicalOps[p.Curr.Kind] {
		op := string(p.Curr.Kind)
		start := left.Span().Start
		p.advance()
		right := p.parseComp()
		left = &BinOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: op, Left: left, Right: right}
	}
	return left
}

var compOps = map[lexer.Kind]bool{
	lexer.EQ: true, lexer.NE: true, lexer.LT: true, lexer.GT: true, lexer.LE: true, lexer.GE: true,
}

func (p *Parser) parseComp() Node {
	if p.Curr.Kind == lexer.NOT {
		start := p.Curr.Span.Start
		p.advance()
		operand := p.parseComp()
		return &UnaryOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: "NOT", Expr: operand}
	}
	left := p.parseArith()
	for compOps[p.Curr.Kind] {
		op := string(p.Curr.Kind)
		start := left.Span().Start
		p.advance()
		right := p.parseArith()
		left = &BinOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseArith() Node {
	left := p.parseTerm()
	for p.Curr.Kind == lexer.PLS || p.Curr.Kind == lexer.MNS {
		op := string(p.Curr.Kind)
		start := left.Span().Start
		p.advance()
		right := p.parseTerm()
		left = &BinOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseTerm() Node {
	left := p.parseFactor()
	for p.Curr.Kind == lexer.MUL || p.Curr.Kind == lexer.DIV || p.Curr.Kind == lexer.MOD {
		op := string(p.Curr.Kind)
		start := left.Span().Start
		p.advance()
		right := p.parseFactor()
		left = &BinOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseFactor() Node {
	if p.Curr.Kind == lexer.PLS || p.Curr.Kind == lexer.MNS {
		op := string(p.Curr.Kind)
		start := p.Curr.Span.Start
		p.advance()
		operand := p.parseFactor()
		return &UnaryOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: op, Expr: operand}
	}
	return p.parsePower()
}

func (p *Parser) parsePower() Node {
	left := p.parseIndex()
	for p.Curr.Kind == lexer.POW {
		start := left.Span().Start
		p.advance()
		right := p.parseFactor() // right-associative via factor as rhs
		left = &BinOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: "POW", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseIndex() Node {
	left := p.parseProperty()
	for p.Curr.Kind == lexer.LSLC || p.Curr.Kind == lexer.RSLC || p.Curr.Kind == lexer.AT {
		op := string(p.Curr.Kind)
		start := left.Span().Start
		p.advance()
		right := p.parseProperty()
		left = &BinOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseProperty() Node {
	left := p.parseCall()
	for p.Curr.Kind == lexer.DOT {
		start := left.Span().Start
		p.advance()
		right := p.parseAtom() // DOT rhs parsed as atom
		left = &BinOp{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Op: "DOT", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseCall() Node {
	callee := p.parseAtom()
	for p.Curr.Kind == lexer.LPR {
		start := callee.Span().Start
		p.advance()
		var args []Node
		p.skipBreaks()
		for p.Curr.Kind != lexer.RPR && p.Curr.Kind != lexer.EOF {
			args = append(args, p.parseExpr())
			p.skipBreaks()
		}
		p.expect(lexer.RPR, "")
		callee = &Call{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Callee: callee, Args: args}
	}
	return callee
}

func (p *Parser) parseAtom() Node {
	start := p.Curr.Span.Start
	switch p.Curr.Kind {
	case lexer.INT, lexer.FLT:
		tok := p.Curr
		p.advance()
		return &NumberLit{base: base{tok.Span}, Tok: tok}
	case lexer.STR:
		tok := p.Curr
		p.advance()
		return &StringLit{base: base{tok.Span}, Tok: tok}
	case lexer.SYM:
		name := p.Curr.Value
		span := p.Curr.Span
		p.advance()
		return &VarAccess{base: base{span}, Name: name}
	case lexer.LPR:
		p.advance()
		e := p.parseExpr()
		p.expect(lexer.RPR, "")
		return e
	case lexer.LBR:
		return p.parseListLit()
	case lexer.LCR:
		return p.parseMapLit()
	case lexer.COLON:
		return p.parseFunctionDef()
	case lexer.DCOLON:
		return p.parseStructDef()
	case lexer.KWD:
		switch p.Curr.Value {
		case "if", "?":
			return p.parseIf()
		case "for":
			return p.parseFor()
		case "foreach":
			return p.parseForEach()
		case "while":
			return p.parseWhile()
		case "when":
			return p.parseWhen()
		case "defer":
			return p.parseDefer()
		case "try":
			return p.parseTry()
		}
	}
	p.addError(errors.InvalidSyntax, "unexpected token %s %q", p.Curr.Kind, p.Curr.Value)
	tok := p.Curr
	if p.Curr.Kind != lexer.EOF {
		p.advance()
	}
	return &NumberLit{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Tok: lexer.NewToken(lexer.INT, "0", tok.Span)}
}

func (p *Parser) parseListLit() Node {
	start := p.Curr.Span.Start
	p.advance() // '['
	var elems []Node
	p.skipBreaks()
	for p.Curr.Kind != lexer.RBR && p.Curr.Kind != lexer.EOF {
		elems = append(elems, p.parseExpr())
		p.skipBreaks()
	}
	p.expect(lexer.RBR, "")
	return &ListLit{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Elements: elems}
}

func (p *Parser) parseMapLit() Node {
	start := p.Curr.Span.Start
	p.advance() // '{'
	var keys, vals []Node
	p.skipBreaks()
	for p.Curr.Kind != lexer.RCR && p.Curr.Kind != lexer.EOF {
		k := p.parseExpr()
		p.expect(lexer.COLON, "")
		v := p.parseExpr()
		keys = append(keys, k)
		vals = append(vals, v)
		p.skipBreaks()
	}
	p.expect(lexer.RCR, "")
	return &MapLit{base: base{source.Span{Start: start, End: p.Curr.Span.Start}}, Keys: keys, Values: vals}
}

// toReferenceChain unpacks an already-parsed BinOp(DOT/AT) tree into a
// ReferenceAccess so it can serve as an assignment target; any other
// shape (including LSLC/RSLC) is rejected since slices on the left are
// forbidden.
func toReferenceChain(n Node) (*ReferenceAccess, bool) {
	var steps []RefStep
	cur := n
	for {
		b, ok := cur.(*BinOp)
		if !ok {
			break
		}
		switch b.Op {
		case "DOT":
			name, ok := b.Right.(*VarAccess)
			if !ok {
				return nil, false
			}
			steps = append([]RefStep{{IsProperty: true, Name: name.Name}}, steps...)
			cur = b.Left
		case "AT":
			steps = append([]RefStep{{IsProperty: false, Index: b.Right}}, steps...)
			cur = b.Left
		default:
			return nil, false
		}
	}
	if _, ok := cur.(*VarAccess); !ok {
		return nil, false
	}
	if len(steps) == 0 {
		return nil, false
	}
	return &ReferenceAccess{base: base{n.Span()}, Root: cur, Steps: steps}, true
}
