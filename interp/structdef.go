/*
File   : interp/structdef.go
Package: interp

Function and struct definitions, and struct instantiation. A struct
instance's Properties map is the same map object as its own context's
SymbolTable.Symbols (see value.Struct's doc comment) -- built by
running the struct body's field statements directly against a fresh
context, then pointing Properties at that context's Symbols map,
rather than populating Properties and reconciling afterward.
*/
package interp

import (
	"github.com/shepherdp/SAFyR-dev/context"
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/parser"
	"github.com/shepherdp/SAFyR-dev/source"
	"github.com/shepherdp/SAFyR-dev/value"
)

func (it *Interpreter) evalFunctionDef(node *parser.FunctionDef, ctx *context.Context) (value.Value, signal, *errors.Error) {
	fn := &value.Function{
		Name:        node.Name,
		Params:      node.Params,
		Body:        node.Body,
		AutoReturn:  true,
		CapturedEnv: ctx,
	}
	fn.Span = node.Span()
	if node.Name != "" {
		ctx.SymbolTable.Set(node.Name, fn)
	}
	return fn, sigNone, nil
}

func (it *Interpreter) evalStructDef(node *parser.StructDef, ctx *context.Context) (value.Value, signal, *errors.Error) {
	gen := &value.StructGenerator{
		Name:        node.Name,
		Params:      node.Params,
		Body:        node,
		CapturedEnv: ctx,
	}
	gen.Span = node.Span()
	if node.Name != "" {
		ctx.SymbolTable.Set(node.Name, gen)
	}
	return gen, sigNone, nil
}

func (it *Interpreter) callStructGenerator(f *value.StructGenerator, args []value.Value, span source.Span) (value.Value, *errors.Error) {
	def, ok := f.Body.(*parser.StructDef)
	if !ok {
		return nil, errors.New(errors.RuntimeErr, span, "internal: struct generator %q has no body", f.Name)
	}
	if len(args) != len(f.Params) {
		return nil, errors.New(errors.InvalidArgumentSet, span, "%s expects %d argument(s), got %d", displayName(f.Name, "struct"), len(f.Params), len(args))
	}
	parent, _ := f.CapturedEnv.(*context.Context)
	sctx := context.NewContext("struct:"+f.Name, parent)
	for i, p := range f.Params {
		sctx.SymbolTable.Set(p, args[i])
	}

	for _, field := range def.Fields {
		_, sig, err := it.eval(field, sctx)
		if err != nil {
			return nil, err
		}
		if sig != sigNone {
			return nil, errors.New(errors.RuntimeErr, span, "struct body cannot return, break, or continue")
		}
	}

	s := &value.Struct{
		InstanceName: f.Name,
		Properties:   sctx.SymbolTable.Symbols,
		Interfaces:   make(map[string]interface{}),
	}
	s.Span = span
	s.PropOrder = fieldOrder(def.Fields)
	for _, iface := range def.Interfaces {
		s.Interfaces[iface.Name] = iface
	}
	s.OwnContext = sctx
	return s, nil
}

func fieldOrder(fields []parser.Node) []string {
	seen := make(map[string]bool)
	var order []string
	for _, f := range fields {
		va, ok := f.(*parser.VarAssign)
		if !ok || seen[va.Name] {
			continue
		}
		seen[va.Name] = true
		order = append(order, va.Name)
	}
	return order
}

// bindStructContext derives a fresh own context for a struct whose
// Copy() cleared OwnContext (e.g. a value returned from a function),
// aliasing the new context's Symbols map directly onto Properties so
// the canonical-store invariant holds for the copy too.
func (it *Interpreter) bindStructContext(s *value.Struct, parent *context.Context) *context.Context {
	ctx := context.NewContext("struct:"+s.InstanceName, parent)
	ctx.SymbolTable.Symbols = s.Properties
	s.OwnContext = ctx
	return ctx
}

// structContext returns a struct's own context, deriving one lazily if
// it doesn't have one yet.
func (it *Interpreter) structContext(s *value.Struct, parent *context.Context) *context.Context {
	if s.OwnContext != nil {
		if ctx, ok := s.OwnContext.(*context.Context); ok {
			return ctx
		}
	}
	return it.bindStructContext(s, parent)
}
