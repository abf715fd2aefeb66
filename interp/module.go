/*
File   : interp/module.go
Package: interp

`use static` flips on the current context's static-typing switch; `use
<name>` resolves `<name>` through the Interpreter's ModuleResolver,
then tokenizes/parses/evaluates it in the CALLER's context (not a
fresh one), per the spec's explicit instruction to preserve this even
though it allows shadowing.
*/
package interp

import (
	"github.com/shepherdp/SAFyR-dev/context"
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/parser"
	"github.com/shepherdp/SAFyR-dev/value"
)

func (it *Interpreter) evalUse(node *parser.Use, ctx *context.Context) (value.Value, signal, *errors.Error) {
	if node.IsStatic {
		ctx.Static = true
		return value.NewNil(), sigNone, nil
	}
	if it.Resolver == nil {
		return nil, sigNone, errors.New(errors.ModuleNotFound, node.Span(), "use %q: no module resolver configured", node.Name)
	}
	src, ok := it.Resolver.Resolve(node.Name)
	if !ok {
		return nil, sigNone, errors.New(errors.ModuleNotFound, node.Span(), "module %q not found", node.Name)
	}
	p := parser.NewParser(src, node.Name+".sfr")
	prog := p.Parse()
	if p.HasErrors() {
		first := p.GetErrors()[0]
		return nil, sigNone, errors.New(errors.ModuleImport, node.Span(), "module %q: %s", node.Name, first.Message)
	}
	v, sig, err := it.eval(prog, ctx)
	if err != nil {
		return nil, sigNone, errors.New(errors.ModuleImport, node.Span(), "module %q: %s", node.Name, err.Message)
	}
	return v, sig, nil
}
