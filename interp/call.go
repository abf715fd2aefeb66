/*
File   : interp/call.go
Package: interp

Call semantics: evaluate all arguments in order, substituting a
Struct argument with its matching interface-method result when the
struct proxies the callee's name; dispatch to a Function, a
BuiltInFunction, or a StructGenerator; copy non-Struct returns into
the caller context, and re-home Struct returns in a freshly derived
own context.
*/
package interp

import (
	"github.com/shepherdp/SAFyR-dev/context"
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/parser"
	"github.com/shepherdp/SAFyR-dev/source"
	"github.com/shepherdp/SAFyR-dev/value"
)

func (it *Interpreter) evalCall(node *parser.Call, ctx *context.Context) (value.Value, signal, *errors.Error) {
	fn, _, err := it.eval(node.Callee, ctx)
	if err != nil {
		return nil, sigNone, err
	}

	calleeName := ""
	if va, ok := node.Callee.(*parser.VarAccess); ok {
		calleeName = va.Name
	} else {
		calleeName = fnName(fn)
	}

	args := make([]value.Value, 0, len(node.Args))
	for _, argNode := range node.Args {
		v, _, aerr := it.eval(argNode, ctx)
		if aerr != nil {
			return nil, sigNone, aerr
		}
		if s, ok := v.(*value.Struct); ok && calleeName != "" {
			if ifaceNode, has := s.Interfaces[calleeName]; has {
				iface := ifaceNode.(*parser.InterfaceDef)
				sctx := it.structContext(s, ctx)
				res, _, ierr := it.eval(iface.Body, sctx)
				if ierr != nil {
					return nil, sigNone, ierr
				}
				v = res
			}
		}
		args = append(args, v)
	}

	result, cerr := it.callValue(fn, args, node.Span())
	if cerr != nil {
		return nil, sigNone, cerr
	}
	return result, sigNone, nil
}

func fnName(v value.Value) string {
	switch f := v.(type) {
	case *value.Function:
		return f.Name
	case *value.BuiltInFunction:
		return f.Name
	case *value.StructGenerator:
		return f.Name
	}
	return ""
}

// callValue dispatches to whichever callable variant fn holds. It is
// also the entry point builtin.Runtime.CallFunction uses to call back
// into Safyr from a built-in.
func (it *Interpreter) callValue(fn value.Value, args []value.Value, span source.Span) (value.Value, *errors.Error) {
	switch f := fn.(type) {
	case *value.Function:
		return it.callFunction(f, args, span)
	case *value.BuiltInFunction:
		return it.callBuiltin(f, args, span)
	case *value.StructGenerator:
		return it.callStructGenerator(f, args, span)
	default:
		return nil, errors.New(errors.RuntimeErr, span, "%s is not callable", fn.Kind())
	}
}

func (it *Interpreter) callBuiltin(f *value.BuiltInFunction, args []value.Value, span source.Span) (value.Value, *errors.Error) {
	b, ok := it.builtins[f.Name]
	if !ok {
		return nil, errors.New(errors.BuiltinViolation, span, "unknown built-in %q", f.Name)
	}
	v, err := b.Callback(it, it.Out, args...)
	if err != nil {
		if err.Span == (source.Span{}) {
			err.Span = span
		}
		return nil, err
	}
	return v, nil
}

func (it *Interpreter) callFunction(f *value.Function, args []value.Value, span source.Span) (value.Value, *errors.Error) {
	if len(args) != len(f.Params) {
		return nil, errors.New(errors.InvalidArgumentSet, span, "%s expects %d argument(s), got %d", displayName(f.Name, "fn"), len(f.Params), len(args))
	}
	parent, _ := f.CapturedEnv.(*context.Context)
	callCtx := context.NewContext(displayName(f.Name, "fn"), parent)
	for i, p := range f.Params {
		callCtx.SymbolTable.Set(p, args[i])
	}

	fr := &frame{ctx: callCtx}
	it.calls = append(it.calls, fr)
	body, _ := f.Body.(parser.Node)
	result, sig, err := it.eval(body, callCtx)
	it.runDefers(fr)
	it.calls = it.calls[:len(it.calls)-1]

	if err != nil {
		return nil, err.Push(displayName(f.Name, "fn"))
	}
	if sig == sigBreak || sig == sigContinue {
		return nil, errors.New(errors.RuntimeErr, span, "%s used outside of a loop", signalName(sig))
	}
	return it.copyReturn(result, span), nil
}

// copyReturn implements "non-Struct return values are copied and
// rebound to the caller context; Struct returns are copied preserving
// their own context" -- a Struct gets a freshly derived own context
// rather than carrying its callee-scope context back out.
func (it *Interpreter) copyReturn(v value.Value, span source.Span) value.Value {
	if s, ok := v.(*value.Struct); ok {
		cp := s.Copy().(*value.Struct)
		it.bindStructContext(cp, it.Root)
		return cp
	}
	cp := v.Copy()
	cp.Meta().Span = span
	return cp
}

func displayName(name, kind string) string {
	if name == "" {
		return kind + ":<anonymous>"
	}
	return kind + ":" + name
}

func signalName(s signal) string {
	switch s {
	case sigBreak:
		return "break"
	case sigContinue:
		return "continue"
	}
	return "signal"
}

func (it *Interpreter) runDefers(fr *frame) {
	for i := len(fr.defers) - 1; i >= 0; i-- {
		it.eval(fr.defers[i], fr.ctx)
	}
}
