/*
File   : interp/interp.go
Package: interp

The tree-walking interpreter: dispatch is a type-switch over
parser.Node (see parser.Node's doc comment for why this was chosen
over a NodeVisitor), producing a runtime Value plus a control-flow
signal (none/continue/break/return) that unwinds exactly as far as it
needs to -- to the nearest loop for continue/break, to the nearest
call boundary for return.
*/
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/shepherdp/SAFyR-dev/builtin"
	"github.com/shepherdp/SAFyR-dev/context"
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/lexer"
	"github.com/shepherdp/SAFyR-dev/parser"
	"github.com/shepherdp/SAFyR-dev/source"
	"github.com/shepherdp/SAFyR-dev/value"
)

// signal reports how evaluation of a construct wants its caller to
// unwind.
type signal int

const (
	sigNone signal = iota
	sigContinue
	sigBreak
	sigReturn
)

// ModuleResolver is the host-provided collaborator for `use <name>`:
// resolve a module stem to its source text, or report it missing. The
// core treats the search root opaquely, per the spec's module
// resolution contract.
type ModuleResolver interface {
	Resolve(name string) (source string, ok bool)
}

// FileResolver resolves `<name>.sfr` relative to a root directory on
// the host filesystem -- the only concrete resolver the core ships,
// since module resolution proper is an external collaborator.
type FileResolver struct {
	Root string
}

func (r FileResolver) Resolve(name string) (string, bool) {
	path := name + ".sfr"
	if r.Root != "" {
		path = r.Root + string(os.PathSeparator) + path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// frame is one entry of the call stack, used for defer bookkeeping.
type frame struct {
	ctx     *context.Context
	defers  []parser.Node
}

// Interpreter owns the root scope, the built-in dispatch table, the
// module resolver, and the in-flight call/trigger stacks.
type Interpreter struct {
	Root     *context.Context
	Out      io.Writer
	In       *bufio.Reader
	Resolver ModuleResolver

	builtins map[string]*builtin.Builtin
	calls    []*frame
	triggers []*value.Trigger
}

// New builds an interpreter with a fresh root context seeded with the
// built-in registry, per "the registry is seeded into the root symbol
// table and recorded in its globals set so child scopes inherit them."
func New(out io.Writer, in io.Reader, resolver ModuleResolver) *Interpreter {
	root := context.NewContext("<root>", nil)
	it := &Interpreter{
		Root:     root,
		Out:      out,
		In:       bufio.NewReader(in),
		Resolver: resolver,
		builtins: make(map[string]*builtin.Builtin),
	}
	for _, b := range builtin.Builtins {
		it.builtins[b.Name] = b
		root.SymbolTable.Set(b.Name, &value.BuiltInFunction{Name: b.Name, ParamNames: b.ParamNames})
		root.SymbolTable.MarkGlobal(b.Name)
	}
	root.SymbolTable.Set("T", value.Bool(true))
	root.SymbolTable.Set("F", value.Bool(false))
	root.SymbolTable.MarkGlobal("T")
	root.SymbolTable.MarkGlobal("F")
	return it
}

// CallFunction implements builtin.Runtime, letting built-ins (e.g. a
// user-supplied sort comparator, were one added) call back into Safyr
// functions.
func (it *Interpreter) CallFunction(fn value.Value, args ...value.Value) (value.Value, *errors.Error) {
	return it.callValue(fn, args, source.Span{})
}

func (it *Interpreter) InputReader() *bufio.Reader { return it.In }

// Run parses and evaluates a full program against the root context.
func (it *Interpreter) Run(src, name string) (value.Value, *errors.Error) {
	p := parser.NewParser(src, name)
	prog := p.Parse()
	if p.HasErrors() {
		return nil, p.GetErrors()[0]
	}
	v, _, err := it.eval(prog, it.Root)
	return v, err
}

// RunIn parses source text and evaluates it directly in an existing
// context rather than the root. `use` does its own parse and evaluation
// in evalUse (module.go) instead of calling this.
func (it *Interpreter) RunIn(src, name string, ctx *context.Context) (value.Value, *errors.Error) {
	p := parser.NewParser(src, name)
	prog := p.Parse()
	if p.HasErrors() {
		return nil, p.GetErrors()[0]
	}
	v, _, err := it.eval(prog, ctx)
	return v, err
}

// eval is the single dispatch point: every node shape is one case.
func (it *Interpreter) eval(n parser.Node, ctx *context.Context) (value.Value, signal, *errors.Error) {
	switch node := n.(type) {
	case *parser.Capsule:
		return it.evalCapsule(node, ctx)
	case *parser.NumberLit:
		return it.evalNumberLit(node)
	case *parser.StringLit:
		return it.evalStringLit(node)
	case *parser.ListLit:
		return it.evalListLit(node, ctx)
	case *parser.MapLit:
		return it.evalMapLit(node, ctx)
	case *parser.VarAccess:
		return it.evalVarAccess(node, ctx)
	case *parser.VarAssign:
		return it.evalVarAssign(node, ctx)
	case *parser.ReferenceAccess:
		return it.evalReferenceAccess(node, ctx)
	case *parser.ReferenceAssign:
		return it.evalReferenceAssign(node, ctx)
	case *parser.BinOp:
		return it.evalBinOp(node, ctx)
	case *parser.UnaryOp:
		return it.evalUnaryOp(node, ctx)
	case *parser.If:
		return it.evalIf(node, ctx)
	case *parser.For:
		return it.evalFor(node, ctx)
	case *parser.ForEach:
		return it.evalForEach(node, ctx)
	case *parser.While:
		return it.evalWhile(node, ctx)
	case *parser.When:
		return it.evalWhen(node, ctx)
	case *parser.Defer:
		return it.evalDefer(node, ctx)
	case *parser.Continue:
		return value.NewNil(), sigContinue, nil
	case *parser.Break:
		return value.NewNil(), sigBreak, nil
	case *parser.Once:
		return it.evalOnce(node, ctx)
	case *parser.Return:
		return it.evalReturn(node, ctx)
	case *parser.Use:
		return it.evalUse(node, ctx)
	case *parser.Delete:
		return it.evalDelete(node, ctx)
	case *parser.FunctionDef:
		return it.evalFunctionDef(node, ctx)
	case *parser.StructDef:
		return it.evalStructDef(node, ctx)
	case *parser.InterfaceDef:
		return value.NewNil(), sigNone, nil
	case *parser.Call:
		return it.evalCall(node, ctx)
	case *parser.ErrorHandler:
		return it.evalTry(node, ctx)
	}
	return nil, sigNone, errors.New(errors.RuntimeErr, n.Span(), "internal: unhandled node %T", n)
}

func (it *Interpreter) evalCapsule(node *parser.Capsule, ctx *context.Context) (value.Value, signal, *errors.Error) {
	var last value.Value = value.NewNil()
	for _, stmt := range node.Statements {
		v, sig, err := it.eval(stmt, ctx)
		if err != nil {
			return nil, sigNone, err
		}
		last = v
		if sig != sigNone {
			return last, sig, nil
		}
	}
	return last, sigNone, nil
}

func (it *Interpreter) evalNumberLit(node *parser.NumberLit) (value.Value, signal, *errors.Error) {
	if node.Tok.Kind == lexer.FLT {
		f, err := parseFloat(node.Tok.Value)
		if err != nil {
			return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "invalid float literal %q", node.Tok.Value)
		}
		v := value.NewFlt(f)
		v.Span = node.Span()
		return v, sigNone, nil
	}
	i, err := parseInt(node.Tok.Value)
	if err != nil {
		return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "invalid int literal %q", node.Tok.Value)
	}
	v := value.NewInt(i)
	v.Span = node.Span()
	return v, sigNone, nil
}

func (it *Interpreter) evalStringLit(node *parser.StringLit) (value.Value, signal, *errors.Error) {
	v := value.NewString(node.Tok.Value)
	v.Span = node.Span()
	return v, sigNone, nil
}

func (it *Interpreter) evalListLit(node *parser.ListLit, ctx *context.Context) (value.Value, signal, *errors.Error) {
	elems := make([]value.Value, 0, len(node.Elements))
	for _, e := range node.Elements {
		v, _, err := it.eval(e, ctx)
		if err != nil {
			return nil, sigNone, err
		}
		elems = append(elems, v)
	}
	return value.NewList(elems), sigNone, nil
}

func (it *Interpreter) evalMapLit(node *parser.MapLit, ctx *context.Context) (value.Value, signal, *errors.Error) {
	m := value.NewMap()
	for i := range node.Keys {
		k, _, err := it.eval(node.Keys[i], ctx)
		if err != nil {
			return nil, sigNone, err
		}
		v, _, err := it.eval(node.Values[i], ctx)
		if err != nil {
			return nil, sigNone, err
		}
		m.Set(k, v)
	}
	return m, sigNone, nil
}

func (it *Interpreter) evalDelete(node *parser.Delete, ctx *context.Context) (value.Value, signal, *errors.Error) {
	owner, ok := ctx.SymbolTable.Owner(node.Name)
	if !ok {
		return nil, sigNone, errors.New(errors.VariableAccess, node.Span(), "cannot delete undefined identifier %q", node.Name)
	}
	owner.Remove(node.Name)
	return value.NewNil(), sigNone, nil
}

func (it *Interpreter) evalReturn(node *parser.Return, ctx *context.Context) (value.Value, signal, *errors.Error) {
	if node.Value == nil {
		return value.NewNil(), sigReturn, nil
	}
	v, _, err := it.eval(node.Value, ctx)
	if err != nil {
		return nil, sigNone, err
	}
	return v, sigReturn, nil
}

func parseInt(s string) (int64, error) {
	var v int64
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}

func parseFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%g", &v)
	return v, err
}
