/*
File   : builtin/registry.go
Package: builtin

The built-in function registry: each built-in is a {name, param-names}
pair dispatched to a host function. Built-ins are registered into the
global Builtins slice via per-file init(), the same decentralized
registration idiom the source material uses, and seeded into the
interpreter's root symbol table (and its globals set) so every child
scope inherits them.
*/
package builtin

import (
	"bufio"
	"io"

	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/source"
	"github.com/shepherdp/SAFyR-dev/value"
)

// Runtime is the thin interface built-ins use to call back into the
// interpreter (e.g. to invoke a user-defined function, or to read a
// line from the input stream), avoiding a circular import between this
// package and interp.
type Runtime interface {
	CallFunction(fn value.Value, args ...value.Value) (value.Value, *errors.Error)
	InputReader() *bufio.Reader
}

// CallbackFunc is the signature every built-in implements.
type CallbackFunc func(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error)

// Builtin is {name, param-names}, dispatched to Callback.
type Builtin struct {
	Name       string
	ParamNames []string
	Callback   CallbackFunc
}

// Builtins is the global registry, populated by each file's init().
var Builtins = make([]*Builtin, 0)

func register(name string, params []string, fn CallbackFunc) {
	Builtins = append(Builtins, &Builtin{Name: name, ParamNames: params, Callback: fn})
}

// arityError reports a built-in called with the wrong number of
// arguments. Built-ins have no call-site span of their own to attach,
// so the zero Span is filled in by the interpreter as it wraps the
// error with the call node's position.
func arityError(name string, want int, got int) *errors.Error {
	return errors.New(errors.InvalidArgumentSet, source.Span{}, "%s expects %d argument(s), got %d", name, want, got)
}

// typeError reports a built-in called with an argument of the wrong
// runtime type.
func typeError(name string, argIdx int, want string, got value.Value) *errors.Error {
	return errors.New(errors.InvalidArgumentSet, source.Span{}, "%s: argument %d must be %s, got %s", name, argIdx, want, got.Kind())
}
