/*
File   : builtin/types.go
Package: builtin

Type-introspection built-ins: type, isnum, isstr, islst, isfun.
*/
package builtin

import (
	"io"

	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/value"
)

func init() {
	register("type", []string{"value"}, typeFn)
	register("isnum", []string{"value"}, isnumFn)
	register("isstr", []string{"value"}, isstrFn)
	register("islst", []string{"value"}, islstFn)
	register("isfun", []string{"value"}, isfunFn)
}

func typeFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("type", 1, len(args))
	}
	return value.NewString(args[0].Kind()), nil
}

func isnumFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("isnum", 1, len(args))
	}
	_, ok := args[0].(*value.Number)
	return value.Bool(ok), nil
}

func isstrFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("isstr", 1, len(args))
	}
	_, ok := args[0].(*value.String)
	return value.Bool(ok), nil
}

func islstFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("islst", 1, len(args))
	}
	_, ok := args[0].(*value.List)
	return value.Bool(ok), nil
}

func isfunFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("isfun", 1, len(args))
	}
	switch args[0].(type) {
	case *value.Function, *value.BuiltInFunction, *value.StructGenerator:
		return value.Bool(true), nil
	}
	return value.Bool(false), nil
}
