/*
File   : builtin/collections.go
Package: builtin

Container built-ins: pop, append, extend, keys, values, len. append
and extend add to the List value they are passed and return that same
list; pop removes the last element of the List it is passed and returns
that element. Outside a struct's own context a call receives a copy of
an identifier argument (see interp's evalVarAccess), so these built-ins
do not change the list bound to a variable named as the argument.
*/
package builtin

import (
	"io"

	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/source"
	"github.com/shepherdp/SAFyR-dev/value"
)

func init() {
	register("pop", []string{"list"}, popFn)
	register("append", []string{"list", "item"}, appendFn)
	register("extend", []string{"list", "other"}, extendFn)
	register("keys", []string{"map"}, keysFn)
	register("values", []string{"map"}, valuesFn)
	register("len", []string{"value"}, lenFn)
}

func asList(name string, v value.Value) (*value.List, *errors.Error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, typeError(name, 1, "LST", v)
	}
	return l, nil
}

func popFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("pop", 1, len(args))
	}
	l, lerr := asList("pop", args[0])
	if lerr != nil {
		return nil, lerr
	}
	if len(l.Elements) == 0 {
		return nil, errors.New(errors.OutOfBounds, source.Span{}, "pop: list is empty")
	}
	last := l.Elements[len(l.Elements)-1]
	l.Elements = l.Elements[:len(l.Elements)-1]
	return last, nil
}

func appendFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 2 {
		return nil, arityError("append", 2, len(args))
	}
	l, lerr := asList("append", args[0])
	if lerr != nil {
		return nil, lerr
	}
	l.Elements = append(l.Elements, args[1])
	return l, nil
}

func extendFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 2 {
		return nil, arityError("extend", 2, len(args))
	}
	l, lerr := asList("extend", args[0])
	if lerr != nil {
		return nil, lerr
	}
	o, oerr := asList("extend", args[1])
	if oerr != nil {
		return nil, oerr
	}
	l.Elements = append(l.Elements, o.Elements...)
	return l, nil
}

func asMap(name string, v value.Value) (*value.Map, *errors.Error) {
	m, ok := v.(*value.Map)
	if !ok {
		return nil, typeError(name, 1, "MAP", v)
	}
	return m, nil
}

func keysFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("keys", 1, len(args))
	}
	m, merr := asMap("keys", args[0])
	if merr != nil {
		return nil, merr
	}
	return value.NewList(m.KeysInOrder()), nil
}

func valuesFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("values", 1, len(args))
	}
	m, merr := asMap("values", args[0])
	if merr != nil {
		return nil, merr
	}
	out := make([]value.Value, 0, m.Len())
	for _, k := range m.KeysInOrder() {
		v, _ := m.Get(k)
		out = append(out, v)
	}
	return value.NewList(out), nil
}

func lenFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("len", 1, len(args))
	}
	switch v := args[0].(type) {
	case *value.String:
		return value.NewInt(int64(len(v.Val))), nil
	case *value.List:
		return value.NewInt(int64(len(v.Elements))), nil
	case *value.Map:
		return value.NewInt(int64(v.Len())), nil
	default:
		return nil, typeError("len", 1, "STR, LST, or MAP", args[0])
	}
}
