/*
File   : value/list_val.go
Package: value
*/
package value

import (
	"strings"

	"github.com/shepherdp/SAFyR-dev/errors"
)

type List struct {
	Base
	Default
	Elements []Value
}

func NewList(elems []Value) *List { return &List{Elements: elems} }

func (l *List) Kind() string { return "LST" }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) IsTrue() bool { return len(l.Elements) != 0 }

func (l *List) Copy() Value {
	elems := make([]Value, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.Copy()
	}
	cp := &List{Elements: elems}
	cp.Base = Base{StaticFlag: l.StaticFlag, ConstFlag: l.ConstFlag, Span: l.Span, Triggers: l.Triggers}
	return cp
}

// Add appends the right operand's elements.
func (l *List) Add(other Value) (Value, *errors.Error) {
	o, ok := other.(*List)
	if !ok {
		return notImpl("add", l, other)
	}
	out := append(append([]Value{}, l.Elements...), o.Elements...)
	return NewList(out), nil
}

// Sub removes every element equal to any element of the right list.
func (l *List) Sub(other Value) (Value, *errors.Error) {
	o, ok := other.(*List)
	if !ok {
		return notImpl("sub", l, other)
	}
	var out []Value
	for _, e := range l.Elements {
		remove := false
		for _, r := range o.Elements {
			if eq, _ := e.Eq(r); eq != nil && eq.IsTrue() {
				remove = true
				break
			}
		}
		if !remove {
			out = append(out, e)
		}
	}
	return NewList(out), nil
}

// Mul zips two equal-length lists into pairs (each pair itself a List).
func (l *List) Mul(other Value) (Value, *errors.Error) {
	o, ok := other.(*List)
	if !ok {
		return notImpl("mul", l, other)
	}
	if len(l.Elements) != len(o.Elements) {
		return nil, errors.New(errors.InvalidArgumentSet, l.Span, "zip requires equal-length lists (%d vs %d)", len(l.Elements), len(o.Elements))
	}
	out := make([]Value, len(l.Elements))
	for i := range l.Elements {
		out[i] = NewList([]Value{l.Elements[i], o.Elements[i]})
	}
	return NewList(out), nil
}

// Div chunks the list into sublists of the given INT size.
func (l *List) Div(other Value) (Value, *errors.Error) {
	n, ok := other.(*Number)
	if !ok || n.Sub != SubInt || n.I <= 0 {
		return nil, errors.New(errors.InvalidArgumentSet, l.Span, "/ on a list requires a positive INT chunk size")
	}
	size := int(n.I)
	var out []Value
	for i := 0; i < len(l.Elements); i += size {
		end := i + size
		if end > len(l.Elements) {
			end = len(l.Elements)
		}
		out = append(out, NewList(append([]Value{}, l.Elements[i:end]...)))
	}
	return NewList(out), nil
}

// Pow is the cartesian product of two lists.
func (l *List) Pow(other Value) (Value, *errors.Error) {
	o, ok := other.(*List)
	if !ok {
		return notImpl("pow", l, other)
	}
	var out []Value
	for _, a := range l.Elements {
		for _, b := range o.Elements {
			out = append(out, NewList([]Value{a, b}))
		}
	}
	return NewList(out), nil
}

// Inj ("<~") extends the list: it returns a new list with the right
// operand's elements appended, same as Add, leaving the receiver
// unchanged, but is used via the INJ operator tag rather than PLS.
func (l *List) Inj(other Value) (Value, *errors.Error) { return l.Add(other) }

func (l *List) Eq(other Value) (Value, *errors.Error) {
	o, ok := other.(*List)
	if !ok {
		return Bool(false), nil
	}
	if len(l.Elements) != len(o.Elements) {
		return Bool(false), nil
	}
	for i := range l.Elements {
		eq, err := l.Elements[i].Eq(o.Elements[i])
		if err != nil {
			return nil, err
		}
		if !eq.IsTrue() {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}
func (l *List) Ne(other Value) (Value, *errors.Error) {
	v, err := l.Eq(other)
	if err != nil {
		return nil, err
	}
	return Bool(!v.IsTrue()), nil
}

// At returns the element at an integer index (negative counts from the
// end).
func (l *List) At(other Value) (Value, *errors.Error) {
	idx, ok := other.(*Number)
	if !ok || idx.Sub != SubInt {
		return nil, errors.New(errors.InvalidSpecifier, l.Span, "@ index must be an INT")
	}
	i := int(idx.I)
	if i < 0 {
		i += len(l.Elements)
	}
	if i < 0 || i >= len(l.Elements) {
		return nil, errors.New(errors.OutOfBounds, l.Span, "index %d out of bounds for list of length %d", idx.I, len(l.Elements))
	}
	return l.Elements[i], nil
}

func (l *List) Contains(other Value) (Value, *errors.Error) {
	for _, e := range l.Elements {
		eq, err := e.Eq(other)
		if err != nil {
			return nil, err
		}
		if eq.IsTrue() {
			return Bool(true), nil
		}
	}
	return Bool(false), nil
}

func (l *List) SliceLeft(other Value) (Value, *errors.Error) {
	n, ok := other.(*Number)
	if !ok {
		return notImpl("</", l, other)
	}
	k := clampLen(int(n.AsInt()), len(l.Elements))
	return NewList(append([]Value{}, l.Elements[:k]...)), nil
}

func (l *List) SliceRight(other Value) (Value, *errors.Error) {
	n, ok := other.(*Number)
	if !ok {
		return notImpl("/>", l, other)
	}
	k := clampLen(int(n.AsInt()), len(l.Elements))
	return NewList(append([]Value{}, l.Elements[len(l.Elements)-k:]...)), nil
}
