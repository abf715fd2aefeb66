/*
File   : value/string_val.go
Package: value
*/
package value

import (
	"strings"

	"github.com/shepherdp/SAFyR-dev/errors"
)

type String struct {
	Base
	Default
	Val string
}

func NewString(s string) *String { return &String{Val: s} }

func (s *String) Kind() string   { return "STR" }
func (s *String) String() string { return s.Val }
func (s *String) IsTrue() bool   { return s.Val != "" }
func (s *String) Copy() Value {
	cp := *s
	cp.Base = Base{StaticFlag: s.StaticFlag, ConstFlag: s.ConstFlag, Span: s.Span, Triggers: s.Triggers}
	return &cp
}

func (s *String) Add(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("add", s, other)
	}
	return NewString(s.Val + o.Val), nil
}

// Sub removes all occurrences of the right string from the left.
func (s *String) Sub(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("sub", s, other)
	}
	return NewString(strings.ReplaceAll(s.Val, o.Val, "")), nil
}

// Mul repeats the string Number times.
func (s *String) Mul(other Value) (Value, *errors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return notImpl("mul", s, other)
	}
	n := o.AsInt()
	if n < 0 {
		n = 0
	}
	return NewString(strings.Repeat(s.Val, int(n))), nil
}

// Div splits on the right string, dropping empty pieces.
func (s *String) Div(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("div", s, other)
	}
	parts := strings.Split(s.Val, o.Val)
	elems := make([]Value, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		elems = append(elems, NewString(p))
	}
	return NewList(elems), nil
}

func (s *String) Eq(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return Bool(false), nil
	}
	return Bool(s.Val == o.Val), nil
}
func (s *String) Ne(other Value) (Value, *errors.Error) {
	v, _ := s.Eq(other)
	return Bool(!v.IsTrue()), nil
}
func (s *String) Lt(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("lt", s, other)
	}
	return Bool(s.Val < o.Val), nil
}
func (s *String) Gt(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("gt", s, other)
	}
	return Bool(s.Val > o.Val), nil
}
func (s *String) Le(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("le", s, other)
	}
	return Bool(s.Val <= o.Val), nil
}
func (s *String) Ge(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("ge", s, other)
	}
	return Bool(s.Val >= o.Val), nil
}

// At returns the character at an integer index (negative counts from
// the end) as a one-character String.
func (s *String) At(other Value) (Value, *errors.Error) {
	idx, ok := other.(*Number)
	if !ok || idx.Sub != SubInt {
		return nil, errors.New(errors.InvalidSpecifier, s.Span, "@ index must be an INT")
	}
	i := int(idx.I)
	if i < 0 {
		i += len(s.Val)
	}
	if i < 0 || i >= len(s.Val) {
		return nil, errors.New(errors.OutOfBounds, s.Span, "index %d out of bounds for string of length %d", idx.I, len(s.Val))
	}
	return NewString(string(s.Val[i])), nil
}

func (s *String) Contains(other Value) (Value, *errors.Error) {
	o, ok := other.(*String)
	if !ok {
		return notImpl("contains", s, other)
	}
	return Bool(strings.Contains(s.Val, o.Val)), nil
}

// clampLen clamps an out-of-range prefix length to the full length of
// the container, per the </ /> slicing rule.
func clampLen(n, length int) int {
	if n < 0 {
		n = 0
	}
	if n > length {
		n = length
	}
	return n
}

// SliceLeft takes a left-anchored prefix of the given length.
func (s *String) SliceLeft(other Value) (Value, *errors.Error) {
	n, ok := other.(*Number)
	if !ok {
		return notImpl("</", s, other)
	}
	k := clampLen(int(n.AsInt()), len(s.Val))
	return NewString(s.Val[:k]), nil
}

// SliceRight takes a right-anchored prefix (suffix) of the given length.
func (s *String) SliceRight(other Value) (Value, *errors.Error) {
	n, ok := other.(*Number)
	if !ok {
		return notImpl("/>", s, other)
	}
	k := clampLen(int(n.AsInt()), len(s.Val))
	return NewString(s.Val[len(s.Val)-k:]), nil
}
