/*
File   : value/number.go
Package: value

Number is the sole numeric variant, tagged INT or FLT. There is no
dedicated boolean variant: truthiness is "value != 0", and the reserved
keywords T/F are bound to Number(1)/Number(0) by the interpreter.
*/
package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/shepherdp/SAFyR-dev/errors"
)

type NumSub string

const (
	SubInt NumSub = "INT"
	SubFlt NumSub = "FLT"
)

type Number struct {
	Base
	Default
	Sub NumSub
	I   int64
	F   float64
}

func NewInt(v int64) *Number   { return &Number{Sub: SubInt, I: v} }
func NewFlt(v float64) *Number { return &Number{Sub: SubFlt, F: v} }

func (n *Number) Kind() string { return string(n.Sub) }

func (n *Number) AsFloat() float64 {
	if n.Sub == SubFlt {
		return n.F
	}
	return float64(n.I)
}

func (n *Number) AsInt() int64 {
	if n.Sub == SubInt {
		return n.I
	}
	return int64(n.F)
}

func (n *Number) String() string {
	if n.Sub == SubFlt {
		s := strconv.FormatFloat(n.F, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += "."
		}
		return s
	}
	return strconv.FormatInt(n.I, 10)
}

func (n *Number) Copy() Value {
	cp := *n
	cp.Base = Base{StaticFlag: n.StaticFlag, ConstFlag: n.ConstFlag, Span: n.Span, Triggers: n.Triggers}
	return &cp
}

func (n *Number) IsTrue() bool { return n.AsFloat() != 0 }

// combine produces the arithmetic result type: FLT if either side is
// FLT, else INT.
func combine(a, b *Number, fi func(i1, i2 int64) int64, ff func(f1, f2 float64) float64) *Number {
	if a.Sub == SubFlt || b.Sub == SubFlt {
		return NewFlt(ff(a.AsFloat(), b.AsFloat()))
	}
	return NewInt(fi(a.I, b.I))
}

func (n *Number) asNumber(other Value) (*Number, bool) {
	o, ok := other.(*Number)
	return o, ok
}

func (n *Number) Add(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("add", n, other)
	}
	return combine(n, o, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
}

func (n *Number) Sub(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("sub", n, other)
	}
	return combine(n, o, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
}

func (n *Number) Mul(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("mul", n, other)
	}
	return combine(n, o, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
}

func (n *Number) Div(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("div", n, other)
	}
	if o.AsFloat() == 0 {
		return nil, errors.New(errors.RuntimeErr, n.Span, "division by zero")
	}
	return combine(n, o, func(a, b int64) int64 { return a / b }, func(a, b float64) float64 { return a / b }), nil
}

func (n *Number) Mod(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("mod", n, other)
	}
	if o.AsFloat() == 0 {
		return nil, errors.New(errors.RuntimeErr, n.Span, "modulo by zero")
	}
	return combine(n, o, func(a, b int64) int64 { return a % b }, math.Mod), nil
}

func (n *Number) Pow(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("pow", n, other)
	}
	if n.Sub == SubInt && o.Sub == SubInt && o.I >= 0 {
		return NewInt(int64(math.Pow(float64(n.I), float64(o.I)))), nil
	}
	return NewFlt(math.Pow(n.AsFloat(), o.AsFloat())), nil
}

func (n *Number) Eq(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return Bool(false), nil
	}
	return Bool(n.AsFloat() == o.AsFloat()), nil
}

func (n *Number) Ne(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return Bool(true), nil
	}
	return Bool(n.AsFloat() != o.AsFloat()), nil
}

func (n *Number) Lt(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("lt", n, other)
	}
	return Bool(n.AsFloat() < o.AsFloat()), nil
}

func (n *Number) Gt(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("gt", n, other)
	}
	return Bool(n.AsFloat() > o.AsFloat()), nil
}

func (n *Number) Le(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("le", n, other)
	}
	return Bool(n.AsFloat() <= o.AsFloat()), nil
}

func (n *Number) Ge(other Value) (Value, *errors.Error) {
	o, ok := n.asNumber(other)
	if !ok {
		return notImpl("ge", n, other)
	}
	return Bool(n.AsFloat() >= o.AsFloat()), nil
}

func (n *Number) LogAnd(other Value) (Value, *errors.Error) {
	return Bool(n.IsTrue() && other.IsTrue()), nil
}
func (n *Number) LogOr(other Value) (Value, *errors.Error) {
	return Bool(n.IsTrue() || other.IsTrue()), nil
}
func (n *Number) LogNand(other Value) (Value, *errors.Error) {
	return Bool(!(n.IsTrue() && other.IsTrue())), nil
}
func (n *Number) LogNor(other Value) (Value, *errors.Error) {
	return Bool(!(n.IsTrue() || other.IsTrue())), nil
}
func (n *Number) LogXor(other Value) (Value, *errors.Error) {
	return Bool(n.IsTrue() != other.IsTrue()), nil
}

// Not is unary logical negation; it has no Ops slot (unary operators
// are dispatched separately by the interpreter) but lives here next to
// the other logical connectives.
func (n *Number) Not() Value { return Bool(!n.IsTrue()) }

// At returns the nth decimal digit of the number's string
// representation (the digit character re-parsed as an INT Number).
func (n *Number) At(other Value) (Value, *errors.Error) {
	idx, ok := other.(*Number)
	if !ok || idx.Sub != SubInt {
		return nil, errors.New(errors.InvalidSpecifier, n.Span, "@ index must be an INT")
	}
	repr := n.String()
	i := int(idx.I)
	if i < 0 {
		i += len(repr)
	}
	if i < 0 || i >= len(repr) {
		return nil, errors.New(errors.OutOfBounds, n.Span, "digit index %d out of bounds for %q", idx.I, repr)
	}
	ch := repr[i]
	if ch < '0' || ch > '9' {
		return nil, errors.New(errors.InvalidSpecifier, n.Span, "position %d is not a digit in %q", idx.I, repr)
	}
	return NewInt(int64(ch - '0')), nil
}
