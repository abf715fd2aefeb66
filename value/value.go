/*
File   : value/value.go
Package: value

The runtime value model: a tagged variant (Number, String, List, Map,
Struct, Function, StructGenerator, BuiltInFunction, File) plus a
trait-like capability interface (Ops) for operator dispatch, per the
source's dynamic-dispatch design note. Every concrete type embeds
Default, which stubs every operator to NotImplemented, and overrides
only the operators it actually supports -- so "variants that do not
support an op return NotImplemented" falls out of Go's method shadowing
instead of being checked by hand at every call site.
*/
package value

import (
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/source"
)

// Value is implemented by every runtime value variant.
type Value interface {
	Kind() string
	String() string
	Copy() Value
	IsTrue() bool
	Meta() *Base
	Ops
}

// Ops is the full operator surface a Value variant may implement.
// Binary ops are routed through the left operand's method for the
// operator tag.
type Ops interface {
	Add(Value) (Value, *errors.Error)
	Sub(Value) (Value, *errors.Error)
	Mul(Value) (Value, *errors.Error)
	Div(Value) (Value, *errors.Error)
	Mod(Value) (Value, *errors.Error)
	Pow(Value) (Value, *errors.Error)
	Eq(Value) (Value, *errors.Error)
	Ne(Value) (Value, *errors.Error)
	Lt(Value) (Value, *errors.Error)
	Gt(Value) (Value, *errors.Error)
	Le(Value) (Value, *errors.Error)
	Ge(Value) (Value, *errors.Error)
	LogAnd(Value) (Value, *errors.Error)
	LogOr(Value) (Value, *errors.Error)
	LogNand(Value) (Value, *errors.Error)
	LogNor(Value) (Value, *errors.Error)
	LogXor(Value) (Value, *errors.Error)
	At(Value) (Value, *errors.Error)
	Contains(Value) (Value, *errors.Error)
	Inj(Value) (Value, *errors.Error)
	SliceLeft(Value) (Value, *errors.Error)
	SliceRight(Value) (Value, *errors.Error)
}

// Trigger is a `when` node attached to a variable binding, re-checked
// on every successful rebinding of that variable. Node and Env are
// opaque (*parser.When and *context.Context respectively); storing
// them as interface{} here keeps this package free of a dependency on
// either the parser or the context package, the same trick the source
// material uses for FunctionInterface to break a circular import.
type Trigger struct {
	Node  interface{}
	Env   interface{}
	Once  bool
	dead  bool
}

func (t *Trigger) MarkDead() { t.dead = true }
func (t *Trigger) Dead() bool { return t.dead }

// Base carries the metadata shared by every runtime value: {static,
// const, triggers, span}. Struct additionally owns a
// context (see struct_val.go); plain values do not need one.
type Base struct {
	StaticFlag bool
	ConstFlag  bool
	Triggers   []*Trigger
	Span       source.Span
}

func (b *Base) Meta() *Base   { return b }
func (b *Base) Static() bool  { return b.StaticFlag }
func (b *Base) Const() bool   { return b.ConstFlag }

// Default stubs the full Ops surface to NotImplemented. Concrete value
// types embed Default and shadow only the methods they support.
type Default struct{}

func notImpl(op string, a, b Value) (Value, *errors.Error) {
	return nil, errors.New(errors.NotImplementedErr, a.Meta().Span,
		"%s does not support %s with %s", a.Kind(), op, b.Kind())
}

// Default's stub methods have no receiver value to report as "a" in
// notImpl, since Default is embedded rather than holding the concrete
// value. They return the errUnsupported sentinel instead; the
// interpreter's binary-op and augmented-assignment evaluation detects it
// with IsUnsupportedOp and reports a NotImplemented error naming the
// real operand kinds.
func (Default) Add(Value) (Value, *errors.Error)        { return nil, errUnsupported }
func (Default) Sub(Value) (Value, *errors.Error)        { return nil, errUnsupported }
func (Default) Mul(Value) (Value, *errors.Error)        { return nil, errUnsupported }
func (Default) Div(Value) (Value, *errors.Error)        { return nil, errUnsupported }
func (Default) Mod(Value) (Value, *errors.Error)        { return nil, errUnsupported }
func (Default) Pow(Value) (Value, *errors.Error)        { return nil, errUnsupported }
func (Default) Lt(Value) (Value, *errors.Error)         { return nil, errUnsupported }
func (Default) Gt(Value) (Value, *errors.Error)         { return nil, errUnsupported }
func (Default) Le(Value) (Value, *errors.Error)         { return nil, errUnsupported }
func (Default) Ge(Value) (Value, *errors.Error)         { return nil, errUnsupported }
func (Default) LogAnd(Value) (Value, *errors.Error)     { return nil, errUnsupported }
func (Default) LogOr(Value) (Value, *errors.Error)      { return nil, errUnsupported }
func (Default) LogNand(Value) (Value, *errors.Error)    { return nil, errUnsupported }
func (Default) LogNor(Value) (Value, *errors.Error)     { return nil, errUnsupported }
func (Default) LogXor(Value) (Value, *errors.Error)     { return nil, errUnsupported }
func (Default) At(Value) (Value, *errors.Error)         { return nil, errUnsupported }
func (Default) Contains(Value) (Value, *errors.Error)   { return nil, errUnsupported }
func (Default) Inj(Value) (Value, *errors.Error)        { return nil, errUnsupported }
func (Default) SliceLeft(Value) (Value, *errors.Error)  { return nil, errUnsupported }
func (Default) SliceRight(Value) (Value, *errors.Error) { return nil, errUnsupported }

// errUnsupported is a sentinel the interpreter's binary-op dispatcher
// recognizes and replaces with a proper NotImplemented error carrying
// the real operand kinds and call-site span -- Default itself doesn't
// hold the concrete left operand needed to build that message.
var errUnsupported = errors.New(errors.NotImplementedErr, source.Span{}, "operator not supported")

// IsUnsupportedOp reports whether err is the Default sentinel, letting
// the interpreter's binary-op dispatcher replace it with a proper
// NotImplemented error carrying the real operand kinds and call-site
// span.
func IsUnsupportedOp(err *errors.Error) bool { return err == errUnsupported }

// Eq/Ne default to cross-variant comparison: "equality across different
// variants yields false rather than an error". Concrete types that want
// same-variant structural equality override these.
func (Default) Eq(Value) (Value, *errors.Error) { return Bool(false), nil }
func (Default) Ne(Value) (Value, *errors.Error) { return Bool(true), nil }

// Nil is the value of a statement or call that produced nothing. It is
// not one of the nine named runtime-value variants, but every pipeline
// needs some value to represent "no result" (an empty block, a bare
// `return`); the spec is silent on it rather than prohibiting it.
type Nil struct {
	Base
	Default
}

func NewNil() *Nil                 { return &Nil{} }
func (*Nil) Kind() string          { return "NIL" }
func (*Nil) String() string        { return "nil" }
func (n *Nil) Copy() Value         { return &Nil{Base: n.Base} }
func (*Nil) IsTrue() bool          { return false }

func (n *Nil) Eq(other Value) (Value, *errors.Error) {
	if _, ok := other.(*Nil); ok {
		return Bool(true), nil
	}
	return Bool(false), nil
}
func (n *Nil) Ne(other Value) (Value, *errors.Error) {
	v, _ := n.Eq(other)
	return Bool(!v.IsTrue()), nil
}

// Bool is shorthand for the canonical Number(1)/Number(0) truth values;
// Safyr has no dedicated boolean variant (see Number.IsTrue).
func Bool(b bool) *Number {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}
