/*
File   : value/struct_val.go
Package: value

Struct{instance_name, properties, own context, interfaces}. The source
material reconciles Struct.properties with its own SymbolTable after
every mutating operation; this implementation instead picks Properties
as the single canonical store and has the interpreter back the struct's
own Context.SymbolTable directly onto this same map (see
interp.bindStructContext), so there is nothing left to reconcile.
OwnContext is stored as interface{} (a *context.Context) to avoid a
circular import between this package and context, mirroring the
FunctionInterface trick the source material uses to keep objects
independent of function.
*/
package value

import (
	"strings"

	"github.com/shepherdp/SAFyR-dev/errors"
)

// Interfaces maps an interface method name to its *parser.InterfaceDef,
// stored as interface{} for the same circular-import reasons as Body.
type Struct struct {
	Base
	Default
	InstanceName string
	Properties   map[string]Value
	PropOrder    []string
	Interfaces   map[string]interface{}
	OwnContext   interface{}
}

func NewStruct(name string) *Struct {
	return &Struct{
		InstanceName: name,
		Properties:   make(map[string]Value),
		Interfaces:   make(map[string]interface{}),
	}
}

func (s *Struct) Kind() string { return "STRUCT" }

func (s *Struct) SetProperty(name string, v Value) {
	if _, exists := s.Properties[name]; !exists {
		s.PropOrder = append(s.PropOrder, name)
	}
	s.Properties[name] = v
}

func (s *Struct) String() string {
	parts := make([]string, 0, len(s.PropOrder))
	for _, name := range s.PropOrder {
		parts = append(parts, name+"="+s.Properties[name].String())
	}
	return s.InstanceName + "{" + strings.Join(parts, ", ") + "}"
}

func (s *Struct) IsTrue() bool { return true }

// Copy duplicates the struct's properties but not its context; the
// interpreter re-derives a fresh context for the copy when one is
// needed (e.g. on a struct-typed return value).
func (s *Struct) Copy() Value {
	cp := NewStruct(s.InstanceName)
	for _, name := range s.PropOrder {
		cp.SetProperty(name, s.Properties[name].Copy())
	}
	for k, v := range s.Interfaces {
		cp.Interfaces[k] = v
	}
	cp.Base = Base{StaticFlag: s.StaticFlag, ConstFlag: s.ConstFlag, Span: s.Span, Triggers: s.Triggers}
	return cp
}

func (s *Struct) Eq(other Value) (Value, *errors.Error) {
	o, ok := other.(*Struct)
	if !ok || len(o.PropOrder) != len(s.PropOrder) {
		return Bool(false), nil
	}
	for _, name := range s.PropOrder {
		ov, ok := o.Properties[name]
		if !ok {
			return Bool(false), nil
		}
		eq, err := s.Properties[name].Eq(ov)
		if err != nil {
			return nil, err
		}
		if !eq.IsTrue() {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}
func (s *Struct) Ne(other Value) (Value, *errors.Error) {
	v, err := s.Eq(other)
	if err != nil {
		return nil, err
	}
	return Bool(!v.IsTrue()), nil
}
