/*
File   : value/function_val.go
Package: value

Function{name, body AST, parameter names, auto_return flag, captured
context}, StructGenerator (like Function but produces a Struct when
called), and BuiltInFunction{name, argument-name schema}. Body and
CapturedEnv are stored as interface{} (parser.Node / *context.Context)
for the same circular-import reasons as Struct.OwnContext.
*/
package value

import "strings"

type Function struct {
	Base
	Default
	Name        string
	Params      []string
	Body        interface{}
	AutoReturn  bool
	CapturedEnv interface{}
}

func (f *Function) Kind() string { return "FUNC" }
func (f *Function) String() string {
	return "fn:" + f.Name + "(" + strings.Join(f.Params, ", ") + ")"
}
func (f *Function) IsTrue() bool { return true }
func (f *Function) Copy() Value {
	cp := *f
	cp.Base = Base{StaticFlag: f.StaticFlag, ConstFlag: f.ConstFlag, Span: f.Span, Triggers: f.Triggers}
	return &cp
}

type StructGenerator struct {
	Base
	Default
	Name        string
	Params      []string
	Body        interface{}
	CapturedEnv interface{}
}

func (g *StructGenerator) Kind() string { return "STRUCTGEN" }
func (g *StructGenerator) String() string {
	return "struct:" + g.Name + "(" + strings.Join(g.Params, ", ") + ")"
}
func (g *StructGenerator) IsTrue() bool { return true }
func (g *StructGenerator) Copy() Value {
	cp := *g
	cp.Base = Base{StaticFlag: g.StaticFlag, ConstFlag: g.ConstFlag, Span: g.Span, Triggers: g.Triggers}
	return &cp
}

type BuiltInFunction struct {
	Base
	Default
	Name       string
	ParamNames []string
}

func (b *BuiltInFunction) Kind() string { return "BUILTIN" }
func (b *BuiltInFunction) String() string {
	return "builtin:" + b.Name
}
func (b *BuiltInFunction) IsTrue() bool { return true }
func (b *BuiltInFunction) Copy() Value {
	cp := *b
	cp.Base = Base{StaticFlag: b.StaticFlag, ConstFlag: b.ConstFlag, Span: b.Span, Triggers: b.Triggers}
	return &cp
}
