/*
File   : parser/node.go
Package: parser

The AST node set (~30 shapes), each carrying a position span. Dispatch
from the interpreter is by type-switch rather than a NodeVisitor: a
single-pass tree-walker does not need double dispatch, and a type
switch keeps the ~30 shapes and their evaluation rules next to each
other in the interpreter package instead of scattered one-method-per-
file across an interface.
*/
package parser

import (
	"github.com/shepherdp/SAFyR-dev/lexer"
	"github.com/shepherdp/SAFyR-dev/source"
)

// Node is implemented by every AST node.
type Node interface {
	Span() source.Span
}

type base struct {
	span source.Span
}

func (b base) Span() source.Span { return b.span }

// NumberLit is an integer or float literal token.
type NumberLit struct {
	base
	Tok lexer.Token
}

// StringLit is a string literal.
type StringLit struct {
	base
	Tok lexer.Token
}

// ListLit is `[e1 e2 ...]`: elements separated by whitespace or newlines.
type ListLit struct {
	base
	Elements []Node
}

// MapLit is `{k1: v1 k2: v2 ...}` used as an expression (as opposed
// to a braced block, disambiguated by the parser).
type MapLit struct {
	base
	Keys   []Node
	Values []Node
}

// Capsule is an internal wrapper for a statement sequence whose
// single-element unwrap preserves struct semantics: a Capsule with
// exactly one statement evaluates to that statement's value directly.
type Capsule struct {
	base
	Statements []Node
}

// VarAccess reads an identifier.
type VarAccess struct {
	base
	Name string
}

// VarAssign declares or rebinds a simple identifier, with the optional
// qualifiers from the `expr` production's prefix: `[const] [global]
// [var|int|flt|str|lst|map] SYM = expr`.
type VarAssign struct {
	base
	Name     string
	TypeTag  string // "", "var", "int", "flt", "str", "lst", "map"
	IsConst  bool
	IsGlobal bool
	Op       string // "=", "+=", "-=", "*=", "/=", "%=", "^="
	Value    Node
}

// ReferenceAccess wraps a chained `.`/`@` access, and wraps
// ReferenceAssign when that chain is the target of an assignment.
type ReferenceAccess struct {
	base
	Root  Node
	Steps []RefStep
}

// RefStep is one link in a chained access: either `.name` (property)
// or `@index` (subscript).
type RefStep struct {
	IsProperty bool
	Name       string // set when IsProperty
	Index      Node   // set when !IsProperty
}

// ReferenceAssign is the assignment form of a ReferenceAccess: the
// target chain, the assignment operator, and the value expression.
type ReferenceAssign struct {
	base
	Target *ReferenceAccess
	Op     string
	Value  Node
}

// BinOp is a binary operator application; Op is the operator token's
// literal text/kind name (e.g. "PLS", "AND", "INJ").
type BinOp struct {
	base
	Op    string
	Left  Node
	Right Node
}

// UnaryOp is `-x`, `+x`, or `~x` (logical not).
type UnaryOp struct {
	base
	Op   string
	Expr Node
}

// If is a conditional chain: `?`/`if`, zero or more `!?`/`elif` arms,
// and an optional `!`/`else` arm.
type If struct {
	base
	Conds  []Node
	Bodies []Node
	Else   Node // nil if absent
}

// For is `for IDENT = start .. end [.. step] <body>`.
type For struct {
	base
	Var   string
	Start Node
	End   Node
	Step  Node // nil if defaulted
	Body  Node
}

// ForEach is `foreach IDENT in expr <body>`.
type ForEach struct {
	base
	Var      string
	Iterable Node
	Body     Node
}

// While is `while cond <body>`.
type While struct {
	base
	Cond Node
	Body Node
}

// When attaches Body to the trigger list of the identifier on the left
// of Cond, re-evaluated on every rebinding of that identifier.
type When struct {
	base
	TriggerVar string
	Cond       Node
	Body       Node
}

// Defer runs Body when the enclosing function returns.
type Defer struct {
	base
	Body Node
}

type Continue struct{ base }
type Break struct{ base }

// Once marks the nearest enclosing `when` trigger body as one-shot.
type Once struct{ base }

// Return unwinds to the nearest function call boundary.
type Return struct {
	base
	Value Node // nil for bare `return`
}

// Use is `use <identifier>` (module import) or `use static`.
type Use struct {
	base
	Name     string
	IsStatic bool
}

// Delete is `del <identifier>`.
type Delete struct {
	base
	Name string
}

// FunctionDef is `: [name] [params] <~ body`.
type FunctionDef struct {
	base
	Name   string // "" if anonymous
	Params []string
	Body   Node
}

// InterfaceDef is `.name <~ body` inside a struct body.
type InterfaceDef struct {
	base
	Name string
	Body Node
}

// StructDef is `:: [name] [params] { ... }`; Fields are plain
// assignment statements in the body, Interfaces are InterfaceDef
// statements.
type StructDef struct {
	base
	Name       string
	Params     []string
	Fields     []Node
	Interfaces []*InterfaceDef
}

// Call is `callee(arg1 arg2 ...)`: arguments separated by whitespace.
type Call struct {
	base
	Callee Node
	Args   []Node
}

// ErrorHandler is `try <body> catch <body>`.
type ErrorHandler struct {
	base
	TryBody   Node
	CatchBody Node
}
