/*
File   : context/context.go
Package: context

Context{display_name, parent-ref, symbol_table} and
SymbolTable{symbols, parent-ref, globals}. Contexts whose display name
begins with "struct" enable the struct-field access rules in the
interpreter (identifier reads return the original value rather than a
copy). The call-stack chain used for error tracebacks is the chain of
Context.parent pointers.
*/
package context

import "github.com/shepherdp/SAFyR-dev/value"

// SymbolTable is {symbols: mapping identifier -> Value, parent-ref,
// globals: set of identifiers}.
//
// get(name) returns the local value; if absent and name is in the
// parent's globals, it ascends to the parent. Globals is created once
// by the parentless root table and shared by reference with every table
// below it, so a name registered global at any scope stays visible to
// every descendant scope from then on -- this
// is how the root-seeded built-in registry stays visible arbitrarily
// deep without every intermediate scope re-declaring it.
type SymbolTable struct {
	Symbols  map[string]value.Value
	Triggers map[string][]*value.Trigger
	Parent   *SymbolTable
	Globals  map[string]bool
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	globals := make(map[string]bool)
	if parent != nil {
		globals = parent.Globals
	}
	return &SymbolTable{
		Symbols:  make(map[string]value.Value),
		Triggers: make(map[string][]*value.Trigger),
		Parent:   parent,
		Globals:  globals,
	}
}

// Get returns the locally bound value, ascending to the parent only
// when the name is registered as global there.
func (st *SymbolTable) Get(name string) (value.Value, bool) {
	if v, ok := st.Symbols[name]; ok {
		return v, true
	}
	if st.Parent != nil && st.Parent.Globals[name] {
		return st.Parent.Get(name)
	}
	return nil, false
}

// Owner returns the SymbolTable that actually holds the binding for
// name, following the same ascension rule as Get. Used by assignment
// to mutate the original binding rather than shadow it.
func (st *SymbolTable) Owner(name string) (*SymbolTable, bool) {
	if _, ok := st.Symbols[name]; ok {
		return st, true
	}
	if st.Parent != nil && st.Parent.Globals[name] {
		return st.Parent.Owner(name)
	}
	return nil, false
}

// Set writes locally.
func (st *SymbolTable) Set(name string, v value.Value) {
	st.Symbols[name] = v
}

// Remove deletes locally.
func (st *SymbolTable) Remove(name string) {
	delete(st.Symbols, name)
	delete(st.Triggers, name)
}

// MarkGlobal registers name in this table's globals set, making it
// visible to every descendant scope, both for reads (Get) and for
// assignment through Owner.
func (st *SymbolTable) MarkGlobal(name string) {
	st.Globals[name] = true
}

// Snapshot captures the current local bindings, for try/catch rollback.
func (st *SymbolTable) Snapshot() map[string]value.Value {
	cp := make(map[string]value.Value, len(st.Symbols))
	for k, v := range st.Symbols {
		cp[k] = v
	}
	return cp
}

// Restore replaces the local bindings with a prior snapshot.
func (st *SymbolTable) Restore(snap map[string]value.Value) {
	st.Symbols = make(map[string]value.Value, len(snap))
	for k, v := range snap {
		st.Symbols[k] = v
	}
}

// Context is {display_name, parent-ref, symbol_table}.
type Context struct {
	DisplayName string
	Parent      *Context
	SymbolTable *SymbolTable
	// Static is `use static`'s per-context static-typing switch.
	// Inherited from the parent at creation time, same as Globals.
	Static bool
}

func NewContext(displayName string, parent *Context) *Context {
	var parentTable *SymbolTable
	var static bool
	if parent != nil {
		parentTable = parent.SymbolTable
		static = parent.Static
	}
	return &Context{
		DisplayName: displayName,
		Parent:      parent,
		SymbolTable: NewSymbolTable(parentTable),
		Static:      static,
	}
}

// IsStructContext reports whether this context's display name marks it
// as a struct's own context, enabling struct-field access rules.
func (c *Context) IsStructContext() bool {
	return len(c.DisplayName) >= len("struct") && c.DisplayName[:len("struct")] == "struct"
}

// Trace walks the parent chain, most recent frame first, for
// human-readable call-stack error messages.
func (c *Context) Trace() []string {
	var frames []string
	for cur := c; cur != nil; cur = cur.Parent {
		frames = append(frames, cur.DisplayName)
	}
	return frames
}
