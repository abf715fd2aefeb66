/*
File   : value/map_val.go
Package: value

Map is an insertion-ordered mapping from Value keys (Number or String
in practice) to Value, grounded on the source material's parallel
Keys-slice idiom for preserving insertion order over a plain Go map.
*/
package value

import (
	"strings"

	"github.com/shepherdp/SAFyR-dev/errors"
)

type Map struct {
	Base
	Default
	keys   []Value
	values map[string]Value
	order  []string
}

func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

func keyRepr(k Value) string { return k.Kind() + "|" + k.String() }

func (m *Map) Kind() string { return "MAP" }

func (m *Map) String() string {
	parts := make([]string, 0, len(m.order))
	for _, r := range m.order {
		k := m.keyOf(r)
		parts = append(parts, k.String()+": "+m.values[r].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *Map) keyOf(repr string) Value {
	for _, k := range m.keys {
		if keyRepr(k) == repr {
			return k
		}
	}
	return nil
}

func (m *Map) IsTrue() bool { return len(m.order) != 0 }

// Set inserts or overwrites a key, preserving first-insertion order.
func (m *Map) Set(k, v Value) {
	r := keyRepr(k)
	if _, exists := m.values[r]; !exists {
		m.order = append(m.order, r)
		m.keys = append(m.keys, k)
	}
	m.values[r] = v
}

func (m *Map) Get(k Value) (Value, bool) {
	v, ok := m.values[keyRepr(k)]
	return v, ok
}

// Delete removes a key, returning whether it was present.
func (m *Map) Delete(k Value) bool {
	r := keyRepr(k)
	if _, ok := m.values[r]; !ok {
		return false
	}
	delete(m.values, r)
	for i, rr := range m.order {
		if rr == r {
			m.order = append(m.order[:i], m.order[i+1:]...)
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *Map) Len() int { return len(m.order) }

// KeysInOrder returns the keys in insertion order.
func (m *Map) KeysInOrder() []Value { return append([]Value{}, m.keys...) }

func (m *Map) Copy() Value {
	cp := NewMap()
	for _, r := range m.order {
		cp.Set(m.keyOf(r), m.values[r].Copy())
	}
	cp.Base = Base{StaticFlag: m.StaticFlag, ConstFlag: m.ConstFlag, Span: m.Span, Triggers: m.Triggers}
	return cp
}

// Add merges, with the right map's keys winning on conflict.
func (m *Map) Add(other Value) (Value, *errors.Error) {
	o, ok := other.(*Map)
	if !ok {
		return notImpl("add", m, other)
	}
	out := NewMap()
	for _, r := range m.order {
		out.Set(m.keyOf(r), m.values[r])
	}
	for _, r := range o.order {
		out.Set(o.keyOf(r), o.values[r])
	}
	return out, nil
}

// Sub removes the key on the right, if present.
func (m *Map) Sub(other Value) (Value, *errors.Error) {
	out := m.Copy().(*Map)
	out.Delete(other)
	return out, nil
}

func (m *Map) Eq(other Value) (Value, *errors.Error) {
	o, ok := other.(*Map)
	if !ok || o.Len() != m.Len() {
		return Bool(false), nil
	}
	for _, r := range m.order {
		ov, ok := o.values[r]
		if !ok {
			return Bool(false), nil
		}
		eq, err := m.values[r].Eq(ov)
		if err != nil {
			return nil, err
		}
		if !eq.IsTrue() {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}
func (m *Map) Ne(other Value) (Value, *errors.Error) {
	v, err := m.Eq(other)
	if err != nil {
		return nil, err
	}
	return Bool(!v.IsTrue()), nil
}

// At returns the value bound to the given key; a missing key errors.
func (m *Map) At(other Value) (Value, *errors.Error) {
	v, ok := m.Get(other)
	if !ok {
		return nil, errors.New(errors.OutOfBounds, m.Span, "key %s not found in map", other.String())
	}
	return v, nil
}

func (m *Map) Contains(other Value) (Value, *errors.Error) {
	_, ok := m.Get(other)
	return Bool(ok), nil
}
