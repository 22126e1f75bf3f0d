package document

import (
	"maps"
	"reflect"
	"slices"
)

// Table is a decoded TOML table: a map from key to decoded node.
type Table map[string]any

// Get returns the value stored at key.
func (t Table) Get(key string) (Value, bool) {
	raw, ok := t[key]
	if !ok {
		return Value{}, false
	}
	return ValueOf(raw), true
}

// Table returns the sub-table stored at key.
func (t Table) Table(key string) (Table, bool) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsTable()
}

// String returns the string stored at key.
func (t Table) String(key string) (string, bool) {
	v, ok := t.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Lookup descends through nested tables following path.
func (t Table) Lookup(path ...string) (Value, bool) {
	if len(path) == 0 {
		return ValueOf(t), true
	}
	current := t
	for _, key := range path[:len(path)-1] {
		next, ok := current.Table(key)
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return current.Get(path[len(path)-1])
}

// SetString replaces the value at key with s.
func (t Table) SetString(key, s string) {
	t[key] = s
}

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	return cloneNode(map[string]any(t)).(map[string]any)
}

// Equal reports whether two tables hold structurally equal trees.
func Equal(a, b Table) bool {
	return reflect.DeepEqual(map[string]any(a), map[string]any(b))
}

func cloneNode(node any) any {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, v := range n {
			out[k] = cloneNode(v)
		}
		return out
	case Table:
		return Table(cloneNode(map[string]any(n)).(map[string]any))
	case []any:
		out := make([]any, len(n))
		for i, v := range n {
			out[i] = cloneNode(v)
		}
		return out
	default:
		return n
	}
}
