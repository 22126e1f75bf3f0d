package document

import (
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Kind is the variant held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindTable
	KindArray
	KindString
	KindInteger
	KindFloat
	KindBool
	KindDatetime
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindDatetime:
		return "datetime"
	default:
		return "invalid"
	}
}

// Value wraps one node of a decoded document.
type Value struct {
	raw any
}

// ValueOf wraps a decoded node.
func ValueOf(raw any) Value {
	return Value{raw: raw}
}

// Raw returns the underlying decoded node.
func (v Value) Raw() any {
	return v.raw
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case map[string]any, Table:
		return KindTable
	case []any:
		return KindArray
	case string:
		return KindString
	case int64:
		return KindInteger
	case float64:
		return KindFloat
	case bool:
		return KindBool
	case time.Time, toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return KindDatetime
	default:
		return KindInvalid
	}
}

// AsTable returns the node as a Table. The Table shares storage with the
// document, so writes through it are visible in the document.
func (v Value) AsTable() (Table, bool) {
	switch t := v.raw.(type) {
	case map[string]any:
		return Table(t), true
	case Table:
		return t, true
	default:
		return nil, false
	}
}

// AsArray returns the node as a slice of values.
func (v Value) AsArray() ([]Value, bool) {
	arr, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Value, len(arr))
	for i, item := range arr {
		out[i] = ValueOf(item)
	}
	return out, true
}

func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

func (v Value) AsInteger() (int64, bool) {
	n, ok := v.raw.(int64)
	return n, ok
}

func (v Value) AsFloat() (float64, bool) {
	f, ok := v.raw.(float64)
	return f, ok
}

func (v Value) AsBool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok
}
