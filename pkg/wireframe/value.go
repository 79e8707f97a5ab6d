package wireframe

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the variants a property value may hold.
type ValueKind int

// Property value variants.
const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindStringList
)

// Value is a variant-typed property value: exactly one of string, bool, int,
// or list-of-string. The closed variant set keeps component property bags
// representable in any consumer without loss.
type Value struct {
	kind ValueKind
	str  string
	b    bool
	i    int
	list []string
}

// String wraps a string property value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a bool property value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an int property value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// StringList wraps a list-of-string property value.
func StringList(list ...string) Value { return Value{kind: KindStringList, list: list} }

// Kind returns the variant held by the value.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string variant and whether the value holds one.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsBool returns the bool variant and whether the value holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the int variant and whether the value holds one.
func (v Value) AsInt() (int, bool) { return v.i, v.kind == KindInt }

// AsStringList returns the list variant and whether the value holds one.
func (v Value) AsStringList() ([]string, bool) { return v.list, v.kind == KindStringList }

// IsTrue reports whether the value is a bool variant holding true.
func (v Value) IsTrue() bool { return v.kind == KindBool && v.b }

// MarshalJSON encodes the underlying variant directly, so property bags
// serialize as plain JSON objects.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindStringList:
		if v.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.list)
	default:
		return nil, fmt.Errorf("unknown value kind: %d", v.kind)
	}
}

// UnmarshalJSON decodes a plain JSON scalar or string array back into the
// variant form. Numbers decode as ints.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		*v = String(x)
	case bool:
		*v = Bool(x)
	case float64:
		*v = Int(int(x))
	case []any:
		list := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("property list element is %T, want string", item)
			}
			list = append(list, s)
		}
		*v = StringList(list...)
	default:
		return fmt.Errorf("unsupported property value type: %T", raw)
	}
	return nil
}

// Properties is the free-form property bag attached to a component. Each
// draw routine in pkg/render documents the keys it reads; unknown keys are
// carried but ignored.
type Properties map[string]Value
