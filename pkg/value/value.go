// Package value defines the untyped document tree produced by parser plugins.
//
// Every parser decodes its input into a [Value]: a string, number, boolean,
// list or map, nested arbitrarily. The graph model then matches on [Kind]
// instead of inspecting dynamic Go types, so all format-specific decoding
// quirks (int vs. float, map[any]any vs. map[string]any) are confined to
// [FromAny].
package value

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindList:   "list",
	KindMap:    "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is an immutable node of a parsed document. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// List wraps a sequence of values.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, list: items}
}

// Numbers wraps a float slice as a list of numbers.
func Numbers(fs []float64) Value {
	items := make([]Value, len(fs))
	for i, f := range fs {
		items[i] = Number(f)
	}
	return List(items...)
}

// Map wraps a string-keyed mapping.
func Map(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindMap, m: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsList returns the items held by v. The slice must not be modified.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsMap returns the mapping held by v. The map must not be modified.
func (v Value) AsMap() (map[string]Value, bool) { return v.m, v.kind == KindMap }

// AsNumbers returns v as a float slice if v is a list whose items are all
// numbers.
func (v Value) AsNumbers() ([]float64, bool) {
	if v.kind != KindList {
		return nil, false
	}
	out := make([]float64, len(v.list))
	for i, item := range v.list {
		if item.kind != KindNumber {
			return nil, false
		}
		out[i] = item.num
	}
	return out, true
}

// Get looks up key in a map value. It reports false for missing keys and
// for values that are not maps.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	item, ok := v.m[key]
	return item, ok
}

// Has reports whether v is a map containing key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Len returns the number of items in a list or map, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	}
	return 0
}

// String renders v in a compact, deterministic form for messages and tests.
// Map keys are sorted.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		fmt.Fprintf(sb, "%t", v.b)
	case KindNumber:
		if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1e15 {
			fmt.Fprintf(sb, "%d", int64(v.num))
		} else {
			fmt.Fprintf(sb, "%g", v.num)
		}
	case KindString:
		fmt.Fprintf(sb, "%q", v.str)
	case KindList:
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(k)
			sb.WriteByte(':')
			v.m[k].write(sb)
		}
		sb.WriteByte('}')
	}
}
