// Package display defines the render-ready value model shared by every
// output mode. Simplification produces display.Value trees; renderers walk
// them without any runtime type probing.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the Value variants.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindList
	KindMap
)

// Value is an immutable rendering value. Maps preserve insertion order so
// json/yaml/table/text output all present keys in the order the simplifier
// produced them.
//
//nolint:govet // fieldalignment: keep variant payloads grouped.
type Value struct {
	kind   Kind
	b      bool
	num    float64
	text   string
	items  []Value
	keys   []string
	fields map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// List wraps a sequence of values.
func List(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

// NewMap returns an empty ordered map value.
func NewMap() Value {
	return Value{kind: KindMap, fields: map[string]Value{}}
}

// Set adds or replaces a key, returning the updated map. Insertion order is
// preserved; re-setting an existing key keeps its original position.
func (v Value) Set(key string, val Value) Value {
	if v.kind != KindMap {
		panic("display: Set on non-map value")
	}
	if _, ok := v.fields[key]; !ok {
		v.keys = append(append([]string(nil), v.keys...), key)
	}
	fields := make(map[string]Value, len(v.fields)+1)
	for k, f := range v.fields {
		fields[k] = f
	}
	fields[key] = val
	v.fields = fields
	return v
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolValue returns the wrapped bool. Zero value for other kinds.
func (v Value) BoolValue() bool { return v.b }

// NumberValue returns the wrapped number. Zero value for other kinds.
func (v Value) NumberValue() float64 { return v.num }

// TextValue returns the wrapped string. Empty for other kinds.
func (v Value) TextValue() string { return v.text }

// Items returns the list elements. Nil for other kinds.
func (v Value) Items() []Value { return v.items }

// Keys returns map keys in insertion order. Nil for other kinds.
func (v Value) Keys() []string { return v.keys }

// Get looks up a map key.
func (v Value) Get(key string) (Value, bool) {
	val, ok := v.fields[key]
	return val, ok
}

// Len returns the element count for lists and maps, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.keys)
	default:
		return 0
	}
}

// Scalar formats null/bool/number/text values the way the table and text
// renderers print them. Numbers drop a trailing ".0" so counts read as
// integers. Lists and maps return compact JSON.
func (v Value) Scalar() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	default:
		return v.CompactJSON()
	}
}

// CompactJSON renders the value as single-line JSON. Used for nested values
// inside table cells.
func (v Value) CompactJSON() string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", err)
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler with map keys in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	case KindList:
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	case KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			field, err := json.Marshal(v.fields[key])
			if err != nil {
				return nil, err
			}
			buf.Write(field)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("display: unknown kind %d", v.kind)
	}
}

// MarshalYAML implements yaml.Marshaler, emitting block-style nodes with map
// keys in insertion order.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode()
}

func (v Value) yamlNode() (*yaml.Node, error) {
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}, nil
	case KindNumber:
		node := &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(v.num, 'f', -1, 64)}
		if v.num == float64(int64(v.num)) {
			node.Tag = "!!int"
		} else {
			node.Tag = "!!float"
		}
		return node, nil
	case KindText:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}, nil
	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: 0}
		for _, item := range v.items {
			child, err := item.yamlNode()
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case KindMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: 0}
		for _, key := range v.keys {
			child, err := v.fields[key].yamlNode()
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child,
			)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("display: unknown kind %d", v.kind)
	}
}

// FromAny converts decoded JSON (map[string]any, []any, scalars) into a
// Value. Map keys are sorted lexically since Go maps carry no order; typed
// simplifiers that care about order build maps directly.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case int:
		return Number(float64(t))
	case string:
		return Text(t)
	case []any:
		items := make([]Value, 0, len(t))
		for _, e := range t {
			items = append(items, FromAny(e))
		}
		return List(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m = m.Set(k, FromAny(t[k]))
		}
		return m
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(t, &decoded); err != nil {
			return Text(string(t))
		}
		return FromAny(decoded)
	default:
		return Text(fmt.Sprintf("%v", t))
	}
}
