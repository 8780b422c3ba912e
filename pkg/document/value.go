// Package document holds the JSON value model used throughout jex.
//
// A Value is one of: nil, bool, int, float64, string, Array, or *Object.
// Objects remember key insertion order, which standard Go maps do not; the
// explorer renders and searches documents in that order, so the order has to
// survive decoding.
package document

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a decoded document node: nil, bool, int, float64, string,
// Array, or *Object.
type Value = any

// Array is an ordered sequence of values.
type Array = []Value

// Object is a JSON object that preserves key insertion order.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Get looks up a key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Set stores a key, keeping the position of the first insertion.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// At returns the i-th key and its value in insertion order.
func (o *Object) At(i int) (string, Value) {
	k := o.keys[i]
	return k, o.vals[k]
}

// IsContainer reports whether v is an object or array.
func IsContainer(v Value) bool {
	switch v.(type) {
	case *Object, Array:
		return true
	}
	return false
}

// ScalarText returns the canonical textual form of a scalar value: null,
// true/false, the shortest number representation, or a quoted JSON string.
// Containers return the empty string.
func ScalarText(v Value) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		b, _ := json.Marshal(t)
		return string(b)
	case *Object, Array:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
