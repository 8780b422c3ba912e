package document

import (
	"math/big"
	"sort"
)

// ToGojq converts a Value into the plain map/slice representation gojq
// evaluates over. Key order is lost at this boundary; FromGojq restores a
// deterministic (sorted) order on the way back.
func ToGojq(v Value) any {
	switch t := v.(type) {
	case *Object:
		m := make(map[string]any, t.Len())
		for _, key := range t.Keys() {
			val, _ := t.Get(key)
			m[key] = ToGojq(val)
		}
		return m
	case Array:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = ToGojq(val)
		}
		return s
	default:
		return v
	}
}

// FromGojq converts a gojq output value back into the document model.
// Objects come back with sorted keys, which is the only stable order
// available once a value has passed through Go maps.
func FromGojq(v any) Value {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromGojq(t[k]))
		}
		return obj
	case []any:
		arr := make(Array, len(t))
		for i, val := range t {
			arr[i] = FromGojq(val)
		}
		return arr
	case *big.Int:
		// gojq promotes large integers to big.Int; fold back into the
		// closed value set, losing precision only past 2^63.
		if t.IsInt64() {
			return int(t.Int64())
		}
		f, _ := new(big.Float).SetInt(t).Float64()
		return f
	default:
		return v
	}
}
