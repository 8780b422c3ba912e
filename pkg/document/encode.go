package document

import (
	"fmt"
	"io"
	"strings"
)

const indentUnit = "  "

// Encode writes v to w as pretty-printed JSON, keys in document order.
func Encode(w io.Writer, v Value) error {
	if err := encodeValue(w, v, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// EncodeAll writes each value of a sequence as its own pretty-printed
// document. The result is a concatenated JSON stream that Decode reads back.
func EncodeAll(w io.Writer, values []Value) error {
	for _, v := range values {
		if err := Encode(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the compact single-line rendering of v.
func Text(v Value) string {
	var sb strings.Builder
	writeCompact(&sb, v)
	return sb.String()
}

func encodeValue(w io.Writer, v Value, depth int) error {
	switch t := v.(type) {
	case *Object:
		return encodeObject(w, t, depth)
	case Array:
		return encodeArray(w, t, depth)
	default:
		_, err := io.WriteString(w, ScalarText(v))
		return err
	}
}

func encodeObject(w io.Writer, obj *Object, depth int) error {
	if obj.Len() == 0 {
		_, err := io.WriteString(w, "{}")
		return err
	}
	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	inner := strings.Repeat(indentUnit, depth+1)
	for i, key := range obj.Keys() {
		v, _ := obj.Get(key)
		if _, err := fmt.Fprintf(w, "%s%s: ", inner, ScalarText(key)); err != nil {
			return err
		}
		if err := encodeValue(w, v, depth+1); err != nil {
			return err
		}
		if i < obj.Len()-1 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, strings.Repeat(indentUnit, depth)+"}")
	return err
}

func encodeArray(w io.Writer, arr Array, depth int) error {
	if len(arr) == 0 {
		_, err := io.WriteString(w, "[]")
		return err
	}
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	inner := strings.Repeat(indentUnit, depth+1)
	for i, v := range arr {
		if _, err := io.WriteString(w, inner); err != nil {
			return err
		}
		if err := encodeValue(w, v, depth+1); err != nil {
			return err
		}
		if i < len(arr)-1 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, strings.Repeat(indentUnit, depth)+"]")
	return err
}

func writeCompact(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case *Object:
		sb.WriteByte('{')
		for i, key := range t.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			val, _ := t.Get(key)
			sb.WriteString(ScalarText(key))
			sb.WriteByte(':')
			writeCompact(sb, val)
		}
		sb.WriteByte('}')
	case Array:
		sb.WriteByte('[')
		for i, val := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCompact(sb, val)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString(ScalarText(v))
	}
}
