package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode reads every JSON document from r in order, preserving object key
// order. Concatenated documents and NDJSON both decode to one value per
// document, which is how multi-document inputs become a root value sequence.
func Decode(r io.Reader) ([]Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var out []Value
	for {
		v, err := next(dec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty document")
	}
	return out, nil
}

func next(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return fromToken(dec, tok)
}

func fromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		return NormalizeNumber(t)
	case string:
		return t, nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", keyTok)
		}
		v, err := next(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		v, err := next(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// NormalizeNumber converts a json.Number to int when it is integral and
// float64 otherwise. gojq accepts both; json.Number it does not.
func NormalizeNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", n.String(), err)
	}
	return f, nil
}
