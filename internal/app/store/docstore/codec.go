// internal/app/store/docstore/codec.go
package docstore

import (
	"fmt"
	"sort"
	"strconv"
)

// Document is one stored record: its collection-scoped id plus a field map
// of plain Go values.
type Document struct {
	ID     string
	Fields map[string]any
}

// Encode translates a plain Go value into the store's typed wire value.
//
// Canonical input types are string, int64, float64, bool, nil,
// map[string]any, and []any. Untyped int values are accepted and encoded as
// integers, but they decode back as int64; callers wanting exact round-trips
// should use the canonical types.
func Encode(v any) (map[string]any, error) {
	switch x := v.(type) {
	case nil:
		return map[string]any{"nullValue": nil}, nil
	case string:
		return map[string]any{"stringValue": x}, nil
	case bool:
		return map[string]any{"booleanValue": x}, nil
	case int:
		return map[string]any{"integerValue": strconv.FormatInt(int64(x), 10)}, nil
	case int64:
		return map[string]any{"integerValue": strconv.FormatInt(x, 10)}, nil
	case float64:
		return map[string]any{"doubleValue": x}, nil
	case []any:
		values := make([]any, 0, len(x))
		for _, el := range x {
			ev, err := Encode(el)
			if err != nil {
				return nil, err
			}
			values = append(values, ev)
		}
		return map[string]any{"arrayValue": map[string]any{"values": values}}, nil
	case map[string]any:
		fields, err := encodeFields(x)
		if err != nil {
			return nil, err
		}
		return map[string]any{"mapValue": map[string]any{"fields": fields}}, nil
	default:
		return nil, fmt.Errorf("docstore: cannot encode value of type %T", v)
	}
}

func encodeFields(m map[string]any) (map[string]any, error) {
	fields := make(map[string]any, len(m))
	// Deterministic iteration keeps request bodies stable for logging/tests.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ev, err := Encode(m[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		fields[k] = ev
	}
	return fields, nil
}

// Decode translates a typed wire value back into a plain Go value.
// Integers come back as int64, doubles as float64, so integral and floating
// numbers stay distinguished through a round-trip.
func Decode(wire map[string]any) (any, error) {
	if v, ok := wire["stringValue"]; ok {
		s, _ := v.(string)
		return s, nil
	}
	if v, ok := wire["integerValue"]; ok {
		switch n := v.(type) {
		case string:
			i, err := strconv.ParseInt(n, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("docstore: bad integerValue %q: %w", n, err)
			}
			return i, nil
		case float64:
			return int64(n), nil
		default:
			return nil, fmt.Errorf("docstore: bad integerValue of type %T", v)
		}
	}
	if v, ok := wire["doubleValue"]; ok {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("docstore: bad doubleValue of type %T", v)
		}
		return f, nil
	}
	if v, ok := wire["booleanValue"]; ok {
		b, _ := v.(bool)
		return b, nil
	}
	if v, ok := wire["timestampValue"]; ok {
		// Timestamps are carried through as their RFC 3339 string form.
		s, _ := v.(string)
		return s, nil
	}
	if _, ok := wire["nullValue"]; ok {
		return nil, nil
	}
	if v, ok := wire["mapValue"]; ok {
		mv, _ := v.(map[string]any)
		fields, _ := mv["fields"].(map[string]any)
		return decodeFields(fields)
	}
	if v, ok := wire["arrayValue"]; ok {
		av, _ := v.(map[string]any)
		rawValues, _ := av["values"].([]any)
		out := make([]any, 0, len(rawValues))
		for i, raw := range rawValues {
			el, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("docstore: array element %d is not a typed value", i)
			}
			dv, err := Decode(el)
			if err != nil {
				return nil, err
			}
			out = append(out, dv)
		}
		return out, nil
	}
	return nil, fmt.Errorf("docstore: unrecognized wire value %v", wire)
}

func decodeFields(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for k, raw := range fields {
		wire, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("docstore: field %q is not a typed value", k)
		}
		v, err := Decode(wire)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// EncodeDocument wraps a document's field map into the wire body for create
// and update calls. The document id never appears inside the fields; it
// lives in the resource path.
func EncodeDocument(doc Document) (map[string]any, error) {
	fields, err := encodeFields(doc.Fields)
	if err != nil {
		return nil, err
	}
	return map[string]any{"fields": fields}, nil
}

// DecodeDocument unwraps a wire document (name + typed fields) into a
// Document. The id is the trailing segment of the resource name.
func DecodeDocument(wire map[string]any) (Document, error) {
	name, _ := wire["name"].(string)
	rawFields, _ := wire["fields"].(map[string]any)
	fields, err := decodeFields(rawFields)
	if err != nil {
		return Document{}, err
	}
	return Document{ID: lastPathSegment(name), Fields: fields}, nil
}

func lastPathSegment(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}
