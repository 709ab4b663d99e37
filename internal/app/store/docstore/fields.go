// internal/app/store/docstore/fields.go
package docstore

import "time"

// Accessors for decoded field maps. They are forgiving about missing or
// mistyped fields (returning zero values) because remote documents may have
// been written by older clients; the per-entity stores sanitize on load.

// String returns the string field, or "".
func String(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// Int returns the integer field as an int, or 0.
func Int(fields map[string]any, key string) int {
	switch n := fields[key].(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Bool returns the boolean field, or false.
func Bool(fields map[string]any, key string) bool {
	b, _ := fields[key].(bool)
	return b
}

// Strings returns a string-list field, dropping non-string elements. A
// missing field yields an empty, non-nil slice.
func Strings(fields map[string]any, key string) []string {
	raw, _ := fields[key].([]any)
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Maps returns a list-of-maps field, dropping malformed elements.
func Maps(fields map[string]any, key string) []map[string]any {
	raw, _ := fields[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// timeWire is the timestamp layout used inside documents. Timestamps travel
// as plain strings so they round-trip byte-for-byte through the codec.
const timeWire = time.RFC3339Nano

// FormatTime renders a timestamp for storage. Zero times become "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeWire)
}

// Time parses a stored timestamp field; zero time on absence or parse
// failure.
func Time(fields map[string]any, key string) time.Time {
	s := String(fields, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeWire, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return time.Time{}
		}
	}
	return t.UTC()
}

// StringList converts a string slice into the []any form the codec encodes.
func StringList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
