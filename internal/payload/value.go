package payload

import "strconv"

// Coercion helpers for the loosely typed JSON the client emits. Numbers
// arrive as float64 from encoding/json, but several fields show up as
// digit strings in older client versions, so every read goes through one
// of these instead of ad hoc type assertions.

// AsInt coerces a JSON value to int64. Returns false for anything that is
// not a number, a digit string, or a bool.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsFloat coerces a JSON value to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int reads m[key] as int64, returning def when absent or not coercible.
func Int(m map[string]any, key string, def int64) int64 {
	if v, ok := AsInt(m[key]); ok {
		return v
	}
	return def
}

// Float reads m[key] as float64, returning def when absent or not coercible.
func Float(m map[string]any, key string, def float64) float64 {
	if v, ok := AsFloat(m[key]); ok {
		return v
	}
	return def
}

// Str reads m[key] as a string, returning "" when absent or not a string.
func Str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Bool reads m[key] as a truthy flag. The client serializes flags as
// bools or 0/1 numbers depending on version.
func Bool(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return false
	}
}

// Map reads m[key] as an object, returning an empty map when absent or
// of the wrong type. Callers never see nil.
func Map(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return map[string]any{}
}

// List reads m[key] as an array, returning nil when absent.
func List(m map[string]any, key string) []any {
	sub, _ := m[key].([]any)
	return sub
}
