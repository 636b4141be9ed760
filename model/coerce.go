package model

import (
	"math"
	"strconv"
	"strings"
)

// AsString coerces a decoded JSON value to a trimmed string.
// Returns false for non-strings and strings that are blank after trimming.
func AsString(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// AsStringOrDefault coerces the value to a trimmed string, falling back to
// the given default when the value is absent, blank, or not a string.
func AsStringOrDefault(value any, fallback string) string {
	if s, ok := AsString(value); ok {
		return s
	}
	return fallback
}

// AsNumber coerces a decoded JSON value to a finite float64. Numeric strings
// are accepted. Returns false for anything non-finite or non-numeric.
func AsNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// AsBoolean coerces a decoded JSON value to a bool. The string forms
// "true"/"yes"/"1" and "false"/"no"/"0" are recognized case-insensitively;
// numbers are false only when zero. Anything else is false for nil and true
// for other non-empty values, mirroring JavaScript truthiness in the
// payloads this package consumes.
func AsBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			return true
		case "false", "no", "0":
			return false
		}
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case nil:
		return false
	default:
		return true
	}
}

// AsOptionalBoolean coerces like AsBoolean but keeps absence distinct:
// nil input yields nil rather than false.
func AsOptionalBoolean(value any) *bool {
	if value == nil {
		return nil
	}
	b := AsBoolean(value)
	return &b
}

// MapArray maps each element of a decoded JSON array through mapper and
// collects the non-nil results. Non-array input yields an empty slice. This
// is the universal pattern for every collection field in this package:
// malformed entries disappear instead of failing the batch.
func MapArray[T any](input any, mapper func(any) *T) []T {
	items, ok := input.([]any)
	if !ok {
		return []T{}
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if mapped := mapper(item); mapped != nil {
			result = append(result, *mapped)
		}
	}
	return result
}

// BuildPropertyLookup flattens a decoded JSON array of {name, value} objects
// into a name-to-value map. Entries that are not objects, lack a name or
// value, or carry a non-string value are silently skipped.
func BuildPropertyLookup(properties any) map[string]string {
	lookup := make(map[string]string)

	items, ok := properties.([]any)
	if !ok {
		return lookup
	}

	for _, item := range items {
		data, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, nameOK := AsString(data["name"])
		value, valueOK := AsString(data["value"])
		if nameOK && valueOK {
			lookup[name] = value
		}
	}
	return lookup
}

// stringField returns the first present, trimmed, non-empty string among the
// aliased keys, in priority order.
func stringField(data map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := AsString(data[key]); ok {
			return s, true
		}
	}
	return "", false
}

// stringFieldOr is stringField with a default.
func stringFieldOr(data map[string]any, fallback string, keys ...string) string {
	if s, ok := stringField(data, keys...); ok {
		return s
	}
	return fallback
}

// numberField returns a pointer to the first numeric value among the aliased
// keys, or nil when none coerces.
func numberField(data map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		if n, ok := AsNumber(data[key]); ok {
			return &n
		}
	}
	return nil
}

// intField is numberField truncated to an int, for line numbers and counts.
func intField(data map[string]any, keys ...string) *int {
	if n := numberField(data, keys...); n != nil {
		v := int(*n)
		return &v
	}
	return nil
}

// asObject returns the value as a JSON object, or false when it is anything
// else (including nil).
func asObject(value any) (map[string]any, bool) {
	data, ok := value.(map[string]any)
	return data, ok
}
