// Package nodeutil provides small, repeated helpers for working with
// the untyped map[string]any/[]any shape that specloader hands back
// for a document node, shared by every package that walks that tree
// directly instead of through the typed parser structs (schema, synth).
package nodeutil

import "strings"

// AsObject returns v as a map[string]any, or nil if it is not one.
func AsObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// AsArray returns v as a []any, or nil if it is not one.
func AsArray(v any) []any {
	a, _ := v.([]any)
	return a
}

// GetString returns obj[key] as a string, or "" if absent or not a string.
func GetString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// GetBool returns obj[key] as a bool, or false if absent or not a bool.
func GetBool(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

// GetObjects returns obj[key] as a []any, or nil if absent or not an array.
func GetObjects(obj map[string]any, key string) []any {
	return AsArray(obj[key])
}

// GetStringSlice returns obj[key] as a []string, dropping any
// non-string elements.
func GetStringSlice(obj map[string]any, key string) []string {
	arr := AsArray(obj[key])
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// StringSliceContains reports whether target appears in ss.
func StringSliceContains(ss []string, target string) bool {
	for _, s := range ss {
		if s == target {
			return true
		}
	}
	return false
}

// PointerChild appends an RFC 6901 escaped segment to a JSON pointer.
func PointerChild(parent, segment string) string {
	escaped := strings.ReplaceAll(segment, "~", "~0")
	escaped = strings.ReplaceAll(escaped, "/", "~1")
	return parent + "/" + escaped
}
