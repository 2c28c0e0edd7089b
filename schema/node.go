package schema

import "github.com/oasgen/oasgen/internal/nodeutil"

// asObject returns v as a map[string]any, or nil if it is not one.
func asObject(v any) map[string]any { return nodeutil.AsObject(v) }

// asArray returns v as a []any, or nil if it is not one.
func asArray(v any) []any { return nodeutil.AsArray(v) }

func getString(obj map[string]any, key string) string { return nodeutil.GetString(obj, key) }

func getBool(obj map[string]any, key string) bool { return nodeutil.GetBool(obj, key) }

func getObjects(obj map[string]any, key string) []any { return nodeutil.GetObjects(obj, key) }

func getStringSlice(obj map[string]any, key string) []string {
	return nodeutil.GetStringSlice(obj, key)
}

func stringSliceContains(ss []string, target string) bool {
	return nodeutil.StringSliceContains(ss, target)
}

// schemaTypes returns the schema's "type" keyword as a slice,
// normalizing OAS 2.0/3.0's single string form and 3.1+'s array form.
func schemaTypes(obj map[string]any) []string {
	switch t := obj["type"].(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func primaryType(obj map[string]any) string {
	for _, t := range schemaTypes(obj) {
		if t != "null" {
			return t
		}
	}
	return ""
}

// isNullable reports whether obj allows null, via OAS 3.0's `nullable`
// boolean or OAS 3.1+'s `type: [..., "null"]` form.
func isNullable(obj map[string]any) bool {
	if getBool(obj, "nullable") {
		return true
	}
	return stringSliceContains(schemaTypes(obj), "null")
}

// pointerChild appends a RFC 6901 escaped segment to a JSON pointer.
func pointerChild(parent, segment string) string { return nodeutil.PointerChild(parent, segment) }
