package naming

import "strings"

// Deriver produces candidate names from schema pointers, inline-schema
// context, and operations, following the derivation priority order:
// user overrides, then component-schema pointer, then inline
// parent+role concatenation, then operation identifiers, then array
// wrapper/pluralization fallbacks.
type Deriver struct {
	// StructMapping overrides the derived name for a schema pointer,
	// verbatim (still case-converted and reserved-word-escaped by the
	// caller before Allocate).
	StructMapping map[string]string
	// PropertyMapping overrides the derived name for a field/parameter
	// pointer.
	PropertyMapping map[string]string
}

// SchemaName derives a type name for the schema at pointer. ok is
// false when pointer is not a "/components/schemas/X" reference,
// meaning the caller must fall back to InlineName.
func (d *Deriver) SchemaName(pointer string) (name string, ok bool) {
	if override, found := d.StructMapping[pointer]; found {
		return override, true
	}
	const prefix = "/components/schemas/"
	if !strings.HasPrefix(pointer, prefix) {
		return "", false
	}
	rest := pointer[len(prefix):]
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// PropertyName derives a field name for the property at pointer,
// falling back to raw when there is no override.
func (d *Deriver) PropertyName(pointer, raw string) string {
	if override, found := d.PropertyMapping[pointer]; found {
		return override
	}
	return raw
}

// InlineName derives a name for an anonymous schema nested under
// parent with the given structural role, e.g. InlineName("GetDevices",
// "DevicesGetResponse") -> "GetDevicesDevicesGetResponse".
func InlineName(parent, role string) string {
	return ToPascalCase(parent) + ToPascalCase(role)
}

// OperationName derives an operation identifier: operationId verbatim
// if present, else method concatenated with the path's static
// segments (parameter placeholders stripped).
func OperationName(operationID, method, pathTemplate string) string {
	if operationID != "" {
		return operationID
	}
	var b strings.Builder
	b.WriteString(ToPascalCase(method))
	for _, seg := range strings.Split(pathTemplate, "/") {
		if seg == "" || (strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")) {
			continue
		}
		b.WriteString(ToPascalCase(seg))
	}
	return b.String()
}

// ArrayWrapperName derives a name for a named wrapper around an array
// of element, e.g. ArrayWrapperName("Device") -> "DeviceVec".
func ArrayWrapperName(element string) string {
	return element + "Vec"
}

// PluralFieldName derives a wrapper name for an array that appears as
// a struct field, by pluralizing the field's name.
func PluralFieldName(field string) string {
	if field == "" {
		return field
	}
	switch {
	case strings.HasSuffix(field, "y") && !isVowel(field[len(field)-2]):
		return field[:len(field)-1] + "ies"
	case strings.HasSuffix(field, "s"), strings.HasSuffix(field, "x"),
		strings.HasSuffix(field, "ch"), strings.HasSuffix(field, "sh"):
		return field + "es"
	default:
		return field + "s"
	}
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}
