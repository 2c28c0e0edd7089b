package naming

// goKeywords is the Go language's reserved keyword set.
var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
}

// goPredeclared is Go's predeclared identifier set: built-in types,
// constants, and functions that are legal to shadow but produce
// confusing generated code if reused as a type or field name.
var goPredeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true,
	"true": true, "false": true, "iota": true, "nil": true,
	"append": true, "cap": true, "close": true, "complex": true, "copy": true,
	"delete": true, "imag": true, "len": true, "make": true, "new": true,
	"panic": true, "print": true, "println": true, "real": true, "recover": true,
}

// IsReserved reports whether name collides with a Go keyword or
// predeclared identifier and therefore needs escaping before use as a
// type, field, or variable identifier.
func IsReserved(name string) bool {
	return goKeywords[name] || goPredeclared[name]
}

// Escape appends a trailing underscore to name if it is reserved,
// mirroring builder/naming.go's mechanical sanitization approach. The
// escaped form is not checked again here; if "type_" collides with
// another identifier, the caller's Scope uniquifies it.
func Escape(name string) string {
	if IsReserved(name) {
		return name + "_"
	}
	return name
}
