// Package naming derives identifiers for IR types, fields, and
// operations, then uniquifies them within their scope.
//
// Case conversion is lifted from internal/naming, generalized with
// golang.org/x/text/cases for locale-aware title-casing the same way
// builder/naming.go's schemaNamer handles multi-word identifiers.
// Reserved-word escaping targets Go's keyword and predeclared
// identifier lists, mechanically the same approach as
// builder/naming.go's sanitizeSchemaName. Uniquification generalizes
// the "first entry wins the bare name, later collisions get a numeric
// suffix" convention used by the deduplication pass this module's
// name allocator replaced.
package naming
