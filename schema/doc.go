// Package schema normalizes OpenAPI schema nodes into the closed
// ir.TypeKind set, interning structurally-identical anonymous schemas
// and breaking reference cycles at an already-allocated TypeId.
//
// Schema/ref discovery here is a small purpose-built recursive descent
// over specloader SpecNodes (not a copy of any single teacher
// package): refresolver supplies $ref dereferencing and cycle
// detection, internal/nodeutil's map/array accessors (shared with
// synth) back the OAS 3.1+ `type: [string, null]` union handling in
// node.go, and internal/typeintern interns normalized candidates.
// Composition (allOf/oneOf/anyOf)
// merging follows the JSON-Schema-superset field semantics used by
// parser/schema.go's Schema struct, even though this package walks
// the raw node tree rather than that typed struct, since $ref targets
// are not restricted to component schemas.
package schema
