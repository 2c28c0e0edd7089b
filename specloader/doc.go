// Package specloader parses an OpenAPI 3.x document and exposes a
// read-only, JSON-pointer-addressable node tree.
//
// Grounded on parser.New().Parse's decode pipeline and OASVersion
// detection: Load reuses parser.ParseWithOptions near-verbatim and
// wraps the resulting parser.OAS3Document in an immutable Document,
// addressed via internal/jsonpath rather than by direct field access.
// Load performs no $ref resolution; that is refresolver's job.
package specloader
