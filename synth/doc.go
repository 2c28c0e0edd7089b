// Package synth builds one ir.Operation per (path, method) pair found
// in a document: parameters collected by location, request-body
// variants per content type, and response variants per status ×
// content type, with wildcard status patterns ("2XX") expanded to
// their literal members.
//
// Grounded on parser.GetOperations's version-gated method map (here
// restricted back down to the eight methods ir.Method closes over —
// OAS 3.2's QUERY and custom additionalOperations entries are skipped
// with a diagnostic rather than forked into the IR) and
// parser.Responses's custom UnmarshalYAML, which already validates and
// special-cases status-code wildcard patterns via internal/httputil.
// Path template variables are cross-checked against declared "in:
// path" parameters using github.com/yosida95/uritemplate/v3, which
// parses the same {name}-placeholder syntax OpenAPI path templates use.
//
// Like schema, this package walks specloader's raw node tree rather
// than the typed parser structs for anything that can carry a $ref
// (parameters, request bodies, responses, media types), since only
// the raw tree is addressable by refresolver.
package synth
