// Package refresolver dereferences $ref pointers in a specloader
// Document on demand and detects reference cycles.
//
// Grounded on parser.RefResolver.resolveRefsRecursive's
// visited/resolving double-map idiom, keeping only the "resolving"
// half: a set of pointers currently on the call path (maintained by
// Enter/Exit), used to detect re-entrancy. There is no "visited" set.
// Unlike that resolver, this one never inlines — it
// hands back a SpecNode for the caller (the schema normalizer) to
// classify, and reports re-entrancy as a Cycle rather than an error,
// since cycles are legal input.
package refresolver
