// Package render walks an ir.IR and hands each emission unit — one
// named type, one operation builder, the client, and the root module
// index — to an injected template engine, writing the rendered bytes
// through an injected file sink and recording a manifest of what was
// written.
//
// Generalizes generator.Generator's functional-options driver shape
// (GenerateResult{Files, Issues, ...}, one generation pass per
// version-specific codeGenerator) but stops short of owning any
// template text itself: templates and the target file format belong
// to the caller's TemplateEngine, not to this package. Parallel
// emission is grounded on the get/put buffer-pool idiom in
// generator/pool.go and internal/jsonpath/pool.go, fanned out with
// golang.org/x/sync/errgroup plus a small buffered channel used as a
// concurrency semaphore, since the IR is immutable once handed to Run
// and every emission targets a distinct file path.
package render
