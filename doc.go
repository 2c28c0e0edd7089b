// Package oasgen turns an OpenAPI 3.x document into a language-neutral
// intermediate representation of named types and operations, ready for
// an external template engine to render into a statically-typed client.
//
// oasgen's own job stops at the IR: resolving $ref cycles, flattening
// allOf/oneOf/anyOf, interning structurally-identical anonymous schemas
// under stable names, and synthesizing one Operation per path/method.
// Handing that IR to a renderer, writing files, and formatting the
// output are the caller's concern (see the render package for the
// driver that does the handoff).
//
// # Overview
//
// The pipeline is a straight line through eight packages, each named
// after the stage it implements:
//
//   - specloader: parse the document, expose a JSON-pointer-addressable tree
//   - refresolver: dereference $ref, detect and classify cycles
//   - config: load rename/ignore rules, feed them to the allocator,
//     normalizer, and synthesizer directly
//   - naming: derive and uniquify identifiers
//   - schema: flatten composition, intern anonymous schemas, build the type table
//   - synth: build one Operation per path/method
//   - ir: the immutable snapshot consumed by a renderer
//   - render: walk the IR and drive an external FileSink/TemplateEngine
//
// # Quick Start
//
//	import "github.com/oasgen/oasgen"
//
//	p := oasgen.New()
//	result, err := p.Run("openapi.yaml", oasgen.WithConfigFile("oasgen.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d types, %d operations\n", len(result.IR.Types), len(result.IR.Operations))
//
// Run does not write anything to disk by itself; pair it with a
// render.Driver and a FileSink to actually emit a source tree.
//
// # Determinism
//
// For a given (document, config) pair, Run produces a byte-identical
// IR across repeated invocations: map iteration is always sorted, type
// IDs are allocated in traversal order (paths then components,
// lexicographically), and name collisions are resolved with a
// lexicographic tie-break. See schema.Normalizer and naming.Scope
// for where each guarantee is enforced.
//
// # Error Handling
//
// Fatal errors (ParseError, SchemaError, RefError.Missing,
// CompositionError, CycleError, ConfigError) are returned directly from
// Run. Run writes nothing, so write failures surface from
// render.Driver.Run and the FileSink instead.
// Non-fatal findings (external $ref downgrades, reserved-word escapes,
// interned-duplicate notes) accumulate in the returned
// diagnostics.Bag — check both. See the oaserrors package for the full
// typed-error surface.
//
// # Command-Line Interface
//
// The cmd/oasgen binary wraps this package:
//
//	oasgen generate openapi.yaml --out ./out --config oasgen.yaml
//
// Install it with:
//
//	go install github.com/oasgen/oasgen/cmd/oasgen@latest
//
// # Security Considerations
//
//   - No file access through $ref: references to other files are never
//     followed, so no file besides the input (and any config or overlay
//     named explicitly) is read.
//   - Resource limits: a maximum document size guards against oversized
//     input. Schema nesting depth is not limited.
//   - No remote references: HTTP(S) URLs in $ref are never followed;
//     they are reported as Opaque types, consistent with this being a
//     single-document generator.
package oasgen
