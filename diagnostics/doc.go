// Package diagnostics provides severity-leveled issue accumulation shared
// across the pipeline's stages.
//
// It generalizes internal/issues and internal/severity from a two-purpose
// (validation, conversion) pairing into the single non-fatal-findings
// channel the pipeline exposes alongside its IR: external $ref downgrades,
// reserved-word escapes, and interned-duplicate notes all flow through a
// Bag rather than an error return.
package diagnostics
