// Package config decodes the generator's configuration document: name
// overrides for the allocator (C), the ignore list that keeps paths
// and components out of the synthesized IR, and project metadata
// passed through to the renderer.
//
// Unknown top-level or section keys are rejected with an
// oaserrors.ConfigError rather than silently ignored, following the
// teacher's internal/options validate-before-use idiom. ignore.paths
// is exposed as a predicate meant for synth.Synthesizer.
// SynthesizeOperations; ignore.components is applied directly against
// a schema.Normalizer via its own RegisterOpaque escape hatch, before
// normalization runs, so an ignored component's references downgrade
// to Opaque instead of failing as a missing reference.
package config
