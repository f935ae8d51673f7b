// Package legacy reads the old XML dialects of the RBA model format and
// transcribes them into the current object model (pkg/rba).
//
// Most of the package is mechanical tree-to-object transcription. The two
// places with real decision logic are ResolveValue, which flattens old-style
// "value or function reference(s)" nodes into parameter expressions and
// synthesizes multiplicative aggregates on the fly, and ClassifyTarget,
// which sorts targetValue nodes into the concentration / production-flux /
// degradation-flux buckets.
//
// Readers are single-pass and fail fast: any structural violation of the
// legacy format aborts the conversion, there is no partial output.
package legacy
