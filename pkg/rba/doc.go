// Package rba defines the public object model for resource-balance-analysis
// (RBA) cell models in the current file-format revision, together with its
// XML/TSV serialization.
//
// A Model holds one section per model file (metabolism, parameters,
// macromolecules, enzymes, processes, medium). Sections are plain data
// structures; relationships between sections are expressed by identifier
// strings, not object references. Model.WriteFiles serializes every section
// into a target directory in one shot.
//
// The package also carries the shared pieces the rest of the tool builds on:
// sentinel errors with semantic exit codes, the Logger interface, the
// truthy-string predicate used for boolean-like XML attributes, and the fixed
// model file names.
package rba
