// Package model defines the core data structures used throughout pwmeter.
//
// This package contains the following main types:
//   - AnalysisResult: The immutable outcome of scoring one password
//   - CharacterClasses: Which character classes a password contains
//   - PasswordReport: An AnalysisResult plus metadata for reporting and history
//   - Summary: Aggregated counts over a batch of reports
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The strength engine, the pipeline, the report writers and the
// history database all need these types, so centralizing them prevents import
// cycles.
//
// The models are designed to be serializable to JSON for report output,
// the HTTP API and database storage.
package model
