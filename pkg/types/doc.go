// Package types defines the core types and interfaces used throughout massminify.
// This includes the asset classes, the CandidateFile descriptor produced by the
// scanner and consumed by the ordering engine, the OrderedSequence handed to the
// grouping policy, and the FS interface every filesystem-touching package uses.
package types
