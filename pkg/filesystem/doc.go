// Package filesystem provides filesystem implementations for massminify.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, an afero-backed filesystem used by tests, and a
// dry-run filesystem that reads from disk but keeps every write in memory.
package filesystem
