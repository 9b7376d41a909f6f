// Package testutil provides utilities for testing massminify components.
//
// Key components:
//   - NewTestFS / NewTestFSWithFiles: afero-backed in-memory filesystems
//   - FaultyFS: wraps a filesystem and injects read, list or write errors per path
//   - CompressorFunc helpers live in pkg/compress; tests combine both
//
// Usage guidelines:
//   - Prefer the in-memory filesystem; only CLI and dry-run tests touch t.TempDir()
//   - All test data should be defined inline, not in external files
package testutil
