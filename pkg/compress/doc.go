// Package compress provides the minification capability consumed by the
// grouping policy. The ordering core never depends on it; it only sees the
// Compressor interface.
//
// Minifier is backed by github.com/tdewolff/minify/v2. Cached wraps any
// Compressor with an LRU keyed by content hash, so identical files that
// appear in several directories are minified once per run.
package compress
