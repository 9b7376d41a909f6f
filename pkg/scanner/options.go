package scanner

import "path/filepath"

// Option configures a Scanner
type Option func(*Scanner)

// WithExcludes skips files whose base name is one of names at any depth.
// Combine targets are passed here so a second run does not read back its
// own outputs.
func WithExcludes(names ...string) Option {
	return func(s *Scanner) {
		for _, n := range names {
			if n != "" {
				s.excludes[n] = true
			}
		}
	}
}

// WithExcludePaths skips exactly the given file paths, such as a
// consolidate output at the root.
func WithExcludePaths(paths ...string) Option {
	return func(s *Scanner) {
		for _, p := range paths {
			if p != "" {
				s.excludePaths[filepath.Clean(p)] = true
			}
		}
	}
}

// WithMinifiedSuffix skips files that already carry suffix before their
// extension, e.g. ".min" skips app.min.js. An empty suffix disables the check.
func WithMinifiedSuffix(suffix string) Option {
	return func(s *Scanner) {
		s.minifiedSuffix = suffix
	}
}
