// Package rules provides the order rule set: user-declared (pattern, position)
// pairs that pin matching asset files to a position in the output ordering.
//
// # Pattern Conventions
//
// Patterns are Go regular expressions searched for anywhere in a file's full
// path. They are not anchored:
//
//   - `jquery` - matches lib/jquery.js and lib/jquery-ui.js
//   - `vendor/` - matches every file below any vendor directory
//   - `^src/boot\.js$` - anchors must be written explicitly
//
// # Rule Precedence
//
// Rules are evaluated by descending position, then descending pattern. The
// first matching rule wins. This only matters when two patterns match the
// same path; it never affects the order of the files themselves.
//
// # Configuration
//
// Rules are declared in the order list of the config file:
//
//	[[order]]
//	file = "jquery"
//	position = 1
//
//	[[order]]
//	file = "app\\.js"
//	position = 4
//
// Positions must be positive. They need not be unique or contiguous: the
// unordered files are placed into the first gap (see pkg/ordering).
package rules
