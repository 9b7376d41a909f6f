package grouping

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/massminify/pkg/types"
)

// Mode selects how the files of one asset class are written
type Mode int

const (
	// ModeMinify writes one minified sibling per source file
	ModeMinify Mode = iota
	// ModeCombine writes one output per directory
	ModeCombine
	// ModeConsolidate writes one output for the whole walk
	ModeConsolidate
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeMinify:
		return "minify"
	case ModeCombine:
		return "combine"
	case ModeConsolidate:
		return "consolidate"
	default:
		return "unknown"
	}
}

// ClassPlan is the policy for one asset class
type ClassPlan struct {
	Class  types.AssetClass
	Mode   Mode
	Target string // output file name for combine and consolidate
}

// Plan is the full grouping policy of one run
type Plan struct {
	Root    string
	Suffix  string
	Classes []ClassPlan
}

// DefaultSuffix is inserted before the extension of per-file outputs
const DefaultSuffix = ".min"

// For returns the plan of class, if the class is part of the plan
func (p Plan) For(class types.AssetClass) (ClassPlan, bool) {
	for _, cp := range p.Classes {
		if cp.Class == class {
			return cp, true
		}
	}
	return ClassPlan{}, false
}

// MinifiedName inserts suffix before the extension of path:
// "site/app.js" becomes "site/app.min.js".
func MinifiedName(path, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// separator joins concatenated bodies. Scripts get a semicolon so a file
// without a trailing one cannot merge into the next statement.
func separator(class types.AssetClass) string {
	if class == types.Script {
		return ";\n"
	}
	return "\n"
}
