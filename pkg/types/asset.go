package types

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// AssetClass is the category of a processed file
type AssetClass int

const (
	// Script marks JavaScript sources (.js)
	Script AssetClass = iota + 1
	// Stylesheet marks CSS sources (.css)
	Stylesheet
)

// AllClasses lists every asset class in a stable order
var AllClasses = []AssetClass{Script, Stylesheet}

// String returns the short name of the class, which is also its extension
func (c AssetClass) String() string {
	switch c {
	case Script:
		return "js"
	case Stylesheet:
		return "css"
	default:
		return "unknown"
	}
}

// Extension returns the file extension (without the dot) for the class
func (c AssetClass) Extension() string {
	return c.String()
}

// MarshalText renders the class by its short name
func (c AssetClass) MarshalText() ([]byte, error) {
	if c != Script && c != Stylesheet {
		return nil, fmt.Errorf("invalid asset class %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses the short or long name of a class
func (c *AssetClass) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseAssetClass parses "js", "script", "css" or "stylesheet"
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "js", "script", "javascript":
		return Script, nil
	case "css", "stylesheet", "style":
		return Stylesheet, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// ClassForPath maps a file path to its asset class by extension.
// The comparison is exact: "app.JS" is not a script.
func ClassForPath(path string) (AssetClass, bool) {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "js":
		return Script, true
	case "css":
		return Stylesheet, true
	default:
		return 0, false
	}
}

// ClassSet is a set of enabled asset classes
type ClassSet map[AssetClass]bool

// NewClassSet builds a set from the given classes
func NewClassSet(classes ...AssetClass) ClassSet {
	set := make(ClassSet, len(classes))
	for _, c := range classes {
		set[c] = true
	}
	return set
}

// Has reports whether the class is enabled
func (s ClassSet) Has(c AssetClass) bool {
	return s[c]
}

// Len returns the number of enabled classes
func (s ClassSet) Len() int {
	n := 0
	for _, enabled := range s {
		if enabled {
			n++
		}
	}
	return n
}

// Classes returns the enabled classes in stable order
func (s ClassSet) Classes() []AssetClass {
	var out []AssetClass
	for c, enabled := range s {
		if enabled {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
