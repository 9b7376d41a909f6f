package types

import (
	"cmp"
	"fmt"
	"slices"
)

// CandidateFile describes one discovered asset and its position in the
// final ordering. Position 0 means the file is unordered.
type CandidateFile struct {
	Path     string     `json:"path" yaml:"path" toml:"path"`
	Dir      string     `json:"dir" yaml:"dir" toml:"dir"`
	Position int        `json:"position" yaml:"position" toml:"position"`
	Class    AssetClass `json:"class" yaml:"class" toml:"class"`
}

// IsOrdered reports whether the file carries an explicit position
func (c CandidateFile) IsOrdered() bool {
	return c.Position > 0
}

// String renders the candidate for log output
func (c CandidateFile) String() string {
	return fmt.Sprintf("%s at position %d", c.Path, c.Position)
}

// CompareCandidates orders by position ascending, then path ascending
func CompareCandidates(a, b CandidateFile) int {
	if n := cmp.Compare(a.Position, b.Position); n != 0 {
		return n
	}
	return cmp.Compare(a.Path, b.Path)
}

// SortCandidates sorts in place by (position, path)
func SortCandidates(files []CandidateFile) {
	slices.SortStableFunc(files, CompareCandidates)
}

// OrderedSequence is the fully resolved ordering, sorted by (position, path).
// It is the sole output of the ordering core.
type OrderedSequence []CandidateFile

// ByClass returns the entries of one asset class, preserving order
func (s OrderedSequence) ByClass(class AssetClass) OrderedSequence {
	out := OrderedSequence{}
	for _, f := range s {
		if f.Class == class {
			out = append(out, f)
		}
	}
	return out
}

// Paths returns the paths in sequence order
func (s OrderedSequence) Paths() []string {
	paths := make([]string, len(s))
	for i, f := range s {
		paths[i] = f.Path
	}
	return paths
}

// Positions returns the positions in sequence order
func (s OrderedSequence) Positions() []int {
	positions := make([]int, len(s))
	for i, f := range s {
		positions[i] = f.Position
	}
	return positions
}

// IsSorted reports whether the sequence honors the (position, path) order
func (s OrderedSequence) IsSorted() bool {
	return slices.IsSortedFunc(s, CompareCandidates)
}
