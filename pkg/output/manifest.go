package output

import (
	"github.com/arthur-debert/massminify/pkg/grouping"
	"github.com/arthur-debert/massminify/pkg/types"
)

// Entry is one file of a manifest
type Entry struct {
	Position int              `json:"position" yaml:"position" toml:"position"`
	Class    types.AssetClass `json:"class" yaml:"class" toml:"class"`
	Path     string           `json:"path" yaml:"path" toml:"path"`
}

// Manifest is the serializable form of an ordered sequence
type Manifest struct {
	Root      string  `json:"root" yaml:"root" toml:"root"`
	Recursive bool    `json:"recursive" yaml:"recursive" toml:"recursive"`
	Gap       int     `json:"gap" yaml:"gap" toml:"gap"`
	Entries   []Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// NewManifest builds a manifest from seq. gap is 0 when nothing is ordered.
func NewManifest(root string, recursive bool, gap int, seq types.OrderedSequence) Manifest {
	m := Manifest{
		Root:      root,
		Recursive: recursive,
		Gap:       gap,
		Entries:   make([]Entry, 0, len(seq)),
	}
	for _, f := range seq {
		m.Entries = append(m.Entries, Entry{Position: f.Position, Class: f.Class, Path: f.Path})
	}
	return m
}

// Summary is the serializable outcome of a run
type Summary struct {
	Root     string             `json:"root" yaml:"root" toml:"root"`
	DryRun   bool               `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Files    int                `json:"files" yaml:"files" toml:"files"`
	Outputs  []grouping.Output  `json:"outputs" yaml:"outputs" toml:"outputs"`
	Failures []grouping.Failure `json:"failures" yaml:"failures" toml:"failures"`
}

// NewSummary builds a summary from a grouping report
func NewSummary(root string, dryRun bool, files int, report grouping.Report) Summary {
	s := Summary{
		Root:     root,
		DryRun:   dryRun,
		Files:    files,
		Outputs:  report.Outputs,
		Failures: report.Failures,
	}
	if s.Outputs == nil {
		s.Outputs = []grouping.Output{}
	}
	if s.Failures == nil {
		s.Failures = []grouping.Failure{}
	}
	return s
}
