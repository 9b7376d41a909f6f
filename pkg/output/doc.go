// Package output renders resolved sequences and run reports.
//
// Terminal output uses pterm tables and lipgloss styles; text output is a
// plain tab-aligned table; json, yaml and toml serialize the same manifest
// for scripts. FormatAuto picks terminal or text from the output stream.
package output
