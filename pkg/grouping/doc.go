// Package grouping implements the grouping policy that consumes an
// OrderedSequence. For each asset class it either minifies every file into a
// sibling output, combines the files of each directory into one output, or
// consolidates every file of the walk into one output at the root.
//
// Concatenation always follows sequence order. A file that cannot be read or
// compressed is logged, recorded in the Report and skipped; the remaining
// files are still processed.
package grouping
