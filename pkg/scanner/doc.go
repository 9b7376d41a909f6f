// Package scanner implements the candidate scanner: a depth-first walk of an
// asset directory that classifies every script and stylesheet as ordered
// (matched by an order rule) or unordered.
//
// The walk is sequential and visits entries of each directory in lexical
// order. Both returned sets are sorted by (position, path), so the result of
// a scan never depends on the order the filesystem lists entries.
package scanner
