// Package core runs the massminify pipeline:
//
//	config -> rules -> scanner -> ordering -> grouping
//
// Resolve stops after ordering and performs no writes; it backs the order
// command. Run continues through the grouping policy and writes outputs
// through the configured filesystem, or an in-memory overlay on dry runs.
package core
