// Package ordering implements the gap-fill ordering engine.
//
// Ordered files keep the position their order rule assigned. All unordered
// files are placed together into the gap: the first integer, counting up
// from the lowest claimed position, that no ordered file claims. With
// positions {1, 2, 4, 5} the gap is 3; with {1, 2, 3} it is 4; with
// {5, 6, 8} it is 7. The search never starts at 1 unless 1 is claimed.
//
// When no file is ordered there is no gap: unordered files keep position 0
// and are simply sorted by path.
//
// Ties on position are broken by path, which makes the result a total order
// and reproducible across runs.
package ordering
