package ordering

import (
	"fmt"
	"math"

	"github.com/arthur-debert/massminify/pkg/types"
)

// FindGap returns the position the unordered files are placed at. ok is
// false when ordered is empty. Every ordered entry must have a positive
// position and a free position must exist below math.MaxInt; anything else
// is a programming error and panics.
func FindGap(ordered []types.CandidateFile) (gap int, ok bool) {
	if len(ordered) == 0 {
		return 0, false
	}

	claimed := make(map[int]bool, len(ordered))
	start := ordered[0].Position
	for _, f := range ordered {
		if f.Position <= 0 {
			panic(fmt.Sprintf("ordering: ordered file %s has non-positive position %d", f.Path, f.Position))
		}
		claimed[f.Position] = true
		if f.Position < start {
			start = f.Position
		}
	}

	gap = start
	for claimed[gap] {
		if gap == math.MaxInt {
			panic("ordering: no free position after the ordered files")
		}
		gap++
	}
	return gap, true
}

// Resolve merges ordered and unordered candidates into one sequence sorted
// by (position, path). Unordered entries all receive the gap position, or
// stay at 0 when nothing is ordered. The inputs are not modified.
func Resolve(ordered, unordered []types.CandidateFile) types.OrderedSequence {
	for _, f := range unordered {
		if f.Position < 0 {
			panic(fmt.Sprintf("ordering: unordered file %s has negative position %d", f.Path, f.Position))
		}
	}

	gap, hasGap := FindGap(ordered)

	seq := make(types.OrderedSequence, 0, len(ordered)+len(unordered))
	seq = append(seq, ordered...)
	for _, f := range unordered {
		if hasGap {
			f.Position = gap
		} else {
			f.Position = 0
		}
		seq = append(seq, f)
	}

	types.SortCandidates(seq)
	return seq
}
