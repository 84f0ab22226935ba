package pathsearch

import "github.com/katalvlaran/breachpath/grid"

// Coverage returns the targets occurring as contiguous runs of values,
// in the order they appear in targets. Duplicate targets are checked
// independently and reported once each.
// Complexity: O(T·len(values)·S).
func Coverage(values []grid.Code, targets []grid.TargetSequence) []grid.TargetSequence {
	out := make([]grid.TargetSequence, 0, len(targets))
	for _, t := range targets {
		if t.OccursIn(values) {
			out = append(out, t)
		}
	}

	return out
}

// CountCovered returns len(Coverage(values, targets)) without allocating.
func CountCovered(values []grid.Code, targets []grid.TargetSequence) int {
	n := 0
	for _, t := range targets {
		if t.OccursIn(values) {
			n++
		}
	}

	return n
}

// longestTarget returns the length of the longest target.
func longestTarget(targets []grid.TargetSequence) int {
	longest := 0
	for _, t := range targets {
		if t.Len() > longest {
			longest = t.Len()
		}
	}

	return longest
}
