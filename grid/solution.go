package grid

import "fmt"

// Solution is a path that covers every requested target sequence.
//
//   - Path lists the visited cells in order; Path[0] is in row 0.
//   - Sequence holds the codes read along Path (same length).
//   - Covered lists the input targets occurring contiguously in Sequence,
//     in input order.
type Solution struct {
	Path     []Position
	Sequence []Code
	Covered  []TargetSequence
}

// Len returns the number of visited cells.
func (s Solution) Len() int { return len(s.Path) }

// Clone returns a copy that shares no slices with s.
func (s Solution) Clone() Solution {
	out := Solution{
		Path:     make([]Position, len(s.Path)),
		Sequence: make([]Code, len(s.Sequence)),
		Covered:  make([]TargetSequence, len(s.Covered)),
	}
	copy(out.Path, s.Path)
	copy(out.Sequence, s.Sequence)
	copy(out.Covered, s.Covered)

	return out
}

// ValidatePath checks path against the movement rules of m:
//
//  1. every position is inside m (ErrOutOfBounds);
//  2. the first position is in row 0 (ErrStartRow);
//  3. no position repeats (ErrRevisit);
//  4. move k (from path[k-1] to path[k]) is vertical for odd k and
//     horizontal for even k (ErrAlternation);
//  5. len(path) ≤ bufferSize when bufferSize > 0 (ErrPathTooLong).
//
// An empty path is valid.
// Complexity: O(len(path)) time, O(rows×cols) memory.
func ValidatePath(m *Matrix, path []Position, bufferSize int) error {
	if bufferSize > 0 && len(path) > bufferSize {
		return fmt.Errorf("%w: %d > %d", ErrPathTooLong, len(path), bufferSize)
	}
	if len(path) == 0 {
		return nil
	}
	seen := make([]bool, m.rows*m.cols)
	for k, p := range path {
		if !m.InBounds(p) {
			return fmt.Errorf("%w: step %d at %v", ErrOutOfBounds, k+1, p)
		}
		if seen[m.index(p)] {
			return fmt.Errorf("%w: step %d at %v", ErrRevisit, k+1, p)
		}
		seen[m.index(p)] = true

		if k == 0 {
			if p.Row != 0 {
				return fmt.Errorf("%w: got row %d", ErrStartRow, p.Row)
			}
			continue
		}
		prev := path[k-1]
		vertical := k%2 == 1
		if vertical && (p.Col != prev.Col || p.Row == prev.Row) {
			return fmt.Errorf("%w: step %d %v→%v must stay in column %d", ErrAlternation, k+1, prev, p, prev.Col)
		}
		if !vertical && (p.Row != prev.Row || p.Col == prev.Col) {
			return fmt.Errorf("%w: step %d %v→%v must stay in row %d", ErrAlternation, k+1, prev, p, prev.Row)
		}
	}

	return nil
}
