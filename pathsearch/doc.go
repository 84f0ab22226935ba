// Package pathsearch finds the shortest breach path through a code matrix:
// an ordered, non-repeating walk that starts in row 0, alternates vertical
// and horizontal moves, and whose visited codes contain every target
// sequence as a contiguous run.
//
// Key features:
//   - Solve(m, targets, bufferSize, opts...): exact search, shortest path wins
//   - Deterministic: start column ascending, then candidate row/column ascending;
//     among equal-length solutions the first one discovered is kept
//   - Pruning: a branch stops once it covers every target, once the buffer is
//     exhausted, or once it is as long as the best solution found so far
//   - Cancellation via context.Context or a soft time limit
//   - SolveAll: independent puzzles solved in parallel with a worker limit
//
// Complexity:
//
//   - Time:   O(b^L · T·S) worst case, b = max(rows, cols) − 1 branching,
//     L = bufferSize, T = number of targets, S = longest target.
//     The "not shorter than best" prune collapses the tree in practice.
//   - Memory: O(rows·cols + L + T) per Solve call.
//
// Options:
//
//   - WithContext(ctx)      cooperative cancellation, checked every 1024 nodes
//     and before each start column.
//   - WithTimeLimit(d)      soft deadline layered over the context.
//   - WithPreCheck(bool)    reject targets longer than the buffer up front (default on).
//   - WithOnImprove(fn)     hook invoked with every new best solution.
//
// Results and errors:
//
//   - Result.Found == false with a nil error means no path within the buffer
//     covers every target. It is a normal outcome, not an error.
//   - ErrNilMatrix, ErrNoTargets, ErrInvalidBufferSize, ErrInvalidOptions and
//     grid.ErrEmptySequence report invalid input before any search starts.
//   - ErrCanceled (wrapping the context error) reports an interrupted search;
//     the Result then carries the best solution seen so far, which is not
//     guaranteed to be minimal.
package pathsearch
