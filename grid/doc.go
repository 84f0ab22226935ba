// Package grid defines the immutable value types of a breach puzzle:
// the code Matrix, the TargetSequence patterns, cell Positions and the
// Solution returned by a search.
//
// What:
//
//   - Matrix wraps a rectangular [][]Code table; it is deep-copied on
//     construction and never mutated afterwards.
//   - TargetSequence is a non-empty ordered run of codes that must appear
//     contiguously in the value sequence of a solution path.
//   - Solution couples a Path with its value sequence and covered targets.
//   - ValidatePath checks the movement rules a search path must obey.
//
// Movement rules:
//
//   - The first cell of a path is any column of row 0.
//   - The next move is vertical (same column, different row), then
//     horizontal (same row, different column), alternating thereafter.
//   - No cell is visited twice.
//
// Errors:
//
//   - ErrInvalidShape: no rows, an empty row, or rows of differing lengths.
//   - ErrEmptySequence: a target sequence with no codes.
//   - ErrOutOfBounds: a Position outside the matrix extents.
//   - ErrStartRow, ErrRevisit, ErrAlternation, ErrPathTooLong: path rule
//     violations reported by ValidatePath.
//
// All functions are pure; none of them log or panic on user input.
package grid
