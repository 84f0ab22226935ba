package grid

import "errors"

var (
	// ErrInvalidShape indicates an empty table, an empty row, or rows of differing lengths.
	ErrInvalidShape = errors.New("grid: matrix must be non-empty and rectangular")
	// ErrEmptySequence indicates a target sequence without codes.
	ErrEmptySequence = errors.New("grid: target sequence must contain at least one code")
	// ErrOutOfBounds indicates a position outside the matrix extents.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrStartRow indicates a path whose first cell is not in row 0.
	ErrStartRow = errors.New("grid: path must start in row 0")
	// ErrRevisit indicates a path that visits the same cell twice.
	ErrRevisit = errors.New("grid: path revisits a cell")
	// ErrAlternation indicates a move that breaks the vertical/horizontal alternation.
	ErrAlternation = errors.New("grid: path breaks move alternation")
	// ErrPathTooLong indicates a path longer than the buffer allows.
	ErrPathTooLong = errors.New("grid: path exceeds buffer size")
)
