// Package puzzle loads breach puzzles from YAML files and turns them into
// validated grid values ready for pathsearch.
//
// A puzzle file stands in for the screen-recognition step: it carries the
// already resolved code matrix and target sequences.
//
//	name: sample
//	buffer: 8              # optional; callers supply a default otherwise
//	matrix:
//	  - [55, 1C, BD]
//	  - 1C BD 55           # a row may also be a whitespace-separated string
//	  - [BD, 55, 1C]
//	targets:
//	  - [BD, 55]
//	  - 55 1C
//
// While an alphabet is in force, codes are normalized with grid.ParseCode,
// so "bd" and "BD" are equal. With the alphabet check disabled, codes are
// only trimmed and case is significant.
//
// Validation reports every problem of a file at once: ragged rows, empty
// targets, a negative buffer, and codes outside the configured alphabet
// (with a "did you mean" hint for near misses). The combined error still
// matches the underlying sentinels with errors.Is.
package puzzle
