// Package render turns a search Result into human-readable text.
//
// It is a pure projection: nothing here influences the search. Two styles
// are provided:
//
//   - Plain: the matrix with 1-based step numbers appended to visited cells,
//     followed by the value sequence, the path and the covered targets.
//   - Color: the same content laid out with lipgloss; visited cells are
//     highlighted. Colors degrade to plain text when the output is not a
//     terminal.
package render
