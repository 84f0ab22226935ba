// Package breachpath finds the shortest path through a grid of codes whose
// sequence of visited values contains every target sequence.
//
// A path starts in the top row, never revisits a cell, and alternates
// between vertical moves (staying in the current column) and horizontal
// moves (staying in the current row), beginning with a vertical one. Its
// length is bounded by a buffer size.
//
// Packages:
//
//	grid/           Code, Matrix, TargetSequence, Solution, path validation
//	pathsearch/     exact backtracking search; batch solving with a worker limit
//	puzzle/         YAML puzzle files; alphabet checks with suggestions
//	render/         plain and lipgloss-styled result output
//	config/         viper-backed settings (file, BREACHPATH_* env, flags)
//	logging/        slog logger fanned out to stderr, a JSON file and journald
//	cmd/breachpath  command line front-end
//
// Quick example:
//
//	m := grid.MustMatrix([][]grid.Code{
//		{"55", "1C", "BD"},
//		{"E9", "FF", "7A"},
//	})
//	res, err := pathsearch.Solve(m, []grid.TargetSequence{
//		grid.MustTargetSequence("1C", "FF", "7A"),
//	}, 8)
//	// res.Found == true, res.Solution.Path == [(0,1) (1,1) (1,2)]
package breachpath
