package pathsearch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breachpath/grid"
	"github.com/katalvlaran/breachpath/pathsearch"
)

// checkerboard is the 3×3 A/B grid used by several scenarios.
func checkerboard() *grid.Matrix {
	return grid.MustMatrix([][]grid.Code{
		{"A", "B", "A"},
		{"B", "A", "B"},
		{"A", "B", "A"},
	})
}

func seqs(ts ...[]grid.Code) []grid.TargetSequence {
	out := make([]grid.TargetSequence, len(ts))
	for i, t := range ts {
		out[i] = grid.MustTargetSequence(t...)
	}

	return out
}

// mustValidSolution asserts the structural invariants of a returned solution.
func mustValidSolution(t *testing.T, m *grid.Matrix, targets []grid.TargetSequence, buffer int, res pathsearch.Result) {
	t.Helper()
	require.True(t, res.Found)
	sol := res.Solution
	require.NoError(t, grid.ValidatePath(m, sol.Path, buffer))

	vals, err := m.Values(sol.Path)
	require.NoError(t, err)
	assert.Equal(t, vals, sol.Sequence, "sequence must be read along the path")
	assert.Len(t, sol.Covered, len(targets), "every target must be covered")
	for _, tg := range targets {
		assert.True(t, tg.OccursIn(sol.Sequence), "target %v not in %v", tg, sol.Sequence)
	}
}

func TestSolve_Errors(t *testing.T) {
	m := checkerboard()
	ok := seqs([]grid.Code{"A"})

	_, err := pathsearch.Solve(nil, ok, 3)
	assert.ErrorIs(t, err, pathsearch.ErrNilMatrix)

	_, err = pathsearch.Solve(m, nil, 3)
	assert.ErrorIs(t, err, pathsearch.ErrNoTargets)

	for _, b := range []int{0, -1} {
		_, err = pathsearch.Solve(m, ok, b)
		assert.ErrorIs(t, err, pathsearch.ErrInvalidBufferSize, "buffer %d", b)
	}

	_, err = pathsearch.Solve(m, []grid.TargetSequence{{}}, 3)
	assert.ErrorIs(t, err, grid.ErrEmptySequence)

	_, err = pathsearch.Solve(m, ok, 3, pathsearch.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, pathsearch.ErrInvalidOptions)
}

// A two-step solution: start in row 0, then one vertical move.
func TestSolve_TwoStepVerticalPair(t *testing.T) {
	m := checkerboard()
	targets := seqs([]grid.Code{"B", "A"})

	res, err := pathsearch.Solve(m, targets, 3)
	require.NoError(t, err)
	mustValidSolution(t, m, targets, 3, res)

	assert.Equal(t, []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, res.Solution.Path)
	assert.Equal(t, []grid.Code{"B", "A"}, res.Solution.Sequence)
	require.Len(t, res.Solution.Covered, 1)
	assert.True(t, res.Solution.Covered[0].Equal(targets[0]))
	assert.Equal(t, 3, res.Stats.StartColumns)
}

// A target longer than the buffer can never be covered.
func TestSolve_TargetLongerThanBuffer(t *testing.T) {
	m := checkerboard()
	targets := seqs([]grid.Code{"A", "B", "A", "B"})

	for _, pre := range []bool{true, false} {
		res, err := pathsearch.Solve(m, targets, 3, pathsearch.WithPreCheck(pre))
		require.NoError(t, err, "precheck=%v", pre)
		assert.False(t, res.Found, "precheck=%v", pre)
	}
}

// A 1×1 matrix admits only one-cell paths.
func TestSolve_SingleCellMatrix(t *testing.T) {
	m := grid.MustMatrix([][]grid.Code{{"A"}})

	res, err := pathsearch.Solve(m, seqs([]grid.Code{"A"}), 1)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}}, res.Solution.Path)

	res, err = pathsearch.Solve(m, seqs([]grid.Code{"A", "A"}), 4)
	require.NoError(t, err)
	assert.False(t, res.Found, "cannot move inside a 1x1 matrix")

	res, err = pathsearch.Solve(m, seqs([]grid.Code{"B"}), 4)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

// Ragged input is rejected before any search.
func TestSolve_RaggedMatrixRejected(t *testing.T) {
	_, err := grid.NewMatrix([][]grid.Code{{"A", "B"}, {"A"}})
	assert.ErrorIs(t, err, grid.ErrInvalidShape)
}

func TestSolve_MultipleTargets(t *testing.T) {
	m := grid.MustMatrix([][]grid.Code{
		{"55", "1C", "BD", "E9"},
		{"7A", "FF", "1C", "55"},
		{"BD", "E9", "7A", "1C"},
		{"1C", "55", "FF", "BD"},
	})
	targets := seqs(
		[]grid.Code{"1C", "FF"},
		[]grid.Code{"FF", "7A"},
	)

	res, err := pathsearch.Solve(m, targets, 6)
	require.NoError(t, err)
	mustValidSolution(t, m, targets, 6, res)
	// Both targets overlap on FF: 1C at (0,1), down to FF at (1,1), left to 7A at (1,0).
	assert.Equal(t, []grid.Code{"1C", "FF", "7A"}, res.Solution.Sequence)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}, res.Solution.Path)
}

func TestSolve_DuplicateTargets(t *testing.T) {
	m := checkerboard()
	targets := seqs([]grid.Code{"B", "A"}, []grid.Code{"B", "A"})

	res, err := pathsearch.Solve(m, targets, 3)
	require.NoError(t, err)
	mustValidSolution(t, m, targets, 3, res)
	assert.Len(t, res.Solution.Covered, 2, "duplicates are checked independently")
}

func TestSolve_SingleCodeTargetInRowZero(t *testing.T) {
	m := checkerboard()
	res, err := pathsearch.Solve(m, seqs([]grid.Code{"B"}), 5)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 1}}, res.Solution.Path)
}

// Equal-length solutions resolve to the first start column, then the lowest row/column.
func TestSolve_TieBreak_EnumerationOrder(t *testing.T) {
	m := grid.MustMatrix([][]grid.Code{
		{"A", "A"},
		{"B", "B"},
	})
	res, err := pathsearch.Solve(m, seqs([]grid.Code{"A", "B"}), 2)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, res.Solution.Path)

	m = grid.MustMatrix([][]grid.Code{
		{"A", "C", "C"},
		{"C", "C", "B"},
		{"B", "C", "C"},
	})
	// From (0,0), row 1 is tried before row 2: "A C B" via (1,0)→(1,2) is found
	// first, then the strictly shorter "A B" via (2,0) replaces it.
	res, err = pathsearch.Solve(m, seqs([]grid.Code{"A"}, []grid.Code{"B"}), 3)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 0}}, res.Solution.Path)
}

func TestSolve_Determinism(t *testing.T) {
	m := grid.MustMatrix([][]grid.Code{
		{"55", "1C", "BD", "E9", "7A"},
		{"FF", "55", "1C", "BD", "E9"},
		{"7A", "FF", "55", "1C", "BD"},
		{"E9", "7A", "FF", "55", "1C"},
		{"BD", "E9", "7A", "FF", "55"},
	})
	targets := seqs([]grid.Code{"BD", "7A"}, []grid.Code{"1C", "1C"}, []grid.Code{"FF", "E9"})

	first, err := pathsearch.Solve(m, targets, 8)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := pathsearch.Solve(m, targets, 8)
		require.NoError(t, err)
		assert.Equal(t, first.Found, again.Found)
		assert.Equal(t, first.Solution, again.Solution)
		assert.Equal(t, first.Stats.Nodes, again.Stats.Nodes)
	}
}

func TestSolve_OnImprove(t *testing.T) {
	m := checkerboard()
	var lengths []int
	res, err := pathsearch.Solve(m, seqs([]grid.Code{"B", "A"}), 3,
		pathsearch.WithOnImprove(func(s grid.Solution) {
			lengths = append(lengths, s.Len())
		}))
	require.NoError(t, err)
	// Start column 0 finds A B A first; start column 1 then finds B A.
	assert.Equal(t, []int{3, 2}, lengths)
	assert.Equal(t, 2, res.Stats.Improvements)
}

func TestSolve_OnImproveGetsCopy(t *testing.T) {
	m := checkerboard()
	res, err := pathsearch.Solve(m, seqs([]grid.Code{"B", "A"}), 3,
		pathsearch.WithOnImprove(func(s grid.Solution) {
			s.Path[0] = grid.Position{Row: 7, Col: 7}
		}))
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, res.Solution.Path[0])
}

func TestSolve_CanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := pathsearch.Solve(checkerboard(), seqs([]grid.Code{"B", "A"}), 3, pathsearch.WithContext(ctx))
	assert.ErrorIs(t, err, pathsearch.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Stats.StartColumns)
}

func TestSolve_CanceledKeepsIncumbent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := pathsearch.Solve(checkerboard(), seqs([]grid.Code{"B", "A"}), 3,
		pathsearch.WithContext(ctx),
		pathsearch.WithOnImprove(func(grid.Solution) { cancel() }))
	assert.ErrorIs(t, err, pathsearch.ErrCanceled)
	require.True(t, res.Found, "incumbent from start column 0 survives")
	assert.Equal(t, 3, res.Solution.Len())
	assert.Equal(t, 1, res.Stats.StartColumns)
}

func TestSolve_NilContextIgnored(t *testing.T) {
	//nolint:staticcheck // a nil context must fall back to Background.
	res, err := pathsearch.Solve(checkerboard(), seqs([]grid.Code{"B", "A"}), 3, pathsearch.WithContext(nil))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestSolve_BufferOneReadsOnlyRowZero(t *testing.T) {
	m := checkerboard()
	res, err := pathsearch.Solve(m, seqs([]grid.Code{"A"}), 1)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}}, res.Solution.Path)

	res, err = pathsearch.Solve(grid.MustMatrix([][]grid.Code{{"A"}, {"B"}}), seqs([]grid.Code{"B"}), 1)
	require.NoError(t, err)
	assert.False(t, res.Found, "B is not reachable in one step")
}

func TestSolve_PreCheckDoesNotChangeResult(t *testing.T) {
	m := checkerboard()
	targets := seqs([]grid.Code{"A", "B"}, []grid.Code{"B", "A", "B"})
	for buffer := 1; buffer <= 5; buffer++ {
		with, err := pathsearch.Solve(m, targets, buffer, pathsearch.WithPreCheck(true))
		require.NoError(t, err)
		without, err := pathsearch.Solve(m, targets, buffer, pathsearch.WithPreCheck(false))
		require.NoError(t, err)
		assert.Equal(t, without.Found, with.Found, "buffer %d", buffer)
		assert.Equal(t, without.Solution, with.Solution, "buffer %d", buffer)
	}
}

// uniformMatrix returns an n×n matrix filled with code.
func uniformMatrix(n int, code grid.Code) *grid.Matrix {
	vals := make([][]grid.Code, n)
	for r := range vals {
		vals[r] = make([]grid.Code, n)
		for c := range vals[r] {
			vals[r][c] = code
		}
	}

	return grid.MustMatrix(vals)
}

func TestSolve_TimeLimitStopsExhaustiveSearch(t *testing.T) {
	// Z never occurs, so without a deadline every path up to 12 cells is enumerated.
	m := uniformMatrix(8, "A")

	began := time.Now()
	res, err := pathsearch.Solve(m, seqs([]grid.Code{"Z"}), 12, pathsearch.WithTimeLimit(20*time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, pathsearch.ErrCanceled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, res.Found)
	assert.Positive(t, res.Stats.Nodes)
	assert.Less(t, time.Since(began), 5*time.Second)
}

func TestSolve_TimeLimitLongEnoughFinishes(t *testing.T) {
	res, err := pathsearch.Solve(checkerboard(), seqs([]grid.Code{"B", "A"}), 3, pathsearch.WithTimeLimit(time.Minute))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Solution.Len())
}
