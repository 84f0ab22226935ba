// Search engine overview:
//  1. Inputs are validated up front; the matrix is prefetched into a dense
//     row-major buffer so the hot loop never goes through accessors.
//  2. Search: DFS over row-0 start columns, then alternating vertical and
//     horizontal moves. A single visited set and path buffer are shared by the
//     whole search and updated with push/pop around each recursive call.
//  3. Coverage is tracked incrementally. coveredAt[i] is the path length at
//     which target i first matched as a suffix, or 0 when not yet covered;
//     popping a cell un-covers exactly the targets first matched at that
//     length. This equals recounting every target at every node.
//  4. Pruning, in this order at every node:
//     - full coverage and strictly shorter than the incumbent ⇒ record, return;
//     - path length reached bufferSize ⇒ return;
//     - an incumbent exists and the path is already as long ⇒ return.
//  5. Branching order is ascending by column (horizontal) or row (vertical),
//     so equal-length ties resolve to the first solution discovered.
//  6. Cancellation: sparse context checks (every 1024 nodes) plus one check
//     before each start column.

package pathsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/breachpath/grid"
)

// cancelCheckMask sets how often the context is polled: every mask+1 nodes.
const cancelCheckMask = 1023

// engine holds all search data for one Solve call.
type engine struct {
	// Configuration
	rows, cols int
	buffer     int
	ctx        context.Context
	onImprove  func(grid.Solution)

	// Matrix data (dense buffer): cells[row*cols+col]
	cells []grid.Code

	// Targets and incremental coverage
	targets   []grid.TargetSequence
	coveredAt []int // per target: path length when first covered, 0 if not
	covered   int   // number of targets with coveredAt > 0

	// Current search state
	visited []bool          // per cell, row-major
	path    []grid.Position // current partial path
	values  []grid.Code     // codes along path

	// Current best incumbent
	best  grid.Solution
	found bool

	stats Stats
	err   error // context error once canceled
}

// newEngine prefetches m and allocates the search buffers.
func newEngine(m *grid.Matrix, targets []grid.TargetSequence, bufferSize int, opts Options) (*engine, error) {
	e := &engine{
		rows:      m.Rows(),
		cols:      m.Cols(),
		buffer:    bufferSize,
		ctx:       opts.Ctx,
		onImprove: opts.OnImprove,
		targets:   targets,
		coveredAt: make([]int, len(targets)),
	}
	if err := e.initPrefetch(m); err != nil {
		return nil, err
	}
	e.visited = make([]bool, e.rows*e.cols)

	// A path never exceeds the buffer nor the number of cells.
	capacity := bufferSize
	if n := e.rows * e.cols; n < capacity {
		capacity = n
	}
	e.path = make([]grid.Position, 0, capacity)
	e.values = make([]grid.Code, 0, capacity)

	return e, nil
}

// initPrefetch loads the matrix into the dense cells buffer.
func (e *engine) initPrefetch(m *grid.Matrix) error {
	e.cells = make([]grid.Code, e.rows*e.cols)
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			v, err := m.ValueAt(grid.Position{Row: r, Col: c})
			if err != nil {
				return err
			}
			e.cells[r*e.cols+c] = v
		}
	}

	return nil
}

// at is a fast accessor into the dense cells buffer.
func (e *engine) at(r, c int) grid.Code { return e.cells[r*e.cols+c] }

// push appends p to the path, marks it visited and updates coverage.
func (e *engine) push(p grid.Position) {
	e.visited[p.Row*e.cols+p.Col] = true
	e.path = append(e.path, p)
	e.values = append(e.values, e.at(p.Row, p.Col))

	depth := len(e.values)
	for i, t := range e.targets {
		if e.coveredAt[i] == 0 && t.EndsAt(e.values, depth) {
			e.coveredAt[i] = depth
			e.covered++
		}
	}
}

// pop removes the last cell, undoing everything push did.
func (e *engine) pop() {
	depth := len(e.path)
	for i := range e.coveredAt {
		if e.coveredAt[i] == depth {
			e.coveredAt[i] = 0
			e.covered--
		}
	}
	p := e.path[depth-1]
	e.visited[p.Row*e.cols+p.Col] = false
	e.path = e.path[:depth-1]
	e.values = e.values[:depth-1]
}

// canceled reports whether the search must stop. The context is polled
// only every cancelCheckMask+1 calls.
func (e *engine) canceled() bool {
	if e.err != nil {
		return true
	}
	if e.stats.Nodes&cancelCheckMask != 0 {
		return false
	}

	return e.pollContext()
}

// pollContext records and reports a context error.
func (e *engine) pollContext() bool {
	if err := e.ctx.Err(); err != nil {
		e.err = err

		return true
	}

	return false
}

// record commits the current path as the new incumbent.
func (e *engine) record() {
	e.best = grid.Solution{
		Path:     append([]grid.Position(nil), e.path...),
		Sequence: append([]grid.Code(nil), e.values...),
	}
	e.best.Covered = Coverage(e.best.Sequence, e.targets)
	e.found = true
	e.stats.Improvements++
	if e.onImprove != nil {
		e.onImprove(e.best.Clone())
	}
}

// run tries every column of row 0 as the start cell.
// The first move after the start is vertical.
func (e *engine) run() {
	for c := 0; c < e.cols; c++ {
		if e.pollContext() {
			return
		}
		start := grid.Position{Row: 0, Col: c}
		e.push(start)
		e.dfs(1, start, false)
		e.pop()
		e.stats.StartColumns++
	}
}

// dfs expands the node whose last cell is pos and whose length is step.
// horizontal tells whether the next move stays in pos.Row.
func (e *engine) dfs(step int, pos grid.Position, horizontal bool) {
	e.stats.Nodes++
	if e.canceled() {
		return
	}

	// Full coverage: extending can only lengthen the path.
	if e.covered == len(e.targets) {
		if !e.found || len(e.path) < e.best.Len() {
			e.record()

			return
		}
	}

	// Buffer exhausted.
	if step >= e.buffer {
		return
	}

	// Cannot beat the incumbent.
	if e.found && len(e.path) >= e.best.Len() {
		return
	}

	var next grid.Position
	if horizontal {
		for c := 0; c < e.cols; c++ {
			if c == pos.Col || e.visited[pos.Row*e.cols+c] {
				continue
			}
			next = grid.Position{Row: pos.Row, Col: c}
			e.push(next)
			e.dfs(step+1, next, false)
			e.pop()
		}

		return
	}
	for r := 0; r < e.rows; r++ {
		if r == pos.Row || e.visited[r*e.cols+pos.Col] {
			continue
		}
		next = grid.Position{Row: r, Col: pos.Col}
		e.push(next)
		e.dfs(step+1, next, true)
		e.pop()
	}
}

// Solve searches m for the shortest path of at most bufferSize cells whose
// code sequence contains every target contiguously.
//
// Contract:
//   - m must be non-nil, targets non-empty, bufferSize ≥ 1.
//   - Result.Found reports whether a covering path exists; Found == false with
//     a nil error is the normal "no solution" outcome.
//   - Repeated calls with the same input return the same Result.Solution.
//
// Errors: ErrNilMatrix, ErrNoTargets, ErrInvalidBufferSize, ErrInvalidOptions,
// grid.ErrEmptySequence, or ErrCanceled wrapping the context error. On
// cancellation the returned Result still holds the incumbent, if any.
func Solve(m *grid.Matrix, targets []grid.TargetSequence, bufferSize int, opts ...Option) (Result, error) {
	began := time.Now()

	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate
	if err := validateInputs(m, targets, bufferSize, o); err != nil {
		return Result{}, err
	}

	// 3. Deadline
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		o.Ctx, cancel = context.WithTimeout(o.Ctx, o.TimeLimit)
		defer cancel()
	}

	// 4. Cheap infeasibility shortcut
	if o.PreCheck && longestTarget(targets) > bufferSize {
		return Result{Stats: Stats{Elapsed: time.Since(began)}}, nil
	}

	// 5. Search
	e, err := newEngine(m, targets, bufferSize, o)
	if err != nil {
		return Result{}, err
	}
	e.run()

	res := Result{Found: e.found, Stats: e.stats}
	if e.found {
		res.Solution = e.best
	}
	res.Stats.Elapsed = time.Since(began)
	if e.err != nil {
		return res, fmt.Errorf("%w: %w", ErrCanceled, e.err)
	}

	return res, nil
}
