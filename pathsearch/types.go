package pathsearch

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/breachpath/grid"
)

var (
	// ErrNilMatrix is returned when Solve receives a nil matrix.
	ErrNilMatrix = errors.New("pathsearch: matrix is nil")

	// ErrNoTargets is returned when the target set is empty.
	ErrNoTargets = errors.New("pathsearch: at least one target sequence is required")

	// ErrInvalidBufferSize is returned when bufferSize < 1.
	ErrInvalidBufferSize = errors.New("pathsearch: buffer size must be at least 1")

	// ErrInvalidOptions is returned for inconsistent options, e.g. a negative time limit.
	ErrInvalidOptions = errors.New("pathsearch: invalid options")

	// ErrCanceled reports a search interrupted by its context or time limit.
	ErrCanceled = errors.New("pathsearch: search canceled")
)

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds the tunable parameters of a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// TimeLimit, if positive, bounds the wall time of one Solve call.
	TimeLimit time.Duration

	// PreCheck rejects, before searching, any target longer than the buffer.
	// Such a target can never be covered, so the outcome is unchanged.
	PreCheck bool

	// OnImprove, if non-nil, receives a copy of every new best solution.
	// Under SolveAll it may be called from several goroutines.
	OnImprove func(grid.Solution)
}

// DefaultOptions returns Options with:
//   - Background context
//   - No time limit
//   - PreCheck enabled
//   - No improvement hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		TimeLimit: 0,
		PreCheck:  true,
		OnImprove: nil,
	}
}

// WithContext sets the context consulted for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit bounds each Solve call to d. Zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithPreCheck toggles the "target longer than buffer" shortcut.
func WithPreCheck(enabled bool) Option {
	return func(o *Options) {
		o.PreCheck = enabled
	}
}

// WithOnImprove installs fn as the new-incumbent hook.
func WithOnImprove(fn func(grid.Solution)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// Stats carries search diagnostics.
type Stats struct {
	// Nodes counts visited search nodes (partial paths), start cells included.
	Nodes int
	// Improvements counts how many times the best solution was replaced.
	Improvements int
	// StartColumns counts the row-0 columns whose subtree was searched.
	StartColumns int
	// Elapsed is the wall time spent inside Solve.
	Elapsed time.Duration
}

// Result is the outcome of Solve.
// Solution is meaningful only when Found is true.
type Result struct {
	Solution grid.Solution
	Found    bool
	Stats    Stats
}

// Request describes one independent puzzle for SolveAll.
type Request struct {
	// ID is an optional caller label used in error messages.
	ID         string
	Matrix     *grid.Matrix
	Targets    []grid.TargetSequence
	BufferSize int
}
