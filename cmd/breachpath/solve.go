package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/breachpath/grid"
	"github.com/katalvlaran/breachpath/logging"
	"github.com/katalvlaran/breachpath/pathsearch"
	"github.com/katalvlaran/breachpath/puzzle"
	"github.com/katalvlaran/breachpath/render"
)

// interruptedNote follows every result printed after a canceled search.
const interruptedNote = "Search interrupted: result is not guaranteed minimal."

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more puzzle files",
		Long: `Solve loads every puzzle file, solves them in parallel and prints each
result in file order. A puzzle without a covering path is reported as
"No solution found." and is not an error.

Cells are printed as (row,col), both zero-based with (0,0) at the top
left; step numbers next to visited cells start at 1.

When --timeout expires or the run is interrupted, the best paths found so
far are still printed, marked as not guaranteed minimal, and the command
exits with an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runSolve,
	}

	f := cmd.Flags()
	f.String("style", "plain", "output style: plain or color")
	f.Int("buffer", 8, "buffer size; overrides the puzzle file when set")
	f.Duration("timeout", 0, "time limit per puzzle (0 = none)")
	f.Int("workers", 0, "puzzles solved concurrently (default GOMAXPROCS)")
	f.Bool("precheck", true, "skip puzzles with a target longer than the buffer")
	_ = a.v.BindPFlag("render.style", f.Lookup("style"))
	_ = a.v.BindPFlag("solver.buffer_size", f.Lookup("buffer"))
	_ = a.v.BindPFlag("solver.time_limit", f.Lookup("timeout"))
	_ = a.v.BindPFlag("solver.workers", f.Lookup("workers"))
	_ = a.v.BindPFlag("solver.precheck", f.Lookup("precheck"))

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	puzzles, err := puzzle.LoadAll(args, puzzle.WithAlphabet(a.cfg.Codes()))
	if err != nil {
		return err
	}

	forced := cmd.Flags().Changed("buffer")
	reqs := make([]pathsearch.Request, len(puzzles))
	for i, p := range puzzles {
		reqs[i] = p.Request(a.cfg.Solver.BufferSize)
		if forced {
			reqs[i].BufferSize = a.cfg.Solver.BufferSize
		}
		a.warnBuffer(p.Label(), reqs[i].BufferSize)
	}

	results, err := pathsearch.SolveAll(ctx, reqs, a.cfg.Solver.Workers,
		pathsearch.WithTimeLimit(a.cfg.Solver.TimeLimit),
		pathsearch.WithPreCheck(a.cfg.Solver.PreCheck),
		pathsearch.WithOnImprove(func(s grid.Solution) {
			a.log.Debug("improved", "length", s.Len(), "sequence", grid.JoinCodes(s.Sequence))
		}),
	)
	interrupted := errors.Is(err, pathsearch.ErrCanceled)
	if err != nil && !interrupted {
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range puzzles {
		res := results[i]
		pctx := logging.WithPuzzle(ctx, p.Label())
		a.log.InfoContext(pctx, "solved",
			"found", res.Found,
			"interrupted", interrupted,
			"length", res.Solution.Len(),
			"nodes", res.Stats.Nodes,
			"elapsed", res.Stats.Elapsed)

		if res.Found {
			if err := grid.ValidatePath(p.Matrix, res.Solution.Path, reqs[i].BufferSize); err != nil {
				return fmt.Errorf("%s: solver produced an invalid path: %w", p.Label(), err)
			}
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := render.Write(out, a.cfg.Style(), p.Label(), p.Matrix, res); err != nil {
			return err
		}
		if interrupted {
			fmt.Fprintln(out, interruptedNote)
		}
	}

	return err
}
