package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/katalvlaran/breachpath/puzzle"
)

// errInvalidPuzzles is returned by check when any file has problems.
var errInvalidPuzzles = errors.New("invalid puzzle files")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate puzzle files without solving them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	puzzles, err := puzzle.LoadAll(args, puzzle.WithAlphabet(a.cfg.Codes()))

	for _, p := range puzzles {
		req := p.Request(a.cfg.Solver.BufferSize)
		a.warnBuffer(p.Label(), req.BufferSize)
		fmt.Fprintf(out, "ok    %s (%dx%d, %d targets, buffer %d)\n",
			p.Label(), p.Matrix.Rows(), p.Matrix.Cols(), len(p.Targets), req.BufferSize)
		for _, t := range p.Targets {
			if t.Len() > req.BufferSize {
				fmt.Fprintf(out, "      target %q is longer than the buffer; no path can cover it\n", t.String())
			}
		}
	}

	problems := multierr.Errors(err)
	for _, e := range problems {
		fmt.Fprintf(out, "error %v\n", e)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d of %d failed", errInvalidPuzzles, len(problems), len(args))
	}

	return nil
}
