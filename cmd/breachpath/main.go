// Command breachpath solves breach puzzles described in YAML files.
//
//	breachpath solve puzzle.yaml [more.yaml...]
//	breachpath check puzzle.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "breachpath: %v\n", err)
		stop()
		os.Exit(1)
	}
}
