// Package main is the single-shot scheduler benchmark: every sample is one
// distinct event scheduled once at a random future time.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tickline/tickline/internal/bench"
)

func main() {
	code, err := bench.Main(context.Background(), bench.Params{
		Name:    "schedbench",
		Usage:   "<numsamples>",
		NumArgs: 1,
		Workload: func(g *bench.Generator, args []uint64) *bench.Workload {
			return g.SingleShot(args[0])
		},
	}, os.Args, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	}
	os.Exit(code)
}
