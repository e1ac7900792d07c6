// Package main is the repost scheduler benchmark: each sample event is
// scheduled numreposts independent times, stressing firing-order
// monotonicity across interleaved entries for the same instance.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tickline/tickline/internal/bench"
)

func main() {
	code, err := bench.Main(context.Background(), bench.Params{
		Name:    "repostbench",
		Usage:   "<numsamples> <numreposts>",
		NumArgs: 2,
		Workload: func(g *bench.Generator, args []uint64) *bench.Workload {
			return g.Repost(args[0], args[1])
		},
	}, os.Args, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	}
	os.Exit(code)
}
