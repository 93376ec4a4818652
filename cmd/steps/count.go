package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/sortvis/internal/algo"
	"github.com/abelbrown/sortvis/internal/step"
)

// runCount prints per-kind event counts for every algorithm over one
// input. Useful for eyeballing how granular each visualization is.
func runCount() {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	input := fs.String("input", "5,3,4,1,2", "comma-separated integers")
	fs.Parse(os.Args[1:])

	values, err := parseValues(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "count: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("input %s\n\n", formatValues(values))
	fmt.Printf("%-10s %8s %8s %10s %8s %8s\n", "algorithm", "compare", "swap", "overwrite", "final", "total")
	for _, a := range algo.Algorithms {
		events := algo.Steps(a, values)
		counts := make(map[step.Kind]int)
		for _, e := range events {
			counts[e.Kind]++
		}
		fmt.Printf("%-10s %8d %8d %10d %8d %8d\n",
			a,
			counts[step.KindCompare],
			counts[step.KindSwap],
			counts[step.KindOverwrite],
			counts[step.KindMarkFinal],
			len(events),
		)
	}
}
