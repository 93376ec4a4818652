package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/abelbrown/sortvis/internal/algo"
	"github.com/abelbrown/sortvis/internal/step"
)

// runVerify replays every algorithm over a battery of inputs, checking
// the full invariant set: sortedness after replay, exactly one
// mark-final per position, no data movement on frozen positions, and
// determinism across two independent generations.
func runVerify() {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	exhaustive := fs.Bool("permutations", true, "include all permutations of [1..5]")
	fs.Parse(os.Args[1:])

	inputs := [][]int{
		{8, 12, 75, 88, 106}, // sorted
		{106, 88, 75, 12, 8}, // reversed
		{1, 1, 1, 1, 1},      // all equal
		{5, 3, 4, 1, 2},
		{-7, 0, -7, 3, 1}, // negatives and duplicates
	}
	if *exhaustive {
		inputs = append(inputs, permutations([]int{1, 2, 3, 4, 5})...)
	}

	checked, failed := 0, 0
	for _, a := range algo.Algorithms {
		for _, in := range inputs {
			checked++
			if err := verifyRun(a, in); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "FAIL %-10s %s: %v\n", a, formatValues(in), err)
			}
		}
	}

	fmt.Printf("verified %d runs across %d algorithms, %d failures\n", checked, len(algo.Algorithms), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func verifyRun(a algo.Algorithm, values []int) error {
	events := algo.Steps(a, values)

	result, err := step.Replay(events, values)
	if err != nil {
		return err
	}
	if !sort.IntsAreSorted(result) {
		return fmt.Errorf("replay produced unsorted result %s", formatValues(result))
	}

	again := algo.Steps(a, values)
	if len(again) != len(events) {
		return fmt.Errorf("non-deterministic: %d events then %d", len(events), len(again))
	}
	for i := range events {
		if events[i] != again[i] {
			return fmt.Errorf("non-deterministic at event %d: %q vs %q", i, events[i], again[i])
		}
	}
	return nil
}

// permutations returns every ordering of values.
func permutations(values []int) [][]int {
	var out [][]int
	var recurse func(prefix, rest []int)
	recurse = func(prefix, rest []int) {
		if len(rest) == 0 {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for i := range rest {
			next := append(append([]int(nil), rest[:i]...), rest[i+1:]...)
			picked := append(append([]int(nil), prefix...), rest[i])
			recurse(picked, next)
		}
	}
	recurse(nil, values)
	return out
}
