package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/abelbrown/sortvis/internal/algo"
	"github.com/abelbrown/sortvis/internal/step"
)

// runTrace prints the full event trace for one algorithm and input,
// with the array state after each applied event. With -pace the trace
// plays out in real time at the given step delay.
func runTrace() {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	algoName := fs.String("algo", "bubble", "algorithm: bubble|selection|insertion|merge|quick|heap")
	input := fs.String("input", "5,3,4,1,2", "comma-separated integers")
	pace := fs.Bool("pace", false, "play the trace in real time")
	delay := fs.Duration("delay", 200*time.Millisecond, "step delay when pacing")
	fs.Parse(os.Args[1:])

	a, err := algo.Parse(*algoName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace: %v\n", err)
		os.Exit(1)
	}
	values, err := parseValues(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace: %v\n", err)
		os.Exit(1)
	}

	events := algo.Steps(a, values)
	data := append([]int(nil), values...)
	verifier := step.NewVerifier(len(data))

	var limiter *rate.Limiter
	if *pace {
		limiter = rate.NewLimiter(rate.Every(*delay), 1)
	}

	fmt.Printf("%s over %s: %d events\n", a.Info().Name, formatValues(values), len(events))
	for i, e := range events {
		if limiter != nil {
			if err := limiter.Wait(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "trace: %v\n", err)
				os.Exit(1)
			}
		}
		if err := verifier.Check(e); err != nil {
			fmt.Fprintf(os.Stderr, "trace: event %d: %v\n", i, err)
			os.Exit(1)
		}
		if err := e.Apply(data); err != nil {
			fmt.Fprintf(os.Stderr, "trace: event %d: %v\n", i, err)
			os.Exit(1)
		}
		fmt.Printf("%4d  %-16s %s\n", i, e, formatValues(data))
	}
	fmt.Printf("done: %s\n", formatValues(data))
}
