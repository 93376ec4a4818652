// Command steps is the debug CLI for the sorting step engine.
//
// Usage:
//
//	steps                   Show help
//	steps trace             Print the event trace for one run
//	steps verify            Replay all algorithms and check invariants
//	steps count             Event statistics per algorithm
package main

import (
	"fmt"
	"os"
)

const usage = `steps — sorting step engine debug CLI

Usage:
  steps <command> [flags]

Commands:
  trace       Print the event trace for one algorithm and input
  verify      Replay every algorithm over sample inputs and check invariants
  count       Print per-kind event counts per algorithm

Run 'steps <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "trace":
		runTrace()
	case "verify":
		runVerify()
	case "count":
		runCount()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "steps: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
