// Package algo decomposes six classical comparison sorts into finite,
// deterministic step-event sequences. Generators are pure: they never
// mutate the caller's slice and never fail for any integer input,
// including empty, single-element, sorted, reversed and all-equal arrays.
package algo

import (
	"fmt"

	"github.com/abelbrown/sortvis/internal/step"
)

// Algorithm selects one of the six supported sorts. The set is closed;
// dispatch is a switch over the fixed variants, not open registration.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
	Heap
)

// Algorithms lists every variant in display order.
var Algorithms = []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap}

// String returns the selector key, e.g. "bubble".
func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Selection:
		return "selection"
	case Insertion:
		return "insertion"
	case Merge:
		return "merge"
	case Quick:
		return "quick"
	case Heap:
		return "heap"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Parse maps a selector key back to its Algorithm.
func Parse(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// Steps generates the full event sequence for sorting values with the
// given algorithm. The input is copied; two calls with the same
// arguments produce identical sequences.
func Steps(a Algorithm, values []int) []step.Event {
	data := make([]int, len(values))
	copy(data, values)

	switch a {
	case Bubble:
		return bubbleSteps(data)
	case Selection:
		return selectionSteps(data)
	case Insertion:
		return insertionSteps(data)
	case Merge:
		return mergeSteps(data)
	case Quick:
		return quickSteps(data)
	case Heap:
		return heapSteps(data)
	}
	return nil
}
