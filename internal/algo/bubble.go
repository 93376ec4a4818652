package algo

import "github.com/abelbrown/sortvis/internal/step"

// bubbleSteps runs successive passes over the shrinking unsorted
// prefix. Each adjacent pair emits one compare, then a swap iff out of
// order. The last position of each pass is final afterwards; the final
// pass leaves position 0 final too. There is no early exit on a
// swap-free pass, so the pass structure is identical for every input of
// the same length.
func bubbleSteps(data []int) []step.Event {
	n := len(data)
	var events []step.Event
	if n == 0 {
		return events
	}
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			events = append(events, step.Compare(j, j+1))
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				events = append(events, step.Swap(j, j+1))
			}
		}
		events = append(events, step.MarkFinal(n-i-1))
	}
	return append(events, step.MarkFinal(0))
}
