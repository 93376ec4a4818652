package algo

import "github.com/abelbrown/sortvis/internal/step"

// insertionSteps inserts each element into the sorted prefix by
// comparing right to left and shifting with adjacent swaps. No position
// can be frozen while elements to its right may still move past it, so
// all mark-final events are emitted left to right once the last
// insertion pass completes.
func insertionSteps(data []int) []step.Event {
	n := len(data)
	var events []step.Event
	if n == 0 {
		return events
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			events = append(events, step.Compare(j-1, j))
			if data[j-1] <= data[j] {
				break
			}
			data[j-1], data[j] = data[j], data[j-1]
			events = append(events, step.Swap(j-1, j))
		}
	}
	for i := 0; i < n; i++ {
		events = append(events, step.MarkFinal(i))
	}
	return events
}
