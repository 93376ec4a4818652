package algo

import "github.com/abelbrown/sortvis/internal/step"

// selectionSteps scans the unsorted suffix once per pass, comparing
// each candidate against the current minimum, then places the minimum
// at the pass's leading position. The placement swap is always emitted,
// with i == j when the minimum is already in place, so every pass has
// exactly one swap event.
func selectionSteps(data []int) []step.Event {
	n := len(data)
	var events []step.Event
	if n == 0 {
		return events
	}
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			events = append(events, step.Compare(min, j))
			if data[j] < data[min] {
				min = j
			}
		}
		data[i], data[min] = data[min], data[i]
		events = append(events, step.Swap(i, min))
		events = append(events, step.MarkFinal(i))
	}
	return append(events, step.MarkFinal(n-1))
}
