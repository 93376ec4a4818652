package algo

import "github.com/abelbrown/sortvis/internal/step"

// quickSteps partitions with the Lomuto scheme around a deterministic
// pivot, always the last element of the current range. Each
// element-vs-pivot test emits a compare; relocations emit swaps, with
// i == j relocations suppressed during the partition scan. A position
// is finalized the moment no further recursive call can include it:
// the pivot right after its placement swap, singleton ranges on entry.
func quickSteps(data []int) []step.Event {
	n := len(data)
	var events []step.Event
	if n == 0 {
		return events
	}

	var sortRange func(low, high int)
	sortRange = func(low, high int) {
		if low > high {
			return
		}
		if low == high {
			events = append(events, step.MarkFinal(low))
			return
		}
		pivot := high
		i := low
		for j := low; j < high; j++ {
			events = append(events, step.Compare(j, pivot))
			if data[j] <= data[pivot] {
				if i != j {
					data[i], data[j] = data[j], data[i]
					events = append(events, step.Swap(i, j))
				}
				i++
			}
		}
		data[i], data[pivot] = data[pivot], data[i]
		events = append(events, step.Swap(i, pivot))
		events = append(events, step.MarkFinal(i))
		sortRange(low, i-1)
		sortRange(i+1, high)
	}
	sortRange(0, n-1)
	return events
}
