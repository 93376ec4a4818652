package algo

import "github.com/abelbrown/sortvis/internal/step"

// heapSteps builds a max-heap with sift-down passes (compares and swaps
// only), then repeatedly swaps the root with the last unsorted position,
// finalizing that position immediately after the swap before
// re-heapifying the reduced heap. Position 0 is finalized last.
func heapSteps(data []int) []step.Event {
	n := len(data)
	var events []step.Event
	if n == 0 {
		return events
	}

	sift := func(size, root int) {
		for {
			largest := root
			left, right := 2*root+1, 2*root+2
			if left < size {
				events = append(events, step.Compare(root, left))
				if data[left] > data[largest] {
					largest = left
				}
			}
			if right < size {
				events = append(events, step.Compare(largest, right))
				if data[right] > data[largest] {
					largest = right
				}
			}
			if largest == root {
				return
			}
			data[root], data[largest] = data[largest], data[root]
			events = append(events, step.Swap(root, largest))
			root = largest
		}
	}

	for i := n/2 - 1; i >= 0; i-- {
		sift(n, i)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		events = append(events, step.Swap(0, end))
		events = append(events, step.MarkFinal(end))
		sift(end, 0)
	}
	return append(events, step.MarkFinal(0))
}
