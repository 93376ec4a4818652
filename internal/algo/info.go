package algo

// Info carries the sidebar metadata for an algorithm: a display name, a
// one-paragraph description and the trade-offs shown to the learner.
type Info struct {
	Name        string
	Description string
	Strengths   []string
	Weaknesses  []string
}

// Info returns the display metadata for the algorithm.
func (a Algorithm) Info() Info {
	switch a {
	case Bubble:
		return Info{
			Name:        "Bubble Sort",
			Description: "Compares neighboring values and swaps them when needed; larger elements \"bubble\" toward the end.",
			Strengths: []string{
				"Very easy to understand and implement",
				"Every pass visibly fixes one more position",
			},
			Weaknesses: []string{
				"Very inefficient on larger data sets (O(n²))",
				"Many unnecessary comparisons and swaps",
			},
		}
	case Selection:
		return Info{
			Name:        "Selection Sort",
			Description: "Each pass finds the smallest remaining element and places it at the front of the unsorted suffix.",
			Strengths: []string{
				"Minimal memory use and a deterministic number of swaps",
				"Easy to follow step by step",
			},
			Weaknesses: []string{
				"Needs many comparisons (O(n²))",
				"Does not benefit from partially sorted input",
			},
		}
	case Insertion:
		return Info{
			Name:        "Insertion Sort",
			Description: "Inserts each new element at the right place within the already sorted left part.",
			Strengths: []string{
				"Very efficient for small or nearly sorted lists",
				"Stable, with no extra data structures",
			},
			Weaknesses: []string{
				"Quadratic runtime in the worst case",
				"Many shifts on heavily unsorted input",
			},
		}
	case Merge:
		return Info{
			Name:        "Merge Sort",
			Description: "Splits the list recursively, sorts the halves and merges them back in order.",
			Strengths: []string{
				"O(n log n) even in the worst case",
				"Stable, with a clear divide-and-conquer structure",
			},
			Weaknesses: []string{
				"Needs auxiliary buffers for merging",
				"More involved than the simple quadratic sorts",
			},
		}
	case Quick:
		return Info{
			Name:        "Quick Sort",
			Description: "Picks a pivot, partitions the list into smaller and larger values and sorts both sides recursively.",
			Strengths: []string{
				"Very fast in practice thanks to in-place partitioning",
				"Good cache locality, little auxiliary memory",
			},
			Weaknesses: []string{
				"O(n²) worst case on unlucky pivots",
				"Not stable without extra work",
			},
		}
	case Heap:
		return Info{
			Name:        "Heap Sort",
			Description: "Organizes the values as a max-heap and repeatedly moves the largest element to the end.",
			Strengths: []string{
				"Robust O(n log n) independent of the input",
				"Sorts in place with constant extra memory",
			},
			Weaknesses: []string{
				"Starts from a less intuitive data structure",
				"Not stable and harder to follow visually",
			},
		}
	}
	return Info{Name: a.String()}
}
