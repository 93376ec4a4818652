package algo

import "github.com/abelbrown/sortvis/internal/step"

// mergeSteps splits recursively with no events at split time; events
// occur only while merging. Each head-to-head comparison emits a
// compare between the heads' positions, each placement emits an
// overwrite. Only the root merge finalizes positions: results of inner
// merges are still subject to relocation by outer ones.
func mergeSteps(data []int) []step.Event {
	n := len(data)
	var events []step.Event
	if n == 0 {
		return events
	}
	if n == 1 {
		return append(events, step.MarkFinal(0))
	}

	merge := func(left, mid, right int, root bool) {
		leftRun := append([]int(nil), data[left:mid+1]...)
		rightRun := append([]int(nil), data[mid+1:right+1]...)

		k := left
		place := func(v int) {
			data[k] = v
			events = append(events, step.Overwrite(k, v))
			if root {
				events = append(events, step.MarkFinal(k))
			}
			k++
		}

		i, j := 0, 0
		for i < len(leftRun) && j < len(rightRun) {
			events = append(events, step.Compare(left+i, mid+1+j))
			if leftRun[i] <= rightRun[j] {
				place(leftRun[i])
				i++
			} else {
				place(rightRun[j])
				j++
			}
		}
		for ; i < len(leftRun); i++ {
			place(leftRun[i])
		}
		for ; j < len(rightRun); j++ {
			place(rightRun[j])
		}
	}

	var split func(left, right, depth int)
	split = func(left, right, depth int) {
		if left >= right {
			return
		}
		mid := (left + right) / 2
		split(left, mid, depth+1)
		split(mid+1, right, depth+1)
		merge(left, mid, right, depth == 0)
	}
	split(0, n-1, 0)
	return events
}
