// Package step defines the atomic event vocabulary that describes a
// sorting run. Every algorithm is decomposed into a finite sequence of
// these events; replaying the sequence against the original array
// reproduces the sort exactly.
package step

import "fmt"

// Kind identifies the type of a step event. The set is closed: renderers
// may map kinds to presentation (highlights, colors) however they like,
// but no new kinds exist.
type Kind int

const (
	// KindCompare reports that two positions are being examined.
	// It never mutates the array.
	KindCompare Kind = iota
	// KindSwap exchanges the values at two positions.
	KindSwap
	// KindOverwrite writes a value (taken from an auxiliary buffer
	// during merging or heap extraction) into a single position.
	KindOverwrite
	// KindMarkFinal declares that a position holds its final sorted
	// value. It is emitted exactly once per position and never revoked.
	KindMarkFinal
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCompare:
		return "compare"
	case KindSwap:
		return "swap"
	case KindOverwrite:
		return "overwrite"
	case KindMarkFinal:
		return "final"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is one atomic, self-describing action of a sorting run.
// The fields used depend on Kind:
//
//	Compare:   I, J
//	Swap:      I, J (I == J is a realized no-op swap)
//	Overwrite: I, Value
//	MarkFinal: I
type Event struct {
	Kind  Kind
	I     int
	J     int
	Value int
}

// Compare builds a compare event for positions i and j.
func Compare(i, j int) Event { return Event{Kind: KindCompare, I: i, J: j} }

// Swap builds a swap event for positions i and j.
func Swap(i, j int) Event { return Event{Kind: KindSwap, I: i, J: j} }

// Overwrite builds an overwrite event placing value at position i.
func Overwrite(i, value int) Event { return Event{Kind: KindOverwrite, I: i, Value: value} }

// MarkFinal builds a mark-final event for position i.
func MarkFinal(i int) Event { return Event{Kind: KindMarkFinal, I: i} }

// Mutates reports whether applying the event changes the array.
func (e Event) Mutates() bool {
	return e.Kind == KindSwap || e.Kind == KindOverwrite
}

// String renders the event in a compact trace form.
func (e Event) String() string {
	switch e.Kind {
	case KindCompare, KindSwap:
		return fmt.Sprintf("%s %d %d", e.Kind, e.I, e.J)
	case KindOverwrite:
		return fmt.Sprintf("%s %d = %d", e.Kind, e.I, e.Value)
	case KindMarkFinal:
		return fmt.Sprintf("%s %d", e.Kind, e.I)
	}
	return e.Kind.String()
}

// Apply executes the event's effect against data. Compare and MarkFinal
// leave data untouched. An index outside [0, len(data)) is a generator
// bug and returns an *InvariantError.
func (e Event) Apply(data []int) error {
	n := len(data)
	switch e.Kind {
	case KindCompare, KindSwap:
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return &InvariantError{Event: e, Reason: fmt.Sprintf("index out of range [0,%d)", n)}
		}
		if e.Kind == KindSwap {
			data[e.I], data[e.J] = data[e.J], data[e.I]
		}
	case KindOverwrite, KindMarkFinal:
		if e.I < 0 || e.I >= n {
			return &InvariantError{Event: e, Reason: fmt.Sprintf("index out of range [0,%d)", n)}
		}
		if e.Kind == KindOverwrite {
			data[e.I] = e.Value
		}
	default:
		return &InvariantError{Event: e, Reason: "unknown event kind"}
	}
	return nil
}

// Replay verifies and applies every event in order against a copy of
// values and returns the resulting array. It is the reference semantics
// for the whole event model: a correct generator's sequence replays to a
// non-decreasing array with every position finalized.
func Replay(events []Event, values []int) ([]int, error) {
	data := make([]int, len(values))
	copy(data, values)
	v := NewVerifier(len(data))
	for _, e := range events {
		if err := v.Check(e); err != nil {
			return nil, err
		}
		if err := e.Apply(data); err != nil {
			return nil, err
		}
	}
	if !v.Complete() {
		return nil, &InvariantError{Reason: fmt.Sprintf("sequence ended with %d of %d positions finalized", v.Finals(), len(data))}
	}
	return data, nil
}
