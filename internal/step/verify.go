package step

import "fmt"

// InvariantError reports a violation of the event model's invariants:
// an out-of-range index, a position finalized twice, or a data-moving
// event touching a frozen position. It always indicates a generator
// bug, never bad user input, and is therefore distinct from the
// recoverable error types the player returns.
type InvariantError struct {
	Event  Event
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Event == (Event{}) && e.Reason != "" {
		return "step invariant violated: " + e.Reason
	}
	return fmt.Sprintf("step invariant violated by %q: %s", e.Event, e.Reason)
}

// Verifier checks a stream of events against the model invariants as
// they are consumed. The player runs every event through a Verifier
// before applying it; tests use it to validate whole sequences.
type Verifier struct {
	size   int
	final  []bool
	finals int
}

// NewVerifier creates a Verifier for arrays of the given size.
func NewVerifier(size int) *Verifier {
	return &Verifier{size: size, final: make([]bool, size)}
}

// Check validates one event in sequence order. A non-nil result is
// always an *InvariantError.
func (v *Verifier) Check(e Event) error {
	if err := v.inRange(e); err != nil {
		return err
	}
	switch e.Kind {
	case KindMarkFinal:
		if v.final[e.I] {
			return &InvariantError{Event: e, Reason: "position already finalized"}
		}
		v.final[e.I] = true
		v.finals++
	case KindSwap:
		if v.final[e.I] || v.final[e.J] {
			return &InvariantError{Event: e, Reason: "swap touches a finalized position"}
		}
	case KindOverwrite:
		if v.final[e.I] {
			return &InvariantError{Event: e, Reason: "overwrite touches a finalized position"}
		}
	}
	return nil
}

func (v *Verifier) inRange(e Event) error {
	if e.I < 0 || e.I >= v.size {
		return &InvariantError{Event: e, Reason: fmt.Sprintf("index %d out of range [0,%d)", e.I, v.size)}
	}
	if e.Kind == KindCompare || e.Kind == KindSwap {
		if e.J < 0 || e.J >= v.size {
			return &InvariantError{Event: e, Reason: fmt.Sprintf("index %d out of range [0,%d)", e.J, v.size)}
		}
	}
	return nil
}

// Finalized reports whether position i has received its MarkFinal.
func (v *Verifier) Finalized(i int) bool {
	return i >= 0 && i < v.size && v.final[i]
}

// Finals returns how many positions have been finalized so far.
func (v *Verifier) Finals() int { return v.finals }

// Complete reports whether every position has been finalized.
func (v *Verifier) Complete() bool { return v.finals == v.size }
