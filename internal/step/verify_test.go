package step

import (
	"errors"
	"testing"
)

func checkInvariant(t *testing.T, err error) *InvariantError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an invariant error")
	}
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected *InvariantError, got %T", err)
	}
	return inv
}

func TestVerifierAcceptsValidSequence(t *testing.T) {
	v := NewVerifier(2)
	for _, e := range []Event{Compare(0, 1), Swap(0, 1), MarkFinal(1), MarkFinal(0)} {
		if err := v.Check(e); err != nil {
			t.Fatalf("unexpected error for %q: %v", e, err)
		}
	}
	if !v.Complete() {
		t.Error("expected verifier to be complete")
	}
	if v.Finals() != 2 {
		t.Errorf("expected 2 finals, got %d", v.Finals())
	}
}

func TestVerifierRejectsDoubleFinal(t *testing.T) {
	v := NewVerifier(3)
	if err := v.Check(MarkFinal(1)); err != nil {
		t.Fatalf("first final failed: %v", err)
	}
	checkInvariant(t, v.Check(MarkFinal(1)))
}

func TestVerifierRejectsFrozenSwap(t *testing.T) {
	v := NewVerifier(3)
	if err := v.Check(MarkFinal(2)); err != nil {
		t.Fatalf("final failed: %v", err)
	}
	checkInvariant(t, v.Check(Swap(0, 2)))
	checkInvariant(t, v.Check(Swap(2, 0)))
}

func TestVerifierRejectsFrozenOverwrite(t *testing.T) {
	v := NewVerifier(3)
	if err := v.Check(MarkFinal(0)); err != nil {
		t.Fatalf("final failed: %v", err)
	}
	checkInvariant(t, v.Check(Overwrite(0, 7)))
}

func TestVerifierAllowsCompareOnFrozen(t *testing.T) {
	v := NewVerifier(3)
	if err := v.Check(MarkFinal(0)); err != nil {
		t.Fatalf("final failed: %v", err)
	}
	if err := v.Check(Compare(0, 1)); err != nil {
		t.Errorf("compare against a frozen position must be legal: %v", err)
	}
}

func TestVerifierRejectsOutOfRange(t *testing.T) {
	v := NewVerifier(3)
	checkInvariant(t, v.Check(Compare(0, 3)))
	checkInvariant(t, v.Check(MarkFinal(3)))
	checkInvariant(t, v.Check(Swap(-1, 0)))
}

func TestVerifierFinalized(t *testing.T) {
	v := NewVerifier(3)
	if v.Finalized(1) {
		t.Error("nothing should be finalized yet")
	}
	if err := v.Check(MarkFinal(1)); err != nil {
		t.Fatalf("final failed: %v", err)
	}
	if !v.Finalized(1) {
		t.Error("position 1 should be finalized")
	}
	if v.Finalized(5) || v.Finalized(-1) {
		t.Error("out-of-range positions must never read as finalized")
	}
}
