package ui

import (
	"strings"
	"testing"

	"github.com/abelbrown/sortvis/internal/step"
)

func TestBarRowTargetsNormalized(t *testing.T) {
	b := newBarRow(5)
	b.SetValues([]int{0, 100})

	if b.targets[0] != 1 {
		t.Errorf("smallest value target = %v, want 1", b.targets[0])
	}
	if b.targets[1] != chartRows {
		t.Errorf("largest value target = %v, want %d", b.targets[1], chartRows)
	}
}

func TestBarRowAllEqualValues(t *testing.T) {
	b := newBarRow(3)
	b.SetValues([]int{7, 7, 7})
	for i, target := range b.targets {
		if target != chartRows {
			t.Errorf("bar %d target = %v, want full height for equal values", i, target)
		}
	}
}

func TestBarRowSettles(t *testing.T) {
	b := newBarRow(2)
	b.SetValues([]int{1, 10})

	settled := false
	for i := 0; i < 600; i++ {
		if settled = b.Update(); settled {
			break
		}
	}
	if !settled {
		t.Fatal("springs never settled")
	}
	for i := range b.heights {
		if b.heights[i] != b.targets[i] {
			t.Errorf("bar %d height %v != target %v after settling", i, b.heights[i], b.targets[i])
		}
	}
}

func TestBarRowViewUsesHighlightColors(t *testing.T) {
	b := newBarRow(2)
	b.SetValues([]int{1, 2})
	b.Snap()

	h := highlight{active: true, kind: step.KindCompare, i: 0, j: 1}
	if got := b.styleFor(0, h, nil); got.GetForeground() != BarCompare.GetForeground() {
		t.Error("compared bar should use the compare style")
	}
	finalized := func(i int) bool { return i == 1 }
	if got := b.styleFor(1, h, finalized); got.GetForeground() != BarSorted.GetForeground() {
		t.Error("finalized bar must stay sorted-colored even under highlight")
	}
}

func TestBarRowEmptyView(t *testing.T) {
	b := newBarRow(5)
	view := b.View(highlight{}, nil)
	if !strings.Contains(view, "enter values") {
		t.Errorf("empty chart should show the hint, got %q", view)
	}
}

func TestCenter(t *testing.T) {
	if got := center("7", 5); got != "  7  " {
		t.Errorf("center = %q", got)
	}
	if got := center("12345678", 5); got != "12345" {
		t.Errorf("overflow center = %q", got)
	}
}
