package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/sortvis/internal/step"
)

const (
	// chartRows is the height of the tallest bar in terminal rows.
	chartRows = 10
	// barWidth is the printed width of one bar.
	barWidth = 5
	// barGap separates adjacent bars.
	barGap = 2
	// settleEpsilon is the spring distance below which animation stops.
	settleEpsilon = 0.01
)

// highlight is the transient presentation state derived from the most
// recent step event. Compare highlights fade on the next event;
// finalized positions stay green through the player's Finalized set.
type highlight struct {
	active bool
	kind   step.Kind
	i, j   int
}

func (h highlight) covers(idx int) bool {
	if !h.active {
		return false
	}
	if h.i == idx {
		return true
	}
	return (h.kind == step.KindCompare || h.kind == step.KindSwap) && h.j == idx
}

// barRow renders the array as a column chart. Heights are animated with
// a spring per bar so swapped values glide instead of jumping, the same
// spring setup the terminal uses for smooth scrolling elsewhere.
type barRow struct {
	spring  harmonica.Spring
	values  []int
	heights []float64
	vels    []float64
	targets []float64
}

func newBarRow(n int) *barRow {
	return &barRow{
		spring:  harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.9),
		values:  make([]int, 0, n),
		heights: make([]float64, 0, n),
		vels:    make([]float64, 0, n),
		targets: make([]float64, 0, n),
	}
}

// SetValues replaces the displayed values and retargets the springs.
// Heights are normalized so the smallest value still shows a stub and
// the largest fills the chart.
func (b *barRow) SetValues(values []int) {
	if len(values) != len(b.values) {
		b.values = append([]int(nil), values...)
		b.heights = make([]float64, len(values))
		b.vels = make([]float64, len(values))
		b.targets = make([]float64, len(values))
	} else {
		copy(b.values, values)
	}

	lo, hi := minMax(values)
	span := hi - lo
	for i, v := range values {
		norm := 1.0
		if span > 0 {
			norm = float64(v-lo) / float64(span)
		}
		b.targets[i] = 1 + norm*(chartRows-1)
	}
}

// Snap moves every bar to its target immediately, skipping animation.
func (b *barRow) Snap() {
	copy(b.heights, b.targets)
	for i := range b.vels {
		b.vels[i] = 0
	}
}

// Clear empties the chart.
func (b *barRow) Clear() {
	b.values = b.values[:0]
	b.heights = b.heights[:0]
	b.vels = b.vels[:0]
	b.targets = b.targets[:0]
}

// Update advances the springs one frame and reports whether every bar
// has settled on its target.
func (b *barRow) Update() bool {
	settled := true
	for i := range b.heights {
		b.heights[i], b.vels[i] = b.spring.Update(b.heights[i], b.vels[i], b.targets[i])
		if math.Abs(b.heights[i]-b.targets[i]) > settleEpsilon || math.Abs(b.vels[i]) > settleEpsilon {
			settled = false
		}
	}
	if settled {
		b.Snap()
	}
	return settled
}

// View renders the chart with the given highlight and finalized set.
func (b *barRow) View(h highlight, finalized func(int) bool) string {
	if len(b.values) == 0 {
		return MutedText.Render("enter values and press enter to start")
	}

	styles := make([]lipgloss.Style, len(b.values))
	for i := range b.values {
		styles[i] = b.styleFor(i, h, finalized)
	}

	gap := strings.Repeat(" ", barGap)
	var out strings.Builder

	// Value labels above the bars.
	for i, v := range b.values {
		if i > 0 {
			out.WriteString(gap)
		}
		out.WriteString(styles[i].Render(center(fmt.Sprintf("%d", v), barWidth)))
	}
	out.WriteString("\n")

	full := strings.Repeat("█", barWidth)
	empty := strings.Repeat(" ", barWidth)
	for row := chartRows; row >= 1; row-- {
		for i := range b.values {
			if i > 0 {
				out.WriteString(gap)
			}
			if int(math.Round(b.heights[i])) >= row {
				out.WriteString(styles[i].Render(full))
			} else {
				out.WriteString(empty)
			}
		}
		out.WriteString("\n")
	}

	// Baseline with position indices.
	for i := range b.values {
		if i > 0 {
			out.WriteString(gap)
		}
		out.WriteString(MutedText.Render(center(fmt.Sprintf("%d", i), barWidth)))
	}
	return out.String()
}

func (b *barRow) styleFor(idx int, h highlight, finalized func(int) bool) lipgloss.Style {
	if finalized != nil && finalized(idx) {
		return BarSorted
	}
	if h.covers(idx) {
		switch h.kind {
		case step.KindCompare:
			return BarCompare
		case step.KindSwap, step.KindOverwrite:
			return BarWrite
		}
	}
	return BarDefault
}

func minMax(values []int) (int, int) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
