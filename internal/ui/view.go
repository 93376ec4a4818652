package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/sortvis/internal/algo"
	"github.com/abelbrown/sortvis/internal/player"
)

// historyRows bounds how many run-history lines the sidebar shows.
const historyRows = 10

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "loading..."
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		a.viewInputs(),
		"",
		a.viewSelector(),
		"",
		a.bars.View(a.highlight, a.player.Finalized),
		"",
		a.viewLegend(),
		a.viewProgress(),
	)

	right := Sidebar.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.viewTimer(),
		"",
		a.viewInfo(),
		"",
		a.viewHistory(),
	))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return lipgloss.JoinVertical(lipgloss.Left,
		Title.Render("sortvis"),
		body,
		a.viewStatus(),
	)
}

func (a App) viewInputs() string {
	fields := make([]string, len(a.inputs))
	for i, in := range a.inputs {
		fields[i] = in.View()
	}
	label := MutedText.Render(fmt.Sprintf("enter %d integers:", len(a.inputs)))
	return label + "\n" + strings.Join(fields, " │ ")
}

func (a App) viewSelector() string {
	var b strings.Builder
	b.WriteString(SectionTitle.Render("algorithm"))
	b.WriteString("\n")
	for i, alg := range algo.Algorithms {
		marker := "( ) "
		style := NormalOption
		if i == a.selector {
			marker = "(•) "
			style = SelectedOption
		}
		b.WriteString(style.Render(marker + alg.Info().Name))
		if i < len(algo.Algorithms)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) viewLegend() string {
	return strings.Join([]string{
		BarDefault.Render("■") + MutedText.Render(" unsorted"),
		BarCompare.Render("■") + MutedText.Render(" compare"),
		BarWrite.Render("■") + MutedText.Render(" swap/write"),
		BarSorted.Render("■") + MutedText.Render(" sorted"),
	}, "   ")
}

func (a App) viewProgress() string {
	if a.player.State() == player.Idle {
		return ""
	}
	finals := a.player.Finals()
	size := a.player.Size()
	pct := float64(finals) / float64(size)
	return a.meter.ViewAs(pct) + MutedText.Render(fmt.Sprintf("  %d/%d sorted", finals, size))
}

func (a App) viewTimer() string {
	var b strings.Builder
	b.WriteString(SectionTitle.Render("stopwatch"))
	b.WriteString("\n")
	b.WriteString(TimerValue.Render(formatElapsed(a.elapsed)))
	if a.player.State() == player.Running {
		b.WriteString(" " + a.spin.View())
	}
	return b.String()
}

func (a App) viewInfo() string {
	info := algo.Algorithms[a.selector].Info()
	wrap := lipgloss.NewStyle().Width(34)

	var b strings.Builder
	b.WriteString(SectionTitle.Render(info.Name))
	b.WriteString("\n")
	b.WriteString(wrap.Render(info.Description))
	b.WriteString("\n")
	for _, s := range info.Strengths {
		b.WriteString(wrap.Render(BarSorted.Render("+ ") + s))
		b.WriteString("\n")
	}
	for _, w := range info.Weaknesses {
		b.WriteString(wrap.Render(BarWrite.Render("- ") + w))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) viewHistory() string {
	var b strings.Builder
	b.WriteString(SectionTitle.Render("round times"))
	entries := a.collector.History()
	if len(entries) == 0 {
		b.WriteString("\n")
		b.WriteString(MutedText.Render("no runs yet"))
		return b.String()
	}
	if len(entries) > historyRows {
		entries = entries[len(entries)-historyRows:]
	}
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("round %-3d %-14s %6.2f s", e.Round, e.Algorithm, e.Elapsed.Seconds()))
	}
	return b.String()
}

func (a App) viewStatus() string {
	msg := a.status
	if a.errMsg != "" {
		msg = ErrorStyle.Render(a.errMsg)
	}
	hints := strings.Join([]string{
		StatusKey.Render("enter") + " start",
		StatusKey.Render("space") + " pause/resume",
		StatusKey.Render("esc") + " reset",
		StatusKey.Render("↑/↓") + " algorithm",
		StatusKey.Render("tab") + " field",
		StatusKey.Render("ctrl+c") + " quit",
	}, "  ")
	return StatusBar.Render(msg + "  " + MutedText.Render("│") + "  " + hints)
}
