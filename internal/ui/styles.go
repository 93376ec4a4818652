package ui

import "github.com/charmbracelet/lipgloss"

// Bar colors follow the classic visualizer scheme: neutral bars,
// yellow for comparisons, red for swaps and writes, green once sorted.
var (
	colorBar     = lipgloss.Color("68")  // steel blue
	colorCompare = lipgloss.Color("220") // yellow
	colorWrite   = lipgloss.Color("203") // red
	colorSorted  = lipgloss.Color("78")  // green
	colorMuted   = lipgloss.Color("240") // gray
	colorAccent  = lipgloss.Color("212") // pink
)

// BarDefault paints an untouched bar.
var BarDefault = lipgloss.NewStyle().Foreground(colorBar)

// BarCompare paints a bar under comparison.
var BarCompare = lipgloss.NewStyle().Foreground(colorCompare)

// BarWrite paints a bar being swapped or overwritten.
var BarWrite = lipgloss.NewStyle().Foreground(colorWrite)

// BarSorted paints a finalized bar.
var BarSorted = lipgloss.NewStyle().Foreground(colorSorted)

// Title style for the header line.
var Title = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)

// SectionTitle style for panel headings.
var SectionTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

// SelectedOption style for the algorithm under the cursor.
var SelectedOption = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))

// NormalOption style for the remaining algorithms.
var NormalOption = lipgloss.NewStyle().Foreground(colorMuted)

// StatusBar style for the bottom status line.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusKey style for key hints in the status line.
var StatusKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

// ErrorStyle for input and contract errors.
var ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

// MutedText for secondary text (legend, hints, history rows).
var MutedText = lipgloss.NewStyle().Foreground(colorMuted)

// TimerValue style for the stopwatch readout.
var TimerValue = lipgloss.NewStyle().Bold(true)

// Sidebar frames the right-hand panel.
var Sidebar = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)
