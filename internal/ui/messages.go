// Package ui provides the Bubble Tea front end for the sorting
// visualizer. It is the external collaborator of the core engine: it
// paces the player with tick messages, maps step events to bar
// highlights, and renders the stopwatch, info panel and run history.
package ui

// stepTickMsg paces the player: one message, one player tick. The
// generation guard drops messages from a chain that was superseded by a
// pause, resume or reset, so ticks are never applied twice.
type stepTickMsg struct {
	gen int
}

// timerTickMsg refreshes the live stopwatch display while running.
type timerTickMsg struct {
	gen int
}

// frameTickMsg advances the bar-height spring animation.
type frameTickMsg struct{}
