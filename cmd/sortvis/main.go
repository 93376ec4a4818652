// Command sortvis is a terminal visualizer for six classical sorting
// algorithms. It animates one step at a time over a small integer
// array, times each run with a pause-aware stopwatch and keeps a table
// of recent round times.
package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/sortvis/internal/config"
	"github.com/abelbrown/sortvis/internal/player"
	"github.com/abelbrown/sortvis/internal/timing"
	"github.com/abelbrown/sortvis/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	collector := timing.NewCollector(cfg.HistoryLimit)
	p := player.New(player.Config{
		Size:  cfg.ArraySize,
		Clock: collector,
	})

	app := ui.NewApp(ui.Config{
		Player:       p,
		Collector:    collector,
		StepDelay:    cfg.StepDelay,
		TimerRefresh: cfg.TimerRefresh,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
