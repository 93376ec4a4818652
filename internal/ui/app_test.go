package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/sortvis/internal/player"
)

func newTestApp() App {
	return NewApp(Config{})
}

// fill sets the entry fields directly, as if the user had typed them.
func fill(a *App, values ...string) {
	for i, v := range values {
		a.inputs[i].SetValue(v)
	}
}

// press runs one key message through the model.
func press(a App, msg tea.KeyMsg) (App, tea.Cmd) {
	model, cmd := a.Update(msg)
	return model.(App), cmd
}

// tickThrough drives the player to completion via step tick messages.
func tickThrough(t *testing.T, a App) App {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if a.player.State() == player.Completed {
			return a
		}
		model, _ := a.Update(stepTickMsg{gen: a.gen})
		a = model.(App)
	}
	t.Fatal("run did not complete within 1000 ticks")
	return a
}

func TestAppInit(t *testing.T) {
	app := newTestApp()
	if cmd := app.Init(); cmd == nil {
		t.Error("Init should return a command")
	}
}

func TestStartWithEmptyFieldsShowsError(t *testing.T) {
	app := newTestApp()

	updated, _ := press(app, tea.KeyMsg{Type: tea.KeyEnter})
	if updated.errMsg == "" {
		t.Error("expected an input error for empty fields")
	}
	if updated.player.State() != player.Idle {
		t.Errorf("player must stay idle, got %s", updated.player.State())
	}
}

func TestStartWithInvalidNumberShowsError(t *testing.T) {
	app := newTestApp()
	fill(&app, "5", "3", "-", "1", "2")

	updated, _ := press(app, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(updated.errMsg, "field 3") {
		t.Errorf("error should name the offending field, got %q", updated.errMsg)
	}
}

func TestStartRunsPlayer(t *testing.T) {
	app := newTestApp()
	fill(&app, "5", "3", "4", "1", "2")

	updated, cmd := press(app, tea.KeyMsg{Type: tea.KeyEnter})
	if updated.player.State() != player.Running {
		t.Fatalf("expected running, got %s", updated.player.State())
	}
	if cmd == nil {
		t.Error("start should schedule tick commands")
	}
	if updated.errMsg != "" {
		t.Errorf("unexpected error: %q", updated.errMsg)
	}
}

func TestStepTicksDriveRunToCompletion(t *testing.T) {
	app := newTestApp()
	fill(&app, "5", "3", "4", "1", "2")
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEnter})

	app = tickThrough(t, app)

	if app.player.State() != player.Completed {
		t.Fatalf("expected completed, got %s", app.player.State())
	}
	history := app.collector.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].Algorithm != "Bubble Sort" {
		t.Errorf("history algorithm = %q, want Bubble Sort", history[0].Algorithm)
	}
}

func TestStaleStepTickIsIgnored(t *testing.T) {
	app := newTestApp()
	fill(&app, "5", "3", "4", "1", "2")
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEnter})

	model, _ := app.Update(stepTickMsg{gen: app.gen - 1})
	updated := model.(App)
	if updated.player.Finals() != 0 || updated.highlight.active {
		t.Error("a stale tick must not advance the run")
	}
}

func TestPauseResumeToggle(t *testing.T) {
	app := newTestApp()
	fill(&app, "5", "3", "4", "1", "2")
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEnter})

	app, _ = press(app, tea.KeyMsg{Type: tea.KeySpace})
	if app.player.State() != player.Paused {
		t.Fatalf("expected paused, got %s", app.player.State())
	}

	app, cmd := press(app, tea.KeyMsg{Type: tea.KeySpace})
	if app.player.State() != player.Running {
		t.Fatalf("expected running after resume, got %s", app.player.State())
	}
	if cmd == nil {
		t.Error("resume should reschedule tick commands")
	}
}

func TestPauseFromIdleReportsContractViolation(t *testing.T) {
	app := newTestApp()

	updated, _ := press(app, tea.KeyMsg{Type: tea.KeySpace})
	if !strings.Contains(updated.errMsg, "cannot pause while idle") {
		t.Errorf("expected contract violation message, got %q", updated.errMsg)
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	app := newTestApp()
	fill(&app, "5", "3", "4", "1", "2")
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEnter})

	model, _ := app.Update(stepTickMsg{gen: app.gen})
	app = model.(App)

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.player.State() != player.Idle {
		t.Fatalf("expected idle after reset, got %s", app.player.State())
	}
	for i, in := range app.inputs {
		if in.Value() != "" {
			t.Errorf("field %d not cleared: %q", i, in.Value())
		}
	}
}

func TestResetKeepsHistory(t *testing.T) {
	app := newTestApp()
	fill(&app, "5", "3", "4", "1", "2")
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEnter})
	app = tickThrough(t, app)

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if len(app.collector.History()) != 1 {
		t.Error("reset must not discard the run history")
	}
}

func TestAlgorithmSelection(t *testing.T) {
	app := newTestApp()

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyDown})
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyDown})
	if app.selector != 2 {
		t.Errorf("selector = %d, want 2", app.selector)
	}

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyUp})
	if app.selector != 1 {
		t.Errorf("selector = %d, want 1", app.selector)
	}

	// Bounds: cannot move above the first entry.
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyUp})
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyUp})
	if app.selector != 0 {
		t.Errorf("selector = %d, want 0", app.selector)
	}
}

func TestFieldNavigationWraps(t *testing.T) {
	app := newTestApp()

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyTab})
	if app.focus != 1 {
		t.Errorf("focus = %d, want 1", app.focus)
	}

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyShiftTab})
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyShiftTab})
	if app.focus != len(app.inputs)-1 {
		t.Errorf("focus = %d, want wrap to %d", app.focus, len(app.inputs)-1)
	}
}

func TestTypingGoesToFocusedField(t *testing.T) {
	app := newTestApp()

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	app, _ = press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if got := app.inputs[0].Value(); got != "42" {
		t.Errorf("field 0 = %q, want \"42\"", got)
	}
}

func TestInputRejectsNonDigits(t *testing.T) {
	app := newTestApp()

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if got := app.inputs[0].Value(); got != "" {
		t.Errorf("field 0 = %q, want empty", got)
	}
}

func TestViewRendersAfterResize(t *testing.T) {
	app := newTestApp()
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(App)

	view := app.View()
	if !strings.Contains(view, "sortvis") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "Bubble Sort") {
		t.Error("view missing algorithm selector")
	}
}
