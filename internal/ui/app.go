package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/sortvis/internal/algo"
	"github.com/abelbrown/sortvis/internal/player"
	"github.com/abelbrown/sortvis/internal/step"
	"github.com/abelbrown/sortvis/internal/timing"
)

// defaultStepDelay paces the animation when no config is provided.
const defaultStepDelay = 800 * time.Millisecond

// defaultTimerRefresh is the stopwatch display update interval.
const defaultTimerRefresh = 20 * time.Millisecond

// exampleValues seed the input placeholders.
var exampleValues = []string{"8", "12", "88", "75", "106", "42", "7", "19", "33", "58"}

// Config wires the App to the core engine.
type Config struct {
	Player       *player.Player
	Collector    *timing.Collector
	StepDelay    time.Duration
	TimerRefresh time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	player    *player.Player
	collector *timing.Collector

	stepDelay    time.Duration
	timerRefresh time.Duration

	inputs   []textinput.Model
	focus    int
	selector int

	spin  spinner.Model
	meter progress.Model
	bars  *barRow

	highlight highlight
	animating bool
	elapsed   time.Duration
	status    string
	errMsg    string

	// gen invalidates in-flight tick chains across pause/resume/reset.
	gen int

	width  int
	height int
	ready  bool
}

// NewApp creates the root model. Missing config fields get defaults; a
// nil Player is wired to a fresh Collector so the zero config is usable
// in tests.
func NewApp(cfg Config) App {
	if cfg.Collector == nil {
		cfg.Collector = timing.NewCollector(10)
	}
	if cfg.Player == nil {
		cfg.Player = player.New(player.Config{Clock: cfg.Collector})
	}
	if cfg.StepDelay <= 0 {
		cfg.StepDelay = defaultStepDelay
	}
	if cfg.TimerRefresh <= 0 {
		cfg.TimerRefresh = defaultTimerRefresh
	}

	size := cfg.Player.Size()
	inputs := make([]textinput.Model, size)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = exampleValues[i%len(exampleValues)]
		ti.CharLimit = 7
		ti.Width = 5
		ti.Prompt = ""
		ti.Validate = validateInteger
		inputs[i] = ti
	}
	inputs[0].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SectionTitle

	return App{
		player:       cfg.Player,
		collector:    cfg.Collector,
		stepDelay:    cfg.StepDelay,
		timerRefresh: cfg.TimerRefresh,
		inputs:       inputs,
		spin:         sp,
		meter:        progress.New(progress.WithDefaultGradient()),
		bars:         newBarRow(size),
		status:       "enter values, pick an algorithm, press enter",
	}
}

// validateInteger admits only optionally signed decimal digits.
func validateInteger(s string) error {
	for i, r := range s {
		if r == '-' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid character %q", r)
		}
	}
	return nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.spin.Tick)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.meter.Width = min(40, max(20, msg.Width/3))
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case stepTickMsg:
		return a.handleStepTick(msg)

	case timerTickMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		a.elapsed = a.collector.Elapsed()
		if a.player.State() == player.Running {
			return a, a.timerTick()
		}
		return a, nil

	case frameTickMsg:
		if !a.animating {
			return a, nil
		}
		if settled := a.bars.Update(); settled {
			a.animating = false
			return a, nil
		}
		return a, frameTick()
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Start):
		return a.handleStart()

	case key.Matches(msg, keys.PauseResume):
		return a.handlePauseResume()

	case key.Matches(msg, keys.Reset):
		return a.handleReset()

	case key.Matches(msg, keys.NextField):
		return a.focusField(a.focus + 1), nil

	case key.Matches(msg, keys.PrevField):
		return a.focusField(a.focus - 1), nil

	case key.Matches(msg, keys.AlgoUp):
		if a.selector > 0 {
			a.selector--
		}
		return a, nil

	case key.Matches(msg, keys.AlgoDown):
		if a.selector < len(algo.Algorithms)-1 {
			a.selector++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a App) focusField(i int) App {
	n := len(a.inputs)
	a.inputs[a.focus].Blur()
	a.focus = ((i % n) + n) % n
	a.inputs[a.focus].Focus()
	return a
}

func (a App) handleStart() (tea.Model, tea.Cmd) {
	values, err := a.parseInputs()
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	alg := algo.Algorithms[a.selector]
	if err := a.player.Start(values, alg); err != nil {
		a.errMsg = err.Error()
		return a, nil
	}

	a.errMsg = ""
	a.status = fmt.Sprintf("running %s", alg.Info().Name)
	a.highlight = highlight{}
	a.elapsed = 0
	a.bars.SetValues(values)
	a.bars.Snap()
	a.animating = false
	a.gen++
	return a, tea.Batch(a.stepTick(), a.timerTick())
}

func (a App) handlePauseResume() (tea.Model, tea.Cmd) {
	switch a.player.State() {
	case player.Running:
		if err := a.player.Pause(); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.gen++
		a.elapsed = a.collector.Elapsed()
		a.status = "paused"
		return a, nil
	case player.Paused:
		if err := a.player.Resume(); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.gen++
		a.status = fmt.Sprintf("running %s", a.player.Algorithm().Info().Name)
		return a, tea.Batch(a.stepTick(), a.timerTick())
	default:
		// Surface the contract violation instead of silently ignoring.
		a.errMsg = a.player.Pause().Error()
		return a, nil
	}
}

func (a App) handleReset() (tea.Model, tea.Cmd) {
	a.player.Reset()
	a.gen++
	a.highlight = highlight{}
	a.animating = false
	a.elapsed = 0
	a.errMsg = ""
	a.status = "reset"
	a.bars.Clear()
	for i := range a.inputs {
		a.inputs[i].SetValue("")
	}
	return a.focusField(0), nil
}

func (a App) handleStepTick(msg stepTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != a.gen || a.player.State() != player.Running {
		return a, nil
	}

	frame, err := a.player.Tick()
	if err != nil {
		var inv *step.InvariantError
		if errors.As(err, &inv) {
			a.errMsg = "run aborted: " + inv.Error()
		} else {
			a.errMsg = err.Error()
		}
		return a, nil
	}

	if frame.Event.Kind == step.KindMarkFinal {
		a.highlight = highlight{}
	} else {
		a.highlight = highlight{active: true, kind: frame.Event.Kind, i: frame.Event.I, j: frame.Event.J}
	}
	a.bars.SetValues(frame.Data)

	var cmds []tea.Cmd
	if !a.animating {
		a.animating = true
		cmds = append(cmds, frameTick())
	}

	if frame.Final {
		a.elapsed = frame.Elapsed
		info := a.player.Algorithm().Info()
		a.collector.Record(info.Name, a.player.Input(), frame.Elapsed)
		a.status = fmt.Sprintf("%s finished in %s", info.Name, formatElapsed(frame.Elapsed))
	} else {
		cmds = append(cmds, a.stepTick())
	}
	return a, tea.Batch(cmds...)
}

// parseInputs converts the entry fields to integers, reporting the
// first offending field by position.
func (a App) parseInputs() ([]int, error) {
	values := make([]int, 0, len(a.inputs))
	for i, in := range a.inputs {
		raw := strings.TrimSpace(in.Value())
		if raw == "" {
			return nil, fmt.Errorf("field %d is empty: please fill in all %d values", i+1, len(a.inputs))
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not a valid integer", i+1, raw)
		}
		values = append(values, v)
	}
	return values, nil
}

func (a App) stepTick() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.stepDelay, func(time.Time) tea.Msg {
		return stepTickMsg{gen: gen}
	})
}

func (a App) timerTick() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.timerRefresh, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg {
		return frameTickMsg{}
	})
}

// formatElapsed renders a duration the way the stopwatch shows it.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%d ms (%.2f s)", d.Milliseconds(), d.Seconds())
}
