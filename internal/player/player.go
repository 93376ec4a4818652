// Package player drives a generated event sequence against a mutable
// working array under external pacing. It is a cooperative scheduler:
// the caller (normally the TUI's tick loop) calls Tick once per step,
// and every state transition is an explicit method with an explicit
// error when the transition is not allowed from the current state.
package player

import (
	"fmt"
	"time"

	"github.com/abelbrown/sortvis/internal/algo"
	"github.com/abelbrown/sortvis/internal/step"
)

// State is the player's lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Clock receives the player's lifecycle edges. timing.Collector
// implements it; tests substitute fakes.
type Clock interface {
	Start()
	Pause()
	Resume()
	Stop() time.Duration
	Reset()
}

// nopClock is used when no clock is configured.
type nopClock struct{}

func (nopClock) Start()              {}
func (nopClock) Pause()              {}
func (nopClock) Resume()             {}
func (nopClock) Stop() time.Duration { return 0 }
func (nopClock) Reset()              {}

// InputError reports a violation of the input contract: the array
// reaching the core did not have the configured length. It is returned
// before any run session is created; no state changes.
type InputError struct {
	Got  int
	Want int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input must contain exactly %d values, got %d", e.Want, e.Got)
}

// TransitionError reports a command that is not valid in the player's
// current state, e.g. Start while Running or Resume while Idle. The
// command is a no-op; state is unchanged.
type TransitionError struct {
	Op    string
	State State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.State)
}

// Frame is what the renderer observes per tick: the event that was just
// applied and a snapshot of the working array after application. Final
// is set on the tick that finalizes the last position; Elapsed then
// holds the run duration taken at that exact edge.
type Frame struct {
	Event   step.Event
	Data    []int
	Final   bool
	Elapsed time.Duration
}

// Config wires a Player. Zero values get defaults: Size 5, a no-op
// clock, the package algo generator.
type Config struct {
	// Size is the fixed array length a run must have.
	Size int
	// Clock observes Start/Pause/Resume/Stop/Reset edges.
	Clock Clock
	// OnStep, if set, is called with every frame in generation order.
	OnStep func(Frame)
	// Generate produces the event sequence for a run. Overridable for
	// testing the invariant-violation path with a broken generator.
	Generate func(algo.Algorithm, []int) []step.Event
}

// Player is the step-player state machine. Exactly one run session is
// active at a time; it is not safe for concurrent use, matching the
// single-threaded cooperative model it is driven under.
type Player struct {
	size     int
	clock    Clock
	onStep   func(Frame)
	generate func(algo.Algorithm, []int) []step.Event

	state    State
	alg      algo.Algorithm
	input    []int
	working  []int
	stream   *step.Stream
	verifier *step.Verifier
}

// New creates a Player from cfg.
func New(cfg Config) *Player {
	if cfg.Size <= 0 {
		cfg.Size = 5
	}
	if cfg.Clock == nil {
		cfg.Clock = nopClock{}
	}
	if cfg.Generate == nil {
		cfg.Generate = algo.Steps
	}
	return &Player{
		size:     cfg.Size,
		clock:    cfg.Clock,
		onStep:   cfg.OnStep,
		generate: cfg.Generate,
	}
}

// Size returns the fixed array length.
func (p *Player) Size() int { return p.size }

// State returns the current lifecycle state.
func (p *Player) State() State { return p.state }

// Algorithm returns the algorithm of the active or completed run.
func (p *Player) Algorithm() algo.Algorithm { return p.alg }

// Input returns a copy of the run's original array.
func (p *Player) Input() []int { return append([]int(nil), p.input...) }

// Working returns a snapshot of the working array.
func (p *Player) Working() []int { return append([]int(nil), p.working...) }

// Finalized reports whether position i has been marked final in the
// active run.
func (p *Player) Finalized(i int) bool {
	return p.verifier != nil && p.verifier.Finalized(i)
}

// Finals returns how many positions have been finalized so far.
func (p *Player) Finals() int {
	if p.verifier == nil {
		return 0
	}
	return p.verifier.Finals()
}

// Start begins a new run. Valid only from Idle or Completed; a Start
// while a run is active is rejected rather than superseding it. The
// input must have exactly the configured length.
func (p *Player) Start(values []int, a algo.Algorithm) error {
	if p.state != Idle && p.state != Completed {
		return &TransitionError{Op: "start", State: p.state}
	}
	if len(values) != p.size {
		return &InputError{Got: len(values), Want: p.size}
	}
	p.alg = a
	p.input = append([]int(nil), values...)
	p.working = append([]int(nil), values...)
	p.stream = step.NewStream(p.generate(a, values))
	p.verifier = step.NewVerifier(p.size)
	p.state = Running
	p.clock.Start()
	return nil
}

// Pause suspends event pulling. Valid only from Running. The stream
// cursor is kept, so no event is lost or re-emitted.
func (p *Player) Pause() error {
	if p.state != Running {
		return &TransitionError{Op: "pause", State: p.state}
	}
	p.state = Paused
	p.clock.Pause()
	return nil
}

// Resume continues pulling from exactly where Pause stopped. Valid only
// from Paused.
func (p *Player) Resume() error {
	if p.state != Paused {
		return &TransitionError{Op: "resume", State: p.state}
	}
	p.state = Running
	p.clock.Resume()
	return nil
}

// Tick pulls the next event, applies it atomically to the working array
// and returns the resulting frame. Valid only while Running. On the
// tick that finalizes the last position the player transitions to
// Completed and stops the clock at that exact edge.
//
// A *step.InvariantError from Tick means the generator itself is buggy;
// the run is aborted and the player returns to Idle.
func (p *Player) Tick() (Frame, error) {
	if p.state != Running {
		return Frame{}, &TransitionError{Op: "tick", State: p.state}
	}
	ev, ok := p.stream.Next()
	if !ok {
		err := &step.InvariantError{Reason: fmt.Sprintf(
			"sequence ended with %d of %d positions finalized", p.verifier.Finals(), p.size)}
		p.abort()
		return Frame{}, err
	}
	if err := p.verifier.Check(ev); err != nil {
		p.abort()
		return Frame{}, err
	}
	if err := ev.Apply(p.working); err != nil {
		p.abort()
		return Frame{}, err
	}

	frame := Frame{Event: ev, Data: p.Working()}
	if p.verifier.Complete() {
		frame.Final = true
		frame.Elapsed = p.clock.Stop()
		p.state = Completed
	}
	if p.onStep != nil {
		p.onStep(frame)
	}
	return frame, nil
}

// Reset discards the run session and returns to Idle. Valid from any
// state; it never leaves the working array partially mutated because
// every Tick applies its event atomically before returning.
func (p *Player) Reset() {
	p.clear()
	p.clock.Reset()
}

// abort tears down a run after a fatal invariant violation.
func (p *Player) abort() {
	p.clear()
	p.clock.Reset()
}

func (p *Player) clear() {
	p.state = Idle
	p.input = nil
	p.working = nil
	p.stream = nil
	p.verifier = nil
}
