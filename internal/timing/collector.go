// Package timing measures wall-clock run durations and keeps a bounded
// run history. The clock starts on the player's Start edge, stops on
// the tick that finalizes the last position, and excludes time spent
// paused.
package timing

import "time"

// Entry is one completed run: which algorithm ran, over which input,
// and how long it took with paused intervals excluded.
type Entry struct {
	Round     int
	Algorithm string
	Input     []int
	Elapsed   time.Duration
	When      time.Time
}

// Collector accumulates elapsed time across pause/resume cycles and
// records completed runs, retaining only the most recent entries per
// algorithm.
type Collector struct {
	now   func() time.Time
	limit int

	running     bool
	startedAt   time.Time
	accumulated time.Duration

	rounds  int
	history []Entry
}

// NewCollector creates a Collector keeping the last limit entries per
// algorithm. A limit <= 0 keeps everything.
func NewCollector(limit int) *Collector {
	return NewCollectorWithNow(limit, time.Now)
}

// NewCollectorWithNow allows injecting the time source (for testing).
func NewCollectorWithNow(limit int, now func() time.Time) *Collector {
	return &Collector{now: now, limit: limit}
}

// Start begins timing a new run, discarding any prior accumulation.
func (c *Collector) Start() {
	c.accumulated = 0
	c.startedAt = c.now()
	c.running = true
}

// Pause suspends the clock, keeping the time accumulated so far.
func (c *Collector) Pause() {
	if !c.running {
		return
	}
	c.accumulated += c.now().Sub(c.startedAt)
	c.running = false
}

// Resume continues the clock after a pause.
func (c *Collector) Resume() {
	if c.running {
		return
	}
	c.startedAt = c.now()
	c.running = true
}

// Stop halts the clock and returns the total elapsed time, excluding
// paused intervals. Stopping an already stopped clock returns the same
// value again.
func (c *Collector) Stop() time.Duration {
	if c.running {
		c.accumulated += c.now().Sub(c.startedAt)
		c.running = false
	}
	return c.accumulated
}

// Reset zeroes the clock without touching the history. Called on the
// player's Reset edge.
func (c *Collector) Reset() {
	c.running = false
	c.accumulated = 0
}

// Elapsed returns the current reading without stopping the clock. Used
// for the live stopwatch display.
func (c *Collector) Elapsed() time.Duration {
	if c.running {
		return c.accumulated + c.now().Sub(c.startedAt)
	}
	return c.accumulated
}

// Record appends one completed run to the history and returns the new
// entry. Rounds are numbered monotonically across the whole session,
// even after older entries have been trimmed.
func (c *Collector) Record(algorithm string, input []int, elapsed time.Duration) Entry {
	c.rounds++
	e := Entry{
		Round:     c.rounds,
		Algorithm: algorithm,
		Input:     append([]int(nil), input...),
		Elapsed:   elapsed,
		When:      c.now(),
	}
	c.history = append(c.history, e)
	c.trim()
	return e
}

// trim drops the oldest entries of any algorithm that exceeds the
// per-algorithm bound, preserving overall order.
func (c *Collector) trim() {
	if c.limit <= 0 {
		return
	}
	counts := make(map[string]int)
	keep := make([]bool, len(c.history))
	for i := len(c.history) - 1; i >= 0; i-- {
		a := c.history[i].Algorithm
		if counts[a] < c.limit {
			counts[a]++
			keep[i] = true
		}
	}
	trimmed := c.history[:0]
	for i, e := range c.history {
		if keep[i] {
			trimmed = append(trimmed, e)
		}
	}
	c.history = trimmed
}

// History returns a copy of the recorded runs, oldest first.
func (c *Collector) History() []Entry {
	out := make([]Entry, len(c.history))
	copy(out, c.history)
	return out
}
