package step

// Stream is a resumable cursor over a generated event sequence. The
// player pulls one event per tick; pausing simply stops pulling, so no
// event is ever lost or re-emitted across a pause/resume cycle.
type Stream struct {
	events []Event
	pos    int
}

// NewStream wraps a generated sequence. The slice is not copied; the
// caller must not mutate it afterwards.
func NewStream(events []Event) *Stream {
	return &Stream{events: events}
}

// Next returns the next event and advances the cursor. The second
// return is false once the sequence is exhausted.
func (s *Stream) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	e := s.events[s.pos]
	s.pos++
	return e, true
}

// Pos returns how many events have been consumed.
func (s *Stream) Pos() int { return s.pos }

// Len returns the total number of events in the sequence.
func (s *Stream) Len() int { return len(s.events) }
