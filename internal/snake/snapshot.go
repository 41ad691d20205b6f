package snake

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is a copy of the engine state, safe to keep after the engine moves on.
type Snapshot struct {
	Tick      uint64
	State     RunState
	Snake     []Cell // Head at index 0
	Direction Direction
	Prey      Cell
	Score     int
	Growing   int
	Interval  time.Duration
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	body := make([]Cell, len(e.snake))
	copy(body, e.snake)

	return Snapshot{
		Tick:      e.tick,
		State:     e.state,
		Snake:     body,
		Direction: e.next,
		Prey:      e.prey,
		Score:     e.score,
		Growing:   e.growing,
		Interval:  e.interval,
	}
}

// Head returns the head cell, or false when the snake is empty.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Snake) == 0 {
		return Cell{}, false
	}
	return s.Snake[0], true
}

// Len returns the number of segments.
func (s Snapshot) Len() int {
	return len(s.Snake)
}

// String returns a one-line summary for logs and test failures.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d state=%s score=%d len=%d", s.Tick, s.State, s.Score, len(s.Snake))
	if head, ok := s.Head(); ok {
		fmt.Fprintf(&b, " head=%s", head)
	}
	fmt.Fprintf(&b, " dir=%s prey=%s growing=%d", s.Direction, s.Prey, s.Growing)
	return b.String()
}
