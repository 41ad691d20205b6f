// Package snake implements the Snake game engine: a fixed-tick state
// machine that moves the snake, detects collisions, grows the snake after
// it eats and plays the shrink-out animation before resetting.
//
// The engine never draws and never schedules itself. The owner calls
// Advance once per tick and uses the returned Step to decide when to call
// it again and whether to redraw.
package snake

import (
	"math/rand"
	"sync"
	"time"
)

// Source supplies random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Rules are the per-run constants of the game.
type Rules struct {
	TickInterval   time.Duration // Interval between moves while running
	LosingInterval time.Duration // Interval between shrink steps while losing
	GrowScale      int           // Segments added per prey eaten
	PreyPoints     int           // Score added per prey eaten
}

// DefaultRules returns the classic settings: 80ms ticks, 10ms shrink
// steps, one segment and ten points per prey.
func DefaultRules() Rules {
	return Rules{
		TickInterval:   80 * time.Millisecond,
		LosingInterval: 10 * time.Millisecond,
		GrowScale:      1,
		PreyPoints:     10,
	}
}

// Step reports the outcome of one Advance call.
type Step struct {
	State    RunState      // State after the call
	Next     time.Duration // Delay before the next Advance; zero means stop ticking
	Redraw   bool          // Whether the frame changed and should be drawn
	Scored   bool          // Prey was eaten this tick
	Grew     bool          // A segment was appended this tick
	Collided bool          // The snake hit a wall or itself this tick
	Reset    bool          // The losing animation finished; show the start screen
}

// Engine holds all mutable game state. All methods are safe to call from
// multiple goroutines; SetDirection and Advance never interleave.
type Engine struct {
	mu    sync.Mutex
	rules Rules
	rng   Source

	tick      uint64
	state     RunState
	snake     []Cell // Head at index 0
	direction Direction
	next      Direction // Applied at the start of the next move
	prey      Cell
	growing   int
	score     int
	interval  time.Duration
}

// New creates an engine waiting in StateInit with a single-segment snake
// at the origin heading right. A nil rng seeds one from the clock.
func New(rules Rules, rng Source) *Engine {
	defaults := DefaultRules()
	if rules.TickInterval <= 0 {
		rules.TickInterval = defaults.TickInterval
	}
	if rules.LosingInterval <= 0 {
		rules.LosingInterval = defaults.LosingInterval
	}
	rules.GrowScale = max(rules.GrowScale, 0)
	rules.PreyPoints = max(rules.PreyPoints, 0)

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		rules:     rules,
		rng:       rng,
		state:     StateInit,
		snake:     []Cell{{X: 0, Y: 0}},
		direction: Right,
		next:      Right,
		interval:  rules.TickInterval,
	}
	e.prey = e.randomCell()
	return e
}

// Start moves the engine from StateInit to StateRunning. A positive
// interval replaces the tick interval for this run. Returns false, and
// changes nothing, when the engine is not waiting to start.
func (e *Engine) Start(interval time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateInit {
		return false
	}
	if interval > 0 {
		e.interval = interval
	}
	e.state = StateRunning
	return true
}

// SetDirection queues d for the next move. It is ignored when d is not a
// unit direction or is the exact opposite of the direction of the last
// move. Reports whether d was accepted.
func (e *Engine) SetDirection(d Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !d.Valid() || d == e.direction.Opposite() {
		return false
	}
	e.next = d
	return true
}

// Advance runs one tick.
func (e *Engine) Advance() Step {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateRunning:
		return e.advanceRunning()
	case StateLosing:
		return e.advanceLosing()
	default:
		return Step{State: e.state}
	}
}

func (e *Engine) advanceRunning() Step {
	if len(e.snake) == 0 {
		return Step{State: e.state}
	}
	e.tick++

	step := Step{Next: e.interval, Redraw: true}
	tail := e.snake[len(e.snake)-1]
	// Scoring looks at where the head was before this move.
	didScore := e.snake[0] == e.prey

	// Tail first so every segment copies its predecessor's old position.
	e.direction = e.next
	for i := len(e.snake) - 1; i > 0; i-- {
		e.snake[i] = e.snake[i-1]
	}
	e.snake[0] = e.snake[0].Add(e.direction)

	if e.detectCollision() {
		e.state = StateLosing
		e.growing = 0
		step.Collided = true
	}

	if didScore {
		e.growing += e.rules.GrowScale
		e.prey = e.randomCell()
		e.score += e.rules.PreyPoints
		step.Scored = true
	}

	if e.growing > 0 {
		e.snake = append(e.snake, tail)
		e.growing--
		step.Grew = true
	}

	step.State = e.state
	return step
}

func (e *Engine) advanceLosing() Step {
	e.tick++

	if len(e.snake) > 0 {
		e.snake = append(e.snake[:0], e.snake[1:]...)
	}
	if len(e.snake) == 0 {
		e.reset()
		return Step{State: e.state, Reset: true}
	}

	return Step{
		State:  e.state,
		Next:   e.rules.LosingInterval,
		Redraw: true,
	}
}

// reset starts a fresh game in StateInit. The queued direction is kept.
func (e *Engine) reset() {
	e.state = StateInit
	e.snake = append(e.snake[:0], e.randomCell())
	e.prey = e.randomCell()
	e.score = 0
	e.growing = 0
}

// DetectCollision reports whether the head is off the board or on top of
// another segment. An empty snake never collides.
func (e *Engine) DetectCollision() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.detectCollision()
}

func (e *Engine) detectCollision() bool {
	if len(e.snake) == 0 {
		return false
	}

	head := e.snake[0]
	if !head.InBounds() {
		return true
	}
	for _, seg := range e.snake[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// RandomCell returns a uniformly random cell on the board. Occupied cells
// are not excluded.
func (e *Engine) RandomCell() Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.randomCell()
}

func (e *Engine) randomCell() Cell {
	return Cell{
		X: e.rng.Intn(Width),
		Y: e.rng.Intn(Height),
	}
}

// State returns the current run state.
func (e *Engine) State() RunState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Direction returns the heading the next move will use.
func (e *Engine) Direction() Direction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.next
}

// Interval returns the tick interval of the current run.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules
}
