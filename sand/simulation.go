package sand

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Default simulation parameters.
const (
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultBrushRadius  = 20
	DefaultTickInterval = 16 * time.Millisecond
)

// Params configures a Simulation. They are fixed once the simulation exists.
type Params struct {
	Width        int
	Height       int
	BrushRadius  int
	TickInterval time.Duration
}

// DefaultParams returns a 640×480 grid with a 20 cell brush and a 16 ms tick.
func DefaultParams() Params {
	return Params{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		BrushRadius:  DefaultBrushRadius,
		TickInterval: DefaultTickInterval,
	}
}

// EventKind identifies an interaction applied at the start of a tick.
type EventKind int

const (
	// EventDeposit fills a brush square with sand.
	EventDeposit EventKind = iota
	// EventErase empties a brush square.
	EventErase
	// EventClear empties the whole grid.
	EventClear
)

// Event is one pointer interaction waiting for the next tick. A zero Radius
// uses the simulation brush radius. Paint, when set, overrides Colour per cell.
type Event struct {
	Kind   EventKind
	X, Y   int
	Radius int
	Colour Colour
	Paint  ColourFunc
}

// TickStats describes one completed tick.
type TickStats struct {
	StepStats
	Tick      uint64
	Deposited int
	Erased    int
	Grains    int
	Paused    bool
	Duration  time.Duration
}

// Simulation owns a Grid together with its parameters, random source, pending
// interaction events and the last published frame.
//
// Queue and Snapshot may be called from any goroutine. Tick and Run serialize
// among themselves; the Grid is only mutated inside a tick.
type Simulation struct {
	params Params
	grid   *Grid
	rng    Rand

	tickMu sync.Mutex
	spare  []Event

	mu      sync.Mutex
	pending []Event
	paused  bool

	frameMu sync.RWMutex
	frame   []Colour
	back    []Colour

	ticks  atomic.Uint64
	grains atomic.Int64
}

// NewSimulation creates a simulation over an empty grid. Zero or negative
// parameters fall back to the defaults.
func NewSimulation(params Params, rng Rand) *Simulation {
	defaults := DefaultParams()
	if params.Width <= 0 {
		params.Width = defaults.Width
	}
	if params.Height <= 0 {
		params.Height = defaults.Height
	}
	if params.BrushRadius <= 0 {
		params.BrushRadius = defaults.BrushRadius
	}
	if params.TickInterval <= 0 {
		params.TickInterval = defaults.TickInterval
	}
	grid := NewGrid(params.Width, params.Height)
	return &Simulation{
		params: params,
		grid:   grid,
		rng:    rng,
		frame:  grid.CopyColours(nil),
	}
}

// Params returns the parameters the simulation was built with.
func (s *Simulation) Params() Params { return s.params }

// Grid exposes the owned grid. It must only be touched before the simulation
// starts ticking or from the goroutine that calls Tick.
func (s *Simulation) Grid() *Grid { return s.grid }

// Queue records an interaction for the next tick.
func (s *Simulation) Queue(ev Event) {
	s.mu.Lock()
	s.pending = append(s.pending, ev)
	s.mu.Unlock()
}

// SetPaused stops or resumes the physics step. Queued events are still applied
// while paused.
func (s *Simulation) SetPaused(paused bool) {
	s.mu.Lock()
	s.paused = paused
	s.mu.Unlock()
}

// Paused reports whether the physics step is suspended.
func (s *Simulation) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Ticks returns the number of completed ticks.
func (s *Simulation) Ticks() uint64 { return s.ticks.Load() }

// Grains returns the grain count as of the last completed tick.
func (s *Simulation) Grains() int { return int(s.grains.Load()) }

// Tick applies every queued event, runs one physics step and publishes the
// resulting frame.
func (s *Simulation) Tick() TickStats {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	start := time.Now()

	s.mu.Lock()
	events := s.pending
	s.pending = s.spare[:0]
	paused := s.paused
	s.mu.Unlock()

	var stats TickStats
	for i := range events {
		s.apply(&events[i], &stats)
		events[i] = Event{}
	}
	s.spare = events[:0]

	stats.Paused = paused
	if !paused {
		stats.StepStats = Step(s.grid, s.rng)
	}
	s.publish()

	stats.Tick = s.ticks.Add(1)
	stats.Grains = s.grid.Count()
	s.grains.Store(int64(stats.Grains))
	stats.Duration = time.Since(start)
	return stats
}

// apply resolves one interaction against the grid.
func (s *Simulation) apply(ev *Event, stats *TickStats) {
	radius := ev.Radius
	if radius == 0 {
		radius = s.params.BrushRadius
	}
	switch ev.Kind {
	case EventDeposit:
		if ev.Paint != nil {
			stats.Deposited += PaintRegion(s.grid, ev.X, ev.Y, radius, ev.Paint)
		} else {
			stats.Deposited += DepositRegion(s.grid, ev.X, ev.Y, radius, ev.Colour)
		}
	case EventErase:
		stats.Erased += EraseRegion(s.grid, ev.X, ev.Y, radius)
	case EventClear:
		stats.Erased += s.grid.Count()
		s.grid.Clear()
	}
}

// publish copies the grid into the back buffer and swaps it with the frame
// readers see.
func (s *Simulation) publish() {
	s.back = s.grid.CopyColours(s.back)
	s.frameMu.Lock()
	s.frame, s.back = s.back, s.frame
	s.frameMu.Unlock()
}

// Snapshot copies the last published frame into dst, growing it if needed,
// and returns it. The frame is row-major with Empty for empty cells.
func (s *Simulation) Snapshot(dst []Colour) []Colour {
	s.frameMu.RLock()
	defer s.frameMu.RUnlock()
	if cap(dst) < len(s.frame) {
		dst = make([]Colour, len(s.frame))
	}
	dst = dst[:len(s.frame)]
	copy(dst, s.frame)
	return dst
}

// Run ticks at the configured interval until ctx is done, calling present after
// every tick. When a tick and its presentation finish early the loop sleeps for
// the rest of the interval; overruns are not made up. Run only stops between
// ticks and returns ctx.Err().
func (s *Simulation) Run(ctx context.Context, present func(TickStats)) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		start := time.Now()
		stats := s.Tick()
		if present != nil {
			present(stats)
		}
		remaining := s.params.TickInterval - time.Since(start)
		if remaining <= 0 {
			continue
		}
		timer.Reset(remaining)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
