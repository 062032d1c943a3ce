package sand

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"
)

func newTestSimulation(width, height int) *Simulation {
	return NewSimulation(Params{Width: width, Height: height, BrushRadius: 1, TickInterval: time.Millisecond}, rand.New(rand.NewSource(1)))
}

func countGrains(frame []Colour) int {
	n := 0
	for _, c := range frame {
		if c != Empty {
			n++
		}
	}
	return n
}

func TestNewSimulationDefaults(t *testing.T) {
	s := NewSimulation(Params{}, rand.New(rand.NewSource(1)))
	p := s.Params()
	if p != DefaultParams() {
		t.Errorf("Expected default params, got %+v", p)
	}
	if s.Grid().Width() != 640 || s.Grid().Height() != 480 {
		t.Errorf("Unexpected grid size %dx%d", s.Grid().Width(), s.Grid().Height())
	}
	frame := s.Snapshot(nil)
	if len(frame) != 640*480 || countGrains(frame) != 0 {
		t.Errorf("Expected an empty initial frame")
	}
}

func TestTickAppliesEventsBeforeStep(t *testing.T) {
	s := newTestSimulation(10, 10)
	s.Queue(Event{Kind: EventDeposit, X: 5, Y: 0, Colour: 3})

	stats := s.Tick()
	if stats.Deposited != 2 {
		t.Fatalf("Expected 2 grains deposited, got %d", stats.Deposited)
	}
	if stats.Fell != 2 {
		t.Fatalf("Expected both new grains to fall in the same tick, got %+v", stats.StepStats)
	}
	if stats.Tick != 1 || s.Ticks() != 1 {
		t.Errorf("Expected tick counter 1, got %d/%d", stats.Tick, s.Ticks())
	}
	if stats.Grains != 2 || s.Grains() != 2 {
		t.Errorf("Expected 2 grains, got %d/%d", stats.Grains, s.Grains())
	}

	frame := s.Snapshot(nil)
	if frame[1*10+4] != 3 || frame[1*10+5] != 3 {
		t.Errorf("Expected grains on row 1 in the published frame")
	}
	if frame[4] != Empty || frame[5] != Empty {
		t.Errorf("Row 0 should be empty after the step")
	}
}

func TestTickEraseAndClear(t *testing.T) {
	s := newTestSimulation(10, 10)
	s.Queue(Event{Kind: EventDeposit, X: 5, Y: 5, Radius: 5, Colour: 1})
	s.SetPaused(true)
	if stats := s.Tick(); stats.Deposited != 100 || !stats.Paused {
		t.Fatalf("Expected a full paused grid, got %+v", stats)
	}

	s.Queue(Event{Kind: EventErase, X: 0, Y: 0, Radius: 2})
	if stats := s.Tick(); stats.Erased != 4 || stats.Grains != 96 {
		t.Errorf("Expected 4 erased and 96 left, got %+v", stats)
	}

	s.Queue(Event{Kind: EventClear})
	if stats := s.Tick(); stats.Erased != 96 || stats.Grains != 0 {
		t.Errorf("Expected clear to remove 96 grains, got %+v", stats)
	}
}

func TestTickPaintEvent(t *testing.T) {
	s := newTestSimulation(4, 4)
	s.SetPaused(true)
	s.Queue(Event{Kind: EventDeposit, X: 2, Y: 2, Paint: func(x, y int) Colour { return Colour(10 + x) }})
	s.Tick()

	frame := s.Snapshot(nil)
	if frame[1*4+1] != 11 || frame[1*4+2] != 12 {
		t.Errorf("Expected painted colours 11 and 12, got %d and %d", frame[1*4+1], frame[1*4+2])
	}
}

func TestPausedTickKeepsGrainsInPlace(t *testing.T) {
	s := newTestSimulation(10, 10)
	s.SetPaused(true)
	if !s.Paused() {
		t.Fatal("Expected simulation to report paused")
	}
	s.Queue(Event{Kind: EventDeposit, X: 5, Y: 0, Colour: 1})
	for i := 0; i < 3; i++ {
		if stats := s.Tick(); stats.Moved() != 0 {
			t.Fatalf("Paused tick moved grains: %+v", stats)
		}
	}
	s.SetPaused(false)
	if stats := s.Tick(); stats.Fell != 2 {
		t.Errorf("Expected grains to fall after resuming, got %+v", stats)
	}
}

func TestSnapshotNeverTorn(t *testing.T) {
	s := newTestSimulation(32, 32)
	s.Queue(Event{Kind: EventDeposit, X: 16, Y: 4, Radius: 4, Colour: 5})
	want := s.Tick().Grains

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		var frame []Colour
		for {
			select {
			case <-done:
				return
			default:
			}
			frame = s.Snapshot(frame)
			if got := countGrains(frame); got != want {
				t.Errorf("Snapshot shows %d grains, expected %d", got, want)
				return
			}
		}
	}()

	for i := 0; i < 200; i++ {
		s.Tick()
	}
	close(done)
	wg.Wait()
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestSimulation(16, 16)
	ctx, cancel := context.WithCancel(context.Background())

	var presented []uint64
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx, func(stats TickStats) {
			presented = append(presented, stats.Tick)
			if stats.Tick == 5 {
				cancel()
			}
		})
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}

	if len(presented) != 5 {
		t.Fatalf("Expected 5 presented ticks, got %d", len(presented))
	}
	for i, tick := range presented {
		if tick != uint64(i+1) {
			t.Errorf("Presented tick %d out of order: %d", i, tick)
		}
	}
	if s.Ticks() != 5 {
		t.Errorf("Expected 5 completed ticks, got %d", s.Ticks())
	}
}

func TestRunPacesTicks(t *testing.T) {
	s := NewSimulation(Params{Width: 8, Height: 8, TickInterval: 10 * time.Millisecond}, rand.New(rand.NewSource(1)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	err := s.Run(ctx, func(stats TickStats) {
		if stats.Tick == 5 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Five paced ticks finished in %v, expected at least 40ms", elapsed)
	}
}

func TestQueueFromManyGoroutines(t *testing.T) {
	s := newTestSimulation(64, 64)
	s.SetPaused(true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			for y := 0; y < 64; y += 2 {
				s.Queue(Event{Kind: EventDeposit, X: col*8 + 1, Y: y + 1, Colour: 1})
			}
		}(i)
	}
	wg.Wait()

	stats := s.Tick()
	if stats.Deposited != 8*64*2 {
		t.Errorf("Expected %d grains, got %d", 8*64*2, stats.Deposited)
	}
}
