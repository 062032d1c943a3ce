package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"FallingSand/sand"
)

// handleControls processes the keyboard shortcuts and the brush wheel.
func (g *Game) handleControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit.Store(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.SetPaused(!g.sim.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Queue(sand.Event{Kind: sand.EventClear})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.toggleDrift()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.adjustBrush(dy)
	}
}

func (g *Game) toggleDrift() {
	if g.palette.Drift() != 0 {
		g.palette.SetDrift(0)
		return
	}
	g.palette.SetDrift(g.settings.ColourDrift)
}

// adjustBrush grows or shrinks the brush within bounds.
func (g *Game) adjustBrush(wheel float64) {
	step := brushWheelStep
	if wheel < 0 {
		step = -step
	}
	g.brush = clampInt(g.brush+step, minBrushRadius, maxBrushRadius)
}

// queuePointer turns the mouse state, or the scripted pour, into brush events.
func (g *Game) queuePointer() {
	if g.autoPour {
		if time.Now().After(g.autoPourDeadline) {
			g.autoPour = false
		} else {
			g.autoPourStep()
			return
		}
	}
	x, y := ebiten.CursorPosition()
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sim.Queue(sand.Event{Kind: sand.EventDeposit, X: x, Y: y, Radius: g.brush, Paint: g.palette.Paint()})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.sim.Queue(sand.Event{Kind: sand.EventErase, X: x, Y: y, Radius: g.brush})
	}
}

// enableAutoPour schedules a scripted pour for a limited duration.
func (g *Game) enableAutoPour(duration time.Duration) {
	g.autoPour = true
	g.autoPourDeadline = time.Now().Add(duration)
	g.autoPourX = g.sim.Params().Width / 2
	g.autoPourFrameCount = 0
}

// autoPourStep sweeps a pour along the top of the grid, occasionally
// digging into the pile below.
func (g *Game) autoPourStep() {
	params := g.sim.Params()
	if g.autoPourFrameCount <= 0 {
		g.randomizeAutoPourDirection()
	}
	g.autoPourFrameCount--
	g.autoPourX = clampInt(g.autoPourX+g.autoPourDir, 0, params.Width-1)
	if g.autoPourX == 0 || g.autoPourX == params.Width-1 {
		g.autoPourFrameCount = 0
	}

	if g.autoPourRand.Intn(autoPourEraseChance) == 0 {
		g.sim.Queue(sand.Event{
			Kind: sand.EventErase,
			X:    g.autoPourRand.Intn(params.Width),
			Y:    params.Height - 1 - g.autoPourRand.Intn(max(params.Height/3, 1)),
		})
		return
	}
	g.sim.Queue(sand.Event{
		Kind:   sand.EventDeposit,
		X:      g.autoPourX,
		Y:      g.brush,
		Radius: g.brush,
		Paint:  g.palette.Paint(),
	})
}

func (g *Game) randomizeAutoPourDirection() {
	g.autoPourDir = 1 + g.autoPourRand.Intn(3)
	if g.autoPourRand.Intn(2) == 0 {
		g.autoPourDir = -g.autoPourDir
	}
	g.autoPourFrameCount = autoPourStrokeTicks/2 + g.autoPourRand.Intn(autoPourStrokeTicks)
}
