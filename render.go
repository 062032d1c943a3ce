package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var brushOutline = color.RGBA{200, 200, 200, 160}

// Draw renders the latest published frame, the brush outline and the debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame = g.sim.Snapshot(g.frame)
	if g.gpu != nil {
		if err := g.gpu.Colourise(g.pixels, g.frame); err != nil {
			log.Printf("OpenCL colouriser failed, falling back to CPU: %v", err)
			g.gpu.Close()
			g.gpu = nil
		}
	}
	if g.gpu == nil {
		g.raster.Render(g.pixels, g.frame)
	}
	screen.WritePixels(g.pixels)

	if !g.autoPour {
		x, y := ebiten.CursorPosition()
		size := float32(2*g.brush + 1)
		vector.StrokeRect(screen, float32(x-g.brush), float32(y-g.brush), size, size, 1, brushOutline, false)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) debugText() string {
	stats := g.lastStats
	state := "running"
	if stats.Paused {
		state = "paused"
	}
	backend := "cpu"
	if g.gpu != nil {
		backend = "opencl " + g.gpu.DeviceName()
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nTick %d (%s)\nGrains: %d  fell %d  slid %d\nTick: %.2f ms  Brush: %d\nHue: %.0f  Colour: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		stats.Tick, state,
		stats.Grains, stats.Fell, stats.Slid,
		stats.Duration.Seconds()*1000, g.brush,
		g.palette.Hue(), backend)
}

// Layout reports the grid size so one logical pixel maps to one cell.
func (g *Game) Layout(_, _ int) (int, int) {
	params := g.sim.Params()
	return params.Width, params.Height
}
