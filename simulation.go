package main

import (
	"log"
	"time"

	"FallingSand/sand"
)

// step runs one tick and feeds its statistics to the palette, audio and log.
func (g *Game) step() {
	stats := g.sim.Tick()
	g.lastStats = stats
	if !stats.Paused {
		g.palette.Advance()
	}
	if g.rustle != nil {
		g.rustle.SetActivity(stats.Moved())
	}
	g.logTickStats(stats)
}

func (g *Game) logTickStats(stats sand.TickStats) {
	if !g.debug {
		return
	}
	now := time.Now()
	if now.Sub(g.lastLog) < statsLogInterval {
		return
	}
	log.Printf("Tick %d: %d grains (fell %d, slid %d, resting %d) in %s",
		stats.Tick, stats.Grains, stats.Fell, stats.Slid, stats.Resting, stats.Duration)
	g.lastLog = now
}
