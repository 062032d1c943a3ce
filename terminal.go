package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"

	"FallingSand/paint"
	"FallingSand/sand"
	"FallingSand/term"
)

// runTerminal presents the simulation in the terminal. The grid fills the
// terminal, two cells per character.
func runTerminal(settings Settings) error {
	var rustle *paint.Rustle
	if settings.EnableAudio {
		rustle = paint.NewRustle(settings.Seed + 2)
		if err := term.StartAudio(rustle); err != nil {
			log.Printf("Audio unavailable: %v", err)
			rustle = nil
		}
	}

	screen, err := term.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	params := settings.params()
	params.Width, params.Height = term.GridSize(screen)
	sim := sand.NewSimulation(params, rand.New(rand.NewSource(settings.Seed)))
	palette := paint.NewPalette(settings.Seed)
	if settings.Dunes {
		generateDunes(sim.Grid(), palette)
	}

	drift := 0.0
	if settings.CycleColours {
		drift = settings.ColourDrift
	}
	presenter := term.New(screen, sim, palette, settings.ColourDrift)
	palette.SetDrift(drift)
	if rustle != nil {
		presenter.SetRustle(rustle)
	}
	presenter.SetDebug(settings.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := presenter.Run(ctx); err != nil {
		return fmt.Errorf("terminal presenter: %w", err)
	}
	return nil
}
