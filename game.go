package main

import (
	"log"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"FallingSand/paint"
	"FallingSand/sand"
)

// Game drives a sand simulation from Ebiten's update loop and renders its frames.
type Game struct {
	settings Settings

	sim     *sand.Simulation
	palette *paint.Palette

	raster *paint.Rasterizer
	gpu    *openCLColouriser
	frame  []sand.Colour
	pixels []byte

	brush     int
	debug     bool
	quit      atomic.Bool
	lastStats sand.TickStats
	lastLog   time.Time

	autoPour           bool
	autoPourDeadline   time.Time
	autoPourRand       *rand.Rand
	autoPourX          int
	autoPourDir        int
	autoPourFrameCount int

	rustle      *paint.Rustle
	audioCtx    *audio.Context
	audioPlayer *audio.Player
}

// newGame constructs a Game from start-up settings, optionally seeding dunes,
// the OpenCL colouriser and audio.
func newGame(settings Settings) *Game {
	params := settings.params()
	rng := rand.New(rand.NewSource(settings.Seed))
	g := &Game{
		settings:     settings,
		sim:          sand.NewSimulation(params, rng),
		palette:      paint.NewPalette(settings.Seed),
		brush:        params.BrushRadius,
		debug:        settings.Debug,
		autoPourRand: rand.New(rand.NewSource(settings.Seed + 1)),
	}
	if settings.CycleColours {
		g.palette.SetDrift(settings.ColourDrift)
	}
	g.raster = paint.NewRasterizer(params.Width, params.Height, runtime.NumCPU(), rasterBandRows, paint.Black)
	g.pixels = make([]byte, params.Width*params.Height*4)

	if settings.Dunes {
		n := generateDunes(g.sim.Grid(), g.palette)
		log.Printf("Laid %d grains of dunes", n)
	}
	if settings.OpenCL {
		if gpu, err := newOpenCLColouriser(params.Width, params.Height, paint.Black); err != nil {
			log.Printf("OpenCL colouriser unavailable, using CPU: %v", err)
		} else {
			log.Printf("OpenCL colouriser enabled (device: %s)", gpu.DeviceName())
			g.gpu = gpu
		}
	}
	if settings.EnableAudio {
		g.startAudio()
	}
	return g
}

// Update applies input, runs one simulation tick and reports Termination on quit.
func (g *Game) Update() error {
	g.handleControls()
	if g.quit.Load() {
		return ebiten.Termination
	}
	g.queuePointer()
	g.step()
	return nil
}

// close releases the worker pool and any GPU or audio resources.
func (g *Game) close() {
	g.raster.Close()
	if g.gpu != nil {
		g.gpu.Close()
		g.gpu = nil
	}
	g.stopAudio()
}
