package main

import (
	"time"

	"FallingSand/sand"
)

// Window, brush, timing and audio constants for the falling sand simulator.
// Grid size, brush radius and tick length are defaults that a settings file or
// flags may override at start-up.
const (
	defaultWidth             = sand.DefaultWidth
	defaultHeight            = sand.DefaultHeight
	windowScale              = 1
	windowTitle              = "Falling Sand"
	defaultBrushRadius       = sand.DefaultBrushRadius
	minBrushRadius           = 1
	maxBrushRadius           = 120
	brushWheelStep           = 2
	defaultTickMs            = int(sand.DefaultTickInterval / time.Millisecond)
	defaultColourDrift       = 1.5
	rasterBandRows           = 16
	duneMinFraction          = 0.04
	duneMaxFraction          = 0.22
	autoPourStrokeTicks      = 40
	autoPourEraseChance      = 8
	pgoRecordDuration        = 15 * time.Second
	pgoOutputPath            = "default.pgo"
	statsLogInterval         = 5 * time.Second
	audioSampleRate          = 48000
	audioPlayerBufferLatency = 80 * time.Millisecond
)
