package main

import "flag"

// Command-line flags. Every flag that is set explicitly overrides the value
// loaded from the settings file.
var (
	// settingsPathFlag names an optional JSON settings file.
	settingsPathFlag = flag.String("settings", "", "optional JSON settings file applied before flags")

	widthFlag  = flag.Int("width", defaultWidth, "grid width in cells (window mode)")
	heightFlag = flag.Int("height", defaultHeight, "grid height in cells (window mode)")

	// scaleFlag sets how many window pixels one cell covers.
	scaleFlag = flag.Int("scale", windowScale, "window pixels per grid cell")

	// brushFlag is the half-size of the square deposit/erase brush.
	brushFlag = flag.Int("brush", defaultBrushRadius, "brush radius in cells")

	// tickMsFlag is the target length of one simulation tick.
	tickMsFlag = flag.Int("tick-ms", defaultTickMs, "target tick duration in milliseconds")

	seedFlag = flag.Int64("seed", 0, "random seed for tie-breaks and shading (0 uses the clock)")

	// cycleColoursFlag drifts the sand hue every tick.
	cycleColoursFlag = flag.Bool("cycle-colours", false, "drift the sand colour every tick")

	// dunesFlag lays down a procedural dune floor before the first tick.
	dunesFlag = flag.Bool("dunes", false, "start with a procedural dune floor")

	// terminalFlag renders into the terminal; the grid then fills the terminal.
	terminalFlag = flag.Bool("tui", false, "render in the terminal instead of a window")

	// debugFlag enables the statistics overlay and periodic log lines.
	debugFlag = flag.Bool("debug", false, "show tick and grain statistics")

	// enableAudioFlag plays a rustle whose loudness follows grain movement.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a rustle that follows grain movement")

	openCLFlag = flag.Bool("opencl", false, "colourise frames on an OpenCL device (build with -tags opencl)")

	// recordDefaultPGO triggers a scripted pour to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "pour randomly for 15s while capturing default.pgo")
)
