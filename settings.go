package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"FallingSand/sand"
)

// Settings collects every start-up option. Values come from defaults, then an
// optional JSON file, then explicitly set flags.
type Settings struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Scale        int     `json:"scale"`
	Brush        int     `json:"brush"`
	TickMs       int     `json:"tickMs"`
	Seed         int64   `json:"seed"`
	CycleColours bool    `json:"cycleColours"`
	ColourDrift  float64 `json:"colourDrift"`
	Dunes        bool    `json:"dunes"`
	Terminal     bool    `json:"terminal"`
	Debug        bool    `json:"debug"`
	EnableAudio  bool    `json:"enableAudio"`
	OpenCL       bool    `json:"openCL"`
}

func defaultSettings() Settings {
	return Settings{
		Width:       defaultWidth,
		Height:      defaultHeight,
		Scale:       windowScale,
		Brush:       defaultBrushRadius,
		TickMs:      defaultTickMs,
		ColourDrift: defaultColourDrift,
	}
}

// loadSettings returns the defaults overlaid with the JSON file at path. An
// empty path means no file.
func loadSettings(path string) (Settings, error) {
	settings := defaultSettings()
	if path == "" {
		return settings, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return settings, fmt.Errorf("opening settings: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("decoding settings %q: %w", path, err)
	}
	return settings.sanitized(), nil
}

// applyFlags copies every explicitly set flag over the loaded settings.
func (s *Settings) applyFlags(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			s.Width = *widthFlag
		case "height":
			s.Height = *heightFlag
		case "scale":
			s.Scale = *scaleFlag
		case "brush":
			s.Brush = *brushFlag
		case "tick-ms":
			s.TickMs = *tickMsFlag
		case "seed":
			s.Seed = *seedFlag
		case "cycle-colours":
			s.CycleColours = *cycleColoursFlag
		case "dunes":
			s.Dunes = *dunesFlag
		case "tui":
			s.Terminal = *terminalFlag
		case "debug":
			s.Debug = *debugFlag
		case "enable-audio":
			s.EnableAudio = *enableAudioFlag
		case "opencl":
			s.OpenCL = *openCLFlag
		}
	})
	*s = s.sanitized()
}

// sanitized clamps values that would otherwise produce an unusable window.
func (s Settings) sanitized() Settings {
	if s.Width < 1 {
		s.Width = defaultWidth
	}
	if s.Height < 1 {
		s.Height = defaultHeight
	}
	if s.Scale < 1 {
		s.Scale = 1
	}
	s.Brush = clampInt(s.Brush, minBrushRadius, maxBrushRadius)
	if s.TickMs < 1 {
		s.TickMs = defaultTickMs
	}
	return s
}

// params converts the settings into simulation parameters.
func (s Settings) params() sand.Params {
	return sand.Params{
		Width:        s.Width,
		Height:       s.Height,
		BrushRadius:  s.Brush,
		TickInterval: s.tick(),
	}
}

func (s Settings) tick() time.Duration {
	return time.Duration(s.TickMs) * time.Millisecond
}

// ticksPerSecond converts the tick length into Ebiten's TPS setting.
func (s Settings) ticksPerSecond() int {
	tick := s.tick()
	return max(int((time.Second+tick/2)/tick), 1)
}

// clampInt constrains v to lie within the inclusive [lo, hi] range.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
