package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	settings, err := loadSettings(*settingsPathFlag)
	if err != nil {
		log.Fatalf("Loading settings failed: %v", err)
	}
	settings.applyFlags(flag.CommandLine)
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	if settings.Terminal {
		if err := runTerminal(settings); err != nil {
			log.Fatal(err)
		}
		return
	}

	g := newGame(settings)
	defer g.close()

	if *recordDefaultPGO {
		stop, err := g.recordPourProfile(pgoRecordDuration)
		if err != nil {
			log.Fatalf("Starting PGO recording failed: %v", err)
		}
		defer stop()
		log.Printf("Recording %s for %s", pgoOutputPath, pgoRecordDuration)
	}

	params := settings.params()
	ebiten.SetWindowSize(params.Width*settings.Scale, params.Height*settings.Scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(settings.ticksPerSecond())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
