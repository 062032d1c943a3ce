package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"FallingSand/paint"
)

// startAudio plays a rustle whose loudness follows the number of moving grains.
func (g *Game) startAudio() {
	g.audioCtx = audio.NewContext(audioSampleRate)
	g.rustle = paint.NewRustle(g.settings.Seed + 2)
	player, err := g.audioCtx.NewPlayer(g.rustle)
	if err != nil {
		log.Printf("Audio player creation failed: %v", err)
		g.rustle = nil
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
}

func (g *Game) stopAudio() {
	if g.audioPlayer != nil {
		_ = g.audioPlayer.Close()
		g.audioPlayer = nil
	}
}
