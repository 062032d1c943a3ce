package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startDefaultPGORecording begins writing a CPU profile to path and returns
// an idempotent stop function.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	return stop, nil
}

// recordPourProfile drives a scripted pour for duration while profiling, so
// the profile covers the deposit, fall and slide paths.
func (g *Game) recordPourProfile(duration time.Duration) (func(), error) {
	stop, err := startDefaultPGORecording(pgoOutputPath)
	if err != nil {
		return nil, err
	}
	g.enableAutoPour(duration)
	time.AfterFunc(duration, func() {
		stop()
		log.Printf("Wrote %s", pgoOutputPath)
		g.quit.Store(true)
	})
	return stop, nil
}
