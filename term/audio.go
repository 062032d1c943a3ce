package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"FallingSand/paint"
)

const (
	audioSampleRate     = 44100
	audioBufferDuration = 100 * time.Millisecond
)

// StartAudio plays r through the system speaker until the process exits.
func StartAudio(r *paint.Rustle) error {
	sampleRate := beep.SampleRate(audioSampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(audioBufferDuration)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(r)
	return nil
}
