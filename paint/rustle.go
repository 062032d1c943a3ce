package paint

import (
	"math"
	"math/rand"
	"sync"
)

const (
	rustleFullScale = 4000.0
	rustleSmoothing = 0.002
	rustleLowpass   = 0.35
	rustleGain      = 0.6
	pcm16MaxValue   = 32767
	rustleFrameSize = 4
)

// Rustle is a noise source whose loudness follows how many grains moved in
// the last tick. It serves both as an io.Reader of 16-bit little-endian stereo
// PCM and as a streamer of float stereo frames.
type Rustle struct {
	mu      sync.Mutex
	rng     *rand.Rand
	target  float64
	amp     float64
	lowpass float64
}

// NewRustle returns a silent rustle seeded with seed.
func NewRustle(seed int64) *Rustle {
	return &Rustle{rng: rand.New(rand.NewSource(seed))}
}

// SetActivity sets the loudness target from the number of grains that moved.
func (r *Rustle) SetActivity(moved int) {
	target := 0.0
	if moved > 0 {
		target = math.Min(1, math.Sqrt(float64(moved)/rustleFullScale))
	}
	r.mu.Lock()
	r.target = target
	r.mu.Unlock()
}

// Level returns the current smoothed loudness in [0, 1].
func (r *Rustle) Level() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.amp
}

// next produces one mono sample. r.mu must be held.
func (r *Rustle) next() float64 {
	r.amp += (r.target - r.amp) * rustleSmoothing
	white := r.rng.Float64()*2 - 1
	r.lowpass += (white - r.lowpass) * rustleLowpass
	v := r.lowpass * r.amp * rustleGain
	return math.Max(-1, math.Min(1, v))
}

// Read fills p with whole stereo frames.
func (r *Rustle) Read(p []byte) (int, error) {
	frameBytes := len(p) - len(p)%rustleFrameSize
	if frameBytes == 0 {
		return 0, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < frameBytes; i += rustleFrameSize {
		v := int16(r.next() * pcm16MaxValue)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

// Stream fills samples with stereo frames. It never runs dry.
func (r *Rustle) Stream(samples [][2]float64) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range samples {
		v := r.next()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err is always nil; the rustle cannot fail.
func (r *Rustle) Err() error { return nil }

// Close is a no-op so the rustle can be handed to players that expect an io.ReadCloser.
func (r *Rustle) Close() error { return nil }
