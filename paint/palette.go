package paint

import (
	"math"
	"sync"

	"github.com/aquilax/go-perlin"

	"FallingSand/sand"
)

// Palette constants. Hues are in degrees.
const (
	sandHue        = 40.0
	sandSaturation = 0.55
	sandValue      = 0.92
	shadeScale     = 1.0 / 9.0
	shadeTimeScale = 0.02
	shadeStrength  = 0.3
)

// Palette hands out sand colours. The base hue can drift every tick and each
// grain is shaded by coherent noise so a pour reads as texture rather than a
// flat block.
type Palette struct {
	mu    sync.Mutex
	noise *perlin.Perlin
	hue   float64
	drift float64
	tick  float64
}

// NewPalette returns a sand coloured palette whose shading is seeded by seed.
func NewPalette(seed int64) *Palette {
	return &Palette{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		hue:   sandHue,
	}
}

// SetDrift sets how many degrees the base hue moves per Advance.
func (p *Palette) SetDrift(degrees float64) {
	p.mu.Lock()
	p.drift = degrees
	p.mu.Unlock()
}

// Drift returns the hue change per Advance.
func (p *Palette) Drift() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drift
}

// Advance moves the palette forward one tick.
func (p *Palette) Advance() {
	p.mu.Lock()
	p.hue = math.Mod(p.hue+p.drift, 360)
	p.tick++
	p.mu.Unlock()
}

// Hue returns the current base hue.
func (p *Palette) Hue() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hue
}

// Base returns the unshaded colour for the current hue.
func (p *Palette) Base() sand.Colour {
	return HSV(p.Hue(), sandSaturation, sandValue)
}

// Paint returns a colour function bound to the current hue and tick. The
// function is safe to call later from another goroutine.
func (p *Palette) Paint() sand.ColourFunc {
	p.mu.Lock()
	hue, tick := p.hue, p.tick
	p.mu.Unlock()
	return func(x, y int) sand.Colour {
		return p.shade(hue, tick, x, y)
	}
}

// Shade returns the colour a grain deposited at (x, y) would get right now.
func (p *Palette) Shade(x, y int) sand.Colour {
	return p.Paint()(x, y)
}

func (p *Palette) shade(hue, tick float64, x, y int) sand.Colour {
	n := p.noise.Noise3D(float64(x)*shadeScale, float64(y)*shadeScale, tick*shadeTimeScale)
	// Noise3D stays roughly inside [-1, 1].
	n = math.Max(-1, math.Min(1, n))
	value := sandValue * (1 - shadeStrength*(n+1)/2)
	return HSV(hue+n*6, sandSaturation, value)
}

// Heights samples one-dimensional noise into a dune profile: for each of width
// columns a height between minHeight and maxHeight.
func (p *Palette) Heights(width, minHeight, maxHeight int) []int {
	if maxHeight < minHeight {
		minHeight, maxHeight = maxHeight, minHeight
	}
	span := float64(maxHeight - minHeight)
	heights := make([]int, width)
	for x := range heights {
		n := p.noise.Noise1D(float64(x) * shadeScale / 4)
		n = math.Max(-1, math.Min(1, n))
		heights[x] = minHeight + int(math.Round(span*(n+1)/2))
	}
	return heights
}
