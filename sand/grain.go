package sand

// MaxSpeed caps how many rows a grain may drop in a single tick.
const MaxSpeed = 25

// Grain is a single particle of sand. The colour is fixed at creation; the fall
// speed grows while the grain keeps falling.
type Grain struct {
	colour Colour
	speed  int
}

// NewGrain returns a grain of the given colour with a fall speed of one row per tick.
func NewGrain(colour Colour) Grain {
	return Grain{colour: colour, speed: 1}
}

// Accelerate increases the fall speed by one row per tick, up to MaxSpeed.
func (g *Grain) Accelerate() {
	if g.speed < MaxSpeed {
		g.speed++
	}
}

// Brake reduces the fall speed by one, never below zero. The physics step does
// not call it.
func (g *Grain) Brake() {
	if g.speed > 0 {
		g.speed--
	}
}

// Colour returns the grain colour.
func (g Grain) Colour() Colour { return g.colour }

// Speed returns the number of rows the grain may fall next tick.
func (g Grain) Speed() int { return g.speed }
