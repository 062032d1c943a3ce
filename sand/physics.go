package sand

// Rand is the random source used for the left/right tie-break.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// StepStats counts what happened to the grains visited by one Step.
type StepStats struct {
	Fell    int
	Slid    int
	Resting int
}

// Moved returns the number of grains that changed cell.
func (s StepStats) Moved() int { return s.Fell + s.Slid }

// Step advances every grain by one tick.
//
// Rows are visited bottom-up from the second-to-last row and columns left to
// right. A grain first tries to fall straight down; it lands on the deepest
// empty cell of the contiguous free run below it, limited by its speed, and
// speeds up. A grain that cannot fall tries the same search one column to the
// left and one to the right and slides to whichever side has room, choosing
// with rng when both do. Destinations are always below the current row, so a
// grain is never visited twice in the same Step.
func Step(g *Grid, rng Rand) StepStats {
	var stats StepStats
	width := g.width
	for y := g.height - 2; y >= 0; y-- {
		rowBase := y * width
		for x := 0; x < width; x++ {
			idx := rowBase + x
			cell := g.get(idx)
			if !cell.full {
				continue
			}
			speed := cell.grain.speed

			if landing := g.landingRow(x, y, speed); landing >= 0 {
				cell.grain.Accelerate()
				g.move(idx, landing*width+x)
				stats.Fell++
				continue
			}

			left, right := -1, -1
			if x > 0 {
				left = g.landingRow(x-1, y, speed)
			}
			if x < width-1 {
				right = g.landingRow(x+1, y, speed)
			}
			if left >= 0 && right >= 0 {
				if rng.Intn(2) == 0 {
					right = -1
				} else {
					left = -1
				}
			}
			switch {
			case left >= 0:
				g.move(idx, left*width+x-1)
				stats.Slid++
			case right >= 0:
				g.move(idx, right*width+x+1)
				stats.Slid++
			default:
				stats.Resting++
			}
		}
	}
	return stats
}

// landingRow returns the deepest row a grain starting at row y could reach in
// column x at the given speed, or -1 when the cell directly below is taken.
// Only the unbroken run of empty cells below y counts.
func (g *Grid) landingRow(x, y, speed int) int {
	reach := min(y+speed, g.height-1)
	landing := -1
	for row := y + 1; row <= reach; row++ {
		if g.cells[row*g.width+x].full {
			break
		}
		landing = row
	}
	return landing
}
