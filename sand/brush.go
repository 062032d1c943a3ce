package sand

// ColourFunc picks the colour of a grain deposited at (x, y).
type ColourFunc func(x, y int) Colour

// DepositRegion fills every empty cell of the square [cx-radius, cx+radius) ×
// [cy-radius, cy+radius), clipped to the grid, with grains of one colour. It
// returns the number of grains created.
func DepositRegion(g *Grid, cx, cy, radius int, colour Colour) int {
	return PaintRegion(g, cx, cy, radius, func(int, int) Colour { return colour })
}

// PaintRegion is DepositRegion with a per-cell colour.
func PaintRegion(g *Grid, cx, cy, radius int, paint ColourFunc) int {
	minX, maxX, minY, maxY := g.region(cx, cy, radius)
	created := 0
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if g.Deposit(x, y, paint(x, y)) {
				created++
			}
		}
	}
	return created
}

// EraseRegion empties the same square DepositRegion would fill and returns the
// number of grains removed.
func EraseRegion(g *Grid, cx, cy, radius int) int {
	minX, maxX, minY, maxY := g.region(cx, cy, radius)
	removed := 0
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if g.Erase(x, y) {
				removed++
			}
		}
	}
	return removed
}

// region clamps a brush square to the grid. The bounds are half-open.
func (g *Grid) region(cx, cy, radius int) (minX, maxX, minY, maxY int) {
	if radius <= 0 {
		return 0, 0, 0, 0
	}
	minX = max(0, cx-radius)
	maxX = min(g.width, cx+radius)
	minY = max(0, cy-radius)
	maxY = min(g.height, cy+radius)
	return minX, maxX, minY, maxY
}
