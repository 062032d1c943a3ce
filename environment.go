package main

import (
	"FallingSand/paint"
	"FallingSand/sand"
)

// generateDunes lays a noise-shaped floor of shaded grains along the bottom
// of the grid and returns how many grains it placed.
func generateDunes(grid *sand.Grid, palette *paint.Palette) int {
	width, height := grid.Width(), grid.Height()
	minHeight := int(float64(height) * duneMinFraction)
	maxHeight := int(float64(height) * duneMaxFraction)
	placed := 0
	for x, h := range palette.Heights(width, minHeight, maxHeight) {
		for y := height - 1; y >= height-h && y >= 0; y-- {
			if grid.Deposit(x, y, palette.Shade(x, y)) {
				placed++
			}
		}
	}
	return placed
}
