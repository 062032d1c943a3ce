package main

import (
	"testing"

	"FallingSand/paint"
	"FallingSand/sand"
)

func TestGenerateDunes(t *testing.T) {
	grid := sand.NewGrid(60, 100)
	placed := generateDunes(grid, paint.NewPalette(7))
	if placed != grid.Count() {
		t.Fatalf("Reported %d grains, grid holds %d", placed, grid.Count())
	}
	minHeight := int(100 * duneMinFraction)
	maxHeight := int(100 * duneMaxFraction)
	for x := 0; x < grid.Width(); x++ {
		height := 0
		for y := grid.Height() - 1; y >= 0; y-- {
			if _, ok := grid.At(x, y); !ok {
				break
			}
			height++
		}
		if height < minHeight || height > maxHeight {
			t.Errorf("Column %d height %d outside [%d, %d]", x, height, minHeight, maxHeight)
		}
		for y := grid.Height() - 1 - height; y >= 0; y-- {
			if _, ok := grid.At(x, y); ok {
				t.Fatalf("Column %d has a floating grain at row %d", x, y)
			}
		}
	}
}
