package sand

import "testing"

func TestDepositRegion(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy int
		radius int
		want   int
	}{
		{"Centred square", 5, 5, 2, 16},
		{"Clipped at origin", 0, 0, 3, 9},
		{"Clipped at far corner", 9, 9, 3, 16},
		{"Zero radius", 5, 5, 0, 0},
		{"Negative radius", 5, 5, -4, 0},
		{"Completely off grid", -50, -50, 20, 0},
		{"Covers whole grid", 5, 5, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(10, 10)
			got := DepositRegion(g, tt.cx, tt.cy, tt.radius, 4)
			if got != tt.want {
				t.Errorf("Expected %d grains, got %d", tt.want, got)
			}
			if g.Count() != tt.want {
				t.Errorf("Grid count %d disagrees with %d", g.Count(), tt.want)
			}
		})
	}
}

func TestDepositRegionHalfOpen(t *testing.T) {
	g := NewGrid(10, 10)
	DepositRegion(g, 5, 5, 2, 4)

	for _, p := range [][2]int{{3, 3}, {6, 6}, {3, 6}, {6, 3}} {
		if _, ok := g.At(p[0], p[1]); !ok {
			t.Errorf("Expected (%d,%d) inside the brush", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{7, 5}, {5, 7}, {2, 5}, {5, 2}} {
		if _, ok := g.At(p[0], p[1]); ok {
			t.Errorf("Expected (%d,%d) outside the brush", p[0], p[1])
		}
	}
}

func TestDepositRegionSkipsOccupied(t *testing.T) {
	g := NewGrid(10, 10)
	g.Deposit(5, 5, 9)
	if got := DepositRegion(g, 5, 5, 1, 4); got != 3 {
		t.Errorf("Expected 3 new grains, got %d", got)
	}
	if c, _ := g.Colour(5, 5); c != 9 {
		t.Errorf("Existing grain was overwritten with %d", c)
	}
}

func TestPaintRegion(t *testing.T) {
	g := NewGrid(4, 4)
	PaintRegion(g, 2, 2, 1, func(x, y int) Colour { return Colour(100 + y*4 + x) })

	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		want := Colour(100 + p[1]*4 + p[0])
		if c, ok := g.Colour(p[0], p[1]); !ok || c != want {
			t.Errorf("(%d,%d): expected %d, got %d", p[0], p[1], want, c)
		}
	}
}

func TestEraseRegion(t *testing.T) {
	g := NewGrid(10, 10)
	DepositRegion(g, 5, 5, 5, 1)

	if got := EraseRegion(g, 0, 0, 2); got != 4 {
		t.Errorf("Expected 4 grains removed, got %d", got)
	}
	if got := EraseRegion(g, 0, 0, 2); got != 0 {
		t.Errorf("Erasing an empty region removed %d grains", got)
	}
	if got := EraseRegion(g, 20, 20, 5); got != 0 {
		t.Errorf("Off-grid erase removed %d grains", got)
	}
	if g.Count() != 96 {
		t.Errorf("Expected 96 grains left, got %d", g.Count())
	}
}
