package sand

import "testing"

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("Expected 1x1 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Count() != 0 {
		t.Errorf("Expected empty grid, got %d grains", g.Count())
	}
}

func TestGridDeposit(t *testing.T) {
	g := NewGrid(10, 8)

	if !g.Deposit(0, 0, 7) {
		t.Fatal("Expected deposit into the top-left cell to succeed")
	}
	if !g.Deposit(9, 7, 8) {
		t.Fatal("Expected deposit into the bottom-right cell to succeed")
	}
	if g.Deposit(0, 0, 9) {
		t.Error("Deposit into an occupied cell must be a no-op")
	}
	if c, ok := g.Colour(0, 0); !ok || c != 7 {
		t.Errorf("Expected occupied cell to keep colour 7, got %d (ok=%v)", c, ok)
	}
	grain, ok := g.At(9, 7)
	if !ok || grain.Speed() != 1 || grain.Colour() != 8 {
		t.Errorf("Unexpected grain at (9,7): %+v ok=%v", grain, ok)
	}
	if g.Count() != 2 {
		t.Errorf("Expected 2 grains, got %d", g.Count())
	}
}

func TestGridOutOfRangeIsNoOp(t *testing.T) {
	coords := []struct {
		name string
		x, y int
	}{
		{"Negative x", -1, 3},
		{"Negative y", 3, -1},
		{"x at width", 10, 3},
		{"y at height", 3, 8},
		{"Far away", 1 << 20, -(1 << 20)},
	}

	for _, tt := range coords {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(10, 8)
			g.Deposit(3, 3, 5)
			before := g.CopyColours(nil)

			if g.Deposit(tt.x, tt.y, 1) {
				t.Error("Deposit out of range reported success")
			}
			if g.Erase(tt.x, tt.y) {
				t.Error("Erase out of range reported success")
			}
			if _, ok := g.At(tt.x, tt.y); ok {
				t.Error("At out of range reported a grain")
			}
			if _, ok := g.Colour(tt.x, tt.y); ok {
				t.Error("Colour out of range reported a grain")
			}

			after := g.CopyColours(nil)
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("Cell %d changed from %d to %d", i, before[i], after[i])
				}
			}
			if g.Count() != 1 {
				t.Errorf("Expected 1 grain, got %d", g.Count())
			}
		})
	}
}

func TestGridErase(t *testing.T) {
	g := NewGrid(4, 4)
	g.Deposit(1, 2, 3)

	if g.Erase(2, 2) {
		t.Error("Erasing an empty cell must be a no-op")
	}
	if !g.Erase(1, 2) {
		t.Fatal("Expected erase of an occupied cell to succeed")
	}
	if _, ok := g.At(1, 2); ok {
		t.Error("Cell still occupied after erase")
	}
	if g.Count() != 0 {
		t.Errorf("Expected 0 grains, got %d", g.Count())
	}
}

func TestGridCopyColoursAndClear(t *testing.T) {
	g := NewGrid(3, 2)
	g.Deposit(2, 0, 11)
	g.Deposit(0, 1, 12)

	frame := g.CopyColours(make([]Colour, 1))
	want := []Colour{Empty, Empty, 11, 12, Empty, Empty}
	if len(frame) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(frame))
	}
	for i := range want {
		if frame[i] != want[i] {
			t.Errorf("Cell %d: expected %d, got %d", i, want[i], frame[i])
		}
	}

	g.Clear()
	if g.Count() != 0 {
		t.Errorf("Expected empty grid after Clear, got %d", g.Count())
	}
	for i, c := range g.CopyColours(frame) {
		if c != Empty {
			t.Errorf("Cell %d not empty after Clear", i)
		}
	}
}
