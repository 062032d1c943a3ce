package sand

// slot is one grid cell. Grains are stored inline so the physics scan walks a
// single contiguous buffer.
type slot struct {
	grain Grain
	full  bool
}

// Grid is a fixed width×height surface where every cell is either empty or
// holds exactly one grain. Cells are stored row-major at y*width+x.
//
// A Grid has no locking of its own; the owner must serialize access.
type Grid struct {
	width, height int
	cells         []slot
	count         int
}

// NewGrid allocates an empty grid. Dimensions below one are raised to one.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]slot, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Count returns the number of occupied cells.
func (g *Grid) Count() int { return g.count }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Deposit places a new grain at (x, y) when the cell exists and is empty. It
// reports whether a grain was created; occupied or out-of-range cells are left
// alone.
func (g *Grid) Deposit(x, y int, colour Colour) bool {
	if !g.InBounds(x, y) {
		return false
	}
	cell := &g.cells[y*g.width+x]
	if cell.full {
		return false
	}
	*cell = slot{grain: NewGrain(colour), full: true}
	g.count++
	return true
}

// Erase empties (x, y) and reports whether a grain was removed.
func (g *Grid) Erase(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	cell := &g.cells[y*g.width+x]
	if !cell.full {
		return false
	}
	*cell = slot{}
	g.count--
	return true
}

// At returns the grain at (x, y). The boolean is false for empty cells and
// coordinates outside the grid.
func (g *Grid) At(x, y int) (Grain, bool) {
	if !g.InBounds(x, y) {
		return Grain{}, false
	}
	cell := g.cells[y*g.width+x]
	return cell.grain, cell.full
}

// Colour returns the colour shown at (x, y), or false when there is nothing to draw.
func (g *Grid) Colour(x, y int) (Colour, bool) {
	grain, ok := g.At(x, y)
	if !ok {
		return Empty, false
	}
	return grain.colour, true
}

// Clear removes every grain.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = slot{}
	}
	g.count = 0
}

// CopyColours writes the colour of every cell into dst, growing it when
// needed, and returns the filled slice. Empty cells are written as Empty.
func (g *Grid) CopyColours(dst []Colour) []Colour {
	size := len(g.cells)
	if cap(dst) < size {
		dst = make([]Colour, size)
	}
	dst = dst[:size]
	for i, cell := range g.cells {
		if cell.full {
			dst[i] = cell.grain.colour
		} else {
			dst[i] = Empty
		}
	}
	return dst
}

// get returns the cell at a flat index. Callers are responsible for bounds.
func (g *Grid) get(idx int) *slot {
	return &g.cells[idx]
}

// move transfers the grain at src into the empty cell dst.
func (g *Grid) move(src, dst int) {
	g.cells[dst] = g.cells[src]
	g.cells[src] = slot{}
}
