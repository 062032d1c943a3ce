package paint

import (
	"sync"

	"FallingSand/sand"
)

// rowBand is a half-open range of rows handled by one worker.
type rowBand struct{ start, end int }

// Rasterizer converts frames to RGBA pixels with a fixed set of worker
// goroutines. Rows are cut into bands and dealt out round robin.
type Rasterizer struct {
	width, height int
	background    sand.Colour

	mu      sync.Mutex
	cond    *sync.Cond
	step    int
	pending int
	closed  bool
	bands   [][]rowBand
	src     []sand.Colour
	dst     []byte
}

// NewRasterizer starts workers for a width×height frame. bandRows sets how
// many rows a band covers; values below one use a single row.
func NewRasterizer(width, height, workers, bandRows int, background sand.Colour) *Rasterizer {
	r := &Rasterizer{
		width:      width,
		height:     height,
		background: background,
		bands:      assignRowBands(workers, height, bandRows),
	}
	r.cond = sync.NewCond(&r.mu)
	for i := range r.bands {
		go r.workerLoop(i)
	}
	return r
}

// Workers returns the number of worker goroutines.
func (r *Rasterizer) Workers() int { return len(r.bands) }

// Render fills dst with the pixels of src and blocks until every band is done.
// After Close it renders on the calling goroutine.
func (r *Rasterizer) Render(dst []byte, src []sand.Colour) {
	size := r.width * r.height
	if len(src) < size || len(dst) < size*4 {
		return
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		colouriseRange(dst, src, r.background, 0, size)
		return
	}
	r.src, r.dst = src, dst
	r.pending = len(r.bands)
	r.step++
	r.cond.Broadcast()
	for r.pending > 0 {
		r.cond.Wait()
	}
	r.src, r.dst = nil, nil
	r.mu.Unlock()
}

// Close stops the workers. It must not be called while a Render is in flight.
func (r *Rasterizer) Close() {
	r.mu.Lock()
	r.closed = true
	r.cond.Broadcast()
	r.mu.Unlock()
}

// workerLoop renders the bands assigned to one worker each time the step
// counter moves.
func (r *Rasterizer) workerLoop(index int) {
	lastStep := 0
	r.mu.Lock()
	for {
		for r.step == lastStep && !r.closed {
			r.cond.Wait()
		}
		if r.closed {
			r.mu.Unlock()
			return
		}
		lastStep = r.step
		bands := r.bands[index]
		src, dst := r.src, r.dst
		r.mu.Unlock()

		for _, b := range bands {
			colouriseRange(dst, src, r.background, b.start*r.width, b.end*r.width)
		}

		r.mu.Lock()
		r.pending--
		if r.pending == 0 {
			r.cond.Broadcast()
		}
	}
}

// assignRowBands cuts height rows into bands of bandRows and distributes them
// across workers in round robin fashion.
func assignRowBands(workers, height, bandRows int) [][]rowBand {
	if workers < 1 {
		workers = 1
	}
	if bandRows < 1 {
		bandRows = 1
	}
	bands := make([][]rowBand, workers)
	idx := 0
	for start := 0; start < height; start += bandRows {
		end := min(start+bandRows, height)
		bands[idx%workers] = append(bands[idx%workers], rowBand{start: start, end: end})
		idx++
	}
	return bands
}
