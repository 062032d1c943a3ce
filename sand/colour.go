package sand

// Colour is a packed colour value carried by each grain. The simulation passes
// it through untouched; presenters decide how the channels are laid out.
type Colour uint32

// Empty is the snapshot value of a cell that holds no grain. Grain colours are
// expected to carry a non-zero alpha channel so they never collide with it.
const Empty Colour = 0
