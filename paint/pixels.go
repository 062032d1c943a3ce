package paint

import (
	"encoding/binary"

	"FallingSand/sand"
)

// Colourise writes one RGBA pixel per cell of src into dst, using background
// for empty cells. dst must hold at least 4*len(src) bytes.
func Colourise(dst []byte, src []sand.Colour, background sand.Colour) {
	colouriseRange(dst, src, background, 0, len(src))
}

// colouriseRange converts cells [start, end).
func colouriseRange(dst []byte, src []sand.Colour, background sand.Colour, start, end int) {
	for i := start; i < end; i++ {
		c := src[i]
		if c == sand.Empty {
			c = background
		}
		binary.LittleEndian.PutUint32(dst[i*4:], uint32(c))
	}
}
