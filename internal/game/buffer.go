package game

import "fmt"

// Buffer is the software framebuffer the compositor draws into. Row 0 is
// the bottom of the presented image.
type Buffer struct {
	Width, Height int
	Pixels        []uint32
}

func NewBuffer(w, h int) *Buffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("buffer: invalid size %dx%d", w, h))
	}
	return &Buffer{Width: w, Height: h, Pixels: make([]uint32, w*h)}
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c uint32) {
	for i := range b.Pixels {
		b.Pixels[i] = c
	}
}

// At returns the pixel at (x, y). Coordinates must be in range.
func (b *Buffer) At(x, y int) uint32 {
	return b.Pixels[y*b.Width+x]
}

// Blit writes c wherever s is set. Mask row 0 lands on buffer row
// y+Height-1, so sprites are drawn bottom-up from y. Cells falling outside
// the buffer are skipped.
func (b *Buffer) Blit(s *Sprite, x, y int, c uint32) {
	for xi := 0; xi < s.Width; xi++ {
		px := x + xi
		if px < 0 || px >= b.Width {
			continue
		}
		for yi := 0; yi < s.Height; yi++ {
			py := y + s.Height - 1 - yi
			if py < 0 || py >= b.Height || !s.Set(xi, yi) {
				continue
			}
			b.Pixels[py*b.Width+px] = c
		}
	}
}
