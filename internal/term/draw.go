package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"invaders/internal/game"
)

const halfBlock = '▀'

// blockSize returns how many buffer pixels one terminal half-cell covers so
// that the whole buffer fits in cols x rows cells.
func blockSize(bufW, bufH, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 0
	}
	s := (bufW + cols - 1) / cols
	if sy := (bufH + 2*rows - 1) / (2 * rows); sy > s {
		s = sy
	}
	return max(s, 1)
}

// sample returns the colour of the s x s block whose top-left corner is
// (bx, by) in top-down image space. The first non-background pixel wins so
// thin sprites survive downscaling.
func sample(buf *game.Buffer, bx, by, s int, bg uint32) uint32 {
	for dy := 0; dy < s; dy++ {
		iy := by + dy
		if iy >= buf.Height {
			break
		}
		row := buf.Height - 1 - iy
		for dx := 0; dx < s; dx++ {
			ix := bx + dx
			if ix >= buf.Width {
				break
			}
			if px := buf.At(ix, row); px != bg {
				return px
			}
		}
	}
	return bg
}

func cellColor(px uint32) tcell.Color {
	c := game.Unpack(px)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present draws buf on the screen, buffer row 0 on the bottom, then waits
// for the next frame slot.
func (f *Frontend) Present(buf *game.Buffer) error {
	cols, rows := f.screen.Size()
	s := blockSize(buf.Width, buf.Height, cols, rows)
	if s == 0 {
		return fmt.Errorf("terminal has no drawable area (%dx%d)", cols, rows)
	}
	imgW := (buf.Width + s - 1) / s
	imgH := (buf.Height + s - 1) / s

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := tcell.ColorBlack, tcell.ColorBlack
			if cx < imgW {
				if r := 2 * cy; r < imgH {
					top = cellColor(sample(buf, cx*s, r*s, s, f.bg))
				}
				if r := 2*cy + 1; r < imgH {
					bottom = cellColor(sample(buf, cx*s, r*s, s, f.bg))
				}
			}
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			f.screen.SetContent(cx, cy, halfBlock, nil, st)
		}
	}

	// A cancelled context ends the session at the next tick boundary.
	if err := f.limiter.Wait(f.ctx); err != nil && f.ctx.Err() == nil {
		return fmt.Errorf("frame pacing: %w", err)
	}
	f.screen.Show()
	return nil
}
