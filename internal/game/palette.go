package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Pack returns the colour as a buffer pixel: r<<24 | g<<16 | b<<8 | 0xFF.
// This matches an RGBA/UNSIGNED_INT_8_8_8_8 texture upload.
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | 0xFF
}

// Unpack is the inverse of Pack. Alpha is dropped.
func Unpack(px uint32) RGB {
	return RGB{R: uint8(px >> 24), G: uint8(px >> 16), B: uint8(px >> 8)}
}

var Palette = struct {
	Background RGB
	Alien      RGB
	Bullet     RGB
	Player     RGB
}{
	Background: RGB{R: 0, G: 128, B: 0},
	Alien:      RGB{R: 128, G: 0, B: 0},
	Bullet:     RGB{R: 128, G: 0, B: 0},
	Player:     RGB{R: 128, G: 0, B: 0},
}
