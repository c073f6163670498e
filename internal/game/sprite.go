package game

import "fmt"

// Sprite is an immutable boolean mask, row-major, origin top-left.
// It doubles as the collision shape (its full bounding box).
type Sprite struct {
	Width, Height int
	Mask          []bool
}

// NewSprite wraps mask as a w x h sprite. A size mismatch is a
// construction-time error and panics.
func NewSprite(w, h int, mask []bool) Sprite {
	if w <= 0 || h <= 0 || len(mask) != w*h {
		panic(fmt.Sprintf("sprite: %dx%d does not match mask of %d cells", w, h, len(mask)))
	}
	return Sprite{Width: w, Height: h, Mask: mask}
}

// ParseSprite builds a sprite from ASCII art rows: '@' is set, anything
// else is clear. All rows must have the same length.
func ParseSprite(rows ...string) Sprite {
	if len(rows) == 0 {
		panic("sprite: no rows")
	}
	w := len(rows[0])
	mask := make([]bool, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("sprite: row %d has width %d, want %d", i, len(row), w))
		}
		for j := 0; j < len(row); j++ {
			mask = append(mask, row[j] == '@')
		}
	}
	return NewSprite(w, len(rows), mask)
}

// Set reports whether the mask cell at column x, row y is opaque.
func (s *Sprite) Set(x, y int) bool {
	return s.Mask[y*s.Width+x]
}

// SpriteID addresses a sprite inside a SpriteSet.
type SpriteID uint8

const (
	SpriteAlienA0 SpriteID = iota
	SpriteAlienA1
	SpriteAlienB0
	SpriteAlienB1
	SpriteAlienC0
	SpriteAlienC1
	SpriteAlienDeath
	SpritePlayer
	SpriteBullet

	spriteCount
)

var spriteNames = [spriteCount]string{
	"alien-a0", "alien-a1", "alien-b0", "alien-b1", "alien-c0", "alien-c1",
	"alien-death", "player", "bullet",
}

func (id SpriteID) String() string {
	if id >= spriteCount {
		return fmt.Sprintf("sprite(%d)", uint8(id))
	}
	return spriteNames[id]
}

// SpriteSet is the arena of every mask the game draws. It is loaded once
// and shared read-only; entities refer to it by SpriteID.
type SpriteSet struct {
	sprites [spriteCount]Sprite
}

// NewSpriteSet copies the given sprites into an arena. Every slot must be
// filled.
func NewSpriteSet(sprites map[SpriteID]Sprite) *SpriteSet {
	ss := &SpriteSet{}
	for id := SpriteID(0); id < spriteCount; id++ {
		s, ok := sprites[id]
		if !ok {
			panic(fmt.Sprintf("sprite set: missing %s", id))
		}
		ss.sprites[id] = s
	}
	return ss
}

// Get returns the sprite for id.
func (ss *SpriteSet) Get(id SpriteID) *Sprite {
	return &ss.sprites[id]
}
