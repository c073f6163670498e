package game

import "fmt"

// AlienType selects the animation an alien is drawn with. AlienDead is
// terminal.
type AlienType uint8

const (
	AlienDead AlienType = iota
	AlienTypeA
	AlienTypeB
	AlienTypeC
)

// liveAlienTypes is the number of animated alien variants.
const liveAlienTypes = 3

func (t AlienType) String() string {
	switch t {
	case AlienDead:
		return "dead"
	case AlienTypeA:
		return "A"
	case AlienTypeB:
		return "B"
	case AlienTypeC:
		return "C"
	}
	return fmt.Sprintf("AlienType(%d)", uint8(t))
}

type Alien struct {
	X, Y         int
	Type         AlienType
	DeathCounter int // ticks left on screen once dead
}

// Alive reports whether the alien can still be hit.
func (a *Alien) Alive() bool { return a.Type != AlienDead }

// Visible reports whether the alien is still part of the drawn world.
// Dead aliens stay visible until their death counter runs out.
func (a *Alien) Visible() bool { return a.Type != AlienDead || a.DeathCounter > 0 }

type Bullet struct {
	X, Y int
	Dir  int // vertical step per tick
}

type Player struct {
	X, Y  int
	Lives int
}

// BulletPool holds the live bullets. Order is not stable: removal swaps the
// last bullet into the freed slot.
type BulletPool struct {
	b []Bullet
}

func NewBulletPool() *BulletPool {
	return &BulletPool{b: make([]Bullet, 0, MaxBullets)}
}

func (p *BulletPool) Len() int { return len(p.b) }

func (p *BulletPool) Full() bool { return len(p.b) >= MaxBullets }

// At returns a pointer into the pool, valid until the next Spawn or Remove.
func (p *BulletPool) At(i int) *Bullet { return &p.b[i] }

// Spawn appends b. It is a no-op returning false when the pool is full.
func (p *BulletPool) Spawn(b Bullet) bool {
	if p.Full() {
		return false
	}
	p.b = append(p.b, b)
	return true
}

// Remove drops bullet i by moving the last bullet into its slot.
func (p *BulletPool) Remove(i int) {
	last := len(p.b) - 1
	p.b[i] = p.b[last]
	p.b = p.b[:last]
}
