package game

import (
	"log/slog"
	"time"
)

// Stats summarises a session.
type Stats struct {
	Ticks uint64
	Shots int
	Kills int
	Drops int
}

// Game owns the whole mutable world. It is driven from a single goroutine
// and needs no locking.
type Game struct {
	Width, Height int

	Sprites    *SpriteSet
	Animations [liveAlienTypes]Animation

	// Aliens is laid out row-major in grid creation order, which is also
	// the collision tie-break order. Slots are never compacted.
	Aliens  [AlienCount]Alien
	Bullets *BulletPool
	Player  Player

	Events *EventBus
	Stats  Stats

	clock    Clock
	lastDrop time.Time
	log      *slog.Logger
}

type Option func(*Game)

// WithClock replaces the monotonic clock used for the alien drop.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger enables logging. By default the game logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGame lays out a fresh session using sprites from ss.
func NewGame(ss *SpriteSet, opts ...Option) *Game {
	g := &Game{
		Width:   BufferWidth,
		Height:  BufferHeight,
		Sprites: ss,
		Bullets: NewBulletPool(),
		Events:  NewEventBus(),
		clock:   MonotonicClock{},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(g)
	}

	g.Player = Player{X: BufferWidth/2 - 5, Y: PlayerStartY, Lives: PlayerLives}

	for i := 0; i < liveAlienTypes; i++ {
		first := SpriteAlienA0 + SpriteID(2*i)
		g.Animations[i] = NewAnimation(AlienFrameDuration, true, first, first+1)
	}
	g.initAliens()

	g.log.Info("session ready",
		"buffer", [2]int{g.Width, g.Height},
		"aliens", len(g.Aliens),
		"max_bullets", MaxBullets)
	return g
}

func (g *Game) initAliens() {
	death := g.Sprites.Get(SpriteAlienDeath)
	for yi := 0; yi < AlienRows; yi++ {
		t := AlienType(min((AlienRows-yi)/2+1, liveAlienTypes))
		frame := g.Sprites.Get(g.Animations[t-1].Frames[0])
		for xi := 0; xi < AlienColumns; xi++ {
			g.Aliens[yi*AlienColumns+xi] = Alien{
				X:            BufferWidth/AlienColumns*xi + alienGridLeft + (death.Width-frame.Width)/2,
				Y:            alienRowSpacing*yi + alienGridBottom,
				Type:         t,
				DeathCounter: DeathCounterStart,
			}
		}
	}
}

// AlienSprite returns the sprite a currently draws and collides with.
func (g *Game) AlienSprite(a *Alien) SpriteID {
	if !a.Alive() {
		return SpriteAlienDeath
	}
	return g.Animations[a.Type-1].CurrentFrame()
}

// LiveAliens counts aliens that can still be hit.
func (g *Game) LiveAliens() int {
	n := 0
	for i := range g.Aliens {
		if g.Aliens[i].Alive() {
			n++
		}
	}
	return n
}

func (g *Game) emit(e Event) {
	e.Tick = g.Stats.Ticks
	switch e.Type {
	case EventBulletFired:
		g.Stats.Shots++
	case EventAlienKilled:
		g.Stats.Kills++
	case EventAliensDropped:
		g.Stats.Drops++
	}
	g.Events.Emit(e)
}
