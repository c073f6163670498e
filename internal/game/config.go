package game

import "time"

// Buffer dimensions (in buffer pixels). Fixed for the whole session.
const (
	BufferWidth  = 600
	BufferHeight = 400
)

// Alien grid layout.
const (
	AlienRows    = 6
	AlienColumns = 11
	AlienCount   = AlienRows * AlienColumns

	alienRowSpacing = 17
	alienGridBottom = 128
	alienGridLeft   = 10
)

// Bullets.
const (
	MaxBullets  = 128
	BulletSpeed = 2 // buffer pixels per tick, positive = away from the player
)

// Player.
const (
	PlayerSpeed  = 2 // buffer pixels per tick per unit of move intent
	PlayerStartY = 32
	PlayerLives  = 3
)

// Lifecycle timing.
const (
	DeathCounterStart  = 10 // ticks a killed alien stays visible
	AlienFrameDuration = 10 // ticks per animation frame
)

// Wall-clock alien drop. Driven by real elapsed time, not tick count.
const (
	AlienDropInterval = 3 * time.Second
	AlienDropStep     = 5
)
