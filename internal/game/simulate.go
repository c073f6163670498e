package game

import "time"

// DropAliens moves the whole grid one step toward the player once
// AlienDropInterval of real time has passed since the previous drop. The
// first call only records the reference time.
func (g *Game) DropAliens(now time.Time) {
	if g.lastDrop.IsZero() {
		g.lastDrop = now
		return
	}
	if now.Sub(g.lastDrop) < AlienDropInterval {
		return
	}
	g.lastDrop = now
	for i := range g.Aliens {
		g.Aliens[i].Y -= AlienDropStep
	}
	g.emit(Event{Type: EventAliensDropped, Y: g.Aliens[0].Y, Data: AlienDropStep})
}

// Step advances everything that runs after presentation: animation clocks,
// death counters, bullets, the player and the fire edge.
func (g *Game) Step(in *InputState) {
	for i := range g.Animations {
		g.Animations[i].Advance()
	}
	g.tickDeathCounters()
	g.updateBullets()
	g.movePlayer(in.MoveDir)
	if in.ConsumeFire() {
		g.fire()
	}
}

func (g *Game) tickDeathCounters() {
	for i := range g.Aliens {
		a := &g.Aliens[i]
		if a.Alive() || a.DeathCounter == 0 {
			continue
		}
		a.DeathCounter--
		if a.DeathCounter == 0 {
			g.emit(Event{Type: EventAlienRemoved, X: a.X, Y: a.Y, Data: i})
		}
	}
}

func (g *Game) updateBullets() {
	bs := g.Sprites.Get(SpriteBullet)
	for bi := 0; bi < g.Bullets.Len(); {
		b := g.Bullets.At(bi)
		b.Y += b.Dir
		if b.Y < bs.Height || b.Y >= g.Height {
			x, y := b.X, b.Y
			g.Bullets.Remove(bi)
			g.emit(Event{Type: EventBulletExpired, X: x, Y: y, Data: g.Bullets.Len()})
			continue
		}
		if ai := g.hitAlien(bs, b); ai >= 0 {
			g.killAlien(ai)
			g.Bullets.Remove(bi)
			continue
		}
		bi++
	}
}

// hitAlien returns the index of the first live alien, in storage order,
// whose current sprite box overlaps b, or -1.
func (g *Game) hitAlien(bs *Sprite, b *Bullet) int {
	for i := range g.Aliens {
		a := &g.Aliens[i]
		if !a.Alive() {
			continue
		}
		if Overlaps(bs, b.X, b.Y, g.Sprites.Get(g.AlienSprite(a)), a.X, a.Y) {
			return i
		}
	}
	return -1
}

func (g *Game) killAlien(i int) {
	a := &g.Aliens[i]
	frame := g.Sprites.Get(g.AlienSprite(a))
	death := g.Sprites.Get(SpriteAlienDeath)
	a.Type = AlienDead
	// The death sprite is wider; shift left so it stays centred.
	a.X -= (death.Width - frame.Width) / 2
	g.emit(Event{Type: EventAlienKilled, X: a.X, Y: a.Y, Data: i})
}

func (g *Game) movePlayer(dir int) {
	d := PlayerSpeed * dir
	if d == 0 {
		return
	}
	w := g.Sprites.Get(SpritePlayer).Width
	switch {
	case g.Player.X+w+d >= g.Width:
		g.Player.X = g.Width - w
	case g.Player.X+d <= 0:
		g.Player.X = 0
	default:
		g.Player.X += d
	}
}

func (g *Game) fire() {
	ps := g.Sprites.Get(SpritePlayer)
	b := Bullet{X: g.Player.X + ps.Width/2, Y: g.Player.Y + ps.Height, Dir: BulletSpeed}
	if !g.Bullets.Spawn(b) {
		g.log.Debug("bullet pool full", "live", g.Bullets.Len())
		return
	}
	g.emit(Event{Type: EventBulletFired, X: b.X, Y: b.Y, Data: g.Bullets.Len()})
}
