package game

// Render composites the current world into buf: aliens (dying ones with the
// death sprite), then bullets, then the player. buf is expected to be
// cleared already.
func (g *Game) Render(buf *Buffer) {
	alien := Palette.Alien.Pack()
	for i := range g.Aliens {
		a := &g.Aliens[i]
		if !a.Visible() {
			continue
		}
		buf.Blit(g.Sprites.Get(g.AlienSprite(a)), a.X, a.Y, alien)
	}

	bullet := Palette.Bullet.Pack()
	bs := g.Sprites.Get(SpriteBullet)
	for i := 0; i < g.Bullets.Len(); i++ {
		b := g.Bullets.At(i)
		buf.Blit(bs, b.X, b.Y, bullet)
	}

	buf.Blit(g.Sprites.Get(SpritePlayer), g.Player.X, g.Player.Y, Palette.Player.Pack())
}
