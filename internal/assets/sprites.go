// Package assets holds the literal sprite masks. They are parsed once and
// never modified.
package assets

import "invaders/internal/game"

var alienA0 = []string{
	"...@@...",
	"..@@@@..",
	".@@@@@@.",
	"@@.@@.@@",
	"@@@@@@@@",
	".@.@@.@.",
	"@......@",
	".@....@.",
}

var alienA1 = []string{
	"...@@...",
	"..@@@@..",
	".@@@@@@.",
	"@@.@@.@@",
	"@@@@@@@@",
	"..@..@..",
	".@.@@.@.",
	"@.@..@.@",
}

var alienB0 = []string{
	"..@.....@..",
	"...@...@...",
	"..@@@@@@@..",
	".@@.@@@.@@.",
	"@@@@@@@@@@@",
	"@.@@@@@@@.@",
	"@.@.....@.@",
	"...@@.@@...",
}

var alienB1 = []string{
	"..@.....@..",
	"@..@...@..@",
	"@.@@@@@@@.@",
	"@@@.@@@.@@@",
	"@@@@@@@@@@@",
	".@@@@@@@@@.",
	"..@.....@..",
	".@.......@.",
}

var alienC0 = []string{
	"....@@@@....",
	".@@@@@@@@@@.",
	"@@@@@@@@@@@@",
	"@@@..@@..@@@",
	"@@@@@@@@@@@@",
	"...@@..@@...",
	"..@@.@@.@@..",
	"@@........@@",
}

var alienC1 = []string{
	"....@@@@....",
	".@@@@@@@@@@.",
	"@@@@@@@@@@@@",
	"@@@..@@..@@@",
	"@@@@@@@@@@@@",
	"..@@@..@@@..",
	".@@..@@..@@.",
	"..@@....@@..",
}

var alienDeath = []string{
	".@..@...@..@.",
	"..@..@.@..@..",
	"...@.....@...",
	"@@.........@@",
	"...@.....@...",
	"..@..@.@..@..",
	".@..@...@..@.",
}

var player = []string{
	".....@.....",
	"....@@@....",
	"....@@@....",
	".@@@@@@@@@.",
	"@@@@@@@@@@@",
	"@@@@@@@@@@@",
	"@@@@@@@@@@@",
}

var bullet = []string{
	"@",
	"@",
	"@",
}

// Load parses every mask into a sprite arena.
func Load() *game.SpriteSet {
	return game.NewSpriteSet(map[game.SpriteID]game.Sprite{
		game.SpriteAlienA0:    game.ParseSprite(alienA0...),
		game.SpriteAlienA1:    game.ParseSprite(alienA1...),
		game.SpriteAlienB0:    game.ParseSprite(alienB0...),
		game.SpriteAlienB1:    game.ParseSprite(alienB1...),
		game.SpriteAlienC0:    game.ParseSprite(alienC0...),
		game.SpriteAlienC1:    game.ParseSprite(alienC1...),
		game.SpriteAlienDeath: game.ParseSprite(alienDeath...),
		game.SpritePlayer:     game.ParseSprite(player...),
		game.SpriteBullet:     game.ParseSprite(bullet...),
	})
}
