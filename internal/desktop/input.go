package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"invaders/internal/game"
)

var keyActions = map[glfw.Key]game.Action{
	glfw.KeyLeft:   game.ActionLeft,
	glfw.KeyRight:  game.ActionRight,
	glfw.KeySpace:  game.ActionFire,
	glfw.KeyEscape: game.ActionQuit,
}

func (f *Frontend) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if f.in == nil || action == glfw.Repeat {
		return
	}
	a, ok := keyActions[key]
	if !ok {
		return
	}
	f.in.Apply(a, action == glfw.Press)
}
