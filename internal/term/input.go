package term

import (
	"github.com/gdamore/tcell/v2"

	"invaders/internal/game"
)

func actionFor(key tcell.Key, r rune) (game.Action, bool) {
	switch key {
	case tcell.KeyLeft:
		return game.ActionLeft, true
	case tcell.KeyRight:
		return game.ActionRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionQuit, true
	case tcell.KeyRune:
		switch r {
		case ' ':
			return game.ActionFire, true
		case 'a', 'h':
			return game.ActionLeft, true
		case 'd', 'l':
			return game.ActionRight, true
		case 'q', 'Q':
			return game.ActionQuit, true
		}
	}
	return 0, false
}

func opposite(a game.Action) game.Action {
	if a == game.ActionLeft {
		return game.ActionRight
	}
	return game.ActionLeft
}

// PollEvents releases movement keys whose hold ran out, then drains queued
// terminal events without blocking.
func (f *Frontend) PollEvents(in *game.InputState) {
	for a, n := range f.held {
		if n <= 1 {
			delete(f.held, a)
			in.Apply(a, false)
			continue
		}
		f.held[a] = n - 1
	}

	for {
		select {
		case ev := <-f.events:
			f.handle(ev, in)
		default:
			return
		}
	}
}

func (f *Frontend) handle(ev tcell.Event, in *game.InputState) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev.Key(), ev.Rune(), in)
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func (f *Frontend) handleKey(key tcell.Key, r rune, in *game.InputState) {
	a, ok := actionFor(key, r)
	if !ok {
		return
	}
	switch a {
	case game.ActionLeft, game.ActionRight:
		// A terminal can't report both directions held, so pressing one
		// releases the other.
		if _, held := f.held[opposite(a)]; held {
			delete(f.held, opposite(a))
			in.Apply(opposite(a), false)
		}
		if _, held := f.held[a]; !held {
			in.Apply(a, true)
		}
		f.held[a] = f.holdTicks
	case game.ActionFire:
		// Fire triggers on release; a terminal key press is a full tap.
		in.Apply(a, true)
		in.Apply(a, false)
	case game.ActionQuit:
		in.Apply(a, true)
	}
}
