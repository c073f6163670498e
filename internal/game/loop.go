package game

import (
	"context"
	"fmt"
)

// Frontend is the presentation and input collaborator. Both methods are
// called on the simulation goroutine.
type Frontend interface {
	// Present displays a finished frame. buf is reused on the next tick.
	Present(buf *Buffer) error
	// PollEvents folds pending device events into in. A frontend that
	// decides the session is over (window closed) clears in.Running.
	PollEvents(in *InputState)
}

// Tick runs one full iteration in the fixed order: clear, wall-clock drop,
// render, present, simulate, poll. A presentation error aborts the tick
// before any simulation state changes.
func (g *Game) Tick(in *InputState, buf *Buffer, fe Frontend) error {
	buf.Clear(Palette.Background.Pack())
	g.DropAliens(g.clock.Now())
	g.Render(buf)
	if err := fe.Present(buf); err != nil {
		return fmt.Errorf("present frame %d: %w", g.Stats.Ticks, err)
	}
	g.Step(in)
	g.Stats.Ticks++
	fe.PollEvents(in)
	return nil
}

// Run ticks g until in.Running is cleared or ctx is done. Both are checked
// only between ticks, so the last tick always completes.
func Run(ctx context.Context, g *Game, in *InputState, fe Frontend) (Stats, error) {
	buf := NewBuffer(g.Width, g.Height)
	for in.Running {
		if err := ctx.Err(); err != nil {
			g.log.Info("session cancelled", "cause", context.Cause(ctx))
			break
		}
		if err := g.Tick(in, buf, fe); err != nil {
			g.log.Error("session aborted", "err", err)
			return g.Stats, err
		}
	}
	g.log.Info("session over",
		"ticks", g.Stats.Ticks,
		"shots", g.Stats.Shots,
		"kills", g.Stats.Kills,
		"drops", g.Stats.Drops,
		"aliens_left", g.LiveAliens())
	return g.Stats, nil
}
