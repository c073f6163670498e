// Package term presents frames in a terminal using half-block cells and
// turns key presses into the game's input intent.
package term

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"invaders/internal/game"
)

const (
	DefaultFPS       = 60
	DefaultHoldTicks = 20
	eventQueueSize   = 64
)

type Config struct {
	FPS int
	// HoldTicks is how long a movement key counts as held after its last
	// press or auto-repeat. Terminals never report key releases.
	HoldTicks int
	// Background is the buffer colour treated as empty when sampling.
	Background uint32
	Logger     *slog.Logger
	// Screen overrides the real terminal, e.g. with a simulation screen.
	Screen tcell.Screen
}

type Frontend struct {
	ctx     context.Context
	screen  tcell.Screen
	events  chan tcell.Event
	limiter *rate.Limiter
	log     *slog.Logger

	bg        uint32
	holdTicks int
	held      map[game.Action]int // ticks left before an automatic release
}

// New takes over the terminal. ctx bounds frame pacing waits; Close must be
// called to restore the terminal.
func New(ctx context.Context, cfg Config) (*Frontend, error) {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.HoldTicks <= 0 {
		cfg.HoldTicks = DefaultHoldTicks
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	screen := cfg.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("new screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	f := &Frontend{
		ctx:       ctx,
		screen:    screen,
		events:    make(chan tcell.Event, eventQueueSize),
		limiter:   rate.NewLimiter(rate.Limit(cfg.FPS), 1),
		log:       cfg.Logger,
		bg:        cfg.Background,
		holdTicks: cfg.HoldTicks,
		held:      make(map[game.Action]int),
	}
	go f.readEvents()

	w, h := screen.Size()
	f.log.Info("terminal ready", "cols", w, "rows", h, "fps", cfg.FPS)
	return f, nil
}

// readEvents forwards terminal events until the screen is finalised.
func (f *Frontend) readEvents() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case f.events <- ev:
		default:
			f.log.Debug("event queue full, dropping event")
		}
	}
}

func (f *Frontend) Close() {
	f.screen.Fini()
}
