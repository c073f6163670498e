package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"invaders/internal/assets"
	"invaders/internal/desktop"
	"invaders/internal/game"
	"invaders/internal/term"
)

// GLFW and OpenGL calls must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

type options struct {
	frontend string
	scale    int
	fps      int
	logLevel string
}

// parseOptions reads flags; INVADERS_* environment variables replace the
// built-in defaults, explicit flags win over both.
func parseOptions(args []string) (options, error) {
	var o options
	flags := flag.NewFlagSet("invaders", flag.ContinueOnError)
	flags.StringVar(&o.frontend, "frontend", envString("INVADERS_FRONTEND", "desktop"), "presentation: desktop or term")
	flags.IntVar(&o.scale, "scale", envInt("INVADERS_SCALE", 2), "window pixels per buffer pixel (desktop)")
	flags.IntVar(&o.fps, "fps", envInt("INVADERS_FPS", term.DefaultFPS), "frame rate (term)")
	flags.StringVar(&o.logLevel, "log-level", envString("INVADERS_LOG_LEVEL", "info"), "debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return o, err
	}
	switch o.frontend {
	case "desktop", "term":
	default:
		return o, fmt.Errorf("unknown frontend %q", o.frontend)
	}
	return o, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

type frontend interface {
	game.Frontend
	Close()
}

func openFrontend(ctx context.Context, o options, log *slog.Logger) (frontend, error) {
	if o.frontend == "term" {
		return term.New(ctx, term.Config{
			FPS:        o.fps,
			Background: game.Palette.Background.Pack(),
			Logger:     log,
		})
	}
	return desktop.New(desktop.Config{
		Width:  game.BufferWidth,
		Height: game.BufferHeight,
		Scale:  o.scale,
		Logger: log,
	})
}

// loadDotEnv fills unset INVADERS_* variables from ./.env when present.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func run() error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		return err
	}
	log, err := newLogger(o.logLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fe, err := openFrontend(ctx, o, log.With("frontend", o.frontend))
	if err != nil {
		return fmt.Errorf("%s frontend: %w", o.frontend, err)
	}
	defer fe.Close()

	g := game.NewGame(assets.Load(), game.WithLogger(log))
	g.Events.SubscribeAll(func(e game.Event) {
		log.Debug(e.Type.String(), "tick", e.Tick, "x", e.X, "y", e.Y, "data", e.Data)
	})

	_, err = game.Run(ctx, g, game.NewInputState(), fe)
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}
