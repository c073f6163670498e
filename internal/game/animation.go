package game

import "fmt"

// Animation cycles through frames, each held for FrameDuration ticks.
type Animation struct {
	Frames        []SpriteID
	FrameDuration int
	Loop          bool
	Elapsed       int
}

// NewAnimation panics on an empty frame list or a zero frame duration.
func NewAnimation(frameDuration int, loop bool, frames ...SpriteID) Animation {
	if len(frames) == 0 {
		panic("animation: no frames")
	}
	if frameDuration <= 0 {
		panic(fmt.Sprintf("animation: invalid frame duration %d", frameDuration))
	}
	return Animation{Frames: frames, FrameDuration: frameDuration, Loop: loop}
}

// Advance moves the clock forward one tick.
func (a *Animation) Advance() {
	a.Elapsed++
	if a.Loop && a.Elapsed == len(a.Frames)*a.FrameDuration {
		a.Elapsed = 0
	}
}

// CurrentFrame returns the sprite shown at the current tick.
func (a *Animation) CurrentFrame() SpriteID {
	return a.Frames[(a.Elapsed/a.FrameDuration)%len(a.Frames)]
}
