package game

import "time"

// Clock is the wall-clock source for the alien drop cadence.
type Clock interface {
	Now() time.Time
}

// MonotonicClock reads time.Now, which carries a monotonic reading, so
// Sub between two values is unaffected by wall clock adjustments.
type MonotonicClock struct{}

func (MonotonicClock) Now() time.Time { return time.Now() }
