package clock

import "time"

// Clock supplies the current time. Injected so attendance evaluation can be
// tested against arbitrary instants instead of the wall clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New returns a Clock backed by time.Now.
func New() Clock {
	return realClock{}
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }
