package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time

	// Sleep pauses the caller, used for the Alien's "thinking" beat
	Sleep(d time.Duration)
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for the given duration
func (c *RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// NoPauseClock tells real time but skips every Sleep, for players who want
// the dramatic pauses gone.
type NoPauseClock struct{}

// NewNoPause creates a new NoPauseClock
func NewNoPause() *NoPauseClock {
	return &NoPauseClock{}
}

// Now returns the current time
func (c *NoPauseClock) Now() time.Time {
	return time.Now()
}

// Sleep returns immediately
func (c *NoPauseClock) Sleep(d time.Duration) {}
