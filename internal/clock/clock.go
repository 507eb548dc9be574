package clock

import (
	"sync"
	"time"
)

// Clock provides the current time. Rental timestamps are taken from it so tests
// can drive them deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// New creates a new RealClock.
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable Clock for tests and scripted runs.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

// Ensure both clocks implement Clock.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)

// NewMock creates a MockClock set to the given time.
func NewMock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// Now returns the mocked current time.
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
