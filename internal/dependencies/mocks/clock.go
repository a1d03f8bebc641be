package mocks

import (
	"time"

	"github.com/mcoot/yahtzee-go/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time
	// Step is added to CurrentTime after every Now call, so consecutive
	// games get distinct timestamps. Zero keeps the clock frozen.
	Step        time.Duration
	Calls       int
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a frozen MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time, then steps the clock
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.Calls++
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
