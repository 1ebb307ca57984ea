package clock

import "time"

// Clock abstracts time.Now so scheduling logic can be tested at a fixed
// instant.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a fixed clock for tests. Not safe for concurrent mutation.
type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
