package clock

import "time"

// Clock abstracts wall time so date-sensitive booking rules stay testable.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now reports wall time in UTC. Stay dates are calendar days in UTC, so
// every time comparison in the system starts from a UTC instant.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a frozen clock for tests. It only moves when told to.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.now = t
}

func (c *MockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
