package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type shopClock struct {
	loc *time.Location
}

// NewRealClock reports wall time in loc, the shop's zone. A nil loc means
// the process local zone.
func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return shopClock{loc: loc}
}

func (c shopClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is a settable clock for tests. It is safe for concurrent use.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Weekday is the current day of week as seen by c.
func Weekday(c Clock) time.Weekday {
	return c.Now().Weekday()
}
