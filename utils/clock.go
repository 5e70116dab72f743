package utils

import "time"

// Clock abstracts wall time so the control loop can be driven from tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	T time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{T: start}
}

func (c *ManualClock) Now() time.Time {
	return c.T
}

func (c *ManualClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
