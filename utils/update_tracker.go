package utils

import (
	"time"

	m "pfeifer.dev/pccd/math"
)

// UpdateTracker keeps a moving average of the interval between updates.
// The daemon uses it to report its effective loop period.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) Init(maLength int, now time.Time) {
	u.LastTime = now
	u.Time = now
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update(now time.Time) float64 {
	u.LastTime = u.Time
	u.Time = now
	return u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}
