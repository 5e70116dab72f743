package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackedUpdate(t *testing.T) {
	var tr Tracked[int]
	assert.True(t, tr.Update(4))
	assert.False(t, tr.Update(4))
	assert.Equal(t, 4, tr.Last)
	assert.True(t, tr.Update(2))
	assert.True(t, tr.Changed())
}

func TestUpdateTrackerAverage(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var u UpdateTracker
	u.Init(2, start)
	assert.InDelta(t, 0.05, u.Update(start.Add(50*time.Millisecond)), 1e-9)
	assert.InDelta(t, 0.075, u.Update(start.Add(150*time.Millisecond)), 1e-9)
}

func TestManualClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	c.Advance(750 * time.Millisecond)
	assert.Equal(t, int64(750), c.Now().Sub(start).Milliseconds())
}
