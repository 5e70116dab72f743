package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovingAverageFirstSampleFillsWindow(t *testing.T) {
	var ma MovingAverage
	ma.Init(4)
	assert.Equal(t, 20.0, ma.Update(20))
	assert.Equal(t, 25.0, ma.Update(40))
	assert.Equal(t, 40.0, ma.Raw())
}

func TestMovingAverageReset(t *testing.T) {
	var ma MovingAverage
	ma.Init(2)
	ma.Update(10)
	ma.Update(20)
	ma.Reset()
	assert.False(t, ma.Initialized())
	assert.Equal(t, 0.0, ma.Update(0))
	assert.Equal(t, 0.0, ma.Estimate)
}
