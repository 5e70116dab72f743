package pcc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEncoder() (*PedalEncoder, *ControllerState, *Config) {
	cfg := DefaultConfig()
	state := NewControllerState(cfg)
	return NewPedalEncoder(cfg, state), state, cfg
}

func TestPedalIndexWraps(t *testing.T) {
	_, state, _ := newEncoder()
	for i := range 40 {
		assert.Equal(t, uint8(i%16), state.NextIndex())
	}
}

func TestPedalIndexCyclesRegardlessOfEnable(t *testing.T) {
	h := newHarness(t)
	var indexes []uint8
	for range 10 {
		indexes = append(indexes, h.step(0, ButtonIdle).Pedal.Index)
	}
	h.engage()
	for range 30 {
		indexes = append(indexes, h.step(0, ButtonIdle).Pedal.Index)
	}
	for i := 1; i < len(indexes); i++ {
		if i == 10 {
			continue // engage ran in between
		}
		assert.Equal(t, (indexes[i-1]+1)%16, indexes[i])
	}
}

func TestPedalSlewLimits(t *testing.T) {
	enc, _, cfg := newEncoder()
	requests := []float64{1, 1, 1, -1, -1, 0.3, 1, -1, 0, 0.8, -0.2}
	prev := 0.0
	for _, gb := range requests {
		for range 10 {
			out := enc.Encode(gb, cfg.OPBrakeMultiplier, -1, 20, true)
			delta := out - prev
			assert.LessOrEqual(t, delta, cfg.PedalMaxUp+1e-9)
			assert.GreaterOrEqual(t, delta, -cfg.PedalMaxDown-1e-9)
			assert.GreaterOrEqual(t, out, 0.0)
			assert.LessOrEqual(t, out, 100.0)
			prev = out
		}
	}
	assert.InDelta(t, 2.5, cfg.PedalMaxUp, 1e-9)
	assert.InDelta(t, 12.5, cfg.PedalMaxDown, 1e-9)
}

func TestPedalHysteresis(t *testing.T) {
	enc, state, _ := newEncoder()
	assert.Equal(t, 9.0, enc.Hysteresis(10, true))
	assert.Equal(t, 9.0, enc.Hysteresis(9.5, true), "inside the gap")
	assert.Equal(t, 9.0, enc.Hysteresis(8.2, true))
	assert.Equal(t, 8.0, enc.Hysteresis(7, true))
	assert.Equal(t, 0.0, enc.Hysteresis(50, false))
	assert.Equal(t, 0.0, state.PedalSteady)
}

func TestPedalGatedWhenDisabled(t *testing.T) {
	enc, state, _ := newEncoder()
	for range 5 {
		enc.Encode(1, 12, -1, 20, true)
	}
	require.Greater(t, state.PrevPedal, 0.0)

	out := enc.Encode(1, 12, -1, 20, false)
	assert.Equal(t, 0.0, out)
	assert.Equal(t, 0.0, state.PrevAccel)
	assert.Equal(t, 0.0, state.PedalSteady)
}

func TestPedalZeroShift(t *testing.T) {
	enc, _, cfg := newEncoder()
	assert.Equal(t, 0.0, enc.Zero(2))
	assert.Equal(t, cfg.InitialZeroTorquePedal, enc.Zero(5*0.44704))
	assert.Equal(t, cfg.InitialZeroTorquePedal, enc.Zero(30))
}

func TestPedalBrakeSaturatesAtZero(t *testing.T) {
	enc, state, cfg := newEncoder()
	state.PrevPedal = cfg.InitialZeroTorquePedal
	state.PedalSteady = cfg.InitialZeroTorquePedal

	// full brake request with a full brake floor removes the whole zero offset
	out := enc.Encode(-1, cfg.OPBrakeMultiplier, -1, 15, true)
	assert.InDelta(t, cfg.InitialZeroTorquePedal-cfg.PedalMaxDown, out, 1e-9)
	out = enc.Encode(-1, cfg.OPBrakeMultiplier, -1, 15, true)
	assert.InDelta(t, cfg.PedalHystGap, out, 1e-9, "held inside the hysteresis gap above zero")

	// a shallow floor only takes part of it
	state.PrevPedal = cfg.InitialZeroTorquePedal
	state.PedalSteady = cfg.InitialZeroTorquePedal
	out = enc.Encode(-1, cfg.OPBrakeMultiplier, -0.3, 15, true)
	assert.InDelta(t, 0.7*cfg.InitialZeroTorquePedal+1, out, 1e-9)
}

func TestPedalCalibration(t *testing.T) {
	enc, state, cfg := newEncoder()
	car := CarState{VEgo: 20, TorqueLevel: -10}

	enc.Calibrate(car)
	assert.Equal(t, cfg.InitialZeroTorquePedal, state.ZeroTorquePedal, "no accel command yet")

	state.PrevAccel = 0.3
	enc.Calibrate(car)
	assert.Equal(t, 0.3, state.ZeroTorquePedal)
	assert.Equal(t, -10.0, state.CalibrationTorq)

	state.PrevAccel = 0.4
	enc.Calibrate(CarState{VEgo: 20, TorqueLevel: -12})
	assert.Equal(t, 0.3, state.ZeroTorquePedal, "larger torque never replaces a tighter reading")

	enc.Calibrate(CarState{VEgo: 20, TorqueLevel: -4})
	assert.Equal(t, 0.4, state.ZeroTorquePedal)

	state.PrevAccel = 0.5
	enc.Calibrate(CarState{VEgo: 3, TorqueLevel: -1})
	assert.Equal(t, 0.4, state.ZeroTorquePedal, "too slow")
	enc.Calibrate(CarState{VEgo: 20, TorqueLevel: 1})
	assert.Equal(t, 0.4, state.ZeroTorquePedal, "accelerating")
	assert.False(t, math.IsNaN(state.ZeroTorquePedal))
}
