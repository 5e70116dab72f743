package pcc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxSpeedInMappedCurve(t *testing.T) {
	cfg := DefaultConfig()

	_, ok := MaxSpeedInMappedCurve(cfg, nil, 100)
	assert.False(t, ok)
	_, ok = MaxSpeedInMappedCurve(cfg, &MapData{Curvature: 0.01}, 100)
	assert.False(t, ok, "invalid curvature")

	curveSpeed := math.Sqrt(1.85 / 0.01)
	setSpeed := 100 / 3.6

	atTurn, ok := MaxSpeedInMappedCurve(cfg, &MapData{Curvature: -0.01, CurvatureValid: true}, 100)
	assert.True(t, ok)
	assert.InDelta(t, setSpeed, atTurn, 1e-9)

	far, _ := MaxSpeedInMappedCurve(cfg, &MapData{Curvature: 0.01, DistToTurn: 10 * setSpeed, CurvatureValid: true}, 100)
	assert.InDelta(t, curveSpeed, far, 1e-9)

	mid, _ := MaxSpeedInMappedCurve(cfg, &MapData{Curvature: 0.01, DistToTurn: 4 * setSpeed, CurvatureValid: true}, 100)
	assert.InDelta(t, (setSpeed+curveSpeed)/2, mid, 1e-9)

	straight, _ := MaxSpeedInMappedCurve(cfg, &MapData{Curvature: 0, DistToTurn: 1000, CurvatureValid: true}, 100)
	assert.InDelta(t, math.Sqrt(1.85/1e-4), straight, 1e-9)
}

func TestSpeedSmoother(t *testing.T) {
	s := SpeedSmoother{}
	s.Reset(10, 0)

	var prevA float64
	for range 300 {
		_, a := s.Step(20, 1.5, -1, 0.5, -0.5, 0.05)
		assert.LessOrEqual(t, a-prevA, 0.5*0.05*3+1e-9)
		assert.LessOrEqual(t, a, 1.5)
		prevA = a
	}
	assert.InDelta(t, 20.0, s.V, 1e-9)

	s.Reset(20, 0)
	for range 400 {
		v, a := s.Step(5, 1.5, -1, 0.5, -0.5, 0.05)
		assert.GreaterOrEqual(t, v, 5.0)
		assert.GreaterOrEqual(t, a, -1.0)
	}
	assert.InDelta(t, 5.0, s.V, 1e-9)
}

func TestModes(t *testing.T) {
	assert.Equal(t, ModeFollow, ModeFromLabel("follow"))
	assert.Equal(t, ModeOP, ModeFromLabel("OP"))
	assert.Equal(t, ModeOP, ModeFromLabel("nope"))
	assert.Equal(t, []string{"OP", "FOLLOW"}, Labels())
}

func TestConfigCurvesAreOrdered(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "S", cfg.DefaultTrim)
	assert.Equal(t, cfg.Trim("sp"), cfg.Trim("SPD"))
	assert.False(t, cfg.FollowModeEnabled)
	assert.InDelta(t, 0.05, cfg.DT, 1e-12)
}
