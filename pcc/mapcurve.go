package pcc

import (
	m "pfeifer.dev/pccd/math"
	"pfeifer.dev/pccd/settings"
)

// MaxSpeedInMappedCurve caps the speed ahead of a mapped curve. The cap is the
// curve speed from 8 s out and blends back to the set speed at the turn.
func MaxSpeedInMappedCurve(cfg *Config, data *MapData, setSpeedKph float64) (float64, bool) {
	if data == nil || !data.CurvatureValid {
		return 0, false
	}
	setSpeed := setSpeedKph * settings.KPH_TO_MS
	curveSpeed := m.CurveSpeed(cfg.MaxLatAccelMapped, data.Curvature)
	timeToTurn := max(0, data.DistToTurn/max(setSpeed, 1))
	weight := cfg.MappedCurveByTime.At(timeToTurn)
	return setSpeed + weight*(curveSpeed-setSpeed), true
}
