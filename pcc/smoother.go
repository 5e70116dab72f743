package pcc

import (
	m "pfeifer.dev/pccd/math"
)

// SpeedSmoother moves a speed toward a target within acceleration and jerk
// limits.
type SpeedSmoother struct {
	V float64
	A float64
}

func (s *SpeedSmoother) Reset(v, a float64) {
	s.V = v
	s.A = a
}

func (s *SpeedSmoother) Step(vTarget, accelMax, accelMin, jerkMax, jerkMin, dt float64) (float64, float64) {
	dV := vTarget - s.V
	// recover faster when accelerating the wrong way
	if dV > 0 && s.A < 0 {
		jerkMax *= 3
	} else if dV < 0 && s.A > 0 {
		jerkMin *= 3
	}

	desired := m.Clip(dV/dt, accelMin, accelMax)
	a := m.Clip(desired, s.A+jerkMin*dt, s.A+jerkMax*dt)
	v := s.V + a*dt
	if (dV >= 0 && v > vTarget) || (dV <= 0 && v < vTarget) {
		// arrived
		v = vTarget
		a = 0
	}

	s.V = v
	s.A = a
	return v, a
}
