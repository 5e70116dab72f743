package math

import (
	m "math"
)

// curvatures under this are treated as straight road
const minCurvature = 1e-4

// SteeringCurvature is the path curvature (1/m) of a bicycle model for a
// steering wheel angle in degrees.
func SteeringCurvature(angleDeg, steerRatio, wheelbase float64) float64 {
	return angleDeg * m.Pi / 180 / (steerRatio * wheelbase)
}

// LateralAccel at speed v (m/s) on a path of the given curvature.
func LateralAccel(v, curvature float64) float64 {
	return v * v * curvature
}

// CurveSpeed is the speed that produces latAccel on a path of the given
// curvature. Nearly straight paths are capped by minCurvature.
func CurveSpeed(latAccel, curvature float64) float64 {
	return m.Sqrt(latAccel / max(minCurvature, m.Abs(curvature)))
}
