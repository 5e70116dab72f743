package math

import "math"

func Abs[T float64 | float32](val T) float64 {
	return math.Abs(float64(val))
}

// Clip bounds val to [lo, hi]. When lo > hi the upper bound wins.
func Clip(val, lo, hi float64) float64 {
	return min(max(val, lo), hi)
}
