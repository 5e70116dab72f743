package math

import (
	"github.com/pkg/errors"
)

type Point struct {
	X, Y float64
}

// Curve is an immutable breakpoint table. Keys are strictly increasing and
// lookups outside the table clamp to the nearest endpoint.
type Curve struct {
	xs []float64
	ys []float64
}

func NewCurve(points ...Point) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, errors.New("curve needs at least one breakpoint")
	}
	c := Curve{
		xs: make([]float64, len(points)),
		ys: make([]float64, len(points)),
	}
	for i, p := range points {
		if i > 0 && p.X <= points[i-1].X {
			return Curve{}, errors.Errorf("curve keys must be strictly increasing: %v follows %v", p.X, points[i-1].X)
		}
		c.xs[i] = p.X
		c.ys[i] = p.Y
	}
	return c, nil
}

// MustCurve is NewCurve for tables defined in code. A bad table is a
// programming error so it panics.
func MustCurve(points ...Point) Curve {
	c, err := NewCurve(points...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Curve) At(x float64) float64 {
	return Interp(x, c.xs, c.ys)
}

func (c Curve) Len() int {
	return len(c.xs)
}

func (c Curve) Keys() []float64 {
	return append([]float64(nil), c.xs...)
}

func (c Curve) Values() []float64 {
	return append([]float64(nil), c.ys...)
}

// Interp linearly interpolates y at x over the breakpoints xs (ascending).
// Queries outside the table return the boundary value.
func Interp(x float64, xs []float64, ys []float64) float64 {
	n := min(len(xs), len(ys))
	if n == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			span := xs[i] - xs[i-1]
			if span <= 0 {
				return ys[i]
			}
			t := (x - xs[i-1]) / span
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[n-1]
}
