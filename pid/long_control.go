package pid

import (
	m "pfeifer.dev/pccd/math"
)

// LongControl is a speed PID with a feed forward on the planned acceleration.
// Output is a normalized gas and brake pair.
type LongControl struct {
	gains     Gains
	dt        float64
	integral  float64
	lastError float64
	vPid      float64
}

func NewLongControl(gains Gains, dt float64) *LongControl {
	return &LongControl{
		gains: gains,
		dt:    dt,
	}
}

func (c *LongControl) Gains() Gains {
	return c.gains
}

func (c *LongControl) SetGains(g Gains) {
	c.gains = g
}

func (c *LongControl) Reset(vPid float64) {
	c.integral = 0
	c.lastError = 0
	c.vPid = vPid
}

func (c *LongControl) Integral() float64 {
	return c.integral
}

// pedal position is roughly a third of the requested acceleration
func computeGB(accel float64) float64 {
	return accel / 3.0
}

func (c *LongControl) Update(active bool, vEgo, vTarget, feedforward float64) (gas, brake float64) {
	if !active {
		c.Reset(vEgo)
		return 0, 0
	}
	c.vPid = vTarget

	err := vTarget - vEgo
	deriv := 0.0
	if c.dt > 0 {
		deriv = (err - c.lastError) / c.dt
	}
	c.lastError = err

	base := c.gains.P*err + c.gains.D*deriv + c.gains.F*computeGB(feedforward)
	integral := c.integral + err*c.dt
	out := base + c.gains.I*integral
	// stop winding up while saturated in the direction of the error
	if !((out > 1 && err > 0) || (out < -1 && err < 0)) {
		c.integral = integral
	}
	out = m.Clip(base+c.gains.I*c.integral, -1, 1)

	return max(out, 0), max(-out, 0)
}
