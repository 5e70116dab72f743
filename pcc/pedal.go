package pcc

import (
	"log/slog"

	m "pfeifer.dev/pccd/math"
)

// PedalEncoder turns a normalized gas minus brake request into a pedal
// position around a self calibrated zero torque point.
type PedalEncoder struct {
	cfg   *Config
	state *ControllerState
}

func NewPedalEncoder(cfg *Config, state *ControllerState) *PedalEncoder {
	return &PedalEncoder{cfg: cfg, state: state}
}

// Calibrate records the previous accel command as the zero torque pedal when
// the car is coasting with the smallest torque seen so far.
func (p *PedalEncoder) Calibrate(car CarState) {
	s := p.state
	torque := car.TorqueLevel
	if torque < p.cfg.TorqueLevelAcc &&
		torque > p.cfg.TorqueLevelDecel &&
		car.VEgo >= p.cfg.CalibrationMinSpeed &&
		m.Abs(torque) < m.Abs(s.CalibrationTorq) &&
		s.PrevAccel > 0 {
		s.ZeroTorquePedal = s.PrevAccel
		s.CalibrationTorq = torque
		slog.Debug("new zero torque pedal", "pedal", s.ZeroTorquePedal, "torque", torque)
	}
}

// Zero is the pedal position that produces no torque at the given speed.
func (p *PedalEncoder) Zero(vEgo float64) float64 {
	if vEgo < p.cfg.ZeroShiftSpeed {
		return 0
	}
	return p.state.ZeroTorquePedal
}

// Hysteresis holds the output inside the gap. Disabled forces it to zero.
func (p *PedalEncoder) Hysteresis(pedal float64, enabled bool) float64 {
	s := p.state
	gap := p.cfg.PedalHystGap
	switch {
	case !enabled:
		s.PedalSteady = 0
	case pedal > s.PedalSteady+gap:
		s.PedalSteady = pedal - gap
	case pedal < s.PedalSteady-gap:
		s.PedalSteady = pedal + gap
	}
	return s.PedalSteady
}

// Encode maps the request onto the pedal. enabled gates the final value and
// is stored with the previous output and accel for the next cycle.
func (p *PedalEncoder) Encode(gb, brakeMultiplier, brakeFloor, vEgo float64, enabled bool) float64 {
	cfg := p.cfg
	s := p.state

	accel := m.Clip(gb, 0, 1)
	brake := -m.Clip(gb*brakeMultiplier, brakeFloor, 0)

	zero := p.Zero(vEgo)
	brakePart := m.Clip((1-brake)*zero, 0, zero)
	accelPart := m.Clip(accel*(cfg.MaxPedalValue-zero), 0, cfg.MaxPedalValue-zero)

	pedal := p.Hysteresis(brakePart+accelPart, enabled)
	pedal = m.Clip(pedal, s.PrevPedal-cfg.PedalMaxDown, s.PrevPedal+cfg.PedalMaxUp)
	if enabled {
		pedal = m.Clip(pedal, 0, cfg.MaxPedalValue)
	} else {
		pedal = 0
		accel = 0
	}

	s.PrevPedal = pedal
	s.PrevAccel = accel
	return pedal
}

// Neutral resets the output history for a cycle without a pedal request.
func (p *PedalEncoder) Neutral() {
	p.Hysteresis(0, false)
	p.state.PrevPedal = 0
}
