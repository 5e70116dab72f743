package pcc

import (
	"math"

	m "pfeifer.dev/pccd/math"
	"pfeifer.dev/pccd/settings"
)

const noCollisionSeconds = 60.0

// SecondsToCollision is a large sentinel unless the lead is present and
// closing. Lead deceleration is partially accounted for.
func SecondsToCollision(cfg *Config, lead *Lead, car CarState) float64 {
	if !Present(lead) || lead.VRel >= 0 {
		return noCollisionSeconds
	}
	dist := lead.DRel
	if !car.UseRadar {
		dist = VisualRadarDistance(cfg, dist)
	}
	closing := math.Abs(lead.VRel + min(0, lead.ARel)*cfg.followTime(car))
	return max(0.1, dist/closing)
}

// Following is true when the lead is pulling away and accelerating.
func Following(cfg *Config, lead *Lead, vEgo float64) bool {
	return lead != nil &&
		lead.Status &&
		lead.DRel < cfg.MaxRadarDistance &&
		lead.VLeadK > vEgo &&
		lead.ALeadK > 0
}

// BaseAccelLimits are the generic cruise limits for the current speed.
func BaseAccelLimits(cfg *Config, vEgo float64, following bool) (accelMin, accelMax float64) {
	accelMin = cfg.CruiseAccelMin.At(vEgo)
	if following {
		return accelMin, cfg.FollowingAccelMax.At(vEgo)
	}
	return accelMin, cfg.CruiseAccelMax.At(vEgo)
}

// LimitAccelInTurns leaves room in the total acceleration budget for the
// lateral acceleration of the current steering angle.
func LimitAccelInTurns(cfg *Config, vEgo, steeringAngleDeg, accelMin, accelMax float64) (float64, float64) {
	total := cfg.TotalAccelMax.At(vEgo)
	lateral := m.LateralAccel(vEgo, m.SteeringCurvature(steeringAngleDeg, cfg.SteerRatio, cfg.Wheelbase))
	allowed := math.Sqrt(max(total*total-lateral*lateral, 0))
	accelMax = min(accelMax, allowed)
	return min(accelMin, accelMax), accelMax
}

// AccelMultiplier scales the acceleration limit, in [0, 1].
func AccelMultiplier(cfg *Config, car CarState, lead *Lead) float64 {
	base := cfg.Trim(car.Trim).AccelBySpeed.At(car.VEgo)
	if !Present(lead) {
		return min(base*cfg.NoLeadAccelFactor, 1)
	}
	safe := SafeDistance(cfg, car.VEgo, car)
	return min(base*cfg.AccelByVrel.At(lead.VRel)*cfg.AccelByDistance.At(lead.DRel/safe), 1)
}

// DecelLimit tightens or overrides the base deceleration limit.
func DecelLimit(cfg *Config, accelMin float64, car CarState, lead *Lead, maxKph float64) float64 {
	v := car.VEgo
	overshootMult := 1.0
	if over := v*settings.MS_TO_KPH - maxKph; over >= 5 {
		overshootMult = 2
	} else if over >= 2 {
		overshootMult = 1.5
	}

	if !Present(lead) {
		// no full regen without a lead
		return accelMin * cfg.NoLeadDecelFactor * overshootMult
	}

	safe := SafeDistance(cfg, v, car)
	ttc := SecondsToCollision(cfg, lead, car)
	near := lead.DRel <= cfg.DecelLeadDistance*safe
	switch {
	case lead.DRel < cfg.MinSafeDistance:
		return -100
	case lead.VRel >= 0.1*v && lead.ARel < 0.5 && near:
		// faster but slowing down
		return -2 + lead.ARel
	case lead.VRel <= 0.1*v && lead.ALeadK < 0.5 && near:
		// slower and slowing down
		return -2 + lead.ARel + min(3*lead.VRel/ttc, -0.7)
	case lead.VRel < -0.1*v && near:
		return -3 + 2*lead.VRel/ttc
	}
	return accelMin * overshootMult * cfg.DecelByTTC.At(ttc) * cfg.DecelBySpeed.At(v)
}

// BrakeFloor is the lowest brake fraction the pedal encoder may use.
func BrakeFloor(cfg *Config, car CarState, vTarget float64, lead *Lead, maxKph float64) float64 {
	v := car.VEgo
	if v <= cfg.FullRegenSpeed {
		return -1
	}
	if v*settings.MS_TO_KPH > maxKph {
		return -0.8
	}
	deficit := 100 * (v - vTarget) / v
	byDeficit := cfg.BrakeByDeficit.At(deficit)
	byDistance := 0.0
	if Present(lead) {
		safe := SafeDistance(cfg, v, car)
		byDistance = cfg.BrakeByDistance.At(lead.DRel / safe)
	}
	return -max(byDeficit, byDistance)
}

// Limits computes the acceleration and jerk envelope for a cycle. The brake
// floor depends on the speed target of the active path and is filled in by
// the caller.
func Limits(cfg *Config, car CarState, lead *Lead, targetKph float64) Envelope {
	accelMin, accelMax := BaseAccelLimits(cfg, car.VEgo, Following(cfg, lead, car.VEgo))
	accelMax *= AccelMultiplier(cfg, car, lead)
	accelMin = DecelLimit(cfg, accelMin, car, lead, targetKph)

	env := Envelope{
		JerkMin: min(-0.1, accelMin/2),
		JerkMax: max(0.1, accelMax/2),
	}
	env.AccelMin, env.AccelMax = LimitAccelInTurns(cfg, car.VEgo, car.SteeringAngleDeg, accelMin, accelMax)
	return env
}
