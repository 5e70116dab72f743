package pcc

import (
	"math"

	m "pfeifer.dev/pccd/math"
	"pfeifer.dev/pccd/settings"
)

// SafeDistance is the follow distance for the current speed, never under
// the minimum safe distance.
func SafeDistance(cfg *Config, vEgo float64, car CarState) float64 {
	return max(cfg.followTime(car)*(vEgo+1), cfg.MinSafeDistance)
}

// VisualRadarDistance corrects the short range bias of vision based leads.
// Anything under 7 m reads as 0.
func VisualRadarDistance(cfg *Config, d float64) float64 {
	return cfg.VisualRadarDist.At(d)
}

// leadDistance is the raw gap to a present lead, 0 without one.
func leadDistance(lead *Lead) float64 {
	if !Present(lead) {
		return 0
	}
	return lead.DRel
}

func maxSafeSpeedKph(cfg *Config, lead *Lead, car CarState) float64 {
	if !Present(lead) {
		return cfg.MaxSpeedKph
	}
	safe := SafeDistance(cfg, car.VEgo, car)
	return (car.VEgo + lead.VRel + (lead.DRel-safe)/cfg.followTime(car)) * settings.MS_TO_KPH
}

func minSafeVrelKph(cfg *Config, lead *Lead, actualKph float64) float64 {
	// an accelerating lead is limited elsewhere
	if lead.VLeadK*settings.MS_TO_KPH > actualKph {
		return -100
	}
	return cfg.MinSafeVrel.At(lead.DRel)
}

func deadband(v, band float64) float64 {
	if math.Abs(v) > band {
		return v
	}
	return 0
}

// FollowPlanner derives a cruise speed that keeps a safe gap to the lead.
type FollowPlanner struct {
	cfg     *Config
	lastKph *float64
}

func NewFollowPlanner(cfg *Config) *FollowPlanner {
	return &FollowPlanner{cfg: cfg}
}

func (f *FollowPlanner) Reset() {
	f.lastKph = nil
}

// LastKph is the previous output, if any.
func (f *FollowPlanner) LastKph() (float64, bool) {
	if f.lastKph == nil {
		return 0, false
	}
	return *f.lastKph, true
}

// Plan returns the desired speed in m/s. ok is false when no radar sample was
// ever received, the caller keeps its previous target then.
func (f *FollowPlanner) Plan(tracker *LeadTracker, car CarState, enabled bool, maxKph float64, noIncrease bool) (speed float64, ok bool) {
	if !tracker.Received {
		return 0, false
	}
	cfg := f.cfg
	lead := tracker.Lead

	dist := leadDistance(lead)
	relKph := 0.0
	if lead != nil {
		relKph = deadband(lead.VRel, cfg.JitterDeadband) * settings.MS_TO_KPH
	}
	safe := SafeDistance(cfg, car.VEgo, car)
	actualKph := car.VEgo * settings.MS_TO_KPH

	if f.lastKph == nil {
		f.lastKph = &actualKph
	}
	newKph := *f.lastKph

	if enabled {
		switch {
		case dist <= 0 || dist > cfg.MaxRadarDistance:
			newKph = maxKph
		case dist < cfg.MinSafeDistance && relKph >= cfg.HoldLeadFasterKph:
			// lead is pulling away, let the gap open by itself
			newKph = actualKph
		case dist < cfg.MinSafeDistance:
			newKph = cfg.MinSpeedKph
		case dist > cfg.MinSafeDistance && dist <= safe+2:
			leadKph := actualKph + relKph
			newKph = leadKph - cfg.ApproachMinVrel.At(dist/safe)
		default:
			newKph = f.cruiseZone(lead, dist, safe, actualKph, relKph, newKph, car)
		}
	}

	newKph = m.Clip(newKph, cfg.MinSpeedKph, cfg.MaxSpeedKph)
	newKph = m.Clip(newKph, cfg.MinSpeedKph, maxKph)
	if car.TurnSignal || math.Abs(car.SteeringAngleDeg) > cfg.AngleStopAccel || noIncrease {
		newKph = min(newKph, *f.lastKph)
	}
	if dist > 0 && dist < cfg.MinSafeDistance && relKph < cfg.HoldLeadFasterKph {
		newKph = cfg.MinSpeedKph
	}
	f.lastKph = &newKph

	return newKph * settings.KPH_TO_MS, true
}

func (f *FollowPlanner) cruiseZone(lead *Lead, dist, safe, actualKph, relKph, newKph float64, car CarState) float64 {
	cfg := f.cfg
	leadKph := actualKph + relKph
	fraction := dist / safe

	minVrel := cfg.BandMinVrel.At(fraction) + cfg.BandMinVrelSlope.At(fraction)*actualKph
	maxVrel := cfg.BandMaxVrel.At(fraction)
	minKph := leadKph - maxVrel
	maxKph := leadKph - minVrel

	if dist >= cfg.DriftDistanceFraction*safe && leadKph > actualKph && lead.ALeadK >= 0 {
		newKph = leadKph
	}
	newKph = m.Clip(newKph, minKph, maxKph)
	if actualKph > newKph && minKph < actualKph && actualKph < maxKph && leadKph > cfg.FastLeadKph {
		newKph = actualKph
	}

	return min(
		newKph,
		maxSafeSpeedKph(cfg, lead, car),
		max(leadKph-minSafeVrelKph(cfg, lead, actualKph), 2),
	)
}
