package pcc

import (
	"strings"
	"time"

	m "pfeifer.dev/pccd/math"
	"pfeifer.dev/pccd/pid"
	"pfeifer.dev/pccd/settings"
)

// Trim holds the tables that differ between vehicle trims.
type Trim struct {
	AccelBySpeed m.Curve // m/s -> accel multiplier
}

// Config is built once and shared read only by every component.
type Config struct {
	DT                     float64
	MaxRadarDistance       float64 // m
	MaxPedalValue          float64
	PedalHystGap           float64
	PedalMaxUp             float64 // per cycle
	PedalMaxDown           float64 // per cycle
	MinSafeDistance        float64 // m
	TorqueLevelAcc         float64
	TorqueLevelDecel       float64
	MinSpeedKph            float64
	MaxSpeedKph            float64
	AngleStopAccel         float64 // deg
	MinCanSpeed            float64 // m/s
	StartAccel             float64
	StalkDoublePull        time.Duration
	PedalTimeoutFrames     int
	ResetEveryFrames       int
	InitialZeroTorquePedal float64
	CalibrationMinSpeed    float64 // m/s
	ZeroShiftSpeed         float64 // m/s
	FullRegenSpeed         float64 // m/s
	OPBrakeMultiplier      float64
	FollowBrakeMultiplier  float64
	AcceleratorPressed     float64 // interceptor value
	LeadSpeedSamples       int
	JitterDeadband         float64
	HoldLeadFasterKph      float64
	FastLeadKph            float64
	DriftDistanceFraction  float64
	DecelLeadDistance      float64 // fraction of safe distance
	DefaultFollowTime      float64 // s
	NoLeadAccelFactor      float64
	NoLeadDecelFactor      float64
	MaxLatAccelMapped      float64 // m/s^2
	SteerRatio             float64
	Wheelbase              float64 // m
	FollowModeEnabled      bool

	DefaultTrim string
	Trims       map[string]Trim

	// keyed on the fraction of the safe distance
	ApproachMinVrel   m.Curve
	BandMinVrel       m.Curve
	BandMinVrelSlope  m.Curve // kph of margin per kph of ego speed
	BandMaxVrel       m.Curve
	AccelByDistance   m.Curve
	BrakeByDistance   m.Curve
	MinSafeVrel       m.Curve // m -> kph
	VisualRadarDist   m.Curve // m -> m
	AccelByVrel       m.Curve // m/s -> multiplier
	DecelByTTC        m.Curve // s -> multiplier
	DecelBySpeed      m.Curve // m/s -> multiplier
	BrakeByDeficit    m.Curve // percent -> brake fraction
	CruiseAccelMin    m.Curve // m/s -> m/s^2
	CruiseAccelMax    m.Curve
	FollowingAccelMax m.Curve
	TotalAccelMax     m.Curve
	MappedCurveByTime m.Curve // s to turn -> weight of the curve speed

	DefaultGains pid.Gains
}

func DefaultConfig() *Config {
	dt := settings.DT
	return &Config{
		DT:                     dt,
		MaxRadarDistance:       120,
		MaxPedalValue:          100,
		PedalHystGap:           1.0,
		PedalMaxUp:             100 * dt / 2,
		PedalMaxDown:           100 * dt / 0.4,
		MinSafeDistance:        6,
		TorqueLevelAcc:         0,
		TorqueLevelDecel:       -30,
		MinSpeedKph:            0,
		MaxSpeedKph:            270,
		AngleStopAccel:         10,
		MinCanSpeed:            0.3,
		StartAccel:             0,
		StalkDoublePull:        750 * time.Millisecond,
		PedalTimeoutFrames:     50,
		ResetEveryFrames:       50,
		InitialZeroTorquePedal: 18,
		CalibrationMinSpeed:    10 * settings.MPH_TO_MS,
		ZeroShiftSpeed:         5 * settings.MPH_TO_MS,
		FullRegenSpeed:         7 * settings.MPH_TO_MS,
		OPBrakeMultiplier:      12,
		FollowBrakeMultiplier:  6,
		AcceleratorPressed:     5,
		LeadSpeedSamples:       6,
		JitterDeadband:         0.5,
		HoldLeadFasterKph:      3,
		FastLeadKph:            30,
		DriftDistanceFraction:  0.8,
		DecelLeadDistance:      1.1,
		DefaultFollowTime:      1.4,
		NoLeadAccelFactor:      0.4,
		NoLeadDecelFactor:      0.5,
		MaxLatAccelMapped:      1.85,
		SteerRatio:             15.75,
		Wheelbase:              2.959,
		FollowModeEnabled:      false,

		DefaultTrim: "S",
		Trims: map[string]Trim{
			"S": {AccelBySpeed: m.MustCurve(
				m.Point{X: 0, Y: 0.95},
				m.Point{X: 10, Y: 0.95},
				m.Point{X: 20, Y: 0.925},
				m.Point{X: 30, Y: 0.875},
			)},
			"SP":  {AccelBySpeed: performanceAccel},
			"SPD": {AccelBySpeed: performanceAccel},
		},

		ApproachMinVrel: m.MustCurve(
			m.Point{X: 0.5, Y: 3},
			m.Point{X: 0.8, Y: 2},
			m.Point{X: 1.0, Y: 0},
		),
		BandMinVrel: m.MustCurve(
			m.Point{X: 0.5, Y: 3},
			m.Point{X: 1.0, Y: -1},
			m.Point{X: 1.5, Y: -5},
			m.Point{X: 3.0, Y: -10},
		),
		BandMinVrelSlope: m.MustCurve(
			m.Point{X: 0.5, Y: 0},
			m.Point{X: 1.0, Y: -0.025},
			m.Point{X: 1.5, Y: -0.05},
			m.Point{X: 3.0, Y: -0.1},
		),
		BandMaxVrel: m.MustCurve(
			m.Point{X: 0.5, Y: 6},
			m.Point{X: 1.0, Y: 2},
			m.Point{X: 1.5, Y: -3},
			m.Point{X: 3.0, Y: -7},
		),
		AccelByDistance: m.MustCurve(
			m.Point{X: 0.6, Y: 0.15},
			m.Point{X: 1.0, Y: 0.2},
			m.Point{X: 3.0, Y: 0.4},
		),
		BrakeByDistance: m.MustCurve(
			m.Point{X: 0.8, Y: 1.0},
			m.Point{X: 1.0, Y: 0.6},
			m.Point{X: 3.0, Y: 0.4},
		),
		MinSafeVrel: m.MustCurve(
			m.Point{X: 6, Y: 2},
			m.Point{X: 100, Y: -25},
			m.Point{X: 1000, Y: -50},
		),
		VisualRadarDist: m.MustCurve(
			m.Point{X: 7, Y: 0},
			m.Point{X: 1000, Y: 1000},
		),
		AccelByVrel: m.MustCurve(
			m.Point{X: 0, Y: 1.0},
			m.Point{X: 10, Y: 1.5},
		),
		DecelByTTC: m.MustCurve(
			m.Point{X: 0, Y: 10},
			m.Point{X: 4, Y: 1},
			m.Point{X: 7, Y: 0.5},
			m.Point{X: 10, Y: 0.3},
		),
		DecelBySpeed: m.MustCurve(
			m.Point{X: 0, Y: 10},
			m.Point{X: 4, Y: 5},
			m.Point{X: 7, Y: 2.5},
			m.Point{X: 10, Y: 1},
		),
		BrakeByDeficit: m.MustCurve(
			m.Point{X: 0, Y: 0.3},
			m.Point{X: 1.5, Y: 0.5},
			m.Point{X: 5, Y: 0.8},
			m.Point{X: 7, Y: 1},
			m.Point{X: 50, Y: 1},
		),
		CruiseAccelMin: m.MustCurve(
			m.Point{X: 0, Y: -1.0},
			m.Point{X: 5, Y: -0.8},
			m.Point{X: 10, Y: -0.67},
			m.Point{X: 20, Y: -0.5},
			m.Point{X: 40, Y: -0.3},
		),
		CruiseAccelMax: m.MustCurve(
			m.Point{X: 0, Y: 1.2},
			m.Point{X: 6.4, Y: 1.2},
			m.Point{X: 22.5, Y: 0.65},
			m.Point{X: 40, Y: 0.4},
		),
		FollowingAccelMax: m.MustCurve(
			m.Point{X: 0, Y: 1.6},
			m.Point{X: 6.4, Y: 1.6},
			m.Point{X: 22.5, Y: 0.65},
			m.Point{X: 40, Y: 0.4},
		),
		TotalAccelMax: m.MustCurve(
			m.Point{X: 20, Y: 1.7},
			m.Point{X: 40, Y: 3.2},
		),
		MappedCurveByTime: m.MustCurve(
			m.Point{X: 0, Y: 0},
			m.Point{X: 8, Y: 1},
		),

		DefaultGains: pid.DefaultGains(),
	}
}

var performanceAccel = m.MustCurve(
	m.Point{X: 0, Y: 0.985},
	m.Point{X: 10, Y: 0.975},
	m.Point{X: 20, Y: 0.95},
	m.Point{X: 30, Y: 0.9},
)

// Trim returns the tables for a trim label, falling back to the default trim.
func (c *Config) Trim(label string) Trim {
	if t, ok := c.Trims[strings.ToUpper(label)]; ok {
		return t
	}
	return c.Trims[c.DefaultTrim]
}

func (c *Config) followTime(car CarState) float64 {
	if car.FollowTime > 0 {
		return car.FollowTime
	}
	return c.DefaultFollowTime
}
