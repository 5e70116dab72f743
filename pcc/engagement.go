package pcc

import (
	"fmt"
	"log/slog"

	"pfeifer.dev/pccd/settings"
)

// Rule identifies which engagement rule fired in a cycle.
type Rule uint8

const (
	RuleNone Rule = iota
	RuleUnavailable
	RuleBrake
	RuleMainStalk
	RuleCancel
	RuleAdjustSpeed
	RuleCruiseActive
	RuleSinglePull
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleUnavailable:
		return "unavailable"
	case RuleBrake:
		return "brake"
	case RuleMainStalk:
		return "main stalk"
	case RuleCancel:
		return "cancel"
	case RuleAdjustSpeed:
		return "adjust speed"
	case RuleCruiseActive:
		return "cruise active"
	case RuleSinglePull:
		return "single pull"
	}
	return "unknown"
}

type engagementRule struct {
	rule    Rule
	matches func(e *Engagement, in *Inputs, frame int) bool
	apply   func(e *Engagement, in *Inputs, frame int)
}

// evaluated in order, the first match is the only one applied
var engagementRules = []engagementRule{
	{RuleUnavailable, (*Engagement).unavailable, (*Engagement).applyUnavailable},
	{RuleBrake, (*Engagement).braking, (*Engagement).applyBrake},
	{RuleMainStalk, (*Engagement).mainStalkPressed, (*Engagement).applyMainStalk},
	{RuleCancel, (*Engagement).cancelPressed, (*Engagement).applyCancel},
	{RuleAdjustSpeed, (*Engagement).buttonChanged, (*Engagement).applyAdjustSpeed},
	{RuleCruiseActive, (*Engagement).cruiseActive, (*Engagement).disable},
	{RuleSinglePull, (*Engagement).singlePull, (*Engagement).disable},
}

type EngagementResult struct {
	Rule     Rule
	Resets   []PedalCommand
	Engaged  bool // disabled -> enabled this cycle
	Disabled bool // enabled -> disabled this cycle
}

type Engagement struct {
	cfg    *Config
	state  *ControllerState
	ui     UI
	loc    LongControl
	result EngagementResult
}

func NewEngagement(cfg *Config, state *ControllerState, ui UI, loc LongControl) *Engagement {
	return &Engagement{
		cfg:   cfg,
		state: state,
		ui:    ui,
		loc:   loc,
	}
}

func (e *Engagement) Update(in *Inputs, frame int) EngagementResult {
	e.result = EngagementResult{}
	e.updateAvailability(in.Car, frame)

	prevEnabled := e.state.Enabled
	e.state.PrevEnabled = prevEnabled
	for _, r := range engagementRules {
		if r.matches(e, in, frame) {
			e.result.Rule = r.rule
			r.apply(e, in, frame)
			break
		}
	}
	if e.result.Rule == RuleUnavailable {
		return e.result
	}

	if prevEnabled && !e.state.Enabled {
		e.ui.Alert("PCC Disabled")
		e.state.Status = StatusStandby
		e.resetLongControl(0)
		e.result.Disabled = true
		slog.Info("pcc disabled", "rule", e.result.Rule)
	} else if e.state.Enabled && !prevEnabled {
		e.ui.Alert("PCC Enabled")
		e.state.Status = StatusEnabled
		e.result.Engaged = true
		slog.Info("pcc enabled", "target_kph", e.state.TargetSpeedKph)
	}

	if e.state.Status == StatusStandby || e.state.Status == StatusNotReady {
		if in.Car.CruiseState.IsOff() || in.Car.ForcePedalOverCC {
			e.state.Status = StatusStandby
		} else {
			e.state.Status = StatusNotReady
		}
	}

	e.state.PrevButtons = in.Car.Buttons
	e.state.PrevCruiseState = in.Car.CruiseState

	return e.result
}

func (e *Engagement) updateAvailability(car CarState, frame int) {
	if car.PedalIndex != e.state.PrevActuatorIdx {
		e.state.TimeoutFrame = frame + e.cfg.PedalTimeoutFrames
	}
	e.state.PrevActuatorIdx = car.PedalIndex

	e.state.PrevAvailable = e.state.Available
	pedalReady := frame < e.state.TimeoutFrame && car.PedalFault == 0
	ccDisabled := car.ForcePedalOverCC || car.CruiseState.IsOff()
	e.state.Available = pedalReady && ccDisabled

	if e.state.Available != e.state.PrevAvailable {
		slog.Debug("pedal availability changed", "available", e.state.Available, "fault", car.PedalFault)
		e.ui.ConfigureButtons(e.state.Available, pedalReady && !ccDisabled)
	}
}

func (e *Engagement) resetLongControl(v float64) {
	if e.loc != nil {
		e.loc.Reset(v)
	}
}

func (e *Engagement) unavailable(_ *Inputs, _ int) bool {
	return !e.state.Available
}

func (e *Engagement) applyUnavailable(in *Inputs, frame int) {
	timedOut := frame >= e.state.TimeoutFrame
	if !timedOut && in.Car.PedalFault == 0 {
		// only the stock cruise control is in the way
		return
	}
	if e.state.PrevAvailable {
		if timedOut {
			e.ui.Alert("Pedal Interceptor timed out")
		} else {
			e.ui.Alert(fmt.Sprintf("Pedal Interceptor fault (state %d)", in.Car.PedalFault))
		}
	}
	if frame%e.cfg.ResetEveryFrames == 0 {
		e.result.Resets = append(e.result.Resets, PedalCommand{
			Value:  0,
			Enable: false,
			Index:  e.state.NextIndex(),
		})
	}
}

func (e *Engagement) braking(in *Inputs, _ int) bool {
	return in.Car.BrakePressed && e.state.Enabled
}

func (e *Engagement) applyBrake(_ *Inputs, _ int) {
	e.state.Enabled = false
	e.resetLongControl(0)
}

func (e *Engagement) mainStalkPressed(in *Inputs, _ int) bool {
	return in.Car.Buttons == ButtonMain && e.state.PrevButtons != ButtonMain
}

func (e *Engagement) ready(car CarState) bool {
	return e.state.Status != StatusOff && (car.CruiseState.IsOff() || car.ForcePedalOverCC)
}

func (e *Engagement) applyMainStalk(in *Inputs, _ int) {
	e.state.PrevStalkPullMs = e.state.StalkPullMs
	e.state.StalkPullMs = in.Now.UnixMilli()
	doublePull := e.state.StalkPullMs-e.state.PrevStalkPullMs < e.cfg.StalkDoublePull.Milliseconds()
	if !doublePull || !e.ready(in.Car) {
		return
	}

	e.state.Enabled = true
	e.resetLongControl(in.Car.VEgo)
	e.state.SetTarget(max(roundedSpeedKph(in.Car), e.state.SpeedLimitKph), e.cfg)
}

func (e *Engagement) cancelPressed(in *Inputs, _ int) bool {
	return in.Car.Buttons == ButtonCancel
}

func (e *Engagement) applyCancel(_ *Inputs, _ int) {
	e.state.Enabled = false
	e.state.TargetSpeedKph = 0
	e.state.StalkPullMs = 0
	e.state.PrevStalkPullMs = -1000
}

func (e *Engagement) buttonChanged(in *Inputs, _ int) bool {
	return e.state.Enabled && in.Car.Buttons != e.state.PrevButtons
}

func (e *Engagement) applyAdjustSpeed(in *Inputs, _ int) {
	unit := speedUnitKph(in.Car)
	current := roundedSpeedKph(in.Car)
	target := e.state.TargetSpeedKph
	switch in.Car.Buttons {
	case ButtonResume:
		target = max(target, current) + unit
	case ButtonResume2:
		target = max(target, current) + 5*unit
	case ButtonDecel:
		target -= unit
	case ButtonDecel2:
		target -= 5 * unit
	}
	e.state.SetTarget(target, e.cfg)
}

func (e *Engagement) cruiseActive(in *Inputs, _ int) bool {
	return e.state.Enabled && !in.Car.CruiseState.IsOff() && !in.Car.ForcePedalOverCC
}

// a single pull is confirmed once no second pull followed it in time
func (e *Engagement) singlePull(in *Inputs, _ int) bool {
	window := e.cfg.StalkDoublePull.Milliseconds()
	return e.state.Enabled &&
		in.Now.UnixMilli()-e.state.StalkPullMs > window &&
		e.state.StalkPullMs-e.state.PrevStalkPullMs > window
}

func (e *Engagement) disable(_ *Inputs, _ int) {
	e.state.Enabled = false
}

func speedUnitKph(car CarState) float64 {
	if car.Imperial {
		return settings.MPH_TO_KPH
	}
	return 1
}

// speed rounded in the driver's display unit, expressed in kph
func roundedSpeedKph(car CarState) float64 {
	unit := speedUnitKph(car)
	return float64(int(car.VEgo*settings.MS_TO_KPH/unit+0.5)) * unit
}
