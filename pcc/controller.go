package pcc

import (
	"log/slog"

	m "pfeifer.dev/pccd/math"
	"pfeifer.dev/pccd/pid"
	"pfeifer.dev/pccd/settings"
	"pfeifer.dev/pccd/utils"
)

type noopUI struct{}

func (noopUI) Alert(string)                {}
func (noopUI) ConfigureButtons(bool, bool) {}

// alertTap forwards alerts and keeps the ones raised during the current cycle.
type alertTap struct {
	UI
	cycle []string
}

func (a *alertTap) Alert(msg string) {
	a.cycle = append(a.cycle, msg)
	a.UI.Alert(msg)
}

// Controller runs one control cycle per Update. It is not safe for
// concurrent use.
type Controller struct {
	cfg         *Config
	state       *ControllerState
	ui          *alertTap
	loc         LongControl
	gains       GainStore
	gainsLoaded bool

	engagement *Engagement
	tracker    LeadTracker
	planner    *FollowPlanner
	pedal      *PedalEncoder
	smoother   SpeedSmoother
	leadSpeed  m.MovingAverage

	mode         Mode
	frame        int
	accelPressed bool
	vPid         float64
}

// NewController wires the components. A nil ui discards side effects, a nil
// loc gets a PID with the configured default gains and a nil gains store
// disables persistence.
func NewController(cfg *Config, ui UI, loc LongControl, gains GainStore) *Controller {
	if ui == nil {
		ui = noopUI{}
	}
	if loc == nil {
		loc = pid.NewLongControl(cfg.DefaultGains, cfg.DT)
	}
	state := NewControllerState(cfg)
	tap := &alertTap{UI: ui}
	c := &Controller{
		cfg:        cfg,
		state:      state,
		ui:         tap,
		loc:        loc,
		gains:      gains,
		engagement: NewEngagement(cfg, state, tap, loc),
		planner:    NewFollowPlanner(cfg),
		pedal:      NewPedalEncoder(cfg, state),
	}
	c.leadSpeed.Init(cfg.LeadSpeedSamples)
	return c
}

func (c *Controller) SetMode(mode Mode) {
	if mode != c.mode {
		slog.Info("pcc mode changed", "mode", mode.Label())
	}
	c.mode = mode
}

// Mode is the mode in effect, follow mode falls back to OP unless enabled in
// the config.
func (c *Controller) Mode() Mode {
	if c.mode == ModeFollow && c.cfg.FollowModeEnabled {
		return ModeFollow
	}
	return ModeOP
}

// SetButton turns the feature button on or off. An off button blocks
// engagement.
func (c *Controller) SetButton(on bool) {
	if !on {
		c.state.Status = StatusOff
	} else if c.state.Status == StatusOff {
		c.state.Status = StatusStandby
	}
}

func (c *Controller) State() ControllerState {
	return *c.state
}

func (c *Controller) Tracker() LeadTracker {
	return c.tracker
}

func (c *Controller) Update(in Inputs) Output {
	c.loadGains()
	frame := c.frame
	c.frame++
	c.ui.cycle = nil

	res := c.engagement.Update(&in, frame)
	if res.Disabled {
		c.leadSpeed.Reset()
		c.saveGains()
	}

	car := in.Car
	c.pedal.Calibrate(car)
	c.updateSpeedLimit(in.SpeedLimit)
	idx := c.state.NextIndex()
	if in.RadarReceived {
		c.tracker.Ingest(in.Lead, in.Now)
	}

	out := Output{
		Rule:   res.Rule,
		Resets: res.Resets,
	}

	if !c.state.Available || !in.ControlsEnabled {
		c.pedal.Neutral()
		out.Pedal = PedalCommand{Index: idx}
		c.finish(&out, car)
		return out
	}

	lead := c.tracker.Lead
	env := Limits(c.cfg, car, lead, c.state.TargetSpeedKph)

	var gb, vPid, brakeMultiplier float64
	if c.Mode() == ModeFollow {
		gb, vPid = c.follow(&in, env)
		brakeMultiplier = c.cfg.FollowBrakeMultiplier
	} else {
		gb = in.Actuators.Gas - in.Actuators.Brake
		vPid = in.CommandedSpeed
		brakeMultiplier = c.cfg.OPBrakeMultiplier
	}
	c.vPid = vPid

	env.BrakeFloor = BrakeFloor(c.cfg, car, vPid, lead, c.state.TargetSpeedKph)
	out.Envelope = env

	enabled := c.state.Enabled
	value := c.pedal.Encode(gb, brakeMultiplier, env.BrakeFloor, car.VEgo, enabled)
	out.Pedal = PedalCommand{
		Value:  value,
		Enable: enabled,
		Index:  idx,
	}
	c.finish(&out, car)
	return out
}

func (c *Controller) finish(out *Output, car CarState) {
	c.state.LastTorqueLevel = car.TorqueLevel
	c.state.PrevVEgo = car.VEgo
	out.Status = c.state.Status
	out.Enabled = c.state.Enabled
	out.Available = c.state.Available
	out.TargetSpeedKph = c.state.TargetSpeedKph
	out.Alerts = c.ui.cycle
}

// A new speed limit becomes the target. Without an active limit a double
// pull only sets the current speed.
func (c *Controller) updateSpeedLimit(limit SpeedLimit) {
	s := c.state
	s.PrevSpeedLimit = s.SpeedLimitKph
	if !limit.Active || limit.Value <= 0 {
		s.SpeedLimitKph = 0
		return
	}
	s.SpeedLimitKph = (limit.Value + limit.Offset) * settings.MS_TO_KPH
	if int(s.PrevSpeedLimit) != int(s.SpeedLimitKph) {
		s.SetTarget(s.SpeedLimitKph, c.cfg)
		c.leadSpeed.Reset()
		slog.Debug("target set from speed limit", "kph", s.TargetSpeedKph)
	}
}

func (c *Controller) follow(in *Inputs, env Envelope) (gb float64, vPid float64) {
	cfg := c.cfg
	car := in.Car

	prevPressed := c.accelPressed
	c.accelPressed = car.PedalInterceptorValue > cfg.AcceleratorPressed
	if !c.accelPressed && prevPressed {
		c.loc.Reset(car.VEgo)
	}

	if !c.state.Enabled || c.accelPressed {
		c.loc.Reset(car.VEgo)
		resetSpeed, resetAccel := car.VEgo, min(car.AEgo, 0)
		if car.Standstill {
			resetSpeed, resetAccel = cfg.MinCanSpeed, cfg.StartAccel
		}
		c.smoother.Reset(resetSpeed, resetAccel)
		c.planner.Reset()
		return 0, resetSpeed
	}

	vPid, ok := c.planner.Plan(&c.tracker, car, true, c.state.TargetSpeedKph, in.LaneChange)
	if !ok {
		vPid = c.vPid
	}
	if vCurve, ok := MaxSpeedInMappedCurve(cfg, in.Map, c.state.TargetSpeedKph); ok {
		vPid = min(vPid, vCurve)
	}
	vPid = max(min(vPid, c.leadSpeed.Update(vPid)), 0)

	vCruise, aCruise := c.smoother.Step(vPid, env.AccelMax, env.AccelMin, env.JerkMax, env.JerkMin, cfg.DT)
	vCruise = max(vCruise, 0)
	gas, brake := c.loc.Update(true, car.VEgo, vCruise, aCruise)
	return gas - brake, vPid
}

func (c *Controller) loadGains() {
	if c.gainsLoaded {
		return
	}
	c.gainsLoaded = true
	if c.gains == nil {
		return
	}
	gains, result, err := c.gains.Load()
	switch result {
	case pid.GainsLoaded, pid.GainsMalformed:
		c.loc.SetGains(gains)
		utils.Logwe(err, "gains", result)
	case pid.GainsNotFound:
		slog.Info("no stored gains, using defaults")
	default:
		utils.Logwe(err, "gains", result)
	}
}

func (c *Controller) saveGains() {
	if c.gains == nil {
		return
	}
	utils.Loge(c.gains.Save(c.loc.Gains()), "action", "save gains")
}
