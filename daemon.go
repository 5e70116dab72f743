package main

import (
	"context"
	"log/slog"

	"capnproto.org/go/capnp/v3"
	"pfeifer.dev/pccd/carcan"
	"pfeifer.dev/pccd/cereal"
	"pfeifer.dev/pccd/cereal/custom"
	"pfeifer.dev/pccd/pcc"
	"pfeifer.dev/pccd/settings"
	"pfeifer.dev/pccd/utils"
)

type source[T any] interface {
	Read() (T, bool)
}

type sink interface {
	Send(*capnp.Message) error
}

// logUI shows alerts in the log, the published pccState carries them to
// the car.
type logUI struct{}

func (logUI) Alert(msg string) {
	slog.Warn("pcc alert", "alert", msg)
}

func (logUI) ConfigureButtons(available bool, blockedByCruise bool) {
	slog.Info("pcc buttons", "available", available, "blockedByCruise", blockedByCruise)
}

type daemon struct {
	clock      utils.Clock
	settings   *settings.PccSettings
	controller *pcc.Controller
	carSub     source[custom.CarInput]
	radarSub   source[custom.RadarState]
	mapSub     source[custom.MapData]
	commandSub source[custom.PccCommand]
	statePub   sink
	writer     carcan.Writer

	mode    utils.Tracked[pcc.Mode]
	loop    utils.UpdateTracker
	mapData *pcc.MapData
}

func (d *daemon) init() {
	d.loop.Init(20, d.clock.Now())
	d.applySettings()
}

// step runs one control cycle. Nothing is published until the first car
// input arrives.
func (d *daemon) step(ctx context.Context) (out pcc.Output, ran bool) {
	d.handleCommands()

	if md, ok := d.mapSub.Read(); ok {
		d.mapData = cereal.MapData(md)
	}

	car, ok := d.carSub.Read()
	if !ok {
		return out, false
	}

	now := d.clock.Now()
	period := d.loop.Update(now)

	in := cereal.Inputs(car, d.settings, now)
	if rs, ok := d.radarSub.Read(); ok {
		in.RadarReceived = true
		in.Lead = cereal.Lead(rs)
	}
	in.Map = d.mapData

	out = d.controller.Update(in)
	d.publish(out)

	if d.writer != nil {
		utils.Logwe(carcan.SendOutput(ctx, d.writer, out), "action", "send pedal frames")
	}

	slog.Debug("cycle",
		"period", period,
		"status", out.Status.String(),
		"rule", out.Rule.String(),
		"pedal", out.Pedal.Value,
		"target", out.TargetSpeedKph,
	)
	return out, true
}

func (d *daemon) handleCommands() {
	for {
		cmd, ok := d.commandSub.Read()
		if !ok {
			return
		}
		slog.Info("pcc command", "type", cmd.Type().String())
		if cmd.Type() == custom.PccCommandType_setButton {
			d.controller.SetButton(cmd.Bool())
			continue
		}
		if d.settings.Handle(cmd) {
			d.applySettings()
		}
	}
}

func (d *daemon) applySettings() {
	mode := pcc.ModeFromLabel(d.settings.Mode)
	if d.mode.Update(mode) {
		d.controller.SetMode(mode)
	}
	if d.settings.ExperimentalFollowMode && mode == pcc.ModeFollow && d.controller.Mode() != pcc.ModeFollow {
		slog.Warn("experimental follow mode applies after a restart")
	}
}

func (d *daemon) publish(out pcc.Output) {
	msg, state := cereal.NewMessage(cereal.PccStateCreator)
	if err := cereal.FillState(state, out); err != nil {
		utils.Logwe(err, "action", "fill pcc state")
	}
	utils.Logwe(d.statePub.Send(msg), "action", "publish pcc state")
}
