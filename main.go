package main

import (
	"context"
	"log/slog"
	"time"

	"pfeifer.dev/pccd/carcan"
	"pfeifer.dev/pccd/cereal"
	"pfeifer.dev/pccd/cli"
	"pfeifer.dev/pccd/params"
	"pfeifer.dev/pccd/pcc"
	"pfeifer.dev/pccd/pid"
	"pfeifer.dev/pccd/settings"
	"pfeifer.dev/pccd/utils"
)

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	settings.Settings.LoadWithRetries(5)

	ctx := context.Background()

	cfg := pcc.DefaultConfig()
	cfg.FollowModeEnabled = settings.Settings.ExperimentalFollowMode

	carSub := cereal.NewSubscriber(cereal.CAR_INPUT, cereal.CarInputReader, true)
	defer carSub.Sub.Msgq.Close()
	radarSub := cereal.NewSubscriber(cereal.RADAR_STATE, cereal.RadarStateReader, true)
	defer radarSub.Sub.Msgq.Close()
	mapSub := cereal.NewSubscriber(cereal.MAP_DATA, cereal.MapDataReader, true)
	defer mapSub.Sub.Msgq.Close()
	commandSub := cereal.NewSubscriber(cereal.PCC_COMMAND, cereal.PccCommandReader, false)
	defer commandSub.Sub.Msgq.Close()
	statePub := cereal.NewPublisher(cereal.PCC_STATE, cereal.PccStateCreator)

	d := &daemon{
		clock:      utils.RealClock{},
		settings:   &settings.Settings,
		controller: pcc.NewController(cfg, logUI{}, nil, pid.NewParamsGainStore(cfg.DefaultGains)),
		carSub:     &carSub,
		radarSub:   &radarSub,
		mapSub:     &mapSub,
		commandSub: &commandSub,
		statePub:   &statePub,
	}

	iface := carcan.InterfaceName(settings.Settings.CanInterface, settings.Settings.Bus())
	writer, err := carcan.NewSocketCANWriter(ctx, iface)
	if err != nil {
		slog.Warn("pedal commands will not be sent", "error", err)
	} else {
		defer writer.Close()
		d.writer = writer
	}

	d.init()
	for {
		start := time.Now()
		d.step(ctx)
		time.Sleep(settings.LOOP_DELAY - time.Since(start))
	}
}
