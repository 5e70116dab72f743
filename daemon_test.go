package main

import (
	"context"
	"testing"
	"time"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.einride.tech/can"
	"pfeifer.dev/pccd/carcan"
	"pfeifer.dev/pccd/cereal"
	"pfeifer.dev/pccd/cereal/custom"
	"pfeifer.dev/pccd/pcc"
	"pfeifer.dev/pccd/settings"
	"pfeifer.dev/pccd/utils"
)

type queue[T any] struct {
	items []T
}

func (q *queue[T]) Read() (obj T, ok bool) {
	if len(q.items) == 0 {
		return obj, false
	}
	obj = q.items[0]
	q.items = q.items[1:]
	return obj, true
}

type capture struct {
	msgs [][]byte
}

func (c *capture) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return err
	}
	c.msgs = append(c.msgs, b)
	return nil
}

func (c *capture) last(t *testing.T) custom.PccState {
	t.Helper()
	require.NotEmpty(t, c.msgs)
	state, err := cereal.Decode(c.msgs[len(c.msgs)-1], cereal.PccStateReader)
	require.NoError(t, err)
	return state
}

type frames struct {
	sent []can.Frame
}

func (f *frames) WriteFrame(_ context.Context, frame can.Frame) error {
	f.sent = append(f.sent, frame)
	return nil
}

func (f *frames) Close() error { return nil }

type testDaemon struct {
	*daemon
	clock    *utils.ManualClock
	cars     *queue[custom.CarInput]
	radar    *queue[custom.RadarState]
	maps     *queue[custom.MapData]
	commands *queue[custom.PccCommand]
	states   *capture
	can      *frames
}

func newTestDaemon(cfg *pcc.Config) *testDaemon {
	s := &settings.PccSettings{}
	s.Default()
	td := &testDaemon{
		clock:    utils.NewManualClock(time.UnixMilli(1_700_000_000_000)),
		cars:     &queue[custom.CarInput]{},
		radar:    &queue[custom.RadarState]{},
		maps:     &queue[custom.MapData]{},
		commands: &queue[custom.PccCommand]{},
		states:   &capture{},
		can:      &frames{},
	}
	td.daemon = &daemon{
		clock:      td.clock,
		settings:   s,
		controller: pcc.NewController(cfg, logUI{}, nil, nil),
		carSub:     td.cars,
		radarSub:   td.radar,
		mapSub:     td.maps,
		commandSub: td.commands,
		statePub:   td.states,
		writer:     td.can,
	}
	td.init()
	return td
}

func (td *testDaemon) car(idx uint16, buttons pcc.CruiseButton) {
	_, ci := cereal.NewMessage(cereal.CarInputCreator)
	ci.SetVEgo(20)
	ci.SetPedalIndex(idx)
	ci.SetCruiseButtons(uint16(buttons))
	ci.SetControlsEnabled(true)
	td.cars.items = append(td.cars.items, ci)
}

func (td *testDaemon) command(typ custom.PccCommandType, set func(custom.PccCommand)) {
	_, cmd := cereal.NewMessage(cereal.PccCommandCreator)
	cmd.SetType(typ)
	set(cmd)
	td.commands.items = append(td.commands.items, cmd)
}

func (td *testDaemon) step(t *testing.T) pcc.Output {
	t.Helper()
	td.clock.Advance(50 * time.Millisecond)
	out, ran := td.daemon.step(context.Background())
	require.True(t, ran)
	return out
}

func TestStepWaitsForCarInput(t *testing.T) {
	td := newTestDaemon(pcc.DefaultConfig())
	_, ran := td.daemon.step(context.Background())
	assert.False(t, ran)
	assert.Empty(t, td.states.msgs)
	assert.Empty(t, td.can.sent)
}

func TestStepPublishesAndSends(t *testing.T) {
	td := newTestDaemon(pcc.DefaultConfig())

	_, rs := cereal.NewMessage(cereal.RadarStateCreator)
	rs.SetDRel(40)
	rs.SetLeadValid(true)
	td.radar.items = append(td.radar.items, rs)
	td.car(1, pcc.ButtonIdle)

	out := td.step(t)
	assert.True(t, out.Available)

	state := td.states.last(t)
	assert.Equal(t, uint16(pcc.StatusStandby), state.Status())
	assert.True(t, state.Available())

	require.Len(t, td.can.sent, 1)
	cmd, ok := carcan.DecodePedalFrame(td.can.sent[0])
	require.True(t, ok)
	assert.Equal(t, out.Pedal.Index, cmd.Index)
	assert.False(t, cmd.Enable)

	tracker := td.controller.Tracker()
	require.NotNil(t, tracker.Lead)
	assert.Equal(t, 40.0, tracker.Lead.DRel)
}

func TestEngageThroughDaemon(t *testing.T) {
	td := newTestDaemon(pcc.DefaultConfig())
	buttons := []pcc.CruiseButton{pcc.ButtonMain, pcc.ButtonIdle, pcc.ButtonMain, pcc.ButtonIdle}
	var out pcc.Output
	for i, b := range buttons {
		td.car(uint16(i+1), b)
		out = td.step(t)
	}
	assert.True(t, out.Enabled)
	assert.True(t, td.states.last(t).Enabled())
	assert.InDelta(t, 72.0, out.TargetSpeedKph, 1e-9)
}

func TestButtonCommand(t *testing.T) {
	td := newTestDaemon(pcc.DefaultConfig())
	td.command(custom.PccCommandType_setButton, func(c custom.PccCommand) { c.SetBool(false) })
	td.car(1, pcc.ButtonIdle)

	td.step(t)
	assert.Equal(t, uint16(pcc.StatusOff), td.states.last(t).Status())
	assert.Equal(t, "OP", td.settings.Mode, "buttons are not settings")
}

func TestModeCommand(t *testing.T) {
	cfg := pcc.DefaultConfig()
	cfg.FollowModeEnabled = true
	td := newTestDaemon(cfg)
	td.command(custom.PccCommandType_setMode, func(c custom.PccCommand) { _ = c.SetStr("follow") })
	td.car(1, pcc.ButtonIdle)

	td.step(t)
	assert.Equal(t, "FOLLOW", td.settings.Mode)
	assert.Equal(t, pcc.ModeFollow, td.controller.Mode())
	assert.Equal(t, pcc.ModeFollow, td.mode.Value)
}

func TestMapDataKept(t *testing.T) {
	td := newTestDaemon(pcc.DefaultConfig())
	_, md := cereal.NewMessage(cereal.MapDataCreator)
	md.SetCurvature(0.02)
	md.SetCurvatureValid(true)
	td.maps.items = append(td.maps.items, md)

	td.car(1, pcc.ButtonIdle)
	td.step(t)
	td.car(2, pcc.ButtonIdle)
	td.step(t)

	require.NotNil(t, td.mapData)
	assert.InDelta(t, 0.02, td.mapData.Curvature, 1e-6)
}
