package pcc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/pccd/pid"
)

func TestDoublePullWindow(t *testing.T) {
	tests := []struct {
		gap     time.Duration
		enabled bool
	}{
		{749 * time.Millisecond, true},
		{751 * time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.gap.String(), func(t *testing.T) {
			h := newHarness(t)
			h.step(50*time.Millisecond, ButtonMain)
			h.step(50*time.Millisecond, ButtonIdle)
			out := h.step(tt.gap-50*time.Millisecond, ButtonMain)

			assert.Equal(t, RuleMainStalk, out.Rule)
			assert.Equal(t, tt.enabled, out.Enabled)
			if tt.enabled {
				assert.Equal(t, StatusEnabled, out.Status)
				assert.Equal(t, []string{"PCC Enabled"}, out.Alerts)
				assert.InDelta(t, 72.0, out.TargetSpeedKph, 1e-9)
			} else {
				assert.Equal(t, StatusStandby, out.Status)
				assert.Empty(t, out.Alerts)
			}
		})
	}
}

func TestEnableUsesSpeedLimitWhenHigher(t *testing.T) {
	h := newHarness(t)
	h.limit = SpeedLimit{Value: 25, Active: true}
	h.step(50*time.Millisecond, ButtonIdle)
	assert.InDelta(t, 90.0, h.c.State().SpeedLimitKph, 1e-9)

	out := h.engage()
	require.True(t, out.Enabled)
	assert.InDelta(t, 90.0, out.TargetSpeedKph, 1e-9)
}

func TestSpeedLimitChangeSetsTarget(t *testing.T) {
	h := newHarness(t)
	h.engage()

	in := h.inputs()
	in.SpeedLimit = SpeedLimit{Value: 100 / 3.6, Offset: 0, Active: true}
	out := h.run(in)
	assert.InDelta(t, 100.0, out.TargetSpeedKph, 1e-9)
	assert.InDelta(t, 100.0, h.c.State().SpeedLimitKph, 1e-9)

	in = h.inputs()
	out = h.run(in)
	assert.Equal(t, 0.0, h.c.State().SpeedLimitKph, "inactive limit clears")
	assert.InDelta(t, 100.0, out.TargetSpeedKph, 1e-9, "target is kept")
}

func TestButtonsAdjustTarget(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.engage().Enabled)

	steps := []struct {
		button CruiseButton
		want   float64
	}{
		{ButtonResume, 73},
		{ButtonResume2, 78},
		{ButtonDecel, 77},
		{ButtonDecel2, 72},
	}
	for _, s := range steps {
		out := h.step(50*time.Millisecond, s.button)
		assert.Equal(t, RuleAdjustSpeed, out.Rule)
		assert.InDelta(t, s.want, out.TargetSpeedKph, 1e-9, "button %d", s.button)
		h.step(50*time.Millisecond, ButtonIdle)
	}
}

func TestButtonsAdjustTargetImperial(t *testing.T) {
	h := newHarness(t)
	h.car.Imperial = true
	h.car.VEgo = 20 // 44.7 mph
	out := h.engage()
	require.True(t, out.Enabled)
	assert.InDelta(t, 45*1.609344, out.TargetSpeedKph, 1e-9)

	out = h.step(50*time.Millisecond, ButtonResume)
	assert.InDelta(t, 46*1.609344, out.TargetSpeedKph, 1e-9)
}

func TestTargetClamped(t *testing.T) {
	h := newHarness(t)
	h.car.VEgo = 1
	require.True(t, h.engage().Enabled)
	for range 3 {
		h.step(50*time.Millisecond, ButtonDecel2)
		h.step(50*time.Millisecond, ButtonIdle)
	}
	assert.Equal(t, 0.0, h.c.State().TargetSpeedKph)

	h.car.VEgo = 74
	for range 3 {
		h.step(50*time.Millisecond, ButtonResume2)
		h.step(50*time.Millisecond, ButtonIdle)
	}
	assert.Equal(t, 270.0, h.c.State().TargetSpeedKph)
}

func TestBrakeDisables(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.engage().Enabled)

	h.car.BrakePressed = true
	out := h.step(50*time.Millisecond, ButtonCancel)
	assert.Equal(t, RuleBrake, out.Rule, "brake wins over cancel")
	assert.False(t, out.Enabled)
	assert.Equal(t, StatusStandby, out.Status)
	assert.Equal(t, []string{"PCC Disabled"}, out.Alerts)
	assert.Len(t, h.gains.saves, 1, "gains are saved on disable")
	assert.InDelta(t, 72.0, out.TargetSpeedKph, 1e-9, "brake keeps the target")
}

func TestCancelClearsTarget(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.engage().Enabled)

	out := h.step(50*time.Millisecond, ButtonCancel)
	assert.Equal(t, RuleCancel, out.Rule)
	assert.False(t, out.Enabled)
	assert.Equal(t, 0.0, out.TargetSpeedKph)
	state := h.c.State()
	assert.Equal(t, int64(0), state.StalkPullMs)
	assert.Equal(t, int64(-1000), state.PrevStalkPullMs)
}

func TestSinglePullDisables(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.engage().Enabled)

	out := h.step(5*time.Second, ButtonMain)
	assert.Equal(t, RuleMainStalk, out.Rule)
	assert.True(t, out.Enabled, "a second pull may still follow")

	out = h.step(400*time.Millisecond, ButtonIdle)
	assert.True(t, out.Enabled)

	out = h.step(400*time.Millisecond, ButtonIdle)
	assert.Equal(t, RuleSinglePull, out.Rule)
	assert.False(t, out.Enabled)
}

func TestButtonOffBlocksEngagement(t *testing.T) {
	h := newHarness(t)
	h.c.SetButton(false)
	out := h.engage()
	assert.False(t, out.Enabled)
	assert.Equal(t, StatusOff, h.c.State().Status)

	h.c.SetButton(true)
	assert.Equal(t, StatusStandby, h.c.State().Status)
	assert.True(t, h.engage().Enabled)
}

func TestPedalTimeout(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.engage().Enabled)
	require.True(t, h.ui.available)

	// the pedal stops sending
	in := h.inputs()
	var outs []Output
	for range 120 {
		h.now = h.now.Add(50 * time.Millisecond)
		in.Now = h.now
		outs = append(outs, h.run(in))
	}

	timedOut := 0
	resets := 0
	for _, out := range outs {
		if !out.Available {
			timedOut++
			assert.Equal(t, RuleUnavailable, out.Rule)
			assert.False(t, out.Pedal.Enable)
			assert.Equal(t, 0.0, out.Pedal.Value)
		}
		for _, r := range out.Resets {
			assert.True(t, r.Neutral())
			resets++
		}
	}
	assert.Greater(t, timedOut, 60)
	assert.GreaterOrEqual(t, resets, 1)
	assert.LessOrEqual(t, resets, 2)
	assert.Equal(t, 1, countAlerts(outs, "Pedal Interceptor timed out"))
	assert.False(t, h.ui.available)
	assert.False(t, h.ui.blocked)
}

func TestPedalFault(t *testing.T) {
	h := newHarness(t)
	h.step(50*time.Millisecond, ButtonIdle)

	h.car.PedalFault = 3
	out := h.step(50*time.Millisecond, ButtonIdle)
	assert.False(t, out.Available)
	assert.Equal(t, []string{"Pedal Interceptor fault (state 3)"}, out.Alerts)

	out = h.step(50*time.Millisecond, ButtonIdle)
	assert.Empty(t, out.Alerts, "alert once per transition")
}

func TestStockCruiseBlocksPedal(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.engage().Enabled)

	h.car.CruiseState = CruiseEnabled
	out := h.step(50*time.Millisecond, ButtonIdle)
	assert.False(t, out.Available)
	assert.Equal(t, RuleUnavailable, out.Rule)
	assert.Empty(t, out.Alerts)
	assert.Empty(t, out.Resets)
	assert.True(t, h.ui.blocked)

	h.car.ForcePedalOverCC = true
	out = h.step(50*time.Millisecond, ButtonIdle)
	assert.True(t, out.Available)
	assert.True(t, out.Enabled)
}

func TestDisableResetsHysteresis(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.engage().Enabled)

	for range 20 {
		in := h.inputs()
		in.Actuators.Gas = 0.5
		h.run(in)
	}
	require.Greater(t, h.c.State().PedalSteady, 0.0)

	h.step(50*time.Millisecond, ButtonCancel)
	h.step(50*time.Millisecond, ButtonIdle)
	assert.Equal(t, 0.0, h.c.State().PedalSteady)
}

func TestGainsLoadedOnFirstCycle(t *testing.T) {
	h := newHarness(t)
	h.gains.result = pid.GainsLoaded
	h.gains.stored.P = 3
	h.step(50*time.Millisecond, ButtonIdle)
	h.step(50*time.Millisecond, ButtonIdle)
	assert.Equal(t, 1, h.gains.loads)
	assert.Equal(t, 3.0, h.c.loc.Gains().P)
}

func countAlerts(outs []Output, msg string) int {
	n := 0
	for _, out := range outs {
		for _, a := range out.Alerts {
			if a == msg {
				n++
			}
		}
	}
	return n
}
