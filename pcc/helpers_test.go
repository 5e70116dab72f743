package pcc

import (
	"testing"
	"time"

	"pfeifer.dev/pccd/pid"
)

type fakeUI struct {
	alerts       []string
	available    bool
	blocked      bool
	reconfigured int
}

func (f *fakeUI) Alert(msg string) {
	f.alerts = append(f.alerts, msg)
}

func (f *fakeUI) ConfigureButtons(available bool, blockedByCruise bool) {
	f.available = available
	f.blocked = blockedByCruise
	f.reconfigured++
}

type fakeGains struct {
	stored pid.Gains
	result pid.LoadResult
	err    error
	loads  int
	saves  []pid.Gains
}

func (f *fakeGains) Load() (pid.Gains, pid.LoadResult, error) {
	f.loads++
	return f.stored, f.result, f.err
}

func (f *fakeGains) Save(g pid.Gains) error {
	f.saves = append(f.saves, g)
	return f.err
}

// harness drives a controller with a live pedal and a controllable clock.
type harness struct {
	t     *testing.T
	c     *Controller
	ui    *fakeUI
	gains *fakeGains
	now   time.Time
	idx   uint16
	car   CarState
	limit SpeedLimit
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ui := &fakeUI{}
	gains := &fakeGains{result: pid.GainsNotFound}
	return &harness{
		t:     t,
		c:     NewController(DefaultConfig(), ui, nil, gains),
		ui:    ui,
		gains: gains,
		now:   time.UnixMilli(1_700_000_000_000),
		car: CarState{
			VEgo:       20,
			FollowTime: 1.4,
			Trim:       "S",
		},
	}
}

func (h *harness) inputs() Inputs {
	h.idx++
	car := h.car
	car.PedalIndex = h.idx
	return Inputs{
		Now:             h.now,
		Car:             car,
		ControlsEnabled: true,
		SpeedLimit:      h.limit,
	}
}

// step advances the clock by dt and runs one cycle with the given buttons.
func (h *harness) step(dt time.Duration, buttons CruiseButton) Output {
	h.now = h.now.Add(dt)
	in := h.inputs()
	in.Car.Buttons = buttons
	return h.c.Update(in)
}

func (h *harness) run(in Inputs) Output {
	return h.c.Update(in)
}

// engage performs a double pull and releases the stalk.
func (h *harness) engage() Output {
	h.step(50*time.Millisecond, ButtonMain)
	h.step(50*time.Millisecond, ButtonIdle)
	out := h.step(200*time.Millisecond, ButtonMain)
	h.step(50*time.Millisecond, ButtonIdle)
	return out
}
