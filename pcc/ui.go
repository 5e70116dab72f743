package pcc

import (
	"pfeifer.dev/pccd/pid"
)

// UI receives the driver facing side effects of the controller.
type UI interface {
	Alert(msg string)
	// ConfigureButtons is called whenever availability changes. blockedByCruise
	// is true when only the stock cruise control keeps the pedal unavailable.
	ConfigureButtons(available bool, blockedByCruise bool)
}

type LongControl interface {
	Reset(vPid float64)
	Update(active bool, vEgo, vTarget, feedforward float64) (gas, brake float64)
	Gains() pid.Gains
	SetGains(pid.Gains)
}

type GainStore interface {
	Load() (pid.Gains, pid.LoadResult, error)
	Save(pid.Gains) error
}
