package pcc

import "strings"

type Mode uint8

const (
	// ModeOP drives the pedal from the upstream planner's gas and brake.
	ModeOP Mode = iota
	// ModeFollow plans its own speed from the lead and runs a local PID.
	// Experimental, only honored when Config.FollowModeEnabled is set.
	ModeFollow
)

var modeLabels = map[Mode]string{
	ModeOP:     "OP",
	ModeFollow: "FOLLOW",
}

func (m Mode) Label() string {
	return modeLabels[m]
}

// ModeFromLabel falls back to ModeOP for unknown labels.
func ModeFromLabel(label string) Mode {
	for mode, l := range modeLabels {
		if strings.EqualFold(l, label) {
			return mode
		}
	}
	return ModeOP
}

func Labels() []string {
	return []string{ModeOP.Label(), ModeFollow.Label()}
}
