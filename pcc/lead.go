package pcc

import (
	"time"
)

// Lead is the most recent forward obstacle estimate.
type Lead struct {
	DRel   float64 // m
	VRel   float64 // m/s
	ARel   float64
	VLeadK float64 // filtered absolute speed
	ALeadK float64
	Status bool
}

// Present reports whether the lead exists and is ahead of us. A lead with
// no distance is never a boundary at zero.
func Present(l *Lead) bool {
	return l != nil && l.DRel > 0
}

type SightingHistory struct {
	LastSeen   time.Time
	Continuous int
}

type LeadTracker struct {
	Lead     *Lead
	History  SightingHistory
	Received bool
}

func (t *LeadTracker) Ingest(sample *Lead, now time.Time) {
	t.Received = true
	t.Lead = sample
	if Present(sample) {
		t.History.LastSeen = now
		t.History.Continuous++
	} else {
		t.History.Continuous = 0
	}
}
