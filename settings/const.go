package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	SMALL_SEGMENT_SIZE   = 2 * 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond
	DT                   = 0.05 // s, matches LOOP_DELAY
	MS_TO_KPH            = 3.6
	KPH_TO_MS            = 1 / 3.6
	MPH_TO_MS            = 0.44704
	MS_TO_MPH            = 1 / MPH_TO_MS
	MPH_TO_KPH           = 1.609344
)

// small control messages don't need a full sized ring buffer
var smallSegments = map[string]bool{
	"pccCommand":  true,
	"liveMapData": true,
}

func IsSmallSegment(name string) bool {
	return smallSegments[name]
}
