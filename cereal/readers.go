package cereal

import (
	"capnproto.org/go/capnp/v3"
	"pfeifer.dev/pccd/cereal/custom"
)

// Topics
const (
	CAR_INPUT   = "pccCarState"
	RADAR_STATE = "radarState"
	MAP_DATA    = "liveMapData"
	PCC_COMMAND = "pccCommand"
	PCC_STATE   = "pccState"
)

func CarInputReader(msg *capnp.Message) (custom.CarInput, error) {
	return custom.ReadRootCarInput(msg)
}

func RadarStateReader(msg *capnp.Message) (custom.RadarState, error) {
	return custom.ReadRootRadarState(msg)
}

func MapDataReader(msg *capnp.Message) (custom.MapData, error) {
	return custom.ReadRootMapData(msg)
}

func PccCommandReader(msg *capnp.Message) (custom.PccCommand, error) {
	return custom.ReadRootPccCommand(msg)
}

func PccStateReader(msg *capnp.Message) (custom.PccState, error) {
	return custom.ReadRootPccState(msg)
}
